package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anaik-zam/CardConvert/internal/cards"
	"github.com/anaik-zam/CardConvert/internal/logging"
	"github.com/anaik-zam/CardConvert/internal/services"
)

// Processor converts a single card. The pipeline satisfies this; tests
// substitute stubs.
type Processor interface {
	Process(ctx context.Context, card *cards.Card) (string, error)
}

// Outcome records one card's result. Index is the card's position in the
// submitted slice, so callers can report in submission order regardless of
// which worker finished first.
type Outcome struct {
	Index   int
	Name    string
	Locale  string
	Class   string
	Message string
	Err     error
}

// Failed reports whether the card's conversion ended in an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

type job struct {
	index int
	card  *cards.Card
}

// Run fans cards out across a bounded pool of workers and returns one
// Outcome per card, ordered by submission index. A card failure is recorded
// in its Outcome and never stops the other cards. Context cancellation stops
// the feed; cards that never reached a worker are reported as cancelled.
func Run(ctx context.Context, proc Processor, list []*cards.Card, workers int, logger *slog.Logger) []Outcome {
	if workers < 1 {
		workers = 1
	}
	if workers > len(list) {
		workers = len(list)
	}
	log := logging.NewComponentLogger(logger, "dispatch")

	outcomes := make([]Outcome, len(list))
	for i, card := range list {
		outcomes[i] = Outcome{
			Index:  i,
			Name:   card.Name,
			Locale: card.Locale,
			Class:  card.Class,
			Err: services.Wrap(services.ErrTransient, "dispatch", "run",
				"card was never scheduled", context.Canceled),
		}
	}
	if len(list) == 0 {
		return outcomes
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcomes[j.index].Message, outcomes[j.index].Err = process(ctx, proc, j.card)
			}
		}()
	}

feed:
	for i, card := range list {
		if ctx.Err() != nil {
			log.Warn("dispatch cancelled", logging.Int("remaining", len(list)-i))
			break
		}
		select {
		case jobs <- job{index: i, card: card}:
		case <-ctx.Done():
			log.Warn("dispatch cancelled", logging.Int("remaining", len(list)-i))
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

// process shields the pool from a panicking stage: the panic becomes that
// card's error instead of taking down the run.
func process(ctx context.Context, proc Processor, card *cards.Card) (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = services.Wrap(services.ErrTransient, "dispatch", "process",
				fmt.Sprintf("panic while processing %s: %v", card.ID(), r), nil)
		}
	}()
	return proc.Process(ctx, card)
}
