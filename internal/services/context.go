package services

import "context"

type contextKey string

const (
	cardContextKey  contextKey = "card"
	stageContextKey contextKey = "stage"
)

// WithCard attaches a card identity (name:locale) to the context.
func WithCard(ctx context.Context, card string) context.Context {
	if card == "" {
		return ctx
	}
	return context.WithValue(ctx, cardContextKey, card)
}

// CardFromContext extracts the card identity if present.
func CardFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	card, ok := ctx.Value(cardContextKey).(string)
	return card, ok && card != ""
}

// WithStage attaches a pipeline stage name to the context.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageContextKey, stage)
}

// StageFromContext extracts the pipeline stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	stage, ok := ctx.Value(stageContextKey).(string)
	return stage, ok && stage != ""
}
