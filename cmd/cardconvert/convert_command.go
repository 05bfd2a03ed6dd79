package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anaik-zam/CardConvert/internal/cards"
	"github.com/anaik-zam/CardConvert/internal/config"
	"github.com/anaik-zam/CardConvert/internal/dispatch"
	"github.com/anaik-zam/CardConvert/internal/logging"
	"github.com/anaik-zam/CardConvert/internal/pipeline"
	"github.com/anaik-zam/CardConvert/internal/report"
	"github.com/anaik-zam/CardConvert/internal/runlock"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		inputDir  string
		outputDir string
		workers   int
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:       "convert [card-types...]",
		Short:     "Convert discovered card artwork into every configured output variant",
		Args:      cobra.OnlyValidArgs,
		ValidArgs: cards.AllTypes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			input, err := resolveDir(inputDir, cfg.Paths.InputDir)
			if err != nil {
				return err
			}
			output, err := resolveDir(outputDir, cfg.Paths.OutputDir)
			if err != nil {
				return err
			}
			types := args
			if len(types) == 0 {
				types = cards.AllTypes()
			}
			if workers <= 0 {
				workers = cfg.Workers
			}

			lock, err := runlock.Acquire(output)
			if err != nil {
				return err
			}
			defer func() {
				if relErr := lock.Release(); relErr != nil {
					logger.Warn("failed to release run lock", logging.Error(relErr))
				}
			}()

			list, err := cards.Gather(cfg, types, input, logger)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No cards found under %s\n", input)
				return nil
			}

			logger.Info("starting conversion",
				logging.String("input", input),
				logging.String("output", output),
				logging.Int("cards", len(list)),
				logging.Int("workers", workers),
			)

			pipe := pipeline.New(cfg, pipeline.NewRunner(), output, logger)
			outcomes := dispatch.Run(cmd.Context(), pipe, list, workers, logger)

			failed := 0
			for _, o := range outcomes {
				if o.Failed() {
					failed++
				}
			}

			if !noHistory {
				persistRun(cmd, cfg, logger, input, output, workers, outcomes, failed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderOutcomes(outcomes))
			fmt.Fprintf(cmd.OutOrStdout(), "%d converted, %d failed\n", len(outcomes)-failed, failed)

			if failed > 0 {
				return fmt.Errorf("%d of %d cards failed", failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory (overrides configuration)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides configuration)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent card conversions (overrides configuration)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history database")

	return cmd
}

// persistRun records the run in the history database. History is best effort:
// a storage failure is logged, never fatal to a conversion that already ran.
func persistRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, input, output string, workers int, outcomes []dispatch.Outcome, failed int) {
	store, err := report.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	ctx := cmd.Context()
	runID, err := store.BeginRun(ctx, input, output, workers)
	if err != nil {
		logger.Warn("failed to record run", logging.Error(err))
		return
	}
	for _, o := range outcomes {
		if err := store.RecordOutcome(ctx, runID, o); err != nil {
			logger.Warn("failed to record outcome",
				logging.String("card", o.Name), logging.Error(err))
		}
	}
	if err := store.FinishRun(ctx, runID, len(outcomes), failed); err != nil {
		logger.Warn("failed to finish run", logging.Error(err))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Run recorded as %s\n", runID)
}

func renderOutcomes(outcomes []dispatch.Outcome) string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		status := "ok"
		detail := o.Message
		if o.Failed() {
			status = "failed"
			detail = o.Err.Error()
		}
		rows = append(rows, []string{o.Name, o.Locale, o.Class, status, detail})
	}
	return renderTable(
		[]string{"Card", "Locale", "Class", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func resolveDir(flagValue, configured string) (string, error) {
	value := strings.TrimSpace(flagValue)
	if value == "" {
		return configured, nil
	}
	return config.ExpandPath(value)
}
