package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/anaik-zam/CardConvert/internal/report"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded conversion runs, or one run's per-card results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := report.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				return showRunOutcomes(cmd, store, args[0])
			}
			return showRuns(cmd, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}

func showRuns(cmd *cobra.Command, store *report.Store, limit int) error {
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		finished := "running"
		if run.Finished() {
			finished = run.FinishedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			finished,
			run.InputDir,
			strconv.Itoa(run.Total),
			strconv.Itoa(run.Failed),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Run", "Started", "Finished", "Input", "Cards", "Failed"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
	return nil
}

func showRunOutcomes(cmd *cobra.Command, store *report.Store, runID string) error {
	outcomes, err := store.RunOutcomes(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if len(outcomes) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No outcomes recorded for run %s\n", runID)
		return nil
	}

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		status := "ok"
		detail := o.Message
		if o.Error != "" {
			status = "failed"
			detail = o.Error
		}
		rows = append(rows, []string{o.Name, o.Locale, o.Class, status, detail})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Card", "Locale", "Class", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}
