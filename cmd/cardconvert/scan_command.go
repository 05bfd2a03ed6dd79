package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anaik-zam/CardConvert/internal/cards"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:       "scan [card-types...]",
		Short:     "List discovered card bundles without converting anything",
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
			types := args
			if len(types) == 0 {
				types = cards.AllTypes()
			}

			list, err := cards.Gather(cfg, types, input, logger)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No cards found under %s\n", input)
				return nil
			}

			rows := make([][]string, 0, len(list))
			for _, card := range list {
				static := card.Bundle.Static
				if static == "" {
					static = "(missing)"
				}
				rows = append(rows, []string{
					card.Name,
					card.Locale,
					card.Class,
					static,
					strconv.Itoa(len(card.Bundle.Animated)),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Card", "Locale", "Class", "Static", "Frames"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d cards discovered\n", len(list))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory (overrides configuration)")

	return cmd
}
