package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AaronRai123/REASON/internal/bootstrap"
	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/usecase/analysis"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded pipeline runs",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := app.Runs.List(ctx, limit)
		if err != nil {
			return errs.Wrap(err, "list runs")
		}

		for _, run := range runs {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
				run.StartedAt, run.Kind, run.Disease, run.Level, run.Status); err != nil {
				return errs.Wrap(err, "write runs output")
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
}
