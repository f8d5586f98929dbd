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

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a disease and generate result artifacts",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		disease, _ := cmd.Flags().GetString("disease")
		dataSources, _ := cmd.Flags().GetStringSlice("data-source")
		level, _ := cmd.Flags().GetString("level")
		simulate, _ := cmd.Flags().GetBool("simulate")
		treatment, _ := cmd.Flags().GetString("treatment")
		validate, _ := cmd.Flags().GetBool("validate")

		result, err := svc.AnalyzeDisease(ctx, analysis.AnalyzeInput{
			Disease:     disease,
			DataSources: dataSources,
			Level:       level,
		})
		if err != nil {
			logging.Error(ctx, "analysis failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "analyze disease")
		}

		if simulate {
			sim, err := svc.RunSimulation(ctx, disease, treatment)
			if err != nil {
				return errs.Wrap(err, "run simulation")
			}
			result.Simulation = sim
		}

		if validate {
			score, err := svc.ValidateResults(ctx, disease)
			if err != nil {
				return errs.Wrap(err, "validate results")
			}
			result.ValidationScore = &score
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Analysis of %s completed successfully.\nResults saved to %s\n", disease, app.Config.Paths.ResultsDir); err != nil {
			return errs.Wrap(err, "write analyze output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("disease", "", "Name of the disease to analyze")
	analyzeCmd.Flags().StringSlice("data-source", nil, "Data sources to use")
	analyzeCmd.Flags().String("level", "", "Analysis level (basic, standard, comprehensive)")
	analyzeCmd.Flags().Bool("simulate", false, "Run a systems biology simulation after analysis")
	analyzeCmd.Flags().String("treatment", "", "Treatment ID for the simulation")
	analyzeCmd.Flags().Bool("validate", false, "Validate results against known data")
	_ = analyzeCmd.MarkFlagRequired("disease")
}
