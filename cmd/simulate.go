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

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a systems biology simulation for a disease",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		disease, _ := cmd.Flags().GetString("disease")
		treatment, _ := cmd.Flags().GetString("treatment")

		sim, err := svc.RunSimulation(ctx, disease, treatment)
		if err != nil {
			logging.Error(ctx, "simulation failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "run simulation")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "simulation %s disease=%s simulation_time=%.1f\n", sim.Status, sim.Disease, sim.SimulationTime); err != nil {
			return errs.Wrap(err, "write simulate output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().String("disease", "", "Name of the disease to simulate")
	simulateCmd.Flags().String("treatment", "", "Treatment ID for the simulation")
	_ = simulateCmd.MarkFlagRequired("disease")
}
