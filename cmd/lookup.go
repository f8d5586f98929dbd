package cmd

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AaronRai123/REASON/internal/bootstrap"
	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/usecase/analysis"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query the knowledge and dataset stores",
}

var lookupDiseaseCmd = &cobra.Command{
	Use:   "disease <name>",
	Short: "Look up disease information",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		doc, err := app.Knowledge.Disease(ctx, cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "look up disease")
		}
		return printJSON(cmd, doc)
	}),
}

var lookupPathwayCmd = &cobra.Command{
	Use:   "pathway <id>",
	Short: "Look up pathway information",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		doc, err := app.Knowledge.Pathway(ctx, cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "look up pathway")
		}
		return printJSON(cmd, doc)
	}),
}

var lookupDrugCmd = &cobra.Command{
	Use:   "drug <id>",
	Short: "Look up drug information",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		doc, err := app.Knowledge.Drug(ctx, cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "look up drug")
		}
		return printJSON(cmd, doc)
	}),
}

var lookupLiteratureCmd = &cobra.Command{
	Use:   "literature <query>",
	Short: "Search scientific literature",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		maxResults, _ := cmd.Flags().GetInt("max")
		pubs, err := app.Knowledge.SearchLiterature(ctx, cmd.Flags().Arg(0), maxResults)
		if err != nil {
			return errs.Wrap(err, "search literature")
		}
		return printJSON(cmd, pubs)
	}),
}

var lookupDatasetCmd = &cobra.Command{
	Use:   "dataset <data-type> [name]",
	Short: "Load a dataset, synthesizing a placeholder when absent",
	Args:  cobra.RangeArgs(1, 2),
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *analysis.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		name := ""
		if cmd.Flags().NArg() > 1 {
			name = cmd.Flags().Arg(1)
		}

		doc, err := app.Datasets.Load(ctx, cmd.Flags().Arg(0), name, app.Config.Cache.Enabled)
		if err != nil {
			return errs.Wrap(err, "load dataset")
		}
		return printJSON(cmd, doc)
	}),
}

func printJSON(cmd *cobra.Command, body any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(body); err != nil {
		return errs.Wrap(err, "encode lookup output")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupDiseaseCmd)
	lookupCmd.AddCommand(lookupPathwayCmd)
	lookupCmd.AddCommand(lookupDrugCmd)
	lookupCmd.AddCommand(lookupLiteratureCmd)
	lookupCmd.AddCommand(lookupDatasetCmd)

	lookupLiteratureCmd.Flags().Int("max", 10, "Maximum number of results")
}
