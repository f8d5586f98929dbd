package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/AaronRai123/REASON/internal/bootstrap"
	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/usecase/analysis"
)

func withApp(run func(cmd *cobra.Command, app *bootstrap.App, svc *analysis.Service) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
		)

		app, err := bootstrap.New(ctx, cfgFile)
		if err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "bootstrap application")
		}

		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.Close(closeCtx); err != nil {
				logging.Error(ctx, "application close failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "init schema")
		}

		svc, err := analysis.NewService(app.Datasets, app.Knowledge, app.Runs, analysis.Options{
			ResultsDir:   app.Config.Paths.ResultsDir,
			Levels:       app.Config.Analysis.Levels,
			DefaultLevel: app.Config.Analysis.DefaultLevel,
			StageDelay:   app.Config.Pipeline.StageDelay,
			UseCache:     app.Config.Cache.Enabled,
			ProfileFile:  app.Config.Pipeline.Profile,
		})
		if err != nil {
			return errs.Wrap(err, "init analysis service")
		}

		if err := run(cmd, app, svc); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}
