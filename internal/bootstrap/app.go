package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/AaronRai123/REASON/internal/bootstrap/config"
	"github.com/AaronRai123/REASON/internal/bootstrap/database"
	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/infrastructure/cache"
	"github.com/AaronRai123/REASON/internal/infrastructure/dataset"
	"github.com/AaronRai123/REASON/internal/infrastructure/knowledge"
	"github.com/AaronRai123/REASON/internal/infrastructure/persistence/sqlite/model"
	"github.com/AaronRai123/REASON/internal/infrastructure/persistence/sqlite/repository"
	"github.com/AaronRai123/REASON/internal/infrastructure/watch"
	"github.com/AaronRai123/REASON/internal/ports"
)

type App struct {
	Config    config.Config
	DB        *gorm.DB
	Datasets  ports.DatasetStore
	Knowledge ports.KnowledgeStore
	Runs      ports.RunRepository

	watcher *watch.Watcher
}

func New(ctx context.Context, configFile string) (*App, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.app"))
	logging.Info(logCtx, "loading application config", slog.String("config_file", configFile))

	cfg, err := config.Load(logCtx, configFile)
	if err != nil {
		return nil, errs.Wrap(err, "load config")
	}

	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.ResultsDir, cfg.Paths.ModelsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errs.Wrapf(err, "create directory %q", dir)
		}
	}

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, errs.Wrap(err, "open database")
	}

	datasets := dataset.NewStore(logCtx, cfg.Paths.DataDir, cache.NewMemoryCache())

	kb, err := knowledge.NewStore(logCtx, cfg.Paths.DataDir, cache.NewMemoryCache(), cfg.Knowledge.LookupDelay)
	if err != nil {
		return nil, errs.Wrap(err, "init knowledge store")
	}

	app := &App{
		Config:    cfg,
		DB:        db,
		Datasets:  datasets,
		Knowledge: kb,
		Runs:      repository.NewRunRepository(db),
	}

	if cfg.Cache.Watch {
		watcher, err := watch.NewWatcher(logCtx, cfg.Paths.DataDir, datasets)
		if err != nil {
			return nil, errs.Wrap(err, "start data watcher")
		}
		app.watcher = watcher
	}

	logging.Info(logCtx, "application bootstrap completed",
		slog.String("data_dir", cfg.Paths.DataDir),
		slog.Bool("watch", cfg.Cache.Watch),
	)

	return app, nil
}

func (a *App) InitSchema(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.app"))
	logging.Info(logCtx, "start schema migration")

	if err := a.DB.WithContext(ctx).AutoMigrate(
		&model.AnalysisRun{},
	); err != nil {
		return errs.Wrap(err, "auto migrate schema")
	}

	logging.Info(logCtx, "schema migration completed")
	return nil
}

func (a *App) Close(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	if a.watcher != nil {
		a.watcher.Close()
	}

	a.Datasets.Shutdown()
	a.Knowledge.Shutdown()

	sqlDB, err := a.DB.DB()
	if err != nil {
		return errs.Wrap(err, "get sql db")
	}

	if err := sqlDB.Close(); err != nil {
		return errs.Wrap(err, "close sql db")
	}

	logging.Info(logging.WithAttrs(ctx, slog.String("component", "bootstrap.app")), "application resources released")
	return nil
}
