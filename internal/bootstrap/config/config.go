package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type PathsConfig struct {
	DataDir    string `mapstructure:"data_dir"`
	ResultsDir string `mapstructure:"results_dir"`
	ModelsDir  string `mapstructure:"models_dir"`
}

type AnalysisConfig struct {
	Levels       []string `mapstructure:"levels"`
	DefaultLevel string   `mapstructure:"default_level"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Watch   bool `mapstructure:"watch"`
}

type KnowledgeConfig struct {
	LookupDelay time.Duration `mapstructure:"lookup_delay"`
}

type PipelineConfig struct {
	StageDelay time.Duration `mapstructure:"stage_delay"`
	Profile    string        `mapstructure:"profile"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("REASON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			// Keep default and env-backed config when no file is provided.
			logging.Warn(logCtx, "config file not found, fallback to defaults and env")
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	if cfg.Database.DSN == "" {
		return Config{}, errors.New("database.dsn is required")
	}
	if !cfg.Analysis.IsValidLevel(cfg.Analysis.DefaultLevel) {
		return Config{}, errors.New("analysis.default_level must be one of analysis.levels")
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("data_dir", cfg.Paths.DataDir),
		slog.String("results_dir", cfg.Paths.ResultsDir),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	return cfg, nil
}

// IsValidLevel reports whether level is one of the configured analysis levels.
func (a AnalysisConfig) IsValidLevel(level string) bool {
	for _, known := range a.Levels {
		if level == known {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "reason")
	v.SetDefault("app.env", "local")

	// Directory defaults match the demonstration layout: everything under
	// the working directory.
	v.SetDefault("paths.data_dir", "data")
	v.SetDefault("paths.results_dir", "results")
	v.SetDefault("paths.models_dir", "models")

	v.SetDefault("analysis.levels", []string{"basic", "standard", "comprehensive"})
	v.SetDefault("analysis.default_level", "standard")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.watch", false)

	v.SetDefault("knowledge.lookup_delay", 500*time.Millisecond)
	v.SetDefault("pipeline.stage_delay", time.Second)
	v.SetDefault("pipeline.profile", "")

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "results/runs.sqlite")
}
