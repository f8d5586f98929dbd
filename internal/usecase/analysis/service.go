// Package analysis orchestrates the demonstration pipeline: staged,
// logged, time-delayed "analysis" of a disease producing JSON and text
// result artifacts. No real computation happens; findings are fixed lists.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/ports"
)

type Options struct {
	ResultsDir   string
	Levels       []string
	DefaultLevel string

	// StageDelay is the simulated processing time per pipeline stage.
	// Zero disables the delays entirely (tests run with zero).
	StageDelay time.Duration

	// UseCache is forwarded to dataset loads.
	UseCache bool

	// ProfileFile optionally overrides the stage list per analysis level
	// with a TOML pipeline profile.
	ProfileFile string
}

type Service struct {
	datasets  ports.DatasetStore
	knowledge ports.KnowledgeStore
	runs      ports.RunRepository
	opts      Options

	stagesByLevel map[string][]string

	now      func() time.Time
	newRunID func() string
}

func NewService(datasets ports.DatasetStore, knowledge ports.KnowledgeStore, runs ports.RunRepository, opts Options) (*Service, error) {
	if datasets == nil || knowledge == nil {
		return nil, errors.New("dataset and knowledge stores are required")
	}
	if runs == nil {
		return nil, errors.New("run repository is required")
	}
	if opts.ResultsDir == "" {
		return nil, errors.New("results directory is required")
	}
	if len(opts.Levels) == 0 {
		opts.Levels = []string{"basic", "standard", "comprehensive"}
	}
	if opts.DefaultLevel == "" {
		opts.DefaultLevel = "standard"
	}

	stages := defaultStagesByLevel(opts.Levels)
	if opts.ProfileFile != "" {
		profile, err := loadPipelineProfile(opts.ProfileFile)
		if err != nil {
			return nil, errs.Wrap(err, "load pipeline profile")
		}
		applyProfile(stages, profile)
	}

	return &Service{
		datasets:      datasets,
		knowledge:     knowledge,
		runs:          runs,
		opts:          opts,
		stagesByLevel: stages,
		now:           time.Now,
		newRunID:      uuid.NewString,
	}, nil
}

// resolveLevel falls back to the default when the requested level is
// unknown or empty.
func (s *Service) resolveLevel(level string) (string, bool) {
	if level == "" {
		return s.opts.DefaultLevel, true
	}
	for _, known := range s.opts.Levels {
		if level == known {
			return level, true
		}
	}
	return s.opts.DefaultLevel, false
}

// wait sleeps for n stage delays, honoring cancellation.
func (s *Service) wait(ctx context.Context, n int) error {
	if s.opts.StageDelay <= 0 || n <= 0 {
		return nil
	}

	select {
	case <-time.After(time.Duration(n) * s.opts.StageDelay):
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "pipeline interrupted")
	}
}
