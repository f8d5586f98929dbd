package ports

import (
	"context"
	"errors"
)

var ErrRunNotFound = errors.New("analysis run not found")

// AnalysisRun is one recorded invocation of the analysis pipeline.
type AnalysisRun struct {
	RunID       string
	Disease     string
	Level       string
	Kind        string
	Status      string
	ResultPath  string
	SummaryPath string
	StartedAt   string
	FinishedAt  string
}

// RunRepository records pipeline invocations in the run registry.
type RunRepository interface {
	Record(ctx context.Context, run AnalysisRun) error
	Get(ctx context.Context, runID string) (AnalysisRun, error)
	List(ctx context.Context, limit int) ([]AnalysisRun, error)
}
