package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/infrastructure/persistence/sqlite/model"
	"github.com/AaronRai123/REASON/internal/ports"
)

// RunRepository persists the registry of pipeline invocations.
type RunRepository struct {
	db *gorm.DB
}

var _ ports.RunRepository = (*RunRepository)(nil)

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Record(ctx context.Context, run ports.AnalysisRun) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}

	if strings.TrimSpace(run.RunID) == "" {
		return errors.New("run id is required")
	}
	if strings.TrimSpace(run.Disease) == "" {
		return errors.New("disease is required")
	}

	row := model.AnalysisRun{
		RunID:       run.RunID,
		Disease:     run.Disease,
		Level:       run.Level,
		Kind:        run.Kind,
		Status:      run.Status,
		ResultPath:  run.ResultPath,
		SummaryPath: run.SummaryPath,
		StartedAt:   run.StartedAt,
		FinishedAt:  run.FinishedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert analysis run")
	}
	return nil
}

func (r *RunRepository) Get(ctx context.Context, runID string) (ports.AnalysisRun, error) {
	if ctx == nil {
		return ports.AnalysisRun{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.AnalysisRun{}, errs.Wrap(err, "check context")
	}

	trimmed := strings.TrimSpace(runID)
	if trimmed == "" {
		return ports.AnalysisRun{}, errors.New("run id is required")
	}

	var row model.AnalysisRun
	if err := r.db.WithContext(ctx).Where("run_id = ?", trimmed).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AnalysisRun{}, ports.ErrRunNotFound
		}
		return ports.AnalysisRun{}, errs.Wrap(err, "query analysis run")
	}

	return mapRun(row), nil
}

func (r *RunRepository) List(ctx context.Context, limit int) ([]ports.AnalysisRun, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	query := r.db.WithContext(ctx).Model(&model.AnalysisRun{}).Order("started_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.AnalysisRun
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query analysis runs")
	}

	runs := make([]ports.AnalysisRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, mapRun(row))
	}
	return runs, nil
}

func mapRun(row model.AnalysisRun) ports.AnalysisRun {
	return ports.AnalysisRun{
		RunID:       row.RunID,
		Disease:     row.Disease,
		Level:       row.Level,
		Kind:        row.Kind,
		Status:      row.Status,
		ResultPath:  row.ResultPath,
		SummaryPath: row.SummaryPath,
		StartedAt:   row.StartedAt,
		FinishedAt:  row.FinishedAt,
	}
}
