package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
	"github.com/AaronRai123/REASON/internal/ports"
)

const (
	stageDiseaseInfo = "retrieve_disease_info"
	stageDatasets    = "load_datasets"
	stageIntegrate   = "integrate_omics"
	stagePathways    = "identify_pathways"
	stageTargets     = "identify_targets"
	stageDrugs       = "predict_drugs"
)

// pipelineStages is the canonical stage order. Every level runs the full
// pipeline unless a profile trims it.
var pipelineStages = []string{
	stageDiseaseInfo,
	stageDatasets,
	stageIntegrate,
	stagePathways,
	stageTargets,
	stageDrugs,
}

// datasetTypes loaded during the load_datasets stage.
var datasetTypes = []string{"gene_expression", "proteomics", "pathways"}

type AnalyzeInput struct {
	Disease     string
	DataSources []string
	Level       string
}

type Findings struct {
	Pathways []string `json:"pathways"`
	Targets  []string `json:"targets"`
	Drugs    []string `json:"drugs"`
}

type Result struct {
	RunID         string   `json:"run_id"`
	Disease       string   `json:"disease"`
	Timestamp     string   `json:"timestamp"`
	AnalysisLevel string   `json:"analysis_level"`
	DataSources   []string `json:"data_sources"`
	Findings      Findings `json:"results"`

	Simulation      *SimulationResult `json:"simulation,omitempty"`
	ValidationScore *float64          `json:"validation_score,omitempty"`

	ResultPath  string `json:"-"`
	SummaryPath string `json:"-"`
}

func defaultStagesByLevel(levels []string) map[string][]string {
	stages := make(map[string][]string, len(levels))
	for _, level := range levels {
		stages[level] = append([]string(nil), pipelineStages...)
	}
	return stages
}

// AnalyzeDisease runs the staged pipeline, writes the result artifacts,
// and records the run in the registry.
func (s *Service) AnalyzeDisease(ctx context.Context, input AnalyzeInput) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if strings.TrimSpace(input.Disease) == "" {
		return nil, errors.New("disease name is required")
	}

	logCtx := logging.WithAttrs(ctx,
		slog.String("component", "analysis.service"),
		slog.String("disease", input.Disease),
	)

	level, known := s.resolveLevel(input.Level)
	if !known {
		logging.Warn(logCtx, "invalid analysis level, using default",
			slog.String("requested", input.Level), slog.String("level", level))
	}

	started := s.now()
	timestamp := started.Format("20060102_150405")
	resultID := fmt.Sprintf("%s_cycle1_%s", strings.ReplaceAll(input.Disease, " ", "_"), timestamp)

	result := &Result{
		RunID:         s.newRunID(),
		Disease:       input.Disease,
		Timestamp:     timestamp,
		AnalysisLevel: level,
		DataSources:   input.DataSources,
	}
	if result.DataSources == nil {
		result.DataSources = []string{}
	}

	logging.Info(logCtx, "starting analysis", slog.String("level", level))

	for _, stage := range s.stagesByLevel[level] {
		if err := s.runStage(logCtx, stage, input.Disease, result); err != nil {
			return nil, errs.Wrapf(err, "stage %q", stage)
		}
	}

	if err := s.writeArtifacts(logCtx, resultID, result); err != nil {
		return nil, errs.Wrap(err, "write result artifacts")
	}

	run := ports.AnalysisRun{
		RunID:       result.RunID,
		Disease:     input.Disease,
		Level:       level,
		Kind:        "analysis",
		Status:      "completed",
		ResultPath:  result.ResultPath,
		SummaryPath: result.SummaryPath,
		StartedAt:   started.UTC().Format(time.RFC3339),
		FinishedAt:  s.now().UTC().Format(time.RFC3339),
	}
	if err := s.runs.Record(ctx, run); err != nil {
		return nil, errs.Wrap(err, "record analysis run")
	}

	logging.Info(logCtx, "analysis complete",
		slog.String("result_file", result.ResultPath),
		slog.String("summary_file", result.SummaryPath),
	)

	return result, nil
}

func (s *Service) runStage(ctx context.Context, stage, disease string, result *Result) error {
	switch stage {
	case stageDiseaseInfo:
		logging.Info(ctx, "retrieving disease information")
		if _, err := s.knowledge.Disease(ctx, disease); err != nil {
			return err
		}
		return s.wait(ctx, 1)

	case stageDatasets:
		logging.Info(ctx, "loading and preprocessing datasets")
		for _, dataType := range datasetTypes {
			if _, err := s.datasets.Load(ctx, dataType, disease, s.opts.UseCache); err != nil {
				return err
			}
		}
		return s.wait(ctx, 2)

	case stageIntegrate:
		logging.Info(ctx, "integrating multi-omics data")
		return s.wait(ctx, 2)

	case stagePathways:
		logging.Info(ctx, "identifying affected pathways")
		result.Findings.Pathways = []string{"inflammatory_response", "mitochondrial_dysfunction", "protein_degradation"}
		return s.wait(ctx, 1)

	case stageTargets:
		logging.Info(ctx, "identifying therapeutic targets")
		result.Findings.Targets = []string{"GENE1", "GENE2", "PROTEIN1"}
		return s.wait(ctx, 2)

	case stageDrugs:
		logging.Info(ctx, "predicting potential drug candidates")
		result.Findings.Drugs = []string{"COMPOUND1", "COMPOUND2", "REPURPOSED_DRUG1"}
		return s.wait(ctx, 2)

	default:
		return fmt.Errorf("unknown pipeline stage %q", stage)
	}
}
