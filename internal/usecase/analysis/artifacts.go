package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AaronRai123/REASON/internal/errs"
)

// writeArtifacts persists the machine-readable result and the
// human-readable summary under the results directory.
func (s *Service) writeArtifacts(_ context.Context, resultID string, result *Result) error {
	if err := os.MkdirAll(s.opts.ResultsDir, 0o755); err != nil {
		return errs.Wrap(err, "create results directory")
	}

	resultPath := filepath.Join(s.opts.ResultsDir, resultID+".json")
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errs.Wrap(err, "marshal result")
	}
	if err := os.WriteFile(resultPath, raw, 0o644); err != nil {
		return errs.Wrap(err, "write result file")
	}

	summaryPath := filepath.Join(s.opts.ResultsDir, resultID+"_summary.txt")
	if err := os.WriteFile(summaryPath, []byte(renderSummary(result)), 0o644); err != nil {
		return errs.Wrap(err, "write summary file")
	}

	result.ResultPath = resultPath
	result.SummaryPath = summaryPath
	return nil
}

func renderSummary(result *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "REASON Analysis Summary for %s\n", result.Disease)
	fmt.Fprintf(&b, "Date: %s\n", result.Timestamp)
	fmt.Fprintf(&b, "Analysis Level: %s\n\n", result.AnalysisLevel)

	b.WriteString("Key Findings:\n")
	b.WriteString("1. Affected Pathways:\n")
	for _, pathway := range result.Findings.Pathways {
		fmt.Fprintf(&b, "   - %s\n", pathway)
	}
	b.WriteString("\n2. Therapeutic Targets:\n")
	for _, target := range result.Findings.Targets {
		fmt.Fprintf(&b, "   - %s\n", target)
	}
	b.WriteString("\n3. Potential Drug Candidates:\n")
	for _, drug := range result.Findings.Drugs {
		fmt.Fprintf(&b, "   - %s\n", drug)
	}

	return b.String()
}
