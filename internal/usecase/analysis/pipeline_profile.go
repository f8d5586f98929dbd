package analysis

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// pipelineProfile optionally overrides the stage list per analysis level:
//
//	version = 1
//	[levels.basic]
//	stages = ["retrieve_disease_info", "identify_pathways"]
type pipelineProfile struct {
	Version int                          `toml:"version"`
	Levels  map[string]pipelineLevelSpec `toml:"levels"`
}

type pipelineLevelSpec struct {
	Stages []string `toml:"stages"`
}

var knownStages = map[string]struct{}{
	stageDiseaseInfo: {},
	stageDatasets:    {},
	stageIntegrate:   {},
	stagePathways:    {},
	stageTargets:     {},
	stageDrugs:       {},
}

func loadPipelineProfile(profileFile string) (pipelineProfile, error) {
	path := strings.TrimSpace(profileFile)
	if path == "" {
		return pipelineProfile{}, errors.New("profile file is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return pipelineProfile{}, err
	}

	var profile pipelineProfile
	if err := toml.Unmarshal(raw, &profile); err != nil {
		return pipelineProfile{}, err
	}
	if err := validatePipelineProfile(profile); err != nil {
		return pipelineProfile{}, err
	}
	return profile, nil
}

func validatePipelineProfile(profile pipelineProfile) error {
	if profile.Version != 1 {
		return errors.New("unsupported pipeline profile version: expected version = 1")
	}

	for level, spec := range profile.Levels {
		if len(spec.Stages) == 0 {
			return fmt.Errorf("levels.%s.stages must not be empty", level)
		}
		for _, stage := range spec.Stages {
			if _, ok := knownStages[stage]; !ok {
				return fmt.Errorf("levels.%s references unknown stage %q", level, stage)
			}
		}
	}
	return nil
}

// applyProfile overrides the default stage lists for the levels the
// profile names; other levels keep the full pipeline.
func applyProfile(stages map[string][]string, profile pipelineProfile) {
	for level, spec := range profile.Levels {
		if _, ok := stages[level]; !ok {
			continue
		}
		stages[level] = append([]string(nil), spec.Stages...)
	}
}
