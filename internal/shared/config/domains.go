package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"strategy-backend/internal/analyses"
)

// DomainSpec describes one analysis domain: how its producer is invoked and
// where its output lands.
type DomainSpec struct {
	Name string `yaml:"name"`
	// Command is the external producer invocation for script mode.
	Command []string `yaml:"command"`
	// PromptFile holds the domain assistant's instructions for assistant mode.
	PromptFile string `yaml:"prompt_file"`
	// AnalysisFile is where the producer writes its raw analysis text.
	AnalysisFile string `yaml:"analysis_file"`
}

type domainsFile struct {
	Domains []DomainSpec `yaml:"domains"`
}

// LoadDomains reads domain definitions from the optional YAML file at path
// and fills in conventional defaults for anything left unspecified. A
// missing file yields the pure defaults; a malformed file is an error.
func LoadDomains(path, analysisDir string) ([]DomainSpec, error) {
	specs := defaultDomains(analysisDir)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return specs, nil
		}
		return nil, fmt.Errorf("read domains file %s: %w", path, err)
	}

	var parsed domainsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse domains file %s: %w", path, err)
	}

	byName := make(map[string]int, len(specs))
	for i, spec := range specs {
		byName[spec.Name] = i
	}
	for _, override := range parsed.Domains {
		idx, ok := byName[override.Name]
		if !ok {
			return nil, fmt.Errorf("unknown domain %q in %s", override.Name, path)
		}
		if len(override.Command) > 0 {
			specs[idx].Command = override.Command
		}
		if override.PromptFile != "" {
			specs[idx].PromptFile = override.PromptFile
		}
		if override.AnalysisFile != "" {
			specs[idx].AnalysisFile = override.AnalysisFile
		}
	}
	return specs, nil
}

func defaultDomains(analysisDir string) []DomainSpec {
	specs := make([]DomainSpec, 0, len(analyses.AllDomains))
	for _, name := range analyses.AllDomains {
		specs = append(specs, DomainSpec{
			Name:         name,
			PromptFile:   filepath.Join(analysisDir, name+"_prompt.txt"),
			AnalysisFile: filepath.Join(analysisDir, name+"_analysis.txt"),
		})
	}
	return specs
}
