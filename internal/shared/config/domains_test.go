package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"strategy-backend/internal/analyses"
)

func TestLoadDomainsMissingFileYieldsDefaults(t *testing.T) {
	specs, err := LoadDomains(filepath.Join(t.TempDir(), "composer.yaml"), "prompts")
	if err != nil {
		t.Fatalf("LoadDomains: %v", err)
	}
	if len(specs) != len(analyses.AllDomains) {
		t.Fatalf("specs = %#v", specs)
	}
	for i, name := range analyses.AllDomains {
		spec := specs[i]
		if spec.Name != name {
			t.Fatalf("spec %d name = %q, want %q", i, spec.Name, name)
		}
		if spec.PromptFile != filepath.Join("prompts", name+"_prompt.txt") {
			t.Fatalf("%s prompt file = %q", name, spec.PromptFile)
		}
		if spec.AnalysisFile != filepath.Join("prompts", name+"_analysis.txt") {
			t.Fatalf("%s analysis file = %q", name, spec.AnalysisFile)
		}
		if len(spec.Command) != 0 {
			t.Fatalf("%s default command = %#v", name, spec.Command)
		}
	}
}

func TestLoadDomainsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.yaml")
	content := `domains:
  - name: employment
    command: ["python3", "employment_agent.py"]
    analysis_file: out/employment.txt
  - name: social
    prompt_file: custom/social_prompt.txt
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	specs, err := LoadDomains(path, "prompts")
	if err != nil {
		t.Fatalf("LoadDomains: %v", err)
	}

	byName := make(map[string]DomainSpec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	emp := byName["employment"]
	if len(emp.Command) != 2 || emp.Command[0] != "python3" {
		t.Fatalf("employment command = %#v", emp.Command)
	}
	if emp.AnalysisFile != "out/employment.txt" {
		t.Fatalf("employment analysis file = %q", emp.AnalysisFile)
	}
	if emp.PromptFile != filepath.Join("prompts", "employment_prompt.txt") {
		t.Fatalf("employment prompt file should keep its default, got %q", emp.PromptFile)
	}

	if byName["social"].PromptFile != "custom/social_prompt.txt" {
		t.Fatalf("social prompt file = %q", byName["social"].PromptFile)
	}
	if byName["integration"].AnalysisFile != filepath.Join("prompts", "integration_analysis.txt") {
		t.Fatalf("integration spec must stay default: %#v", byName["integration"])
	}
}

func TestLoadDomainsUnknownDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.yaml")
	content := `domains:
  - name: astrology
    command: ["true"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadDomains(path, "prompts")
	if err == nil || !strings.Contains(err.Error(), "astrology") {
		t.Fatalf("expected unknown-domain error, got %v", err)
	}
}

func TestLoadDomainsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.yaml")
	if err := os.WriteFile(path, []byte("domains: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadDomains(path, "prompts"); err == nil {
		t.Fatalf("expected parse error")
	}
}
