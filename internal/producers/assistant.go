package producers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"strategy-backend/internal/extract"
	"strategy-backend/internal/llm"
	"strategy-backend/internal/shared/telemetry"
)

// Assistant produces a domain analysis in-process: it loads the participant
// profile, sends it to the domain assistant, and writes the raw response to
// the domain's analysis file.
type Assistant struct {
	Name         string
	Instructions string
	ProfilePath  string
	AnalysisFile string
	LLM          llm.Client
}

// NewAssistant reads the domain's prompt file and constructs the producer.
// A missing prompt file is a startup error for this domain only.
func NewAssistant(domain, promptFile, profilePath, analysisFile string, client llm.Client) (*Assistant, error) {
	if client == nil {
		return nil, fmt.Errorf("domain %s: llm client is required", domain)
	}
	instructions, err := os.ReadFile(promptFile)
	if err != nil {
		return nil, fmt.Errorf("domain %s: read prompt file: %w", domain, err)
	}
	return &Assistant{
		Name:         domain,
		Instructions: string(instructions),
		ProfilePath:  profilePath,
		AnalysisFile: analysisFile,
		LLM:          client,
	}, nil
}

// Domain returns the domain name.
func (a *Assistant) Domain() string { return a.Name }

// Produce invokes the domain assistant and persists its raw response.
func (a *Assistant) Produce(ctx context.Context) (string, error) {
	profile, err := extract.ProfileText(a.ProfilePath)
	if err != nil {
		return "", err
	}

	response, err := a.LLM.Invoke(ctx, llm.Request{
		System:  a.Instructions,
		Content: llm.BuildAnalysisContent(a.Name, profile),
	})
	if err != nil {
		return "", fmt.Errorf("domain %s: assistant call: %w", a.Name, err)
	}

	if err := os.MkdirAll(filepath.Dir(a.AnalysisFile), 0o755); err != nil {
		return "", fmt.Errorf("domain %s: prepare analysis dir: %w", a.Name, err)
	}
	if err := os.WriteFile(a.AnalysisFile, []byte(response), 0o644); err != nil {
		return "", fmt.Errorf("domain %s: write analysis file: %w", a.Name, err)
	}

	telemetry.Info("producer.assistant_done", map[string]any{
		"domain": a.Name,
		"file":   a.AnalysisFile,
		"bytes":  len(response),
	})
	return response, nil
}
