package strategy

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"strategy-backend/internal/analyses"
	"strategy-backend/internal/llm"
	"strategy-backend/internal/milestones"
	"strategy-backend/internal/producers"
	"strategy-backend/internal/runner"
	"strategy-backend/internal/shared/metrics"
	"strategy-backend/internal/shared/telemetry"
)

// Service composes strategies: it fans the domain producers out, loads and
// parses whatever analysis files are on disk, derives the milestone plan,
// consults the strategy assistant, stamps metadata, and persists the
// result. A compose run always completes and always attempts to persist,
// even when every collaborator failed.
type Service struct {
	Producers []producers.Producer
	Runner    *runner.Runner
	Loader    *analyses.Loader
	LLM       llm.Client
	// Instructions holds the strategy assistant's standing prompt.
	Instructions string
	Sink         Sink
	Repo         Repo
}

// Compose executes one full run and returns its record. The returned error
// covers only run-history persistence; the strategy flow itself degrades
// instead of failing.
func (s *Service) Compose(ctx context.Context) (Run, error) {
	started := time.Now()
	metrics.IncRunStarted()

	results := s.runProducers(ctx)
	docs := s.Loader.LoadAll(ctx)
	plan := milestones.Extract(docs)

	telemetry.Info("compose.milestones", map[string]any{
		"count": len(plan),
	})

	doc := s.determineStrategy(ctx, docs)
	degraded := hasDegradedShape(doc)

	// Metadata wins over anything the assistant produced under these keys.
	doc["strategy_version"] = Version
	doc["created_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.Sink.Write(ctx, doc); err != nil {
		telemetry.Error("compose.persist_failed", map[string]any{
			"error": err.Error(),
		})
	}

	status := StatusCompleted
	if degraded {
		status = StatusDegraded
		metrics.IncRunDegraded()
	}

	run := Run{
		ID:         uuid.NewString(),
		Status:     status,
		Tasks:      results,
		Milestones: plan,
		Strategy:   doc,
		CreatedAt:  time.Now().UTC(),
	}
	if run.Milestones == nil {
		run.Milestones = []milestones.Milestone{}
	}

	var repoErr error
	if s.Repo != nil {
		repoErr = s.Repo.Create(ctx, run)
		if repoErr != nil {
			telemetry.Error("compose.record_failed", map[string]any{
				"run_id": run.ID,
				"error":  repoErr.Error(),
			})
		}
	}

	metrics.IncRunCompleted()
	metrics.ObserveRunDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	return run, repoErr
}

func (s *Service) runProducers(ctx context.Context) map[string]runner.Result {
	tasks := make(map[string]runner.Task, len(s.Producers))
	for _, p := range s.Producers {
		tasks[p.Domain()] = p.Produce
	}

	r := s.Runner
	if r == nil {
		r = &runner.Runner{}
	}
	results := r.RunAll(ctx, tasks)

	for domain, res := range results {
		if !res.Success {
			metrics.IncProducerFailed()
			telemetry.Error("compose.producer_failed", map[string]any{
				"domain": domain,
				"output": res.Output,
			})
		}
	}
	return results
}

// determineStrategy consults the strategy assistant over the combined
// analyses. A failed call degrades to {"error": ...}; unparseable output
// degrades to {"raw_output": ...}. It never fails the run.
func (s *Service) determineStrategy(ctx context.Context, docs analyses.Documents) map[string]any {
	payload, err := json.Marshal(docs)
	if err != nil {
		return map[string]any{KeyError: err.Error()}
	}

	output, err := s.LLM.Invoke(ctx, llm.Request{
		System:  s.Instructions,
		Content: llm.BuildStrategyContent(string(payload)),
	})
	if err != nil {
		telemetry.Error("compose.strategy_call_failed", map[string]any{
			"error": err.Error(),
		})
		return map[string]any{KeyError: err.Error()}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(output), &doc); err != nil || doc == nil {
		telemetry.Warn("compose.strategy_not_json", map[string]any{
			"bytes": len(output),
		})
		return map[string]any{KeyRawOutput: output}
	}
	return doc
}

func hasDegradedShape(doc map[string]any) bool {
	if _, ok := doc[KeyError]; ok {
		return true
	}
	_, ok := doc[KeyRawOutput]
	return ok
}
