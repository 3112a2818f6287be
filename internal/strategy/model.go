package strategy

import (
	"time"

	"strategy-backend/internal/milestones"
	"strategy-backend/internal/runner"
)

// Version stamps every composed strategy document.
const Version = "v1"

// Degraded-document keys used when the strategy call misbehaves.
const (
	KeyRawOutput = "raw_output"
	KeyError     = "error"
)

const (
	StatusCompleted = "completed"
	StatusDegraded  = "degraded"
)

// Run records one compose run: per-domain producer outcomes, the milestones
// derived from the analyses, and the strategy document that was persisted.
// The strategy document itself is the flat JSON written to the sink; the
// run record is operational history around it.
type Run struct {
	ID         string                   `json:"id"`
	Status     string                   `json:"status"`
	Tasks      map[string]runner.Result `json:"tasks"`
	Milestones []milestones.Milestone   `json:"milestones"`
	Strategy   map[string]any           `json:"strategy"`
	CreatedAt  time.Time                `json:"createdAt"`
}
