package milestones

// Milestone is one actionable step in the composed plan. ToDos is always a
// slice, never a bare string. Parallel marks a milestone that does not block
// on completion of earlier milestones in the list; downstream planners use
// it as a scheduling hint.
type Milestone struct {
	Title    string   `json:"title"`
	Parallel bool     `json:"parallel"`
	ToDos    []string `json:"to_dos"`
	Optional []string `json:"optional,omitempty"`
}
