// Package producers implements the per-domain analysis producers. A
// producer generates one domain's raw analysis text and leaves it at the
// domain's analysis file; the composer later reads whatever is on disk,
// regardless of producer outcomes.
package producers

import "context"

// Producer generates one domain's analysis. The returned string is the
// producer's textual output (stdout for scripts, the assistant response for
// in-process producers); a non-nil error marks the producer failed without
// affecting sibling domains.
type Producer interface {
	Domain() string
	Produce(ctx context.Context) (string, error)
}

// Failed is a producer that was misconfigured at startup. Its invocation
// aborts immediately with the configuration error; sibling domains proceed.
type Failed struct {
	Name string
	Err  error
}

// Domain returns the domain name.
func (f Failed) Domain() string { return f.Name }

// Produce returns the startup error.
func (f Failed) Produce(ctx context.Context) (string, error) {
	_ = ctx
	return "", f.Err
}
