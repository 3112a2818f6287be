package producers

import (
	"context"
	"strings"
	"testing"
)

func TestScriptCapturesStdout(t *testing.T) {
	p, err := NewScript("employment", []string{"/bin/sh", "-c", "echo hello"})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	out, err := p.Produce(context.Background())
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestScriptNonZeroExitReportsStderr(t *testing.T) {
	p, err := NewScript("social", []string{"/bin/sh", "-c", "echo boom >&2; exit 3"})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	_, err = p.Produce(context.Background())
	if err == nil {
		t.Fatalf("expected error on non-zero exit")
	}
	if !strings.Contains(err.Error(), "code 3") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error = %v", err)
	}
}

func TestScriptMissingBinary(t *testing.T) {
	p, err := NewScript("integration", []string{"/nonexistent/analysis-tool"})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if _, err := p.Produce(context.Background()); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}

func TestNewScriptRequiresCommand(t *testing.T) {
	if _, err := NewScript("employment", nil); err == nil {
		t.Fatalf("expected error for empty command")
	}
}

func TestFailedProducerReturnsStartupError(t *testing.T) {
	f := Failed{Name: "social", Err: context.DeadlineExceeded}
	if f.Domain() != "social" {
		t.Fatalf("domain = %q", f.Domain())
	}
	if _, err := f.Produce(context.Background()); err != context.DeadlineExceeded {
		t.Fatalf("err = %v", err)
	}
}
