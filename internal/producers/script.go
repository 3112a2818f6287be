package producers

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"strategy-backend/internal/shared/telemetry"
)

// Script runs an external analysis command for one domain and captures its
// output. The command is expected to write the domain's analysis file
// itself; stdout is returned for the run report, stderr becomes the error
// text on non-zero exit.
type Script struct {
	Name    string
	Command []string
}

// NewScript validates the command and constructs a script producer.
func NewScript(domain string, command []string) (*Script, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("domain %s: producer command is required", domain)
	}
	return &Script{Name: domain, Command: command}, nil
}

// Domain returns the domain name.
func (s *Script) Domain() string { return s.Name }

// Produce runs the command to completion and returns its stdout.
func (s *Script) Produce(ctx context.Context) (string, error) {
	telemetry.Info("producer.script_start", map[string]any{
		"domain":  s.Name,
		"command": strings.Join(s.Command, " "),
	})

	cmd := exec.CommandContext(ctx, s.Command[0], s.Command[1:]...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s exited with code %d: %s", s.Command[0], exitErr.ExitCode(), msg)
		}
		return "", fmt.Errorf("run %s: %s", s.Command[0], msg)
	}

	return stdout.String(), nil
}
