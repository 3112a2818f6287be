package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"strategy-backend/internal/shared/telemetry"
)

// Task produces one domain's raw output. A non-nil error marks the task
// failed; the error text becomes the result output.
type Task func(ctx context.Context) (string, error)

// Result captures one task's outcome. Output holds the produced text on
// success and the error text on failure.
type Result struct {
	Domain  string `json:"domain"`
	Success bool   `json:"success"`
	Output  string `json:"output"`
}

// Runner executes a set of named tasks concurrently, one goroutine per
// task. Tasks fail independently: an error or panic in one never cancels
// its siblings, and the join waits for all of them. Wall clock is bounded
// by the slowest task.
type Runner struct {
	// Timeout, when positive, bounds each individual task. The default of
	// zero preserves the no-timeout contract: a hung task blocks the group.
	Timeout time.Duration
}

// RunAll runs every task and collects results keyed by task name. It always
// returns one entry per task regardless of individual outcomes.
func (r *Runner) RunAll(ctx context.Context, tasks map[string]Task) map[string]Result {
	results := make(map[string]Result, len(tasks))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, task := range tasks {
		wg.Add(1)
		go func(name string, task Task) {
			defer wg.Done()
			res := r.runOne(ctx, name, task)
			mu.Lock()
			results[name] = res
			mu.Unlock()
		}(name, task)
	}
	wg.Wait()

	for name, res := range results {
		telemetry.Info("runner.task_done", map[string]any{
			"domain":  name,
			"success": res.Success,
		})
	}
	return results
}

func (r *Runner) runOne(ctx context.Context, name string, task Task) (res Result) {
	res = Result{Domain: name}
	defer func() {
		if rec := recover(); rec != nil {
			res.Success = false
			res.Output = fmt.Sprintf("task panicked: %v", rec)
		}
	}()

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	output, err := task(ctx)
	if err != nil {
		res.Success = false
		res.Output = err.Error()
		return res
	}
	res.Success = true
	res.Output = output
	return res
}
