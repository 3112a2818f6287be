package strategy

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"strategy-backend/internal/milestones"
	"strategy-backend/internal/runner"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new run record.
func (r *PGRepo) Create(ctx context.Context, run Run) error {
	const query = `
INSERT INTO runs (id, status, tasks, milestones, strategy, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	tasks, err := marshalJSONB(run.Tasks)
	if err != nil {
		return err
	}
	ms, err := marshalJSONB(run.Milestones)
	if err != nil {
		return err
	}
	strat, err := marshalJSONB(run.Strategy)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		run.ID,
		run.Status,
		tasks,
		ms,
		strat,
		run.CreatedAt,
	)
	return err
}

// GetByID returns a run by ID.
func (r *PGRepo) GetByID(ctx context.Context, runID string) (Run, error) {
	const query = `
SELECT id, status, tasks, milestones, strategy, created_at
FROM runs
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	return run, err
}

// List returns runs ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Run, error) {
	const query = `
SELECT id, status, tasks, milestones, strategy, created_at
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if runs == nil {
		runs = []Run{}
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var tasks, ms, strat sql.NullString
	if err := row.Scan(&run.ID, &run.Status, &tasks, &ms, &strat, &run.CreatedAt); err != nil {
		return Run{}, err
	}
	if tasks.Valid && tasks.String != "" {
		if err := json.Unmarshal([]byte(tasks.String), &run.Tasks); err != nil {
			return Run{}, err
		}
	}
	if ms.Valid && ms.String != "" {
		if err := json.Unmarshal([]byte(ms.String), &run.Milestones); err != nil {
			return Run{}, err
		}
	}
	if strat.Valid && strat.String != "" {
		if err := json.Unmarshal([]byte(strat.String), &run.Strategy); err != nil {
			return Run{}, err
		}
	}
	if run.Tasks == nil {
		run.Tasks = map[string]runner.Result{}
	}
	if run.Milestones == nil {
		run.Milestones = []milestones.Milestone{}
	}
	return run, nil
}

func marshalJSONB(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(payload), nil
}

var _ Repo = (*PGRepo)(nil)
