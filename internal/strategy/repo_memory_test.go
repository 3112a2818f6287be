package strategy

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func seedRuns(t *testing.T, repo *MemoryRepo, n int) []Run {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := make([]Run, 0, n)
	for i := 0; i < n; i++ {
		run := Run{
			ID:        fmt.Sprintf("run-%02d", i),
			Status:    StatusCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), run); err != nil {
			t.Fatalf("create: %v", err)
		}
		runs = append(runs, run)
	}
	return runs
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := NewMemoryRepo()
	seeded := seedRuns(t, repo, 3)

	got, err := repo.GetByID(context.Background(), seeded[1].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != seeded[1].ID {
		t.Fatalf("got %q", got.ID)
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	seedRuns(t, repo, 5)

	runs, err := repo.List(context.Background(), 3, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len = %d", len(runs))
	}
	if runs[0].ID != "run-04" || runs[1].ID != "run-03" || runs[2].ID != "run-02" {
		t.Fatalf("order = %q %q %q", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	rest, err := repo.List(context.Background(), 10, 3)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(rest) != 2 || rest[0].ID != "run-01" {
		t.Fatalf("offset page = %#v", rest)
	}

	empty, err := repo.List(context.Background(), 10, 99)
	if err != nil || len(empty) != 0 {
		t.Fatalf("out-of-range offset = %#v, %v", empty, err)
	}
}

func TestMemoryRepoListTiebreakByID(t *testing.T) {
	repo := NewMemoryRepo()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "c", "b"} {
		if err := repo.Create(context.Background(), Run{ID: id, CreatedAt: ts}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	runs, err := repo.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if runs[0].ID != "c" || runs[1].ID != "b" || runs[2].ID != "a" {
		t.Fatalf("order = %#v", runs)
	}
}
