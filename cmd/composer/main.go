package main

// One-shot strategy composition:
//   go run ./cmd/composer

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"strategy-backend/internal/bootstrap"
	"strategy-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Creating strategy from domain analyses...")
	run, err := app.StrategyService.Compose(ctx)
	if err != nil {
		log.Printf("record compose run: %v", err)
	}

	for domain, res := range run.Tasks {
		status := "Success"
		if !res.Success {
			status = "Failed"
		}
		log.Printf("%s: %s", domain, status)
	}
	log.Printf("run %s finished status=%s milestones=%d", run.ID, run.Status, len(run.Milestones))
}
