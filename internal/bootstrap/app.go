package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"strategy-backend/internal/analyses"
	"strategy-backend/internal/llm"
	openai "strategy-backend/internal/llm/openai"
	"strategy-backend/internal/producers"
	"strategy-backend/internal/runner"
	"strategy-backend/internal/shared/config"
	"strategy-backend/internal/shared/server"
	"strategy-backend/internal/shared/storage/db"
	"strategy-backend/internal/shared/telemetry"
	"strategy-backend/internal/strategy"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	RunsRepo        strategy.Repo
	StrategyService *strategy.Service
	StrategyHandler *strategy.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var runsRepo strategy.Repo
	if sqlDB != nil {
		runsRepo = &strategy.PGRepo{DB: sqlDB}
	} else {
		runsRepo = strategy.NewMemoryRepo()
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	domains, err := config.LoadDomains(cfg.DomainsFile, cfg.AnalysisDir)
	if err != nil {
		return nil, err
	}

	sink, err := buildSink(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &strategy.Service{
		Producers:    buildProducers(cfg, domains, llmClient),
		Runner:       &runner.Runner{Timeout: cfg.ProducerTimeout},
		Loader:       analyses.NewLoader(analysisFiles(domains)),
		LLM:          llmClient,
		Instructions: loadStrategyInstructions(cfg.StrategyPromptFile),
		Sink:         sink,
		Repo:         runsRepo,
	}

	strategyPath := cfg.StrategyPath
	if cfg.StrategySink != "file" {
		strategyPath = ""
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		RunsRepo:        runsRepo,
		StrategyService: svc,
		StrategyHandler: strategy.NewHandler(svc, strategyPath),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		StrategyHandler: app.StrategyHandler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory run history")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory run history: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}
	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// buildProducers constructs one producer per domain. A misconfigured domain
// gets a Failed producer so its startup error is recorded at run time
// without touching sibling domains.
func buildProducers(cfg config.Config, domains []config.DomainSpec, client llm.Client) []producers.Producer {
	out := make([]producers.Producer, 0, len(domains))
	for _, spec := range domains {
		var p producers.Producer
		var err error
		switch cfg.ProducerMode {
		case "assistant":
			p, err = producers.NewAssistant(spec.Name, spec.PromptFile, cfg.ProfilePath, spec.AnalysisFile, client)
		default:
			p, err = producers.NewScript(spec.Name, spec.Command)
		}
		if err != nil {
			telemetry.Error("bootstrap.producer_misconfigured", map[string]any{
				"domain": spec.Name,
				"error":  err.Error(),
			})
			p = producers.Failed{Name: spec.Name, Err: err}
		}
		out = append(out, p)
	}
	return out
}

func analysisFiles(domains []config.DomainSpec) map[string]string {
	files := make(map[string]string, len(domains))
	for _, spec := range domains {
		files[spec.Name] = spec.AnalysisFile
	}
	return files
}

func buildSink(ctx context.Context, cfg config.Config) (strategy.Sink, error) {
	switch cfg.StrategySink {
	case "s3":
		return strategy.NewS3Sink(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, "strategy.json")
	default:
		return &strategy.FileSink{Path: cfg.StrategyPath}, nil
	}
}

func loadStrategyInstructions(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		telemetry.Warn("bootstrap.strategy_prompt_missing", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return ""
	}
	return string(raw)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
