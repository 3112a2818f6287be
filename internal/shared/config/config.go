package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string

	// ProducerMode selects how domain analyses are produced: "script" runs
	// the configured external command per domain, "assistant" calls the
	// domain assistant in-process and writes the analysis file itself.
	ProducerMode string
	ProfilePath  string
	AnalysisDir  string
	DomainsFile  string

	// ProducerTimeout bounds each producer task when positive. Zero keeps
	// the historical behavior: no timeout, a hung producer blocks the run.
	ProducerTimeout time.Duration

	LLMProvider string
	LLMModel    string
	// StrategyPromptFile holds the strategy assistant's standing
	// instructions for the strategy-determination call.
	StrategyPromptFile string

	StrategySink string
	StrategyPath string
	AWSRegion    string
	S3Bucket     string
	S3Prefix     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ProducerMode:       normalizeProducerMode(getEnv("PRODUCER_MODE", "script")),
		ProfilePath:        getEnv("PROFILE_PATH", "user_profile.json"),
		AnalysisDir:        getEnv("ANALYSIS_DIR", "prompts"),
		DomainsFile:        getEnv("DOMAINS_FILE", "composer.yaml"),
		ProducerTimeout:    envSeconds("PRODUCER_TIMEOUT_SECONDS", 0),
		LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
		LLMModel:           getEnv("LLM_MODEL", ""),
		StrategyPromptFile: getEnv("STRATEGY_PROMPT_FILE", "prompts/strategy_prompt.txt"),
		StrategySink:       normalizeSinkType(getEnv("STRATEGY_SINK", "file")),
		StrategyPath:       getEnv("STRATEGY_PATH", "strategy/strategy.json"),
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProducerMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "assistant":
		return "assistant"
	default:
		return "script"
	}
}

func normalizeSinkType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "file"
	}
}
