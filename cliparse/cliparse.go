package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	DefaultPort        = 8000
	DefaultDatabaseURL = "lyricmatch.db"
	DefaultLLMBaseURL  = "https://openrouter.ai/api/v1"
	DefaultLLMModel    = "deepseek/deepseek-r1:free"
	DefaultSiteName    = "Lyric Match"
	DefaultCORSOrigin  = "http://localhost:3000"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Text generation (OpenAI-compatible endpoint)
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	SiteURL    string
	SiteName   string

	CORSOrigin string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("lyric-match", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres DSN)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed browser origin")

	// Text generation
	fs.StringVar(&cfg.LLMAPIKey, "api-key", "", "LLM API key (prefer env)")
	fs.StringVar(&cfg.LLMBaseURL, "llm-url", "", "OpenAI-compatible base URL")
	fs.StringVar(&cfg.LLMModel, "model", "", "Model identifier")
	fs.StringVar(&cfg.SiteURL, "site-url", "", "Value for the HTTP-Referer header")
	fs.StringVar(&cfg.SiteName, "site-name", "", "Value for the X-Title header")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	cfg.DatabaseURL = fallback(cfg.DatabaseURL, "DATABASE_URL", DefaultDatabaseURL)
	cfg.DatabaseType = fallback(cfg.DatabaseType, "DATABASE_TYPE", inferDatabaseType(cfg.DatabaseURL))
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	cfg.LLMAPIKey = fallback(cfg.LLMAPIKey, "OPENROUTER_API_KEY", "")
	if cfg.LLMAPIKey == "" {
		return Config{}, errors.New("OPENROUTER_API_KEY required (use -api-key or env)")
	}

	cfg.LLMBaseURL = fallback(cfg.LLMBaseURL, "LLM_BASE_URL", DefaultLLMBaseURL)
	cfg.LLMModel = fallback(cfg.LLMModel, "LLM_MODEL", DefaultLLMModel)
	cfg.SiteURL = fallback(cfg.SiteURL, "LLM_SITE_URL", "")
	cfg.SiteName = fallback(cfg.SiteName, "LLM_SITE_NAME", DefaultSiteName)
	cfg.CORSOrigin = fallback(cfg.CORSOrigin, "CORS_ORIGIN", DefaultCORSOrigin)

	return cfg, nil
}

// inferDatabaseType picks postgres for postgres:// URLs, sqlite otherwise
func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}

// fallback returns the flag value, then the env value, then def
func fallback(flagValue, envKey, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}
