// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: SQLite path or PostgreSQL DSN (default: lyricmatch.db)
  - DatabaseType: sqlite or postgres (default: postgres for postgres:// or
    postgresql:// URLs, sqlite otherwise)
  - LLMAPIKey: API key for the text generation service (required)
  - LLMBaseURL: OpenAI-compatible base URL (default: OpenRouter)
  - LLMModel: Model identifier (default: deepseek/deepseek-r1:free)
  - SiteURL, SiteName: Optional attribution headers sent with each completion
  - CORSOrigin: Allowed browser origin (default: http://localhost:3000)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-api-key      LLM API key
	-llm-url      LLM base URL
	-model        Model identifier
	-site-url     HTTP-Referer header value
	-site-name    X-Title header value
	-cors-origin  Allowed origin

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	OPENROUTER_API_KEY → -api-key
	LLM_BASE_URL       → -llm-url
	LLM_MODEL          → -model
	LLM_SITE_URL       → -site-url
	LLM_SITE_NAME      → -site-name
	CORS_ORIGIN        → -cors-origin

CLI flags take precedence over environment variables. main loads a .env file
into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - OPENROUTER_API_KEY is missing
  - PORT is not a number
  - DATABASE_TYPE is not sqlite or postgres
*/
package cliparse
