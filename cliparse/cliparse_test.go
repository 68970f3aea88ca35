// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "test/model")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.LLMModel != "test/model" {
		t.Errorf("expected model from env, got %s", cfg.LLMModel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OPENROUTER_API_KEY", "sk-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db", "-api-key", "sk-cli"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.LLMAPIKey != "sk-cli" {
		t.Errorf("CLI should override env: expected sk-cli, got %s", cfg.LLMAPIKey)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "LLM_BASE_URL", "LLM_MODEL", "CORS_ORIGIN"} {
		t.Setenv(k, "")
	}
	t.Setenv("OPENROUTER_API_KEY", "sk-test")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseURL != DefaultDatabaseURL {
		t.Errorf("expected default database %s, got %s", DefaultDatabaseURL, cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.LLMBaseURL != DefaultLLMBaseURL {
		t.Errorf("expected default base URL, got %s", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != DefaultLLMModel {
		t.Errorf("expected default model, got %s", cfg.LLMModel)
	}
	if cfg.CORSOrigin != DefaultCORSOrigin {
		t.Errorf("expected default CORS origin, got %s", cfg.CORSOrigin)
	}
}

func TestParseFlags_DatabaseTypeFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		dbType string
		args   []string
		want   string
	}{
		{name: "postgres scheme", url: "postgres://u:p@localhost/lyrics", want: DatabasePostgres},
		{name: "postgresql scheme", url: "postgresql://localhost/lyrics", want: DatabasePostgres},
		{name: "sqlite path", url: "scores.db", want: DatabaseSQLite},
		{name: "sqlite url", url: "sqlite:///scores.db", want: DatabaseSQLite},
		{name: "explicit env wins", url: "postgres://localhost/lyrics", dbType: "sqlite", want: DatabaseSQLite},
		{name: "flag url", args: []string{"-d", "postgres://localhost/lyrics"}, want: DatabasePostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENROUTER_API_KEY", "sk-test")
			t.Setenv("DATABASE_URL", tt.url)
			t.Setenv("DATABASE_TYPE", tt.dbType)

			cfg, err := ParseFlags(tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.DatabaseType != tt.want {
				t.Errorf("expected %s, got %s", tt.want, cfg.DatabaseType)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing api key",
			env:  map[string]string{"OPENROUTER_API_KEY": ""},
		},
		{
			name: "invalid port",
			env:  map[string]string{"PORT": "abc", "OPENROUTER_API_KEY": "sk-test"},
		},
		{
			name: "unknown database type",
			env:  map[string]string{"OPENROUTER_API_KEY": "sk-test"},
			args: []string{"-t", "mysql"},
		},
		{
			name: "unknown flag",
			env:  map[string]string{"OPENROUTER_API_KEY": "sk-test"},
			args: []string{"-nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
