package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Parses TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[tmdb]
api_key = "abc123"
language = "ko-KR"
region = "KR"

[database]
path = "./data/app.db"
max_open_conns = 4

[client]
rate_limit = 5.0
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if config.TMDB.APIKey != "abc123" {
			t.Errorf("unexpected api key: %q", config.TMDB.APIKey)
		}
		if config.TMDB.Language != "ko-KR" {
			t.Errorf("unexpected language: %q", config.TMDB.Language)
		}
		if config.Database.Path != "./data/app.db" || config.Database.MaxOpenConns != 4 {
			t.Errorf("unexpected database config: %+v", config.Database)
		}
		if config.Client.RateLimit != 5.0 {
			t.Errorf("unexpected rate limit: %v", config.Client.RateLimit)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("Invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		os.WriteFile(path, []byte("[tmdb\napi_key ="), 0644)

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.TMDB.Language == "" {
		t.Error("embedded default should set a language")
	}
	if config.Database.Path == "" {
		t.Error("embedded default should set a database path")
	}
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("Creates From Embedded Example", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("created file should parse: %v", err)
		}
		if config.TMDB.Language == "" {
			t.Error("created file should carry defaults")
		}
	})

	t.Run("Refuses To Overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		os.WriteFile(path, []byte("existing"), 0644)

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error for existing file")
		}
	})
}
