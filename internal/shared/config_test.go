package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Limits.BatchMax != 10 {
		t.Errorf("BatchMax = %d, want 10", config.Limits.BatchMax)
	}
	if config.Limits.PlaylistMax != 20 {
		t.Errorf("PlaylistMax = %d, want 20", config.Limits.PlaylistMax)
	}
	if config.Limits.Workers != 4 {
		t.Errorf("Workers = %d, want 4", config.Limits.Workers)
	}
	if config.Server.Port != 5000 {
		t.Errorf("Port = %d, want 5000", config.Server.Port)
	}
	if len(config.Credentials.Gemini.Models) == 0 {
		t.Error("default config should carry a Gemini model fallback list")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[credentials.gemini]
api_key = "test-key"
models = ["gemini-2.5-flash"]

[credentials.youtube]
api_key = "yt-key"
transcript_url = "http://localhost:9999"

[server]
host = "0.0.0.0"
port = 8088

[limits]
batch_max = 5
playlist_max = 15
workers = 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Credentials.Gemini.APIKey != "test-key" {
		t.Errorf("gemini key = %q", config.Credentials.Gemini.APIKey)
	}
	if config.Limits.BatchMax != 5 || config.Limits.PlaylistMax != 15 {
		t.Errorf("limits = %d/%d, want 5/15", config.Limits.BatchMax, config.Limits.PlaylistMax)
	}
	if config.Limits.RatePerSecond != 2.0 {
		t.Errorf("unset rate should default to 2.0, got %v", config.Limits.RatePerSecond)
	}
	if config.Server.Port != 8088 {
		t.Errorf("port = %d, want 8088", config.Server.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "env-gemini")
	t.Setenv("YOUTUBE_API_KEY", "env-youtube")

	config := DefaultConfig()
	config.ApplyEnv()

	if config.Credentials.Gemini.APIKey != "env-gemini" {
		t.Errorf("gemini key = %q, want env override", config.Credentials.Gemini.APIKey)
	}
	if config.Credentials.YouTube.APIKey != "env-youtube" {
		t.Errorf("youtube key = %q, want env override", config.Credentials.YouTube.APIKey)
	}
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("CreateConfigFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when config file already exists")
	}
}
