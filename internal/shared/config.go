package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Server      ServerConfig      `toml:"server"`
	Limits      LimitsConfig      `toml:"limits"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Gemini  GeminiConfig  `toml:"gemini"`
	YouTube YouTubeConfig `toml:"youtube"`
}

// GeminiConfig contains Gemini API credentials and model preferences.
// Models are tried in order; the first that answers wins.
type GeminiConfig struct {
	APIKey   string   `toml:"api_key"`
	Endpoint string   `toml:"endpoint"`
	Models   []string `toml:"models"`
}

// YouTubeConfig contains YouTube Data API credentials and the base URL of
// the transcript proxy service.
type YouTubeConfig struct {
	APIKey        string `toml:"api_key"`
	TranscriptURL string `toml:"transcript_url"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LimitsConfig contains processing policy limits. BatchMax and PlaylistMax
// cap request sizes; Workers and RatePerSecond bound batch fan-out to keep
// the downstream services within their rate limits.
type LimitsConfig struct {
	BatchMax           int     `toml:"batch_max"`
	PlaylistMax        int     `toml:"playlist_max"`
	Workers            int     `toml:"workers"`
	RatePerSecond      float64 `toml:"rate_per_second"`
	MaxTranscriptChars int     `toml:"max_transcript_chars"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config.applyDefaults()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyDefaults()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays credentials from the environment. Values set in the
// environment take precedence over the config file.
func (c *Config) ApplyEnv() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Credentials.Gemini.APIKey = key
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		c.Credentials.YouTube.APIKey = key
	}
	if base := os.Getenv("TRANSCRIPT_SERVICE_URL"); base != "" {
		c.Credentials.YouTube.TranscriptURL = base
	}
}

func (c *Config) applyDefaults() {
	if c.Limits.BatchMax <= 0 {
		c.Limits.BatchMax = 10
	}
	if c.Limits.PlaylistMax <= 0 {
		c.Limits.PlaylistMax = 20
	}
	if c.Limits.Workers <= 0 {
		c.Limits.Workers = 4
	}
	if c.Limits.Workers > 10 {
		c.Limits.Workers = 10
	}
	if c.Limits.RatePerSecond <= 0 {
		c.Limits.RatePerSecond = 2.0
	}
	if c.Limits.MaxTranscriptChars <= 0 {
		c.Limits.MaxTranscriptChars = 120000
	}
}
