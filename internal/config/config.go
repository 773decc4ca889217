// Package config handles reading and writing .wdyf/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .wdyf/config.yaml.
type Config struct {
	Version    int              `yaml:"version"`
	Summary    SummaryConfig    `yaml:"summary"`
	Server     ServerConfig     `yaml:"server"`
	Recognizer RecognizerConfig `yaml:"recognizer"`
	Questions  QuestionsConfig  `yaml:"questions"`
}

// SummaryConfig controls how the TUI reaches the summarization proxy.
type SummaryConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ServerConfig controls the `wdyf serve` summarization proxy.
type ServerConfig struct {
	Listen    string `yaml:"listen"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// RecognizerConfig points at an external speech-recognition command.
// The command must write one JSON event per line on stdout, each event
// carrying the complete hypothesis list for the session so far.
type RecognizerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// QuestionsConfig optionally overrides the built-in question lists.
// Empty slices mean the defaults apply.
type QuestionsConfig struct {
	Initial   []string `yaml:"initial"`
	Deepening []string `yaml:"deepening"`
}

const configDir = ".wdyf"
const configFile = "config.yaml"

// DefaultDir returns the directory that holds .wdyf/, normally the
// user's home directory. Falls back to the current directory when the
// home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// ReadConfig reads .wdyf/config.yaml from the given base directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .wdyf/config.yaml in the given base directory.
// Creates the .wdyf/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Summary: SummaryConfig{
			Endpoint:       "http://127.0.0.1:8477/summarize",
			TimeoutSeconds: 30,
		},
		Server: ServerConfig{
			Listen:    "127.0.0.1:8477",
			Model:     "gemini-2.5-flash",
			APIKeyEnv: "GEMINI_API_KEY",
		},
	}
}
