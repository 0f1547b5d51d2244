package llm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskPlan TaskType = "career_plan"
)

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	LogCalls    bool
	Endpoint    string // empty uses the provider default
	Model       string
	TimeoutMs   int // 0 leaves timing to the transport
	Temperature *float64
}

// fileConfig is the on-disk TOML layout.
type fileConfig struct {
	LLM struct {
		LogCalls    *bool    `toml:"log_calls"`
		Endpoint    string   `toml:"endpoint"`
		Model       string   `toml:"model"`
		TimeoutMs   *int     `toml:"timeout_ms"`
		Temperature *float64 `toml:"temperature"`
	} `toml:"llm"`
}

// DefaultConfig returns an LLMConfig with sensible defaults.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Model: "gemini-3-flash-preview",
	}
}

// ConfigPath returns the config file location: $PATHWISE_CONFIG or
// ~/.pathwise/config.toml.
func ConfigPath() string {
	if v := os.Getenv("PATHWISE_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathwise", "config.toml")
}

// LoadConfig reads defaults, then the TOML config file if present, then
// environment variables. A missing file is not an error; a malformed one is.
func LoadConfig() (LLMConfig, error) {
	cfg := DefaultConfig()

	if path := ConfigPath(); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("PATHWISE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PATHWISE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PATHWISE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PATHWISE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PATHWISE_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = &f
		}
	}

	return cfg, nil
}

func applyFile(cfg *LLMConfig, path string) error {
	var fc fileConfig
	_, err := toml.DecodeFile(path, &fc)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if fc.LLM.LogCalls != nil {
		cfg.LogCalls = *fc.LLM.LogCalls
	}
	if fc.LLM.Endpoint != "" {
		cfg.Endpoint = fc.LLM.Endpoint
	}
	if fc.LLM.Model != "" {
		cfg.Model = fc.LLM.Model
	}
	if fc.LLM.TimeoutMs != nil && *fc.LLM.TimeoutMs >= 0 {
		cfg.TimeoutMs = *fc.LLM.TimeoutMs
	}
	if fc.LLM.Temperature != nil {
		cfg.Temperature = fc.LLM.Temperature
	}
	return nil
}
