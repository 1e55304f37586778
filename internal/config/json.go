package config

import (
	"fmt"
	"os"
	"time"

	"github.com/iw2rmb/ghostwrite/internal/encoding/jsonx"
)

// JSONConfig is the file DTO. Pointer fields distinguish "absent" from a
// zero value so a partial file only touches what it names.
type JSONConfig struct {
	Model          *string   `json:"model,omitempty"`
	BaseURL        *string   `json:"base_url,omitempty"`
	APIKeyFile     *string   `json:"api_key_file,omitempty"`
	MaxTokens      *int      `json:"max_tokens,omitempty"`
	Temperature    *float64  `json:"temperature,omitempty"`
	Debounce       *Duration `json:"debounce,omitempty"`
	RevealInterval *Duration `json:"reveal_interval,omitempty"`
	RequestTimeout *Duration `json:"request_timeout,omitempty"`
	Theme          *string   `json:"theme,omitempty"`
	WrapMode       *string   `json:"wrap_mode,omitempty"`
	LogFile        *string   `json:"log_file,omitempty"`
	LogLevel       *string   `json:"log_level,omitempty"`
}

// The API key itself is never read from the file; use the environment or
// api_key_file.
func parseJSONFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JSONConfig
	if err := jsonx.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	jc.apply(cfg)
	return nil
}

func (jc JSONConfig) apply(cfg *Config) {
	setString(&cfg.Model, jc.Model)
	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.APIKeyFile, jc.APIKeyFile)
	if jc.MaxTokens != nil {
		cfg.MaxTokens = *jc.MaxTokens
	}
	if jc.Temperature != nil {
		cfg.Temperature = *jc.Temperature
	}
	setDuration(&cfg.Debounce, jc.Debounce)
	setDuration(&cfg.RevealInterval, jc.RevealInterval)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setString(&cfg.Theme, jc.Theme)
	setString(&cfg.WrapMode, jc.WrapMode)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
