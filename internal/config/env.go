package config

import "strings"

const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvAPIKey    = "GHOSTWRITE_API_KEY"
)

func parseEnv(cfg *Config, getenv func(string) string) {
	for _, name := range []string{EnvOpenAIKey, EnvAPIKey} {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			cfg.APIKey = v
		}
	}
}
