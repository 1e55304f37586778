package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/iw2rmb/ghostwrite/editor"
	"github.com/iw2rmb/ghostwrite/internal/logging"
	"github.com/iw2rmb/ghostwrite/suggest"
	"github.com/iw2rmb/ghostwrite/suggest/openai"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Config holds runtime settings for the journal.
//
// APIKey is the key in effect at startup. When APIKeyFile is set the key is
// read from that file instead and reloaded whenever it changes.
type Config struct {
	Model       string
	BaseURL     string
	APIKey      string
	APIKeyFile  string
	MaxTokens   int
	Temperature float64

	Debounce       time.Duration
	RevealInterval time.Duration
	RequestTimeout time.Duration

	Theme    string
	WrapMode string

	LogFile  string
	LogLevel string
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.Model = openai.DefaultModel
	c.MaxTokens = openai.DefaultMaxTokens
	c.Temperature = openai.DefaultTemperature
	c.Debounce = suggest.DefaultDebounce
	c.RevealInterval = editor.DefaultRevealInterval
	c.RequestTimeout = 30 * time.Second
	c.Theme = ThemeAuto
	c.WrapMode = editor.WrapWord.String()
	c.LogLevel = "info"
}

// Load builds a Config from defaults, the JSON file named by -config, the
// environment and args (usually os.Args[1:]). Later sources win.
func Load(args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{}
	cfg.LoadDefaults()

	if path := configPath(args); path != "" {
		if err := parseJSONFile(cfg, path); err != nil {
			return nil, err
		}
	}
	parseEnv(cfg, getenv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if strings.TrimSpace(c.Model) == "" {
		fail("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		fail("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		fail("temperature must be within [0, 2], got %v", c.Temperature)
	}
	if c.Debounce <= 0 {
		fail("debounce must be positive, got %s", c.Debounce)
	}
	if c.RequestTimeout < 0 {
		fail("timeout must not be negative, got %s", c.RequestTimeout)
	}
	switch c.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		fail("unknown theme %q", c.Theme)
	}
	if _, err := editor.ParseWrapMode(c.WrapMode); err != nil {
		fail("%v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		fail("%v", err)
	}

	return result.ErrorOrNil()
}
