package config

import (
	"flag"
	"fmt"
	"io"
)

// configPath extracts -config (or -c) from args without touching any other
// flag. Parse errors are left for parseFlags to report.
func configPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "")
	fs.StringVar(&path, "c", "", "")
	_ = fs.Parse(filterArgs(args, "-config", "--config", "-c", "--c"))

	return path
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("ghostwrite", flag.ContinueOnError)

	var ignored string
	fs.StringVar(&ignored, "config", "", "JSON config file")
	fs.StringVar(&ignored, "c", "", "JSON config file (short)")

	fs.StringVar(&cfg.Model, "model", cfg.Model, "completion model id")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "completion API base URL")
	fs.StringVar(&cfg.APIKeyFile, "api-key-file", cfg.APIKeyFile, "file holding the API key, reloaded on change")
	fs.IntVar(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "maximum continuation length in tokens")
	fs.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "sampling temperature")
	fs.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet interval before a suggestion is requested")
	fs.DurationVar(&cfg.RevealInterval, "reveal", cfg.RevealInterval, "delay between revealed graphemes (negative reveals instantly)")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request deadline (0 disables)")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "light, dark or auto")
	fs.StringVar(&cfg.WrapMode, "wrap", cfg.WrapMode, "word or grapheme")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	return fs
}

func parseFlags(cfg *Config, args []string) error {
	fs := newFlagSet(cfg)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("parse flags: unexpected argument %q", fs.Arg(0))
	}
	return nil
}

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	cfg := &Config{}
	cfg.LoadDefaults()
	fs := newFlagSet(cfg)
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage: ghostwrite [flags]")
	fs.PrintDefaults()
}

// filterArgs keeps only the allowed flags and their values.
func filterArgs(args []string, allowed ...string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		keep[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if name, _, ok := cutFlag(arg); ok {
			if _, ok := keep[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}
		if _, ok := keep[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

func cutFlag(arg string) (name, value string, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", "", false
	}
	for i := 1; i < len(arg); i++ {
		if arg[i] == '=' {
			return arg[:i], arg[i+1:], true
		}
	}
	return "", "", false
}
