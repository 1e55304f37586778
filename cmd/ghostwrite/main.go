package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"

	"github.com/iw2rmb/ghostwrite"
	"github.com/iw2rmb/ghostwrite/editor"
	"github.com/iw2rmb/ghostwrite/internal/config"
	"github.com/iw2rmb/ghostwrite/internal/credential"
	"github.com/iw2rmb/ghostwrite/internal/journal"
	"github.com/iw2rmb/ghostwrite/internal/logging"
	"github.com/iw2rmb/ghostwrite/suggest/openai"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString("ghostwrite: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	cfg, err := config.Load(args, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log, logCloser, err := logging.OpenFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	closers := []io.Closer{logCloser}
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				err = multierror.Append(err, cerr)
			}
		}
	}()

	key := cfg.APIKey
	if cfg.APIKeyFile != "" {
		if key, err = credential.ReadKeyFile(cfg.APIKeyFile); err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("%w: set %s or use -api-key-file", openai.ErrMissingAPIKey, config.EnvOpenAIKey)
	}

	completer := openai.New(openai.Settings{
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		APIKey:      key,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		HTTPClient:  cleanhttp.DefaultPooledClient(),
	})

	wrap, err := editor.ParseWrapMode(cfg.WrapMode)
	if err != nil {
		return err
	}

	dark := cfg.Theme == config.ThemeDark
	if cfg.Theme == config.ThemeAuto {
		dark = lipgloss.HasDarkBackground()
	}

	opt := journal.Options{
		Completer:      completer,
		Debounce:       cfg.Debounce,
		RequestTimeout: cfg.RequestTimeout,
		RevealInterval: cfg.RevealInterval,
		WrapMode:       wrap,
		Dark:           dark,
		Keys:           completer,
		Logger:         log,
	}
	if cfg.APIKeyFile != "" {
		w, err := credential.Watch(cfg.APIKeyFile, key, credential.Options{Logger: log})
		if err != nil {
			return err
		}
		closers = append(closers, w)
		opt.Rotations = w
	}

	log.Info(context.Background(), "starting",
		"version", ghostwrite.Version(),
		"model", cfg.Model,
		"debounce", cfg.Debounce,
		"theme", cfg.Theme,
	)

	p := tea.NewProgram(journal.New(opt), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
