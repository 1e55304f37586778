// Package openai implements suggest.Completer with the OpenAI chat
// completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/iw2rmb/ghostwrite/suggest"
)

const (
	DefaultModel       = "gpt-4o-mini"
	DefaultMaxTokens   = 4
	DefaultTemperature = 0.7

	SystemPrompt = "You are an AI writing assistant helping to continue journal entries. " +
		"Your task is to provide short, contextual continuations to the user's input, " +
		"focusing on completing the current thought or sentence without repeating any part of the existing text."
)

// ErrMissingAPIKey is returned when no API key has been configured.
var ErrMissingAPIKey = errors.New("openai api key missing")

var _ suggest.Completer = (*Completer)(nil)

// UserPrompt embeds the full entry in the continuation request.
func UserPrompt(entry string) string {
	return "Continue the following journal entry. Provide only the next few words to complete " +
		"the current thought or sentence. Do not repeat any part of the existing text:\n\n" +
		"Journal entry: " + entry
}

type Settings struct {
	Model       string
	BaseURL     string
	APIKey      string
	MaxTokens   int
	Temperature float64

	// HTTPClient defaults to http.DefaultClient inside the SDK.
	HTTPClient *http.Client
}

// Completer asks a chat model for the next few words of an entry.
//
// The API key can be swapped while requests are running.
type Completer struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64

	mu  sync.RWMutex
	key string
}

func New(s Settings) *Completer {
	if s.Model == "" {
		s.Model = DefaultModel
	}
	if s.MaxTokens <= 0 {
		s.MaxTokens = DefaultMaxTokens
	}

	// Failures surface to the user right away; the SDK must not retry.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	if s.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(s.HTTPClient))
	}

	return &Completer{
		client:      openai.NewClient(opts...),
		model:       s.Model,
		maxTokens:   int64(s.MaxTokens),
		temperature: s.Temperature,
		key:         s.APIKey,
	}
}

// SetAPIKey replaces the key used by subsequent requests.
func (c *Completer) SetAPIKey(key string) {
	c.mu.Lock()
	c.key = key
	c.mu.Unlock()
}

func (c *Completer) apiKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key
}

func (c *Completer) Complete(ctx context.Context, entry string) (string, error) {
	key := c.apiKey()
	if key == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(UserPrompt(entry)),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	}, option.WithAPIKey(key))
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
