// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lyrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/danielhkuo/lyric-match/cliparse"
)

// SystemMessage is sent ahead of every prompt
const SystemMessage = "You are a helpful assistant."

// ErrUpstreamGeneration is returned when the text generation service fails
// or answers without usable content
var ErrUpstreamGeneration = errors.New("upstream lyric generation failed")

// Generator produces a lyric snippet for a song title
type Generator interface {
	GenerateSnippet(ctx context.Context, title string) (string, error)
}

// Client calls an OpenAI-compatible chat completions endpoint
type Client struct {
	api   openai.Client
	model string
}

// NewClient builds a Client from config. httpClient may be nil.
func NewClient(cfg cliparse.Config, httpClient *http.Client) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.LLMBaseURL), "/") + "/"

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLMAPIKey),
		option.WithBaseURL(baseURL),
		// Failures surface to the caller immediately
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.SiteName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.SiteName))
	}

	return &Client{
		api:   openai.NewClient(opts...),
		model: cfg.LLMModel,
	}
}

// GenerateSnippet asks the model for a few lines of the song and returns the
// trimmed text of the first choice
func (c *Client) GenerateSnippet(ctx context.Context, title string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemMessage),
			openai.UserMessage(Prompt(title)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamGeneration, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrUpstreamGeneration)
	}

	snippet := strings.TrimSpace(completion.Choices[0].Message.Content)
	if snippet == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstreamGeneration)
	}

	return snippet, nil
}
