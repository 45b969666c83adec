// Package completion wraps the generative-text capability used to normalize
// colloquial address queries. The client is an explicit dependency with an
// explicit unconfigured state; callers check Configured before issuing
// requests.
package completion

import (
	"context"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "claude-haiku-4-5-20251001"

// Completion parameters: near-deterministic output, bounded response size.
const (
	temperature = 0.05
	maxTokens   = 400
)

// Client issues a single completion request and returns the raw response text.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Configured() bool
}

// sdkClient implements Client using the official SDK.
type sdkClient struct {
	client sdk.Client
	model  string
}

// NewClient builds a Client for the given credential and model. An empty
// apiKey yields an unconfigured client that never attempts a request.
func NewClient(apiKey, model string) Client {
	if model == "" {
		model = DefaultModel
	}
	if apiKey == "" {
		return &unconfigured{}
	}
	return &sdkClient{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (c *sdkClient) Configured() bool { return true }

func (c *sdkClient) Complete(ctx context.Context, system, user string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   maxTokens,
		Temperature: sdk.Float(temperature),
		System:      []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion: create message: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

// unconfigured is the no-credential state. Complete must never be reached;
// returning an error keeps the failure visible if a caller skips the
// Configured check.
type unconfigured struct{}

func (u *unconfigured) Configured() bool { return false }

func (u *unconfigured) Complete(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("completion: client not configured")
}
