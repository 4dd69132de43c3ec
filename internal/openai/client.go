// Package openai wraps the external text-completion provider. It is the sole
// integration point with the LLM: one call per chat turn, no retries.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/diazdennis/monica-chatbot/internal/chat"
	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

// ErrUpstream is returned for any provider failure (network, auth,
// rate-limit, malformed response). Callers surface a generic failure message;
// retry policy belongs to the infra layer, not here.
var ErrUpstream = errors.New("openai: upstream completion failed")

// fallbackReply covers the rare empty-content completion.
const fallbackReply = "I apologize, I had trouble processing that. Could you try again?"

var tracer = otel.Tracer("monica.internal.openai")

// chatClient is the subset of the OpenAI SDK the gateway uses.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options hold the fixed completion parameters. They are process
// configuration, never request-level.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Client is the completion gateway.
type Client struct {
	client chatClient
	opts   Options
	logger *logging.Logger
}

// New creates a completion gateway backed by the OpenAI API.
func New(apiKey string, opts Options, logger *logging.Logger) *Client {
	return newWithClient(openai.NewClient(apiKey), opts, logger)
}

func newWithClient(client chatClient, opts Options, logger *logging.Logger) *Client {
	if client == nil {
		panic("openai: chat client cannot be nil")
	}
	if opts.Model == "" {
		opts.Model = openai.GPT4
	}
	if opts.Temperature == 0 {
		opts.Temperature = 0.7
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 500
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{client: client, opts: opts, logger: logger}
}

// Complete submits the system prompt plus the caller-supplied history, in
// order, and returns the completion text.
func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []chat.Message) (string, error) {
	ctx, span := tracer.Start(ctx, "openai.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("monica.openai.model", c.opts.Model),
		attribute.Int("monica.openai.history_len", len(messages)),
	)

	formatted := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	formatted = append(formatted, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		formatted = append(formatted, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:            c.opts.Model,
		Messages:         formatted,
		Temperature:      c.opts.Temperature,
		MaxTokens:        c.opts.MaxTokens,
		PresencePenalty:  0.1,
		FrequencyPenalty: 0.1,
	})
	if err != nil {
		span.RecordError(err)
		c.logger.Error("openai completion failed", "error", err, "model", c.opts.Model)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		err := fmt.Errorf("%w: no choices returned", ErrUpstream)
		span.RecordError(err)
		return "", err
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return fallbackReply, nil
	}
	return content, nil
}

// Greet generates a session-opening message by submitting a single synthetic
// user turn.
func (c *Client) Greet(ctx context.Context, systemPrompt string) (string, error) {
	return c.Complete(ctx, systemPrompt, []chat.Message{
		{Role: chat.RoleUser, Content: "Hello"},
	})
}
