package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diazdennis/monica-chatbot/internal/chat"
)

type stubChatClient struct {
	resp openai.ChatCompletionResponse
	err  error
	last openai.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.last = req
	return s.resp, s.err
}

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestCompleteFormatsRequest(t *testing.T) {
	stub := &stubChatClient{resp: completionResponse("  Hello there!  ")}
	c := newWithClient(stub, Options{Model: "gpt-4"}, nil)

	got, err := c.Complete(context.Background(), "system prompt", []chat.Message{
		{Role: chat.RoleUser, Content: "Hi"},
		{Role: chat.RoleAssistant, Content: "Hello"},
		{Role: chat.RoleUser, Content: "Tell me more"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", got)

	// System prompt first, then caller history verbatim, in order.
	require.Len(t, stub.last.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, stub.last.Messages[0].Role)
	assert.Equal(t, "system prompt", stub.last.Messages[0].Content)
	assert.Equal(t, "Hi", stub.last.Messages[1].Content)
	assert.Equal(t, "Hello", stub.last.Messages[2].Content)
	assert.Equal(t, "Tell me more", stub.last.Messages[3].Content)

	assert.Equal(t, "gpt-4", stub.last.Model)
	assert.InDelta(t, 0.7, stub.last.Temperature, 0.001)
	assert.Equal(t, 500, stub.last.MaxTokens)
}

func TestCompleteUpstreamError(t *testing.T) {
	stub := &stubChatClient{err: errors.New("rate limited")}
	c := newWithClient(stub, Options{}, nil)

	_, err := c.Complete(context.Background(), "sys", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCompleteNoChoices(t *testing.T) {
	stub := &stubChatClient{resp: openai.ChatCompletionResponse{}}
	c := newWithClient(stub, Options{}, nil)

	_, err := c.Complete(context.Background(), "sys", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCompleteEmptyContentFallback(t *testing.T) {
	stub := &stubChatClient{resp: completionResponse("")}
	c := newWithClient(stub, Options{}, nil)

	got, err := c.Complete(context.Background(), "sys", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, got)
}

func TestGreetSubmitsSyntheticHello(t *testing.T) {
	stub := &stubChatClient{resp: completionResponse("Welcome!")}
	c := newWithClient(stub, Options{}, nil)

	got, err := c.Greet(context.Background(), "sys")
	require.NoError(t, err)
	assert.Equal(t, "Welcome!", got)

	require.Len(t, stub.last.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleUser, stub.last.Messages[1].Role)
	assert.Equal(t, "Hello", stub.last.Messages[1].Content)
}
