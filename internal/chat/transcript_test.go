package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTranscript(t *testing.T) {
	generatedAt := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)
	out := FormatTranscript("Primal Health", []Message{
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleAssistant, Content: "Hello"},
	}, generatedAt)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 12)

	assert.Equal(t, transcriptRuleHeavy, lines[0])
	assert.Equal(t, "  CONVERSATION TRANSCRIPT - Primal Health", lines[1])
	assert.Equal(t, transcriptRuleHeavy, lines[2])
	assert.Equal(t, "Generated: 3/14/2024, 3:09:26 PM", lines[3])
	assert.Equal(t, transcriptRuleLight, lines[4])
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "[You]", lines[6])
	assert.Equal(t, "Hi", lines[7])
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "[Monica (AI Assistant)]", lines[9])
	assert.Equal(t, "Hello", lines[10])
}

func TestFormatTranscriptTrailingRule(t *testing.T) {
	out := FormatTranscript("Primal Health", []Message{{Role: RoleUser, Content: "Hi"}}, time.Now())
	assert.True(t, strings.HasSuffix(out, transcriptRuleLight+"\n"))
}

func TestSummarizeTooShort(t *testing.T) {
	stub := &stubCompleter{reply: "should not be called"}
	svc := newTestService(stub)

	summary := svc.summarize(context.Background(), []Message{{Role: RoleUser, Content: "Hi"}})
	assert.Equal(t, summaryTooShort, summary)
	assert.Zero(t, stub.calls, "summarizer must not call the gateway for a 1-message history")
}

func TestSummarizeSuccess(t *testing.T) {
	stub := &stubCompleter{reply: "The visitor asked about bloodwork and was offered a consultation."}
	svc := newTestService(stub)

	summary := svc.summarize(context.Background(), []Message{
		{Role: RoleUser, Content: "Tell me about bloodwork"},
		{Role: RoleAssistant, Content: "Happy to! Our panels cover 40+ markers."},
	})
	assert.Equal(t, stub.reply, summary)
	assert.Equal(t, 1, stub.calls)

	// The conversation is rendered as a single user turn with speaker labels.
	require.Len(t, stub.lastMsgs, 1)
	assert.Equal(t, RoleUser, stub.lastMsgs[0].Role)
	assert.Contains(t, stub.lastMsgs[0].Content, "User: Tell me about bloodwork")
	assert.Contains(t, stub.lastMsgs[0].Content, "Monica: Happy to! Our panels cover 40+ markers.")
	assert.Equal(t, summarizerSystemPrompt, stub.lastPrompt)
}

func TestSummarizeFailureSwallowed(t *testing.T) {
	stub := &stubCompleter{err: errors.New("provider down")}
	svc := newTestService(stub)

	summary := svc.summarize(context.Background(), []Message{
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleAssistant, Content: "Hello"},
	})
	assert.Equal(t, summaryUnavailable, summary)
}

func TestTranscriptResult(t *testing.T) {
	stub := &stubCompleter{reply: "Short chat about services."}
	svc := newTestService(stub)

	result := svc.Transcript(context.Background(), "sess-t", []Message{
		{Role: RoleUser, Content: "Hi"},
		{Role: RoleAssistant, Content: "Hello"},
	})

	assert.Equal(t, "sess-t", result.SessionID)
	assert.Equal(t, "Short chat about services.", result.Summary)
	assert.Contains(t, result.Transcript, "[You]")
	assert.Contains(t, result.Transcript, "[Monica (AI Assistant)]")

	_, err := time.Parse(time.RFC3339, result.GeneratedAt)
	assert.NoError(t, err)
}
