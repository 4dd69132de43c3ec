package chat

import (
	"context"
	"strings"
	"time"
)

const (
	transcriptRuleHeavy = "═══════════════════════════════════════════════════════"
	transcriptRuleLight = "───────────────────────────────────────────────────────"

	// summaryTooShort is returned without any provider call.
	summaryTooShort = "Conversation too short to summarize."
	// summaryUnavailable replaces a failed summary; transcript delivery must
	// not block on the summarizer.
	summaryUnavailable = "Summary unavailable. Please review the transcript above."
)

// FormatTranscript renders the conversation as newline-delimited text: a
// banner with the clinic name, the generation timestamp, then each message as
// a [Speaker] header followed by its content, blank line between entries.
func FormatTranscript(clinicName string, messages []Message, generatedAt time.Time) string {
	lines := []string{
		transcriptRuleHeavy,
		"  CONVERSATION TRANSCRIPT - " + clinicName,
		transcriptRuleHeavy,
		"Generated: " + generatedAt.Format("1/2/2006, 3:04:05 PM"),
		transcriptRuleLight,
		"",
	}

	for i, msg := range messages {
		speaker := "You"
		if msg.Role == RoleAssistant {
			speaker = "Monica (AI Assistant)"
		}
		lines = append(lines, "["+speaker+"]", msg.Content)
		if i < len(messages)-1 {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "", transcriptRuleLight, "")
	return strings.Join(lines, "\n")
}

// summarize asks the completion gateway for a short summary of the
// conversation. Failures are swallowed and replaced with a fixed fallback;
// this is the one place upstream errors are deliberately not propagated.
func (s *Service) summarize(ctx context.Context, messages []Message) string {
	if len(messages) < 2 {
		return summaryTooShort
	}

	summary, err := s.completer.Complete(ctx, summarizerSystemPrompt, []Message{
		{Role: RoleUser, Content: summaryPrompt(messages)},
	})
	if err != nil {
		s.logger.Error("failed to generate summary", "error", err)
		s.metrics.ObserveUpstreamError("openai")
		return summaryUnavailable
	}
	return summary
}
