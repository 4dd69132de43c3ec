// Package chat implements the turn pipeline: guardrail check, completion,
// output validation, CTA classification, and transcript generation.
package chat

import (
	"context"

	"github.com/diazdennis/monica-chatbot/internal/guardrails"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether the role is one the API accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is a single entry in a conversation. The caller supplies the full
// ordered history on every call; the server keeps no conversation state.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CtaKind identifies the follow-up action the widget should offer.
type CtaKind string

const (
	CtaBloodworkInfo CtaKind = "bloodwork_info"
	CtaBookConsult   CtaKind = "book_consult"
	CtaEmergency     CtaKind = "emergency"
	CtaNone          CtaKind = "none"
)

// CtaAction is the structured follow-up hint returned with every turn.
type CtaAction struct {
	Type  CtaKind `json:"type"`
	Label string  `json:"label,omitempty"`
	URL   string  `json:"url,omitempty"`
}

// TurnResult is the unit returned to the widget for one chat turn.
type TurnResult struct {
	Message            string           `json:"message"`
	SessionID          string           `json:"sessionId"`
	Cta                CtaAction        `json:"cta"`
	GuardrailTriggered *guardrails.Kind `json:"guardrailTriggered"`
}

// TranscriptResult bundles the rendered transcript with its AI summary.
type TranscriptResult struct {
	Summary     string `json:"summary"`
	Transcript  string `json:"transcript"`
	GeneratedAt string `json:"generatedAt"`
	SessionID   string `json:"sessionId"`
}

// Completer is the completion gateway boundary. Exactly one implementation
// talks to the provider; tests substitute a stub.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error)
	Greet(ctx context.Context, systemPrompt string) (string, error)
}
