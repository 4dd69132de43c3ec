package chat

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/diazdennis/monica-chatbot/internal/clinic"
	"github.com/diazdennis/monica-chatbot/internal/guardrails"
	"github.com/diazdennis/monica-chatbot/internal/observability/metrics"
	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

var tracer = otel.Tracer("monica.internal.chat")

// ErrEmptyConversation is returned when a turn arrives with no messages.
var ErrEmptyConversation = errors.New("chat: conversation must contain at least one message")

// Service orchestrates a chat turn: input guardrail, completion, output
// validation, CTA classification. It holds no per-session state; every turn
// is a function of its inputs plus one provider call.
type Service struct {
	completer Completer
	profile   clinic.Profile
	metrics   *metrics.ChatMetrics
	logger    *logging.Logger
	now       func() time.Time
}

// NewService creates the turn orchestrator.
func NewService(completer Completer, profile clinic.Profile, m *metrics.ChatMetrics, logger *logging.Logger) *Service {
	if completer == nil {
		panic("chat: completer cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		completer: completer,
		profile:   profile,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessTurn runs one chat turn. The last message in the conversation is the
// new user utterance.
func (s *Service) ProcessTurn(ctx context.Context, sessionID string, messages []Message) (*TurnResult, error) {
	ctx, span := tracer.Start(ctx, "chat.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("monica.session_id", sessionID),
		attribute.Int("monica.history_len", len(messages)),
	)

	if len(messages) == 0 {
		return nil, ErrEmptyConversation
	}
	last := messages[len(messages)-1]

	// Input guardrail runs before any external call. A trigger is a normal
	// response carrying the canned safety payload, not an error.
	if result := guardrails.EvaluateInput(last.Content); result.Triggered {
		kind := result.Kind
		span.SetAttributes(attribute.String("monica.guardrail", string(kind)))
		s.logger.Warn("input guardrail triggered",
			"session_id", sessionID,
			"kind", kind,
		)
		s.metrics.ObserveGuardrail(string(kind))
		s.metrics.ObserveTurn("guardrail")

		return &TurnResult{
			Message:            result.Response,
			SessionID:          sessionID,
			Cta:                guardrailCTA(kind),
			GuardrailTriggered: &kind,
		}, nil
	}

	start := s.now()
	reply, err := s.completer.Complete(ctx, SystemPrompt(s.profile), messages)
	s.metrics.ObserveCompletionLatency(s.now().Sub(start).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveUpstreamError("openai")
		s.metrics.ObserveTurn("upstream_error")
		return nil, err
	}

	// Output guardrail: a reply that solicits PHI is never delivered. The
	// canned redirect replaces it; no regeneration call is made.
	if scan := guardrails.ScanOutput(reply); !scan.Safe {
		kind := guardrails.KindPHIRequest
		s.logger.Warn("assistant reply solicited PHI, substituting canned redirect",
			"session_id", sessionID,
			"reasons", scan.Reasons,
		)
		s.metrics.ObserveGuardrail(string(kind))
		s.metrics.ObserveTurn("phi_blocked")

		return &TurnResult{
			Message:            guardrails.PHISubstituteResponse,
			SessionID:          sessionID,
			Cta:                CtaAction{Type: CtaBookConsult, Label: labelBookConsult},
			GuardrailTriggered: &kind,
		}, nil
	}

	s.metrics.ObserveTurn("ok")
	return &TurnResult{
		Message:   reply,
		SessionID: sessionID,
		Cta:       ClassifyCTA(reply),
	}, nil
}

// Greeting generates the session-opening message. There is no user input yet,
// so no input guardrail runs; the CTA is fixed to none.
func (s *Service) Greeting(ctx context.Context, sessionID string) (*TurnResult, error) {
	ctx, span := tracer.Start(ctx, "chat.greeting")
	defer span.End()
	span.SetAttributes(attribute.String("monica.session_id", sessionID))

	greeting, err := s.completer.Greet(ctx, SystemPrompt(s.profile))
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveUpstreamError("openai")
		return nil, err
	}

	return &TurnResult{
		Message:   greeting,
		SessionID: sessionID,
		Cta:       CtaAction{Type: CtaNone},
	}, nil
}

// Transcript renders the conversation and attaches an AI summary.
func (s *Service) Transcript(ctx context.Context, sessionID string, messages []Message) *TranscriptResult {
	ctx, span := tracer.Start(ctx, "chat.transcript")
	defer span.End()
	span.SetAttributes(
		attribute.String("monica.session_id", sessionID),
		attribute.Int("monica.history_len", len(messages)),
	)

	generatedAt := s.now().UTC()
	return &TranscriptResult{
		Summary:     s.summarize(ctx, messages),
		Transcript:  FormatTranscript(s.profile.Name, messages, generatedAt),
		GeneratedAt: generatedAt.Format(time.RFC3339),
		SessionID:   sessionID,
	}
}
