package chat

import (
	"strings"

	"github.com/diazdennis/monica-chatbot/internal/guardrails"
)

// CTA button labels shown by the widget.
const (
	labelBloodwork   = "Learn About Bloodwork"
	labelBookConsult = "Book a Consultation"
	labelEmergency   = "Call 911"
)

// ctaKeywords maps response keywords to a CTA kind, scanned in priority
// order. The first category with any keyword hit wins; there is no scoring.
var ctaKeywords = []struct {
	kind     CtaKind
	label    string
	keywords []string
}{
	{CtaBloodworkInfo, labelBloodwork, []string{"bloodwork", "lab", "panel", "testing"}},
	{CtaBookConsult, labelBookConsult, []string{"consult", "book", "schedule", "appointment"}},
}

// ClassifyCTA derives a follow-up action from the assistant's response text.
// Classification is a pure function of the response alone.
func ClassifyCTA(response string) CtaAction {
	lower := strings.ToLower(response)
	for _, cat := range ctaKeywords {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return CtaAction{Type: cat.kind, Label: cat.label}
			}
		}
	}
	return CtaAction{Type: CtaNone}
}

// guardrailCTA returns the fixed CTA paired with a guardrail short-circuit.
func guardrailCTA(kind guardrails.Kind) CtaAction {
	if kind == guardrails.KindEmergency {
		return CtaAction{Type: CtaEmergency, Label: labelEmergency}
	}
	return CtaAction{Type: CtaBookConsult, Label: labelBookConsult}
}
