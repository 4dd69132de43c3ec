// Package guardrails implements the deterministic safety checks applied to
// user input before the completion call and to assistant output after it.
// The checks are local pattern scans, independent of the model's own
// judgment; the persona prompt asks the model to self-censor, this package
// is the backstop that cannot be bypassed.
package guardrails

import (
	"regexp"
	"strings"
)

// Kind identifies which safety rule fired.
type Kind string

const (
	KindNone          Kind = "none"
	KindEmergency     Kind = "emergency"
	KindMedicalAdvice Kind = "medical_advice"
	KindPHIRequest    Kind = "phi_request"
)

// Result is the outcome of scanning a single message.
type Result struct {
	// Triggered is true if the message must not reach the LLM.
	Triggered bool
	// Kind names the rule that fired.
	Kind Kind
	// Response is the canned reply to return in place of a completion.
	Response string
}

// inputPattern is a compiled regex with a reason label, evaluated in order.
type inputPattern struct {
	re     *regexp.Regexp
	reason string
}

// Emergency keywords that immediately trigger the safety response. Matched
// case-insensitively as substrings; the first hit wins and no further
// classification runs.
var emergencyKeywords = []string{
	"chest pain",
	"heart attack",
	"can't breathe",
	"cannot breathe",
	"difficulty breathing",
	"suicidal",
	"suicide",
	"kill myself",
	"want to die",
	"end my life",
	"self harm",
	"self-harm",
	"overdose",
	"severe allergic",
	"anaphylaxis",
	"stroke",
	"unconscious",
	"seizure",
	"severe bleeding",
}

// Medical advice patterns that trigger a refusal. Checked only after the
// emergency scan comes back clean.
var medicalAdvicePatterns = []inputPattern{
	{regexp.MustCompile(`(?i)how (?:many|much) (?:mg|ml|milligrams|milliliters|units|iu)`), "advice:dosage_amount"},
	{regexp.MustCompile(`(?i)what (?:dose|dosage)`), "advice:dosage_question"},
	{regexp.MustCompile(`(?i)should i take`), "advice:should_i_take"},
	{regexp.MustCompile(`(?i)prescribe`), "advice:prescribe"},
	{regexp.MustCompile(`(?i)what medication`), "advice:what_medication"},
	{regexp.MustCompile(`(?i)recommend.+(?:drug|medication|medicine|dose)`), "advice:recommend_drug"},
	{regexp.MustCompile(`(?i)\d+\s*(?:mg|ml|mcg|iu)\s+(?:of|for)`), "advice:unit_dose"},
	{regexp.MustCompile(`(?i)increase.+(?:dose|dosage)`), "advice:increase_dose"},
	{regexp.MustCompile(`(?i)decrease.+(?:dose|dosage)`), "advice:decrease_dose"},
	{regexp.MustCompile(`(?i)start.+(?:taking|on)\s+\w+\s+(?:mg|ml)`), "advice:start_taking"},
}

// PHI solicitation patterns the assistant must never emit.
var phiPatterns = []inputPattern{
	{regexp.MustCompile(`(?i)(?:full|complete)\s+name`), "phi:full_name"},
	{regexp.MustCompile(`(?i)date of birth|dob|birth\s*date`), "phi:date_of_birth"},
	{regexp.MustCompile(`(?i)social security|ssn`), "phi:ssn"},
	{regexp.MustCompile(`(?i)(?:home|street|mailing)\s+address`), "phi:address"},
	{regexp.MustCompile(`(?i)medical record`), "phi:medical_record"},
	{regexp.MustCompile(`(?i)insurance.*number`), "phi:insurance_number"},
	{regexp.MustCompile(`(?i)driver'?s?\s+license`), "phi:drivers_license"},
}

// EvaluateInput scans an inbound user message. Emergency detection has
// absolute priority over the medical-advice rules; a message matching both
// categories reports an emergency.
func EvaluateInput(message string) Result {
	if r := checkEmergency(message); r.Triggered {
		return r
	}
	if r := checkMedicalAdvice(message); r.Triggered {
		return r
	}
	return Result{Kind: KindNone}
}

func checkEmergency(message string) Result {
	lower := strings.ToLower(message)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			return Result{
				Triggered: true,
				Kind:      KindEmergency,
				Response:  EmergencyResponse,
			}
		}
	}
	return Result{Kind: KindNone}
}

func checkMedicalAdvice(message string) Result {
	for _, p := range medicalAdvicePatterns {
		if p.re.MatchString(message) {
			return Result{
				Triggered: true,
				Kind:      KindMedicalAdvice,
				Response:  MedicalAdviceResponse,
			}
		}
	}
	return Result{Kind: KindNone}
}

// OutputScan is the detailed result of scanning an outbound assistant reply.
type OutputScan struct {
	// Safe is false if the reply solicits PHI and must not be delivered as-is.
	Safe bool
	// Reasons lists the PHI patterns that fired.
	Reasons []string
}

// ScanOutput checks an assistant reply for PHI solicitation and reports
// which patterns fired.
func ScanOutput(reply string) OutputScan {
	var reasons []string
	for _, p := range phiPatterns {
		if p.re.MatchString(reply) {
			reasons = append(reasons, p.reason)
		}
	}
	return OutputScan{Safe: len(reasons) == 0, Reasons: reasons}
}

// ValidateOutput reports whether an assistant reply is safe to return.
func ValidateOutput(reply string) bool {
	return ScanOutput(reply).Safe
}
