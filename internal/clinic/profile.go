// Package clinic provides the static clinic profile injected into the
// assistant's system prompt.
package clinic

import "os"

// CTAButton is a labeled follow-up action offered by the widget.
type CTAButton struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// CompetitorMention names the competitor the assistant playfully compares
// itself against in its opening message.
type CompetitorMention struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Profile is the immutable clinic configuration. It is built once at process
// start and passed explicitly to the prompt builder and chat service; nothing
// reads it from ambient state.
type Profile struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Tagline    string            `json:"tagline"`
	Services   []string          `json:"services"`
	Primary    CTAButton         `json:"primaryCta"`
	Secondary  CTAButton         `json:"secondaryCta"`
	Competitor CompetitorMention `json:"competitorMention"`
}

// LoadProfile builds the clinic profile from the environment, falling back to
// the Primal Health defaults.
func LoadProfile() Profile {
	return Profile{
		ID:      envOr("CLINIC_ID", "primal-health"),
		Name:    envOr("CLINIC_NAME", "Primal Health"),
		Tagline: envOr("CLINIC_TAGLINE", "Your partner in men's health optimization"),
		Services: []string{
			"Comprehensive bloodwork and lab testing",
			"Hormone optimization",
			"Weight management programs",
			"Wellness consultations",
		},
		Primary: CTAButton{
			Label:  "Learn About Bloodwork",
			Action: "show_bloodwork_info",
		},
		Secondary: CTAButton{
			Label:  "Book a Consult",
			Action: "book_consult",
		},
		Competitor: CompetitorMention{
			Name:    envOr("CLINIC_COMPETITOR_NAME", "Allen"),
			Company: envOr("CLINIC_COMPETITOR_COMPANY", "Ways2Well"),
		},
	}
}

func envOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
