package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadProfileDefaults(t *testing.T) {
	t.Setenv("CLINIC_ID", "")
	t.Setenv("CLINIC_NAME", "")
	p := LoadProfile()

	assert.Equal(t, "primal-health", p.ID)
	assert.Equal(t, "Primal Health", p.Name)
	assert.Len(t, p.Services, 4)
	assert.Equal(t, "Learn About Bloodwork", p.Primary.Label)
	assert.Equal(t, "Book a Consult", p.Secondary.Label)
	assert.Equal(t, "Ways2Well", p.Competitor.Company)
}

func TestLoadProfileOverrides(t *testing.T) {
	t.Setenv("CLINIC_ID", "apex")
	t.Setenv("CLINIC_NAME", "Apex Wellness")
	t.Setenv("CLINIC_COMPETITOR_NAME", "Bob")
	p := LoadProfile()

	assert.Equal(t, "apex", p.ID)
	assert.Equal(t, "Apex Wellness", p.Name)
	assert.Equal(t, "Bob", p.Competitor.Name)
}
