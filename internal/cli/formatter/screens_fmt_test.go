package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatWelcome_ListsBothStages(t *testing.T) {
	out := stripANSI(FormatWelcome(0))

	assert.Contains(t, out, "School Student")
	assert.Contains(t, out, "College Student")
	assert.Contains(t, out, "Class 1 to 12 • Exploring Paths")
	assert.Contains(t, out, "Undergrad & Postgrad • Career Focus")
}

func TestFormatWelcome_MarksCursor(t *testing.T) {
	first := stripANSI(FormatWelcome(0))
	second := stripANSI(FormatWelcome(1))

	assert.Less(t, strings.Index(first, "›"), strings.Index(first, "College Student"))
	assert.Greater(t, strings.Index(second, "›"), strings.Index(second, "School Student"))
}

func TestFormatLoading(t *testing.T) {
	out := stripANSI(FormatLoading("Asha", "*"))

	assert.Contains(t, out, "Analyzing Profile...")
	assert.Contains(t, out, "Crafting a unique path for Asha.")
}

func TestFormatKeyStatus(t *testing.T) {
	updated := time.Now().Add(-5 * time.Minute)
	out := stripANSI(FormatKeyStatus(&KeyStatus{
		Source:    "local store",
		Masked:    "AIza••••••ey42",
		UpdatedAt: &updated,
	}))

	assert.Contains(t, out, "local store")
	assert.Contains(t, out, "AIza••••••ey42")
	assert.Contains(t, out, "5m ago")
}

func TestFormatKeyStatus_None(t *testing.T) {
	out := stripANSI(FormatKeyStatus(nil))
	assert.Contains(t, out, "No API key configured.")
}

func TestStageBadge(t *testing.T) {
	assert.Contains(t, StageBadge(domain.StageSchool), "SCHOOL STUDENT")
	assert.Contains(t, StageBadge(domain.StageCollege), "COLLEGE STUDENT")
	assert.Contains(t, StageBadge(domain.Stage("x")), "UNKNOWN")
}
