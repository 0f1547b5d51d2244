package planner

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_ContainsProfileFieldsVerbatim(t *testing.T) {
	p := testutil.NewTestProfile()
	prompt := BuildPrompt(p)

	for _, field := range []string{p.Name, p.GradeOrYear, p.Interests, p.Goal} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, string(domain.StageSchool))
}

func TestBuildPrompt_UnusualCharactersSurvive(t *testing.T) {
	p := domain.Profile{
		Name:        "Zoë D'Souza",
		Stage:       domain.StageCollege,
		GradeOrYear: "2nd Year B.Tech CSE (100% attendance)",
		Interests:   "ML, {graphs}, \"quotes\"",
		Goal:        "Research scientist @ ISRO",
	}

	prompt := BuildPrompt(p)

	for _, field := range []string{p.Name, p.GradeOrYear, p.Interests, p.Goal} {
		assert.Contains(t, prompt, field)
	}
	assert.NotContains(t, prompt, "%!")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	p := testutil.NewTestProfile()
	assert.Equal(t, BuildPrompt(p), BuildPrompt(p))
}

func TestBuildPrompt_AsksForIndiaResourcesAndWeek(t *testing.T) {
	prompt := BuildPrompt(testutil.NewTestProfile())

	assert.Contains(t, prompt, "INDIA")
	assert.Contains(t, prompt, "7-day")
	assert.Contains(t, prompt, "motivational quote")
	assert.True(t, strings.HasSuffix(prompt, "matching the schema provided."))
}

func TestPlanSchema_RequiredKeys(t *testing.T) {
	s := PlanSchema()

	assert.ElementsMatch(t,
		[]string{"motivationalQuote", "careerSummary", "roadmap", "weeklySchedule"},
		s.Required)

	roadmap := s.Properties["roadmap"]
	require.NotNil(t, roadmap)
	require.NotNil(t, roadmap.Items)
	assert.ElementsMatch(t, []string{"stepName", "description", "resources"}, roadmap.Items.Required)

	resources := roadmap.Items.Properties["resources"]
	require.NotNil(t, resources)
	require.NotNil(t, resources.Items)
	assert.Contains(t, resources.Items.Properties, "url")

	schedule := s.Properties["weeklySchedule"]
	require.NotNil(t, schedule)
	assert.ElementsMatch(t, []string{"day", "focus", "activities"}, schedule.Items.Required)
}

func TestPlanSchema_ArraysRequireAnItem(t *testing.T) {
	s := PlanSchema()

	paths := map[string]*llm.Schema{
		"roadmap":           s.Properties["roadmap"],
		"weeklySchedule":    s.Properties["weeklySchedule"],
		"roadmap.resources": s.Properties["roadmap"].Items.Properties["resources"],
	}
	for path, arr := range paths {
		require.NotNil(t, arr, path)
		require.NotNil(t, arr.MinItems, path)
		assert.Equal(t, int64(1), *arr.MinItems, path)
	}
}
