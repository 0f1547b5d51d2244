package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	cases := map[string]Stage{
		"school":          StageSchool,
		"SCHOOL":          StageSchool,
		" college ":       StageCollege,
		"School Student":  StageSchool,
		"college student": StageCollege,
	}
	for in, want := range cases {
		got, err := ParseStage(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParseStage_Unknown(t *testing.T) {
	_, err := ParseStage("university")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "university")
}

func TestStage_LabelsDifferByStage(t *testing.T) {
	assert.Equal(t, "Current Grade/Class", StageSchool.GradeLabel())
	assert.Equal(t, "Current Year & Degree", StageCollege.GradeLabel())
	assert.NotEqual(t, StageSchool.GradePlaceholder(), StageCollege.GradePlaceholder())
	assert.NotEqual(t, StageSchool.Tagline(), StageCollege.Tagline())
}

func TestNewProfile_TrimsFields(t *testing.T) {
	p, err := NewProfile(StageSchool, "  Asha ", "10th\n", "\tcoding", " become a software engineer ")
	require.NoError(t, err)
	assert.Equal(t, Profile{
		Name:        "Asha",
		Stage:       StageSchool,
		GradeOrYear: "10th",
		Interests:   "coding",
		Goal:        "become a software engineer",
	}, p)
}

func TestNewProfile_RejectsBlankField(t *testing.T) {
	cases := []struct {
		name, grade, interests, goal string
		field                        string
	}{
		{"", "10th", "coding", "engineer", "name"},
		{"Asha", "   ", "coding", "engineer", "grade or year"},
		{"Asha", "10th", "", "engineer", "interests"},
		{"Asha", "10th", "coding", "\n", "goal"},
	}
	for _, tc := range cases {
		_, err := NewProfile(StageCollege, tc.name, tc.grade, tc.interests, tc.goal)
		require.ErrorIs(t, err, ErrIncompleteProfile)
		assert.Contains(t, err.Error(), tc.field)
	}
}

func TestNewProfile_RejectsUnknownStage(t *testing.T) {
	_, err := NewProfile(Stage("Dropout"), "Asha", "10th", "coding", "engineer")
	require.ErrorIs(t, err, ErrIncompleteProfile)
	assert.Contains(t, err.Error(), "stage")
}
