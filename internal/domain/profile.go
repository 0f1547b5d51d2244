package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteProfile is returned when a required profile field is empty.
var ErrIncompleteProfile = errors.New("incomplete profile")

// Profile is the student record that drives the plan prompt.
// It is built once per submission and never mutated afterwards.
type Profile struct {
	Name        string
	Stage       Stage
	GradeOrYear string
	Interests   string
	Goal        string
}

// NewProfile trims every text field and rejects empty fields or an unknown stage.
func NewProfile(stage Stage, name, gradeOrYear, interests, goal string) (Profile, error) {
	p := Profile{
		Name:        strings.TrimSpace(name),
		Stage:       stage,
		GradeOrYear: strings.TrimSpace(gradeOrYear),
		Interests:   strings.TrimSpace(interests),
		Goal:        strings.TrimSpace(goal),
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that the stage is known and all four text fields are non-empty.
func (p Profile) Validate() error {
	if !p.Stage.Valid() {
		return fmt.Errorf("%w: stage must be chosen", ErrIncompleteProfile)
	}
	fields := []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"grade or year", p.GradeOrYear},
		{"interests", p.Interests},
		{"goal", p.Goal},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrIncompleteProfile, f.name)
		}
	}
	return nil
}
