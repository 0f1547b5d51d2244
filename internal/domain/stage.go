package domain

import (
	"fmt"
	"strings"
)

// Stage is the student's academic stage. It alters form labels and prompt framing.
type Stage string

const (
	StageSchool  Stage = "School Student"
	StageCollege Stage = "College Student"
)

// Stages lists the selectable stages in display order.
var Stages = []Stage{StageSchool, StageCollege}

// ParseStage accepts "school", "college" or a full stage label, case-insensitively.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "school", strings.ToLower(string(StageSchool)):
		return StageSchool, nil
	case "college", strings.ToLower(string(StageCollege)):
		return StageCollege, nil
	default:
		return "", fmt.Errorf("unknown stage %q (use school or college)", s)
	}
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	return s == StageSchool || s == StageCollege
}

// GradeLabel returns the form label for the grade/year field.
func (s Stage) GradeLabel() string {
	if s == StageSchool {
		return "Current Grade/Class"
	}
	return "Current Year & Degree"
}

// GradePlaceholder returns an example value for the grade/year field.
func (s Stage) GradePlaceholder() string {
	if s == StageSchool {
		return "e.g. 10th Standard (CBSE)"
	}
	return "e.g. 2nd Year B.Tech CSE"
}

// Tagline is the one-line description shown next to the stage on the welcome screen.
func (s Stage) Tagline() string {
	if s == StageSchool {
		return "Class 1 to 12 • Exploring Paths"
	}
	return "Undergrad & Postgrad • Career Focus"
}
