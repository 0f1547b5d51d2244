package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// Profile options
type ProfileOption func(*domain.Profile)

func WithStage(s domain.Stage) ProfileOption {
	return func(p *domain.Profile) {
		p.Stage = s
	}
}

func WithName(name string) ProfileOption {
	return func(p *domain.Profile) {
		p.Name = name
	}
}

func WithGoal(goal string) ProfileOption {
	return func(p *domain.Profile) {
		p.Goal = goal
	}
}

// NewTestProfile returns the reference school profile used across tests.
func NewTestProfile(opts ...ProfileOption) domain.Profile {
	p := domain.Profile{
		Name:        "Asha",
		Stage:       domain.StageSchool,
		GradeOrYear: "10th",
		Interests:   "coding",
		Goal:        "become a software engineer",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Plan options
type PlanOption func(*domain.Plan)

func WithSteps(n int) PlanOption {
	return func(p *domain.Plan) {
		p.Roadmap = p.Roadmap[:0]
		for i := 1; i <= n; i++ {
			p.Roadmap = append(p.Roadmap, domain.Step{
				StepName:    fmt.Sprintf("Step %d", i),
				Description: fmt.Sprintf("Do milestone %d.", i),
				Resources: []domain.Resource{{
					Title: "NPTEL Programming in Python",
					URL:   "https://nptel.ac.in/courses/106106182",
				}},
			})
		}
	}
}

func WithoutSchedule() PlanOption {
	return func(p *domain.Plan) {
		p.WeeklySchedule = nil
	}
}

var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NewTestPlan returns a schema-valid plan with three steps and a seven-day schedule.
func NewTestPlan(opts ...PlanOption) domain.Plan {
	p := domain.Plan{
		MotivationalQuote: "Asha, every line of code is a step toward your dream.",
		CareerSummary:     "A strong interest in coding fits a software engineering path.",
	}
	WithSteps(3)(&p)
	for _, d := range weekDays {
		p.WeeklySchedule = append(p.WeeklySchedule, domain.DayPlan{
			Day:        d,
			Focus:      "Programming fundamentals",
			Activities: []string{"Solve two practice problems", "Revise class notes"},
		})
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// PlanJSON marshals a plan the way the model returns it.
func PlanJSON(p domain.Plan) string {
	data, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return string(data)
}
