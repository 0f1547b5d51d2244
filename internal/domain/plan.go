package domain

import "fmt"

// Plan is the structured career plan returned by the model.
type Plan struct {
	MotivationalQuote string    `json:"motivationalQuote"`
	CareerSummary     string    `json:"careerSummary"`
	Roadmap           []Step    `json:"roadmap"`
	WeeklySchedule    []DayPlan `json:"weeklySchedule"`
}

// Step is one milestone of the roadmap.
type Step struct {
	StepName    string     `json:"stepName"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
}

// Resource is a titled link. URLs are taken as returned by the model.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// DayPlan is one entry of the weekly schedule.
type DayPlan struct {
	Day        string   `json:"day"`
	Focus      string   `json:"focus"`
	Activities []string `json:"activities"`
}

// Validate enforces the minimal shape a plan needs to be shown: a non-empty
// roadmap and a non-empty weekly schedule. Resource counts per step are left
// to the response schema.
func (p Plan) Validate() error {
	if len(p.Roadmap) == 0 {
		return fmt.Errorf("roadmap must contain at least one step")
	}
	if len(p.WeeklySchedule) == 0 {
		return fmt.Errorf("weekly schedule must contain at least one day")
	}
	return nil
}
