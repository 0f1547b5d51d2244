package planner

import "github.com/alexanderramin/pathwise/internal/llm"

// planMIMEType is the response format the service must produce.
const planMIMEType = "application/json"

// PlanSchema is the strict output schema for a career plan.
func PlanSchema() *llm.Schema {
	resource := llm.Object(map[string]*llm.Schema{
		"title": llm.String(),
		"url": llm.String().Describe(
			"A valid URL to a course, exam portal (like JEE/NEET/GATE), or learning resource."),
	}, "title", "url")

	step := llm.Object(map[string]*llm.Schema{
		"stepName":    llm.String(),
		"description": llm.String().Describe("Detailed instruction for this step."),
		"resources":   llm.Array(resource).WithMinItems(1),
	}, "stepName", "description", "resources")

	day := llm.Object(map[string]*llm.Schema{
		"day":        llm.String(),
		"focus":      llm.String(),
		"activities": llm.Array(llm.String()),
	}, "day", "focus", "activities")

	return llm.Object(map[string]*llm.Schema{
		"motivationalQuote": llm.String().Describe("A highly motivating quote personalized to the user's goal."),
		"careerSummary":     llm.String().Describe("A brief summary of the career path analysis."),
		"roadmap":           llm.Array(step).WithMinItems(1).Describe("A step-by-step career roadmap."),
		"weeklySchedule":    llm.Array(day).WithMinItems(1).Describe("A 7-day optimized schedule."),
	}, "motivationalQuote", "careerSummary", "roadmap", "weeklySchedule")
}
