package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// defaultWrap is used when the terminal width is unknown.
const defaultWrap = 80

// maxResourceTitle caps link text so one runaway title cannot swamp a step.
const maxResourceTitle = 80

// PlanMarkdown renders a plan as a markdown document headed by the
// student's name and stage.
func PlanMarkdown(p domain.Profile, plan domain.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Career Roadmap for %s\n\n", p.Name)
	fmt.Fprintf(&b, "_%s · %s_\n\n", p.Stage, p.GradeOrYear)

	if q := strings.TrimSpace(plan.MotivationalQuote); q != "" {
		fmt.Fprintf(&b, "> %s\n\n", q)
	}

	b.WriteString("## Career Summary\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(plan.CareerSummary))

	b.WriteString("## Roadmap\n\n")
	for i, step := range plan.Roadmap {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, step.StepName)
		if d := strings.TrimSpace(step.Description); d != "" {
			fmt.Fprintf(&b, "%s\n\n", d)
		}
		if len(step.Resources) > 0 {
			for _, r := range step.Resources {
				fmt.Fprintf(&b, "- %s\n", resourceLink(r))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Weekly Schedule\n\n")
	for _, day := range plan.WeeklySchedule {
		fmt.Fprintf(&b, "### %s: %s\n\n", day.Day, day.Focus)
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "- %s\n", a)
		}
		if len(day.Activities) > 0 {
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func resourceLink(r domain.Resource) string {
	title := Truncate(strings.TrimSpace(r.Title), maxResourceTitle)
	url := strings.TrimSpace(r.URL)
	if url == "" {
		return title
	}
	return fmt.Sprintf("[%s](%s)", title, url)
}

// RenderMarkdown draws markdown for the terminal. When styled is false the
// plain ASCII style is used, suitable for pipes and logs.
func RenderMarkdown(md string, width int, styled bool) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}
	style := styles.NoTTYStyle
	if styled {
		style = styles.DarkStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// FormatPlan renders the plan for the terminal, falling back to the raw
// markdown if rendering fails.
func FormatPlan(p domain.Profile, plan domain.Plan, width int, styled bool) string {
	md := PlanMarkdown(p, plan)
	out, err := RenderMarkdown(md, width, styled)
	if err != nil {
		return md
	}
	return out
}
