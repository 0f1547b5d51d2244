package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/spf13/cobra"
)

// planWidth is the wrap width for rendered plans outside the TUI.
const planWidth = 100

func newPlanCmd(app *App) *cobra.Command {
	var (
		stage     stageValue
		name      string
		grade     string
		interests string
		goal      string
		format    = formatText
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a roadmap for a profile without the interactive interface",
		Example: `  pathwise plan --stage school --name Asha --grade "10th Standard (CBSE)" \
    --interests "coding, robotics" --goal "become a software engineer"
  pathwise plan --stage college ... --format json > plan.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := domain.NewProfile(domain.Stage(stage), name, grade, interests, goal)
			if err != nil {
				return err
			}

			ctx := cmdContext(cmd)

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(),
					fmt.Sprintf("Analyzing Profile... crafting a unique path for %s", profile.Name))
			}
			plan, err := app.Planner.RequestPlan(ctx, profile)
			stop()
			if err != nil {
				if planner.NeedsCredential(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Hint: run `pathwise key set` to update your API key."))
				}
				return fmt.Errorf("%s (%w)", planner.UserMessage(err), err)
			}

			return writePlan(cmd.OutOrStdout(), format, profile, *plan, app.interactive())
		},
	}

	cmd.Flags().Var(&stage, "stage", "Academic stage: school or college")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&grade, "grade", "", "Current grade/class or year & degree")
	cmd.Flags().StringVar(&interests, "interests", "", "Skills and interests")
	cmd.Flags().StringVar(&goal, "goal", "", "Ultimate career goal")
	cmd.Flags().Var(&format, "format", "Output format: text, markdown or json")

	for _, f := range []string{"stage", "name", "grade", "interests", "goal"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func writePlan(w io.Writer, format outputFormat, p domain.Profile, plan domain.Plan, styled bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case formatMarkdown:
		_, err := io.WriteString(w, formatter.PlanMarkdown(p, plan))
		return err
	default:
		_, err := io.WriteString(w, formatter.FormatPlan(p, plan, planWidth, styled))
		return err
	}
}
