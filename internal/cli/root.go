package cli

import (
	"context"
	"io"

	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands and the TUI.
type App struct {
	Planner planner.PlanService
	Keeper  *credential.Keeper
	Keys    planner.KeySource

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	// RunTUI starts the full-screen interface. Nil uses the bubbletea runtime.
	RunTUI func(ctx context.Context, app *App, in io.Reader, out io.Writer) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pathwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathwise",
		Short: "AI career roadmaps for school and college students",
		Long: `pathwise asks for your academic stage, grade, interests and goal,
then asks Gemini for a step-by-step roadmap, a weekly schedule and
a motivational quote.

Run without arguments in a terminal for the interactive interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			run := app.RunTUI
			if run == nil {
				run = runTUI
			}
			return run(cmdContext(cmd), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(
		newPlanCmd(app),
		newKeyCmd(app),
	)

	return root
}
