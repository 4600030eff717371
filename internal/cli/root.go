package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "daybook" command and registers all
// subcommands against the provided App. Run bare on a terminal it opens
// the interactive planner; piped or scripted it prints help.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daybook",
		Short: "Weekly planner with per-day tasks and a day timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if isatty.IsTerminal(os.Stdout.Fd()) {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(newNavCmds(app)...)
	root.AddCommand(
		newWeekCmd(app),
		newDayCmd(app),
		newEventCmd(app),
		newTaskCmd(app),
		newConvertCmd(app),
		newRangeCmd(app),
		newResetCmd(app),
		newExportCmd(app),
	)

	return root
}
