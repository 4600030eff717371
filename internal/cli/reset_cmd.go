package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all planner data",
		Long:  "Deletes every event, task, and saved preference. This cannot be undone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm("Delete all events and tasks?") {
				fmt.Println("Aborted")
				return nil
			}
			if err := app.Planner.Reset(); err != nil {
				return fmt.Errorf("resetting planner: %w", err)
			}
			fmt.Println("Planner reset")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
