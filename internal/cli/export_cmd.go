package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybookapp/daybook/internal/ics"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all events as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			events := app.Planner.Events.All()
			if len(events) == 0 {
				return fmt.Errorf("no events to export")
			}
			data := ics.Export(events, app.Clock.Now())
			if outPath == "" {
				fmt.Print(data)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(data), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Printf("Exported %d events to %s\n", len(events), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}
