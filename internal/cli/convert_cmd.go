package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybookapp/daybook/internal/domain"
)

func newConvertCmd(app *App) *cobra.Command {
	var dayFlag string
	var keepTask bool
	var startFlag, endFlag, colorFlag string

	cmd := &cobra.Command{
		Use:   "convert <task>",
		Short: "Turn a task into a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.parseDay(dayFlag)
			if err != nil {
				return err
			}
			task, err := app.resolveTask(day, args[0])
			if err != nil {
				return err
			}

			draft, err := app.Planner.BeginConvert(day, task.ID)
			if err != nil {
				return err
			}

			if startFlag != "" {
				h, m, err := parseClock(startFlag)
				if err != nil {
					app.Planner.Cancel()
					return err
				}
				draft.SetStartTime(h, m)
			}
			if endFlag != "" {
				h, m, err := parseClock(endFlag)
				if err != nil {
					app.Planner.Cancel()
					return err
				}
				draft.SetEndTime(h, m)
			}
			if colorFlag != "" {
				draft.Color = colorFlag
			}

			removeOriginal := !keepTask
			if strings.TrimSpace(draft.Title) == "" {
				if err := runEventForm(draft, &removeOriginal); err != nil {
					app.Planner.Cancel()
					return err
				}
			}

			app.Planner.ConfirmConvert(removeOriginal)
			if strings.TrimSpace(draft.Title) == "" {
				fmt.Println("Nothing to convert: empty title")
				return nil
			}
			fmt.Printf("Converted %q to an event on %s\n", draft.Title, domain.DayKey(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	cmd.Flags().BoolVar(&keepTask, "keep-task", false, "Keep the task after converting")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Hex color for the event")
	return cmd
}
