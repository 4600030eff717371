package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daybookapp/daybook/internal/cli/formatter"
)

func newRangeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range [start end]",
		Short: "Show or set the visible day hours",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				r := app.Planner.TimeRange()
				fmt.Printf("Day range: %s – %s\n", formatter.HourLabel(r.Start), formatter.HourLabel(r.End))
				return nil
			}
			if len(args) != 2 {
				return fmt.Errorf("range takes both a start and an end hour")
			}
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing start hour %q: %w", args[0], err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing end hour %q: %w", args[1], err)
			}

			app.Planner.SetTimeRange(start, end)
			r := app.Planner.TimeRange()
			if r.Start != start || r.End != end {
				fmt.Printf("Ignored invalid range, keeping %s – %s\n", formatter.HourLabel(r.Start), formatter.HourLabel(r.End))
				return nil
			}
			fmt.Printf("Day range set to %s – %s\n", formatter.HourLabel(r.Start), formatter.HourLabel(r.End))
			return nil
		},
	}

	return cmd
}
