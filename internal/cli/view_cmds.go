package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybookapp/daybook/internal/cli/formatter"
	"github.com/daybookapp/daybook/internal/domain"
)

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show the week grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Planner.ShowWeek()
			fmt.Println(renderWeek(app))
			return nil
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show the day timeline (resumes the last viewed day)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				day, err := app.parseDay(args[0])
				if err != nil {
					return err
				}
				app.Planner.ShowDay(day)
			} else {
				app.Planner.ShowDayResume()
			}
			fmt.Println(renderDay(app))
			return nil
		},
	}
}

func newNavCmds(app *App) []*cobra.Command {
	today := &cobra.Command{
		Use:   "today",
		Short: "Jump to today's timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Planner.GoToToday()
			fmt.Println(renderDay(app))
			return nil
		},
	}
	next := &cobra.Command{
		Use:   "next",
		Short: "Move forward a day (day view) or a week (week view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Planner.Navigate(+1)
			fmt.Println(renderCurrent(app))
			return nil
		},
	}
	prev := &cobra.Command{
		Use:   "prev",
		Short: "Move back a day (day view) or a week (week view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Planner.Navigate(-1)
			fmt.Println(renderCurrent(app))
			return nil
		},
	}
	return []*cobra.Command{today, next, prev}
}

func renderCurrent(app *App) string {
	if app.Planner.View.Mode() == domain.ViewDay {
		return renderDay(app)
	}
	return renderWeek(app)
}

func renderWeek(app *App) string {
	p := app.Planner
	weekDays := p.View.WeekDays()

	days := make([]formatter.WeekDay, 0, len(weekDays))
	for _, day := range weekDays {
		days = append(days, formatter.WeekDay{
			Day:    day,
			Tasks:  p.Tasks.ForDay(day),
			AllDay: p.Events.AllDayForDay(day),
		})
	}

	title := formatter.WeekTitle(weekDays[0], weekDays[6])
	return formatter.Header(title) + "\n" + formatter.RenderWeekGrid(days, app.Clock.Now())
}

func renderDay(app *App) string {
	p := app.Planner
	day, ok := p.View.SelectedDay()
	if !ok {
		day = domain.StartOfDay(app.Clock.Now())
	}
	return formatter.RenderTimeline(day, p.Events.ForDay(day), p.Events.AllDayForDay(day), p.TimeRange())
}
