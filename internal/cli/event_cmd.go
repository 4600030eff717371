package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/daybookapp/daybook/internal/cli/formatter"
	"github.com/daybookapp/daybook/internal/domain"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventEditCmd(app),
		newEventListCmd(app),
		newEventShowCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, dayFlag, startFlag, endFlag, color, description string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a calendar event",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.parseDay(dayFlag)
			if err != nil {
				return err
			}

			hour, minute, err := parseClock(startFlag)
			if err != nil {
				return err
			}

			draft := app.Planner.OpenAdd(day, hour)
			draft.SetStartTime(hour, minute)
			if endFlag != "" {
				endHour, endMinute, err := parseClock(endFlag)
				if err != nil {
					return err
				}
				draft.SetEndTime(endHour, endMinute)
			}
			draft.Title = title
			draft.AllDay = allDay
			draft.Description = description
			if color != "" {
				draft.Color = color
			} else if app.DefaultColor != "" {
				draft.Color = app.DefaultColor
			}

			// No --title means the user wants the form.
			if title == "" {
				if err := runEventForm(draft, nil); err != nil {
					app.Planner.Cancel()
					return err
				}
			}

			blankTitle := strings.TrimSpace(draft.Title) == ""
			app.Planner.ConfirmAdd()

			if blankTitle {
				fmt.Println("Nothing added (a blank title is dropped)")
				return nil
			}
			fmt.Printf("Added %q on %s\n", draft.Title, domain.DayKey(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (omit for an interactive form)")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	cmd.Flags().StringVar(&startFlag, "start", "09:00", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time (HH:MM, default start + 1h)")
	cmd.Flags().StringVar(&color, "color", "", "Display color token")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day banner instead of a timed block")

	return cmd
}

func newEventEditCmd(app *App) *cobra.Command {
	var title, dayFlag, startFlag, endFlag, color, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := app.resolveEvent(args[0])
			if err != nil {
				return err
			}

			draft, err := app.Planner.OpenEdit(event.ID)
			if err != nil {
				return err
			}

			if dayFlag != "" {
				day, err := app.parseDay(dayFlag)
				if err != nil {
					app.Planner.Cancel()
					return err
				}
				draft.SetDate(day)
			}
			if startFlag != "" {
				hour, minute, err := parseClock(startFlag)
				if err != nil {
					app.Planner.Cancel()
					return err
				}
				draft.SetStartTime(hour, minute)
			}
			if endFlag != "" {
				hour, minute, err := parseClock(endFlag)
				if err != nil {
					app.Planner.Cancel()
					return err
				}
				draft.SetEndTime(hour, minute)
			}
			if title != "" {
				draft.Title = title
			}
			if color != "" {
				draft.Color = color
			}
			if cmd.Flags().Changed("description") {
				draft.Description = description
			}

			app.Planner.ConfirmEdit()
			fmt.Printf("Updated %s\n", shortID(event.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Move to day (yyyy-MM-dd); keeps both times of day")
	cmd.Flags().StringVar(&startFlag, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&color, "color", "", "New color token")
	cmd.Flags().StringVar(&description, "description", "", "New description")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			var events []*domain.Event
			if dayFlag != "" {
				day, err := app.parseDay(dayFlag)
				if err != nil {
					return err
				}
				events = append(app.Planner.Events.AllDayForDay(day), app.Planner.Events.ForDay(day)...)
			} else {
				events = app.Planner.Events.All()
			}

			if len(events) == 0 {
				fmt.Println("No events")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				when := formatter.ClockTime(e.Start) + " – " + formatter.ClockTime(e.End)
				if e.AllDay {
					when = "all day"
				}
				rows = append(rows, []string{
					formatter.Dim(shortID(e.ID)),
					domain.DayKey(e.Start),
					when,
					formatter.EventStyle(e.Color).Render(e.Title),
				})
			}
			fmt.Println(formatter.RenderTable([]string{"ID", "DAY", "TIME", "TITLE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Only this day (yyyy-MM-dd)")
	return cmd
}

func newEventShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one event, rendering its description as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := app.resolveEvent(args[0])
			if err != nil {
				return err
			}

			when := fmt.Sprintf("%s  %s – %s", domain.DayKey(event.Start),
				formatter.ClockTime(event.Start), formatter.ClockTime(event.End))
			if event.AllDay {
				when = domain.DayKey(event.Start) + "  all day"
			}

			body := formatter.Dim(when)
			if event.FromTask {
				body += "\n" + formatter.Dim("promoted from task "+shortID(event.TaskID))
			}
			if event.Description != "" {
				renderer, err := glamour.NewTermRenderer(
					glamour.WithAutoStyle(),
					glamour.WithWordWrap(72),
				)
				if err != nil {
					return fmt.Errorf("building markdown renderer: %w", err)
				}
				md, err := renderer.Render(event.Description)
				if err != nil {
					return fmt.Errorf("rendering description: %w", err)
				}
				body += "\n" + md
			}

			fmt.Println(formatter.RenderBox(event.Title, body))
			return nil
		},
	}
}

func newEventRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := app.resolveEvent(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(fmt.Sprintf("Delete %q?", event.Title)) {
				fmt.Println("Aborted")
				return nil
			}
			app.Planner.DeleteEvent(event.ID)
			fmt.Printf("Deleted %q\n", event.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
