package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybookapp/daybook/internal/cli/formatter"
	"github.com/daybookapp/daybook/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage per-day tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskEditCmd(app),
		newTaskToggleCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task to a day's list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.parseDay(dayFlag)
			if err != nil {
				return err
			}
			task := app.Planner.AddTask(day)
			app.Planner.UpdateTask(day, task.ID, strings.Join(args, " "))
			fmt.Printf("Added task #%d on %s\n", len(app.Planner.Tasks.ForDay(day)), domain.DayKey(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.parseDay(dayFlag)
			if err != nil {
				return err
			}
			tasks := app.Planner.Tasks.ForDay(day)
			if len(tasks) == 0 {
				fmt.Printf("No tasks on %s\n", domain.DayKey(day))
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for i, t := range tasks {
				mark := "☐"
				text := t.Text
				if t.Completed {
					mark = formatter.StyleGreen.Render("☑")
					text = formatter.Dim(text)
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					formatter.Dim(shortID(t.ID)),
					mark,
					text,
				})
			}
			fmt.Println(formatter.RenderTable([]string{"#", "ID", "", "TASK"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "edit <task> <text>...",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.parseDay(dayFlag)
			if err != nil {
				return err
			}
			task, err := app.resolveTask(day, args[0])
			if err != nil {
				return err
			}
			app.Planner.UpdateTask(day, task.ID, strings.Join(args[1:], " "))
			fmt.Println("Updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	var dayFlag string

	cmd := &cobra.Command{
		Use:   "toggle <task>",
		Short: "Flip a task's completed flag",
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
			app.Planner.ToggleTask(day, task.ID)
			toggled, _ := app.Planner.Tasks.Get(day, task.ID)
			if toggled != nil && toggled.Completed {
				fmt.Printf("Done: %s\n", toggled.Text)
			} else if toggled != nil {
				fmt.Printf("Reopened: %s\n", toggled.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var dayFlag string
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task",
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
			if !yes && !confirm(fmt.Sprintf("Delete task %q?", task.Text)) {
				fmt.Println("Aborted")
				return nil
			}
			app.Planner.DeleteTask(day, task.ID)
			fmt.Println("Deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "Day (yyyy-MM-dd, default today)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
