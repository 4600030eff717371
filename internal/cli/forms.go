package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/daybookapp/daybook/internal/domain"
)

// clockInput returns a huh.Input for an HH:MM time-of-day field.
func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("09:00").
		Value(value).
		Validate(validateClock)
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use HH:MM, e.g. 14:30")
	}
	return nil
}

// runEventForm collects the draft's title, times, and description
// interactively. When removeOriginal is non-nil the form also asks whether
// the source task should be deleted after converting.
func runEventForm(draft *domain.Event, removeOriginal *bool) error {
	title := draft.Title
	start := draft.Start.Format("15:04")
	end := draft.End.Format("15:04")
	description := draft.Description

	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Team standup").
			Value(&title),
		clockInput("Start (HH:MM)", &start),
		clockInput("End (HH:MM)", &end),
		huh.NewText().
			Title("Description (markdown, optional)").
			Value(&description),
	}
	if removeOriginal != nil {
		fields = append(fields, huh.NewConfirm().
			Title("Remove the original task?").
			Value(removeOriginal))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return fmt.Errorf("running event form: %w", err)
	}

	draft.Title = title
	draft.Description = description
	if h, m, err := parseClock(start); err == nil {
		draft.SetStartTime(h, m)
	}
	if h, m, err := parseClock(end); err == nil {
		draft.SetEndTime(h, m)
	}
	return nil
}

// confirm asks a yes/no question on stdin and defaults to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
