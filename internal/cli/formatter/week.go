package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/daybookapp/daybook/internal/domain"
)

const cardWidth = 24

// WeekDay is one column of the week grid: a day, its checklist, and its
// all-day banners.
type WeekDay struct {
	Day    time.Time
	Tasks  []*domain.Task
	AllDay []*domain.Event
}

// RenderWeekGrid paints the seven-day grid, four cards per terminal row.
// Today's card gets an accent border.
func RenderWeekGrid(days []WeekDay, today time.Time) string {
	cards := make([]string, 0, len(days))
	for _, d := range days {
		cards = append(cards, renderDayCard(d, domain.SameDay(d.Day, today)))
	}

	var rows []string
	for start := 0; start < len(cards); start += 4 {
		end := start + 4
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return strings.Join(rows, "\n")
}

func renderDayCard(d WeekDay, isToday bool) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(DayEmoji(d.Day) + " " + d.Day.Format("Monday")))
	b.WriteString("\n")
	b.WriteString(Dim(d.Day.Format("Jan 2")))
	b.WriteString("\n")

	for _, e := range d.AllDay {
		b.WriteString(EventBadge(e.Color, e.Title))
		b.WriteString("\n")
	}

	if len(d.Tasks) == 0 {
		b.WriteString(Dim("write something..."))
	}
	for i, t := range d.Tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		if t.Completed {
			b.WriteString(StyleDim.Strikethrough(true).Render("☑ " + t.Text))
		} else {
			b.WriteString(StyleFg.Render("☐ " + t.Text))
		}
	}

	border := ColorDim
	if isToday {
		border = ColorAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth).
		Padding(0, 1).
		Render(b.String())
}
