package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybookapp/daybook/internal/cli/formatter"
	"github.com/daybookapp/daybook/internal/domain"
)

// browseKeyMap holds the key bindings for the interactive planner view.
type browseKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Week  key.Binding
	Day   key.Binding
	Today key.Binding
	Quit  key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week view"),
		),
		Day: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "day view"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Week, k.Day, k.Today, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// browseModel is the bubbletea Model for browsing the planner read-only.
// Editing goes through the subcommands; the model only moves the view
// around and persists it on every change, like any other navigation.
type browseModel struct {
	app      *App
	keys     browseKeyMap
	help     help.Model
	width    int
	quitting bool
}

func newBrowseModel(app *App) browseModel {
	return browseModel{
		app:  app,
		keys: defaultBrowseKeyMap(),
		help: help.New(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.app.Planner.Navigate(-1)
		case key.Matches(msg, m.keys.Next):
			m.app.Planner.Navigate(1)
		case key.Matches(msg, m.keys.Week):
			m.app.Planner.ShowWeek()
		case key.Matches(msg, m.keys.Day):
			m.app.Planner.ShowDayResume()
		case key.Matches(msg, m.keys.Today):
			m.app.Planner.GoToToday()
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	body := renderCurrent(m.app)
	return body + "\n" + m.help.View(m.keys) + "\n"
}

// runTUI starts the interactive planner browser. The starting view is
// whatever was last persisted, so the screen picks up where the user
// left off.
func runTUI(app *App) error {
	if app.Planner.View.Mode() == domain.ViewDay {
		app.Planner.ShowDayResume()
	}
	p := tea.NewProgram(newBrowseModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running planner view: %w", err)
	}
	return nil
}
