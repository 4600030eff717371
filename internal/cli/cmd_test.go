package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/daybookapp/daybook/internal/planner"
	"github.com/daybookapp/daybook/internal/storage"
	"github.com/daybookapp/daybook/internal/testutil"
)

// testApp wires a full App over an in-memory DB with a clock frozen at
// 10:00 on the reference day.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	store := storage.NewSlotStore(db)
	clock := domain.FixedClock{Time: testutil.At(10, 0)}
	return &App{
		Planner: planner.New(store, clock),
		Clock:   clock,
	}
}

// executeCmd runs a cobra command tree and captures cobra-level output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- event commands ---

func TestEventAddCmd_CreatesEvent(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"event", "add",
		"--title", "Standup",
		"--day", "2025-02-18",
		"--start", "09:00",
		"--end", "09:30",
	)
	require.NoError(t, err)

	events := app.Planner.Events.ForDay(testutil.Day)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].Title)
	assert.Equal(t, 9, events[0].Start.Hour())
	assert.Equal(t, 30, events[0].End.Minute())
	assert.Equal(t, domain.DefaultColor, events[0].Color)
}

func TestEventAddCmd_DefaultDayIsToday(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "add", "--title", "Lunch", "--start", "12:00")
	require.NoError(t, err)

	require.Len(t, app.Planner.Events.ForDay(testutil.Day), 1)
}

func TestEventAddCmd_RejectsBadTime(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "add", "--title", "X", "--start", "25:99")
	require.Error(t, err)
	assert.Empty(t, app.Planner.Events.All())
}

func TestEventEditCmd_MovesEventToNewDay(t *testing.T) {
	app := testApp(t)
	e := testutil.NewTestEvent("Review")
	app.Planner.AddEvent(e)
	id := app.Planner.Events.All()[0].ID

	_, err := executeCmd(t, app, "event", "edit", id[:8], "--day", "2025-02-19")
	require.NoError(t, err)

	moved, ok := app.Planner.Events.Get(id)
	require.True(t, ok)
	assert.Equal(t, "2025-02-19", domain.DayKey(moved.Start))
	// Time of day survives the move.
	assert.Equal(t, 9, moved.Start.Hour())
}

func TestEventRemoveCmd_WithYesFlag(t *testing.T) {
	app := testApp(t)
	app.Planner.AddEvent(testutil.NewTestEvent("Gone"))
	id := app.Planner.Events.All()[0].ID

	_, err := executeCmd(t, app, "event", "rm", id[:8], "--yes")
	require.NoError(t, err)
	assert.Empty(t, app.Planner.Events.All())
}

func TestEventCmd_UnknownIDFails(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "edit", "deadbeef", "--title", "X")
	require.Error(t, err)
}

// --- task commands ---

func TestTaskAddCmd_AppendsToDay(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "buy", "milk", "--day", "2025-02-18")
	require.NoError(t, err)

	tasks := app.Planner.Tasks.ForDay(testutil.Day)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Text)
	assert.False(t, tasks[0].Completed)
}

func TestTaskToggleCmd_ByIndex(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "first")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "add", "second")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "task", "toggle", "2")
	require.NoError(t, err)

	tasks := app.Planner.Tasks.ForDay(testutil.Day)
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
}

func TestTaskRemoveCmd_OutOfRangeIndex(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "only")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "task", "rm", "5", "--yes")
	require.Error(t, err)
	require.Len(t, app.Planner.Tasks.ForDay(testutil.Day), 1)
}

// --- convert ---

func TestConvertCmd_TaskBecomesEvent(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "Write report")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "convert", "1", "--start", "14:00", "--end", "15:30")
	require.NoError(t, err)

	assert.Empty(t, app.Planner.Tasks.ForDay(testutil.Day))
	events := app.Planner.Events.ForDay(testutil.Day)
	require.Len(t, events, 1)
	assert.Equal(t, "Write report", events[0].Title)
	assert.True(t, events[0].FromTask)
	assert.Equal(t, 14, events[0].Start.Hour())
}

func TestConvertCmd_KeepTask(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "task", "add", "Call dentist")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "convert", "1", "--keep-task")
	require.NoError(t, err)

	require.Len(t, app.Planner.Tasks.ForDay(testutil.Day), 1)
	require.Len(t, app.Planner.Events.ForDay(testutil.Day), 1)
}

// --- view and range commands ---

func TestDayCmd_SelectsDay(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "day", "2025-02-20")
	require.NoError(t, err)

	assert.Equal(t, domain.ViewDay, app.Planner.View.Mode())
	day, ok := app.Planner.View.SelectedDay()
	require.True(t, ok)
	assert.Equal(t, "2025-02-20", domain.DayKey(day))
}

func TestWeekCmd_SwitchesBack(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "day", "2025-02-20")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "week")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewWeek, app.Planner.View.Mode())
}

func TestRangeCmd_SetsWindow(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "range", "6", "22")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeRange{Start: 6, End: 22}, app.Planner.TimeRange())
}

func TestRangeCmd_InvalidWindowIgnored(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "range", "20", "8")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimeRange(), app.Planner.TimeRange())
}

// --- reset ---

func TestResetCmd_WithYesClearsEverything(t *testing.T) {
	app := testApp(t)
	app.Planner.AddEvent(testutil.NewTestEvent("Standup"))
	_, err := executeCmd(t, app, "task", "add", "a task")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)

	assert.Empty(t, app.Planner.Events.All())
	assert.Empty(t, app.Planner.Tasks.ForDay(testutil.Day))
	assert.Equal(t, domain.DefaultTimeRange(), app.Planner.TimeRange())
}

// --- export ---

func TestExportCmd_FailsWithNoEvents(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "export")
	require.Error(t, err)
}

// --- resolution helpers ---

func TestResolveEvent_AmbiguousPrefix(t *testing.T) {
	app := testApp(t)
	app.Planner.AddEvent(testutil.NewTestEvent("A"))
	app.Planner.AddEvent(testutil.NewTestEvent("B"))

	_, err := app.resolveEvent("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveTask_ByIDPrefix(t *testing.T) {
	app := testApp(t)
	task := app.Planner.AddTask(testutil.Day)
	app.Planner.UpdateTask(testutil.Day, task.ID, "by prefix")

	got, err := app.resolveTask(testutil.Day, task.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, "by prefix", got.Text)
}

func TestParseDay_RejectsGarbage(t *testing.T) {
	app := testApp(t)

	_, err := app.parseDay("not-a-date")
	require.Error(t, err)

	day, err := app.parseDay("")
	require.NoError(t, err)
	assert.True(t, domain.SameDay(day, testutil.Day))
	assert.Equal(t, time.Duration(0), day.Sub(testutil.Day))
}
