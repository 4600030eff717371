package planner

import (
	"testing"

	"github.com/daybookapp/daybook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStore_Add_AppendsEmptyTask(t *testing.T) {
	store := NewTaskStore(nil)
	task := store.Add(testutil.Day)

	assert.NotEmpty(t, task.ID)
	assert.Empty(t, task.Text)
	assert.False(t, task.Completed)

	got := store.ForDay(testutil.Day)
	require.Len(t, got, 1)
	assert.Equal(t, task.ID, got[0].ID)
}

func TestTaskStore_InsertionOrderPreserved(t *testing.T) {
	store := NewTaskStore(nil)
	first := store.Add(testutil.Day)
	second := store.Add(testutil.Day)
	third := store.Add(testutil.Day)

	store.Update(testutil.Day, second.ID, "middle")

	got := store.ForDay(testutil.Day)
	require.Len(t, got, 3)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, third.ID, got[2].ID)
	assert.Equal(t, "middle", got[1].Text)
}

func TestTaskStore_Toggle(t *testing.T) {
	store := NewTaskStore(nil)
	task := store.Add(testutil.Day)

	store.Toggle(testutil.Day, task.ID)
	got, ok := store.Get(testutil.Day, task.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)

	store.Toggle(testutil.Day, task.ID)
	got, _ = store.Get(testutil.Day, task.ID)
	assert.False(t, got.Completed)
}

func TestTaskStore_UpdateUnknownTaskIsNoop(t *testing.T) {
	store := NewTaskStore(nil)
	store.Add(testutil.Day)
	store.Update(testutil.Day, "missing", "nope")

	got := store.ForDay(testutil.Day)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Text)
}

func TestTaskStore_Delete(t *testing.T) {
	store := NewTaskStore(nil)
	keep := store.Add(testutil.Day)
	drop := store.Add(testutil.Day)

	store.Delete(testutil.Day, drop.ID)

	got := store.ForDay(testutil.Day)
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
}

func TestTaskStore_DaysAreLazy(t *testing.T) {
	store := NewTaskStore(nil)
	assert.Empty(t, store.ForDay(testutil.Day))
	assert.Empty(t, store.Map(), "reading a day never materializes it")
}

func TestTaskStore_SnapshotsSurviveMutation(t *testing.T) {
	store := NewTaskStore(nil)
	task := store.Add(testutil.Day)
	store.Update(testutil.Day, task.ID, "original")

	snapshot := store.ForDay(testutil.Day)
	store.Update(testutil.Day, task.ID, "changed")

	assert.Equal(t, "original", snapshot[0].Text)
}
