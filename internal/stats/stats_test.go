package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todo-cockpit/internal/model"
)

func dated(due time.Time) *time.Time {
	return &due
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())
	assert.Zero(t, s.Total)
	assert.Zero(t, s.CompletionRate, "empty list is 0%, not a division by zero")
}

func TestSummarizeBuckets(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	todos := []model.Todo{
		// Overdue, active.
		{Status: model.StatusTodo, DueDate: dated(now.Add(-48 * time.Hour))},
		// Due earlier today: both overdue and due today.
		{Status: model.StatusTodo, DueDate: dated(now.Add(-time.Hour))},
		// Due later today.
		{Status: model.StatusInbox, DueDate: dated(now.Add(2 * time.Hour))},
		// Due tomorrow, important.
		{Status: model.StatusTodo, IsImportant: true, DueDate: dated(now.AddDate(0, 0, 1))},
		// Due in five days.
		{Status: model.StatusTodo, DueDate: dated(now.AddDate(0, 0, 5))},
		// Due in ten days: outside every bucket.
		{Status: model.StatusTodo, DueDate: dated(now.AddDate(0, 0, 10))},
		// Done with a past due date: counted nowhere but completed.
		{Status: model.StatusDone, DueDate: dated(now.Add(-24 * time.Hour))},
		// Done, important.
		{Status: model.StatusDone, IsImportant: true},
	}

	s := Summarize(todos, now)
	assert.Equal(t, 8, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 6, s.Active)
	assert.Equal(t, 2, s.Important)
	assert.Equal(t, 2, s.Overdue)
	assert.Equal(t, 2, s.DueToday, "a due date earlier today is overdue and due today at once")
	assert.Equal(t, 1, s.DueTomorrow)
	assert.Equal(t, 1, s.DueThisWeek)
	assert.Equal(t, 25, s.CompletionRate)
}

func TestSummarizeCompletionRateRounds(t *testing.T) {
	todos := []model.Todo{
		{Status: model.StatusDone},
		{Status: model.StatusTodo},
		{Status: model.StatusTodo},
	}
	s := Summarize(todos, time.Now())
	assert.Equal(t, 33, s.CompletionRate)
}
