package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-cockpit/internal/model"
)

func TestDigestSummary(t *testing.T) {
	_, _, _, todoRepo := setupRepos(t)
	digest := NewDigestService(todoRepo)
	ctx := context.Background()

	now := time.Now()
	past := now.Add(-24 * time.Hour)
	require.NoError(t, todoRepo.Create(ctx, &model.Todo{ID: "a", Title: "Late", Status: model.StatusTodo, DueDate: &past, Labels: []string{}}))
	require.NoError(t, todoRepo.Create(ctx, &model.Todo{ID: "b", Title: "Done", Status: model.StatusDone, Labels: []string{}}))

	line, err := digest.Summary(ctx, now)
	require.NoError(t, err)
	assert.Contains(t, line, "2 todos")
	assert.Contains(t, line, "1 active")
	assert.Contains(t, line, "1 overdue")
	assert.Contains(t, line, "50% done")
}

func TestSchedulerDailySpec(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"08:30", true},
		{"23:59", true},
		{"0:0", true},
		{"24:00", false},
		{"12:60", false},
		{"noon", false},
		{"12", false},
	}
	for _, tt := range tests {
		_, err := buildDailySpec(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
		} else {
			assert.Error(t, err, tt.in)
		}
	}
}

func TestSchedulerIntervalValidation(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	defer s.Stop()

	_, err := s.ScheduleInterval(0, func() {})
	assert.Error(t, err)

	_, err = s.ScheduleInterval(time.Minute, func() {})
	assert.NoError(t, err)
}
