// Package stats computes aggregate figures over a todo list. The functions
// are pure: the reference time is always passed in.
package stats

import (
	"math"
	"time"

	"todo-cockpit/internal/model"
)

// Summary holds the aggregate counters shown on the cockpit dashboard.
// Due-date buckets only count todos that are not DONE.
type Summary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Active         int `json:"active"`
	Important      int `json:"important"`
	Overdue        int `json:"overdue"`
	DueToday       int `json:"dueToday"`
	DueTomorrow    int `json:"dueTomorrow"`
	DueThisWeek    int `json:"dueThisWeek"`
	CompletionRate int `json:"completionRate"`
}

// Summarize tallies the todos relative to now. A due date earlier than now
// counts as overdue even when it falls on the current calendar day, matching
// how the dashboard has always treated midnight due dates.
func Summarize(todos []model.Todo, now time.Time) Summary {
	var s Summary
	s.Total = len(todos)

	weekEnd := now.AddDate(0, 0, 7)

	for _, todo := range todos {
		done := todo.Status == model.StatusDone
		if done {
			s.Completed++
		}
		if todo.IsImportant {
			s.Important++
		}
		if todo.DueDate == nil || done {
			continue
		}

		due := *todo.DueDate
		overdue := due.Before(now)
		today := sameDay(due, now)
		tomorrow := sameDay(due, now.AddDate(0, 0, 1))

		if overdue {
			s.Overdue++
		}
		if today {
			s.DueToday++
		}
		if tomorrow {
			s.DueTomorrow++
		}
		if !overdue && !today && !tomorrow && !due.After(weekEnd) {
			s.DueThisWeek++
		}
	}

	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
