package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"todo-cockpit/internal/repository"
	"todo-cockpit/internal/stats"
)

// DigestService periodically summarizes the whole todo list into a one-line
// log entry, so a glance at the server log shows how the backlog is doing.
type DigestService struct {
	todoRepo *repository.TodoRepository
}

func NewDigestService(todoRepo *repository.TodoRepository) *DigestService {
	return &DigestService{todoRepo: todoRepo}
}

// Summary computes the digest line for the given moment.
func (s *DigestService) Summary(ctx context.Context, now time.Time) (string, error) {
	todos, err := s.todoRepo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	sum := stats.Summarize(todos, now)
	return fmt.Sprintf("digest: %d todos, %d active, %d important, %d overdue, %d due today, %d%% done",
		sum.Total, sum.Active, sum.Important, sum.Overdue, sum.DueToday, sum.CompletionRate), nil
}

// Run logs one digest line; failures are logged, never fatal.
func (s *DigestService) Run(ctx context.Context) {
	line, err := s.Summary(ctx, time.Now())
	if err != nil {
		log.Printf("digest: %v", err)
		return
	}
	log.Print(line)
}
