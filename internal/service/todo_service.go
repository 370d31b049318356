package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo-cockpit/internal/model"
	"todo-cockpit/internal/repository"
	"todo-cockpit/internal/stats"
)

// TodoInput carries the fields accepted when creating a todo. A zero Status
// defaults to INBOX; an empty CategoryID means uncategorized.
type TodoInput struct {
	Title       string
	DueDate     *time.Time
	IsImportant bool
	Status      model.Status
	CategoryID  string
	Labels      []string
}

// TodoPatch carries a partial update. Nil pointers leave the field untouched.
// ClearDueDate distinguishes "remove the due date" from "leave it alone",
// and an explicit empty CategoryID moves the todo back to the inbox.
type TodoPatch struct {
	Title        *string
	DueDate      *time.Time
	ClearDueDate bool
	IsImportant  *bool
	Status       *model.Status
	CategoryID   *string
	Labels       *[]string
	Position     *int
}

// TodoFilter selects which todos a listing returns. A nil CategoryID means
// all todos; a pointer to the empty string means the inbox (no category);
// anything else filters to that category.
type TodoFilter struct {
	CategoryID *string
}

// TodoService wraps todo business rules around the repositories. Category
// and label references are checked against their stores before any write.
type TodoService struct {
	todoRepo     *repository.TodoRepository
	categoryRepo *repository.CategoryRepository
	labelRepo    *repository.LabelRepository
}

func NewTodoService(todoRepo *repository.TodoRepository, categoryRepo *repository.CategoryRepository, labelRepo *repository.LabelRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo, categoryRepo: categoryRepo, labelRepo: labelRepo}
}

func (s *TodoService) List(ctx context.Context, filter TodoFilter) ([]model.Todo, error) {
	switch {
	case filter.CategoryID == nil:
		return s.todoRepo.ListAll(ctx)
	case *filter.CategoryID == "":
		return s.todoRepo.ListInbox(ctx)
	default:
		return s.todoRepo.ListByCategory(ctx, *filter.CategoryID)
	}
}

func (s *TodoService) Get(ctx context.Context, id string) (*model.Todo, error) {
	todo, err := s.todoRepo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, input TodoInput) (*model.Todo, error) {
	if input.Title == "" {
		return nil, validationf("invalid todo title")
	}

	status := input.Status
	if status == "" {
		status = model.StatusInbox
	}
	if !status.Valid() {
		return nil, validationf("invalid todo status %q", input.Status)
	}

	categoryID, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	labels, err := s.resolveLabels(ctx, input.Labels)
	if err != nil {
		return nil, err
	}

	todo := model.Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		DueDate:     input.DueDate,
		IsImportant: input.IsImportant,
		Status:      status,
		CategoryID:  categoryID,
		Labels:      labels,
	}
	if err := s.todoRepo.Create(ctx, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Update(ctx context.Context, id string, patch TodoPatch) (*model.Todo, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, validationf("invalid todo title")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, validationf("invalid todo status %q", *patch.Status)
	}

	todo, err := s.todoRepo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	switch {
	case patch.DueDate != nil:
		todo.DueDate = patch.DueDate
	case patch.ClearDueDate:
		todo.DueDate = nil
	}
	if patch.IsImportant != nil {
		todo.IsImportant = *patch.IsImportant
	}
	if patch.Status != nil {
		todo.Status = *patch.Status
	}
	if patch.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		todo.CategoryID = categoryID
	}
	if patch.Labels != nil {
		labels, err := s.resolveLabels(ctx, *patch.Labels)
		if err != nil {
			return nil, err
		}
		todo.Labels = labels
	}
	if patch.Position != nil {
		todo.Position = *patch.Position
	}

	if err := s.todoRepo.Save(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	return storeErr(s.todoRepo.Delete(ctx, id))
}

// Reorder persists the submitted positions and statuses atomically and
// returns the affected todos in their new order. A missing id means nothing
// is written.
func (s *TodoService) Reorder(ctx context.Context, updates []repository.TodoPositionUpdate) ([]model.Todo, error) {
	if len(updates) == 0 {
		return nil, validationf("invalid todos data")
	}
	for _, u := range updates {
		if u.ID == "" || !u.Status.Valid() {
			return nil, validationf("each todo must have an id, position, and status")
		}
	}

	todos, err := s.todoRepo.ReorderPositions(ctx, updates)
	if err != nil {
		return nil, storeErr(err)
	}
	return todos, nil
}

// Stats summarizes the todos selected by filter relative to now.
func (s *TodoService) Stats(ctx context.Context, filter TodoFilter, now time.Time) (stats.Summary, error) {
	todos, err := s.List(ctx, filter)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(todos, now), nil
}

// resolveCategory normalizes the empty id to nil (inbox) and confirms any
// other id references an existing category.
func (s *TodoService) resolveCategory(ctx context.Context, id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	if _, err := s.categoryRepo.Get(ctx, id); err != nil {
		return nil, storeErr(err)
	}
	return &id, nil
}

// resolveLabels deduplicates the ids and confirms every one references an
// existing label. The result is never nil so the stored JSON stays an array.
func (s *TodoService) resolveLabels(ctx context.Context, ids []string) ([]string, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, validationf("invalid label id")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) == 0 {
		return []string{}, nil
	}

	count, err := s.labelRepo.CountByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if count != int64(len(unique)) {
		return nil, ErrNotFound
	}
	return unique, nil
}
