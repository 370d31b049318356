package service

import (
	"context"

	"github.com/google/uuid"

	"todo-cockpit/internal/model"
	"todo-cockpit/internal/repository"
)

// DefaultCategoryLimit caps how many categories may exist at once.
const DefaultCategoryLimit = 5

// CategoryService wraps category business rules around the repository.
type CategoryService struct {
	repo  *repository.CategoryRepository
	limit int
}

// NewCategoryService builds a CategoryService. A limit <= 0 falls back to
// DefaultCategoryLimit.
func NewCategoryService(repo *repository.CategoryRepository, limit int) *CategoryService {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}
	return &CategoryService{repo: repo, limit: limit}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

// Create appends a new category at the end of the list.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, validationf("invalid category name")
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.limit) {
		return nil, validationf("category limit of %d reached", s.limit)
	}

	position, err := s.repo.NextPosition(ctx)
	if err != nil {
		return nil, err
	}

	category := model.Category{
		ID:       uuid.NewString(),
		Name:     name,
		Position: position,
	}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update renames a category. A nil name leaves it untouched.
func (s *CategoryService) Update(ctx context.Context, id string, name *string) (*model.Category, error) {
	if name != nil && *name == "" {
		return nil, validationf("invalid category name")
	}

	category, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if name != nil {
		category.Name = *name
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and clears it from referencing todos in one
// transaction.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return storeErr(s.repo.DeleteAndDetachTodos(ctx, id))
}

// Reorder persists the submitted positions atomically and returns the full
// refreshed list. A missing id means nothing is written.
func (s *CategoryService) Reorder(ctx context.Context, updates []repository.PositionUpdate) ([]model.Category, error) {
	if len(updates) == 0 {
		return nil, validationf("invalid categories data")
	}
	for _, u := range updates {
		if u.ID == "" {
			return nil, validationf("each category must have an id and position")
		}
	}

	categories, err := s.repo.ReorderPositions(ctx, updates)
	if err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}
