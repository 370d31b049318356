package service

import (
	"context"

	"github.com/google/uuid"

	"todo-cockpit/internal/model"
	"todo-cockpit/internal/repository"
)

// LabelService wraps label business rules around the repository.
type LabelService struct {
	repo *repository.LabelRepository
}

func NewLabelService(repo *repository.LabelRepository) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) List(ctx context.Context) ([]model.Label, error) {
	return s.repo.List(ctx)
}

func (s *LabelService) Create(ctx context.Context, name, color string) (*model.Label, error) {
	if name == "" {
		return nil, validationf("invalid label name")
	}
	if !model.ValidColor(color) {
		return nil, validationf("invalid label color")
	}

	label := model.Label{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
	if err := s.repo.Create(ctx, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// Update applies a partial change; nil fields stay untouched.
func (s *LabelService) Update(ctx context.Context, id string, name, color *string) (*model.Label, error) {
	if name != nil && *name == "" {
		return nil, validationf("invalid label name")
	}
	if color != nil && !model.ValidColor(*color) {
		return nil, validationf("invalid label color format")
	}

	label, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if name != nil {
		label.Name = *name
	}
	if color != nil {
		label.Color = *color
	}
	if err := s.repo.Save(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

// Delete removes the label and strips its id from every todo holding it, in
// one transaction.
func (s *LabelService) Delete(ctx context.Context, id string) error {
	return storeErr(s.repo.DeleteAndStripFromTodos(ctx, id))
}
