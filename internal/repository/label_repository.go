package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-cockpit/internal/model"
)

// LabelRepository manages label rows and keeps todo label lists consistent
// when labels go away.
type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) List(ctx context.Context) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) Get(ctx context.Context, id string) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).First(&label, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// CountByIDs reports how many of the given ids exist, for membership checks
// before attaching labels to a todo.
func (r *LabelRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Label{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LabelRepository) Create(ctx context.Context, label *model.Label) error {
	if err := r.db.WithContext(ctx).Create(label).Error; err != nil {
		return fmt.Errorf("create label: %w", err)
	}
	return nil
}

func (r *LabelRepository) Save(ctx context.Context, label *model.Label) error {
	if err := r.db.WithContext(ctx).Save(label).Error; err != nil {
		return fmt.Errorf("save label: %w", err)
	}
	return nil
}

// DeleteAndStripFromTodos removes the label id from every todo holding it and
// deletes the label row in the same transaction, so a todo never references a
// label that is gone. The labels column is JSON, so candidates are narrowed
// with a LIKE on the quoted id and confirmed in Go.
func (r *LabelRepository) DeleteAndStripFromTodos(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todos []model.Todo
		if err := tx.Where("labels LIKE ?", `%"`+id+`"%`).Find(&todos).Error; err != nil {
			return fmt.Errorf("find labelled todos: %w", err)
		}
		for _, todo := range todos {
			if !todo.HasLabel(id) {
				continue
			}
			kept := make([]string, 0, len(todo.Labels)-1)
			for _, labelID := range todo.Labels {
				if labelID != id {
					kept = append(kept, labelID)
				}
			}
			if err := tx.Model(&model.Todo{}).Where("id = ?", todo.ID).
				Update("labels", kept).Error; err != nil {
				return fmt.Errorf("strip label from todo %s: %w", todo.ID, err)
			}
		}

		res := tx.Delete(&model.Label{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete label: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
