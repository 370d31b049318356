package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-cockpit/internal/model"
)

// PositionUpdate is one entry of a bulk reorder request.
type PositionUpdate struct {
	ID       string
	Position int
}

// CategoryRepository manages category rows and their display positions.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextPosition returns the position one past the current highest, so new
// categories land at the end of the list.
func (r *CategoryRepository) NextPosition(ctx context.Context) (int, error) {
	var last model.Category
	err := r.db.WithContext(ctx).Order("position DESC").First(&last).Error
	switch {
	case err == nil:
		return last.Position + 1, nil
	case err == gorm.ErrRecordNotFound:
		return 0, nil
	default:
		return 0, err
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// DeleteAndDetachTodos clears category_id on every todo referencing the
// category and removes the category row, all in one transaction, so no
// intermediate state is ever observable.
func (r *CategoryRepository) DeleteAndDetachTodos(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Todo{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach todos: %w", err)
		}
		res := tx.Delete(&model.Category{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ReorderPositions rewrites the position of every submitted category inside a
// single transaction. If any id does not match an existing row the transaction
// rolls back with gorm.ErrRecordNotFound and nothing is written. The refreshed
// full list, ordered by position, is returned on success.
func (r *CategoryRepository) ReorderPositions(ctx context.Context, updates []PositionUpdate) ([]model.Category, error) {
	ids := make([]string, len(updates))
	for i, u := range updates {
		ids[i] = u.ID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return fmt.Errorf("check categories: %w", err)
		}
		if count != int64(len(updates)) {
			return gorm.ErrRecordNotFound
		}
		for _, u := range updates {
			if err := tx.Model(&model.Category{}).Where("id = ?", u.ID).
				Update("position", u.Position).Error; err != nil {
				return fmt.Errorf("update position of %s: %w", u.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.List(ctx)
}
