package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-cockpit/internal/model"
)

// statusRank orders the workflow states INBOX < TODO < DONE; the raw strings
// would sort DONE first.
const statusRank = "CASE status WHEN 'INBOX' THEN 0 WHEN 'TODO' THEN 1 WHEN 'DONE' THEN 2 ELSE 3 END"

// TodoPositionUpdate is one entry of a bulk todo reorder request. Reordering
// may move a todo between status groups, so the status is rewritten too.
type TodoPositionUpdate struct {
	ID       string
	Position int
	Status   model.Status
}

// TodoRepository handles CRUD and reordering for todos.
type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// listOrder is the fixed sort of every todo listing: workflow state first,
// important todos ahead of the rest, nearest due date next (todos without one
// last), most recently touched first among the remainder.
func listOrder(db *gorm.DB) *gorm.DB {
	return db.Order(statusRank).
		Order("is_important DESC").
		Order("due_date IS NULL, due_date ASC").
		Order("updated_at DESC")
}

func (r *TodoRepository) ListAll(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := listOrder(r.db.WithContext(ctx)).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepository) ListByCategory(ctx context.Context, categoryID string) ([]model.Todo, error) {
	var todos []model.Todo
	if err := listOrder(r.db.WithContext(ctx).Where("category_id = ?", categoryID)).
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// ListInbox returns the uncategorized todos.
func (r *TodoRepository) ListInbox(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := listOrder(r.db.WithContext(ctx).Where("category_id IS NULL")).
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepository) Get(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Save(ctx context.Context, todo *model.Todo) error {
	if err := r.db.WithContext(ctx).Save(todo).Error; err != nil {
		return fmt.Errorf("save todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReorderPositions rewrites position and status for every submitted todo
// inside a single transaction. A missing id rolls the whole transaction back
// with gorm.ErrRecordNotFound, leaving every row untouched. On success the
// affected todos are read back ordered by (category, status, position).
func (r *TodoRepository) ReorderPositions(ctx context.Context, updates []TodoPositionUpdate) ([]model.Todo, error) {
	ids := make([]string, len(updates))
	for i, u := range updates {
		ids[i] = u.ID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Todo{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return fmt.Errorf("check todos: %w", err)
		}
		if count != int64(len(updates)) {
			return gorm.ErrRecordNotFound
		}
		for _, u := range updates {
			if err := tx.Model(&model.Todo{}).Where("id = ?", u.ID).
				Updates(map[string]any{"position": u.Position, "status": u.Status}).Error; err != nil {
				return fmt.Errorf("update position of %s: %w", u.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var todos []model.Todo
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).
		Order("category_id ASC").
		Order(statusRank).
		Order("position ASC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}
