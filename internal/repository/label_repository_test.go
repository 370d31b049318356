package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-cockpit/internal/model"
)

func TestLabelRepositoryListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Label{ID: "1", Name: "urgent", Color: "#ff0000"}))
	require.NoError(t, repo.Create(ctx, &model.Label{ID: "2", Name: "chore", Color: "#00ff00"}))

	labels, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "chore", labels[0].Name)
	assert.Equal(t, "urgent", labels[1].Name)
}

func TestLabelRepositoryCountByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Label{ID: "1", Name: "urgent", Color: "#ff0000"}))

	count, err := repo.CountByIDs(ctx, []string{"1", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLabelRepositoryDeleteAndStripFromTodos(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)
	todoRepo := NewTodoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Label{ID: "gone", Name: "urgent", Color: "#ff0000"}))
	require.NoError(t, repo.Create(ctx, &model.Label{ID: "kept", Name: "chore", Color: "#00ff00"}))
	mustCreateTodo(t, todoRepo, model.Todo{ID: "t1", Title: "Both", Status: model.StatusInbox, Labels: []string{"gone", "kept"}})
	mustCreateTodo(t, todoRepo, model.Todo{ID: "t2", Title: "Only kept", Status: model.StatusInbox, Labels: []string{"kept"}})

	require.NoError(t, repo.DeleteAndStripFromTodos(ctx, "gone"))

	_, err := repo.Get(ctx, "gone")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	t1, err := todoRepo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, t1.Labels, "deleted label id removed from the todo")

	t2, err := todoRepo.Get(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, t2.Labels, "untouched todo keeps its labels")
}

func TestLabelRepositoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLabelRepository(db)

	err := repo.DeleteAndStripFromTodos(context.Background(), "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
