package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-cockpit/internal/repository"
)

func TestCategoryServiceCreateAssignsPositions(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)
	ctx := context.Background()

	work, err := svc.Create(ctx, "Work")
	require.NoError(t, err)
	assert.NotEmpty(t, work.ID)
	assert.Equal(t, "Work", work.Name)
	assert.Equal(t, 0, work.Position)

	home, err := svc.Create(ctx, "Home")
	require.NoError(t, err)
	assert.Equal(t, 1, home.Position)
}

func TestCategoryServiceCreateValidation(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)

	_, err := svc.Create(context.Background(), "")
	assert.True(t, IsValidation(err), "empty name must be a validation error, got %v", err)
}

func TestCategoryServiceCreateEnforcesLimit(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 2)
	ctx := context.Background()

	_, err := svc.Create(ctx, "One")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Two")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Three")
	assert.True(t, IsValidation(err), "limit breach must be a validation error, got %v", err)

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2, "nothing written past the limit")
}

func TestCategoryServiceUpdate(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Work")
	require.NoError(t, err)

	name := "Office"
	updated, err := svc.Update(ctx, created.ID, &name)
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, created.Position, updated.Position)

	empty := ""
	_, err = svc.Update(ctx, created.ID, &empty)
	assert.True(t, IsValidation(err))

	_, err = svc.Update(ctx, "ghost", &name)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryServiceDeleteMissing(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryServiceReorder(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)
	ctx := context.Background()

	work, err := svc.Create(ctx, "Work")
	require.NoError(t, err)
	home, err := svc.Create(ctx, "Home")
	require.NoError(t, err)

	categories, err := svc.Reorder(ctx, []repository.PositionUpdate{
		{ID: home.ID, Position: 0},
		{ID: work.ID, Position: 1},
	})
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Home", categories[0].Name)
	assert.Equal(t, "Work", categories[1].Name)
}

func TestCategoryServiceReorderValidation(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)
	ctx := context.Background()

	_, err := svc.Reorder(ctx, nil)
	assert.True(t, IsValidation(err), "empty reorder must be rejected")

	_, err = svc.Reorder(ctx, []repository.PositionUpdate{{ID: "", Position: 0}})
	assert.True(t, IsValidation(err), "entries without an id must be rejected")
}

func TestCategoryServiceReorderMissingID(t *testing.T) {
	_, categoryRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(categoryRepo, 5)
	ctx := context.Background()

	work, err := svc.Create(ctx, "Work")
	require.NoError(t, err)

	_, err = svc.Reorder(ctx, []repository.PositionUpdate{
		{ID: work.ID, Position: 5},
		{ID: "ghost", Position: 0},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, categories[0].Position, "failed reorder leaves positions untouched")
}
