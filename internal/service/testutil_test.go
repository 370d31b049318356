package service

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"todo-cockpit/internal/repository"
)

// setupRepos opens a throwaway database and builds the repository set the
// services run on.
func setupRepos(t *testing.T) (*gorm.DB, *repository.CategoryRepository, *repository.LabelRepository, *repository.TodoRepository) {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "cockpit_test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db, repository.NewCategoryRepository(db), repository.NewLabelRepository(db), repository.NewTodoRepository(db)
}
