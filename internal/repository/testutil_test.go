package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// setupTestDB opens a throwaway SQLite database with migrations applied.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "cockpit_test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
