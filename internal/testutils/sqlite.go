package testutils

import (
	"fmt"
	"testing"

	"sos-escalation-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory SQLite database with the full schema.
// Each call gets its own database; it is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("%sfile:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		database.SQLitePrefix, uuid.NewString())

	db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
