package testhelpers

import (
	"fmt"
	"testing"

	"github.com/lshigami/Marmosets/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Interview{},
		&model.PlanSlot{},
		&model.InterviewQuestion{},
		&model.Answer{},
		&model.Feedback{},
		&model.Analytics{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return db
}
