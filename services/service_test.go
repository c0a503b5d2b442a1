package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dgf281219-blip/metodo/config"
	"github.com/dgf281219-blip/metodo/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would get its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, userID string) *models.User {
	t.Helper()
	user := &models.User{
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   "Test User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// fixedClock pins time so "today" and day numbering are deterministic.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
