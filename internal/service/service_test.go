package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"lab_backend/internal/config"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a private in-memory database, migrated and seeded the same
// way the real server does it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret!"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Sheet.ReviewIntervalDays = 14
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "tester", Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newAttemptService(db *gorm.DB) *AttemptService {
	return NewAttemptService(
		repository.NewAttemptRepository(db),
		repository.NewDiscussionRepository(db),
	)
}

// createTestAttempt inserts an attempt directly, bypassing service
// validation, so tests can shape history freely.
func createTestAttempt(t *testing.T, db *gorm.DB, a *model.Attempt) *model.Attempt {
	t.Helper()
	if a.Status == "" {
		a.Status = model.Attempting
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}
