package service

import (
	"testing"

	"pms-tracker/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second connection to ":memory:" would see a different database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Entry{}, &model.Team{}))
	return db
}

func countRows(t *testing.T, db *gorm.DB, dst interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(dst).Count(&n).Error)
	return n
}
