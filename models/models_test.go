package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTranslationTableName(t *testing.T) {
	assert.Equal(t, "translations", Translation{}.TableName())
}

func TestTranslationMigrates(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&Translation{}))
	assert.True(t, gdb.Migrator().HasTable("translations"))
}
