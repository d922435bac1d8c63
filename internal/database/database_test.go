package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDialector_UnsupportedDriver(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestDialector_KnownDrivers(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres"} {
		d, err := Dialector(&config.Config{DBDriver: driver, DBHost: "localhost", DBPort: "1"})
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}

	d, err := Dialector(&config.Config{DBDriver: "sqlite", DBPath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	SetDB(db)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, Migrate())
	require.NoError(t, Migrate())

	for _, table := range []string{"User", "project", "project_member", "task", "sub_task", "Post"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
	for _, idx := range indexes {
		assert.True(t, db.Migrator().HasIndex(idx.table, idx.name), "index %s", idx.name)
	}
}
