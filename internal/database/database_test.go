package database_test

import (
	"testing"

	"tasklist/internal/config"
	"tasklist/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigrateClose(t *testing.T) {
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: database.MemoryDSN(uuid.NewString())})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	for _, table := range []string{"users", "lists", "tasks", "user_settings"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	assert.NoError(t, database.Close(db))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
