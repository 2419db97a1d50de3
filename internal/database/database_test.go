package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/config"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "postgres",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "chef",
				Password: "pw", Name: "recipes", SSLMode: "disable",
			},
			expected: "host=db user=chef password=pw dbname=recipes port=5432 sslmode=disable",
		},
		{
			name:     "sqlite",
			config:   DatabaseConfig{Driver: "sqlite", Path: "recipes.sqlite"},
			expected: "recipes.sqlite",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringRedactsPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", User: "chef", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "chef")
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(&config.Config{
		DBDriver: "postgres", DBHost: "db", DBPort: "6543", DBUser: "chef",
		DBPassword: "pw", DBName: "cookbook", DBSSLMode: "require", DBLogSQL: true,
	})

	assert.Equal(t, DatabaseConfig{
		Driver: "postgres", Host: "db", Port: "6543", User: "chef",
		Password: "pw", Name: "cookbook", SSLMode: "require", LogSQL: true,
	}, cfg)
}

func TestInitDatabaseSQLiteAndMigrate(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.sqlite")})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Migrate(db))
	for _, table := range []string{"users", "recipes", "tags", "ingredients", "recipe_tags", "recipe_ingredients", "oauth_clients", "oauth_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Recipe{}, "price"))

	// running it again is a no-op
	require.NoError(t, Migrate(db))
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitDatabaseGivesUpAfterRetries(t *testing.T) {
	saved := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = saved })

	// a directory that does not exist cannot hold the database file
	path := filepath.Join(t.TempDir(), "missing", "dir", "test.sqlite")
	_, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
}
