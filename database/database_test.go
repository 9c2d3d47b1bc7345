package database

import (
	"path/filepath"
	"testing"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverFor(t *testing.T) {
	cases := map[string]string{
		"":                                   DriverSQLiteMemory,
		"memory":                             DriverSQLiteMemory,
		"./data/nutriplan.db":                DriverSQLiteFile,
		"postgres://u:p@localhost/nutriplan": DriverPostgres,
		"postgresql://localhost/nutriplan":   DriverPostgres,
		"host=localhost user=u dbname=n":     DriverPostgres,
	}
	for dsn, want := range cases {
		assert.Equal(t, want, DriverFor(dsn), "dsn %q", dsn)
	}
}

func TestInitFileAndMigrate(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "nutriplan.db")

	db, err := Init(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.MealPlan{}))
	assert.True(t, db.Migrator().HasTable(&models.Meal{}))
	assert.True(t, db.Migrator().HasIndex(&models.MealPlan{}, "idx_meal_plans_user_date"))
	assert.Same(t, db, GetDB())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestInitMemoryUsesSingleConnection(t *testing.T) {
	db, err := Init("memory")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.True(t, db.Migrator().HasTable(&models.UserProfile{}))
}
