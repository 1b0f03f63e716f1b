package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(embeddedMigrations, "migrations")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestInitialMigrationSeedsGroups(t *testing.T) {
	data, err := fs.ReadFile(embeddedMigrations, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(data), "('Admin'), ('Cliente')")
	require.Contains(t, string(data), "promotion_id uuid REFERENCES promotions(id) ON DELETE SET NULL")
}

func TestMigrateRequiresURL(t *testing.T) {
	require.Error(t, Migrate(""))
	require.Error(t, RunMigrations(nil))
}
