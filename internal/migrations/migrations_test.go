package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	ups, err := fs.Glob(MigrationFiles, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(MigrationFiles, down)
		require.NoError(t, err, "missing %s", down)
	}
}

func TestMigrationFiles_TimeBucketTupleIsUnique(t *testing.T) {
	b, err := fs.ReadFile(MigrationFiles, "000001_create_star_schema.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(b), "UNIQUE (date_value, year, month, day, hour, weekday)")
}

func TestPreviousVersion(t *testing.T) {
	require.Equal(t, database.NilVersion, previousVersion(1))
	require.Equal(t, 2, previousVersion(3))
}
