package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initMigration = "../../../db/migrations/000001_init.up.sql"

// tableColumns pulls the column names out of a CREATE TABLE block in the
// init migration.
func tableColumns(t *testing.T, table string) map[string]bool {
	t.Helper()
	raw, err := os.ReadFile(initMigration)
	require.NoError(t, err)

	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
	m := re.FindStringSubmatch(string(raw))
	require.NotNil(t, m, "table %s not found in %s", table, initMigration)

	cols := map[string]bool{}
	for _, line := range strings.Split(m[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cols[fields[0]] = true
	}
	return cols
}

// The SQL in each repository names columns by hand, so a rename in the
// migration that misses a query (or the other way round) only surfaces at
// runtime. Pin the columns every repository touches to the schema.
func TestInitMigrationMatchesRepositoryColumns(t *testing.T) {
	queried := map[string][]string{
		"users":              {"id", "email", "password_hash", "name", "avatar_url", "created_at", "updated_at"},
		"habits":             {"id", "user_id", "name", "icon", "color", "streak", "completions", "created_at", "updated_at"},
		"mood_logs":          {"id", "user_id", "mood", "energy", "stress", "logged_at", "created_at"},
		"stress_assessments": {"id", "user_id", "stress_level", "stress_factors", "symptoms", "coping_strategies", "notes", "created_at"},
		"journals":           {"id", "user_id", "content", "created_at"},
		"blogs":              {"id", "title", "content", "image_url", "tags", "author", "created_at", "updated_at"},
	}

	for table, cols := range queried {
		t.Run(table, func(t *testing.T) {
			defined := tableColumns(t, table)
			for _, col := range cols {
				assert.True(t, defined[col], "column %s.%s is queried but not defined", table, col)
			}
		})
	}
}
