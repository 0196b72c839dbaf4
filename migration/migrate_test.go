package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIndexStatementsPerDialect(t *testing.T) {
	postgres := uniqueIndexStatements("postgres")
	require.Len(t, postgres, len(uniqueIndexes))
	for _, stmt := range postgres {
		assert.True(t, strings.HasPrefix(stmt, "CREATE UNIQUE INDEX IF NOT EXISTS"), stmt)
		assert.Contains(t, stmt, "WHERE deleted_at IS NULL")
	}

	sqlserver := uniqueIndexStatements("sqlserver")
	require.Len(t, sqlserver, len(uniqueIndexes))
	for _, stmt := range sqlserver {
		assert.True(t, strings.HasPrefix(stmt, "IF NOT EXISTS (SELECT 1 FROM sys.indexes"), stmt)
		assert.Contains(t, stmt, "WHERE deleted_at IS NULL")
		assert.NotContains(t, stmt, "CREATE UNIQUE INDEX IF NOT EXISTS")
	}
}
