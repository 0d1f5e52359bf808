package migration

import (
	"io"
	"strings"
	"testing"

	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReadsEmbeddedLedgerSchema(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, identifier, err := src.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "ledger", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	for _, model := range ledger.Models() {
		table := model.(interface{ TableName() string }).TableName()
		assert.True(t, strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table+" ("), "missing table %s", table)
	}

	down, _, err := src.ReadDown(version)
	require.NoError(t, err)
	defer down.Close()
}

func TestRunAutoMigratesNonPostgresDialects(t *testing.T) {
	conn, err := db.NewTest()
	require.NoError(t, err)

	require.NoError(t, Run(conn, db.DialectSQLite))

	for _, model := range ledger.Models() {
		assert.True(t, conn.Migrator().HasTable(model))
	}
}

func TestRunRequiresConnection(t *testing.T) {
	assert.Error(t, Run(nil, db.DialectPostgres))
	assert.Error(t, RunMigrations(nil))
}
