package migrations

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryVersionHasUpAndDown(t *testing.T) {
	for v := 1; v <= Version; v++ {
		up, err := fs.Glob(FS, fmt.Sprintf("%06d_*.up.sql", v))
		require.NoError(t, err)
		down, err := fs.Glob(FS, fmt.Sprintf("%06d_*.down.sql", v))
		require.NoError(t, err)

		assert.Len(t, up, 1, "version %d up", v)
		assert.Len(t, down, 1, "version %d down", v)
	}
}

func TestInitCreatesLedgerTables(t *testing.T) {
	body, err := fs.ReadFile(FS, "000001_init.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "ads", "ad_views", "transactions", "referrals", "withdraw_requests"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
