package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFixture = `
schemas:
  shop:
    tables:
      orders:
        columns: [id, customer_id, total]
        triggers: [orders_audit]
    views: [orders_view]
    routines: [place_order]
    events: [cleanup_event]
engines: [InnoDB]
logfileGroups: [lg1]
tablespaces: [ts1]
charsets: [utf8mb4]
collations: [utf8mb4_general_ci]
variables: [max_connections]
udfs: [my_udf]
`

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFixture), 0o644))

	m, err := LoadFixture(path)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"id", "customer_id", "total"}, m.MatchingColumns("shop", "orders", ""))
	require.Equal(t, []string{"orders_audit"}, m.MatchingTriggers("shop", "orders", ""))
	require.Equal(t, []string{"orders_view"}, m.MatchingViews("shop", ""))
	require.Equal(t, []string{"place_order"}, m.MatchingRoutines("shop", ""))
	require.Equal(t, []string{"cleanup_event"}, m.MatchingEvents("shop", ""))
	require.Equal(t, []string{"InnoDB"}, m.MatchingEngines(""))
	require.Equal(t, []string{"lg1"}, m.MatchingLogfileGroups(""))
	require.Equal(t, []string{"ts1"}, m.MatchingTablespaces(""))
	require.Equal(t, []string{"utf8mb4"}, m.MatchingCharsets(""))
	require.Equal(t, []string{"utf8mb4_general_ci"}, m.MatchingCollations(""))
	require.Equal(t, []string{"max_connections"}, m.MatchingVariables(""))
	require.Equal(t, []string{"my_udf"}, m.MatchingUdfs(""))
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFixtureInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schemas: [this is not a map]"), 0o644))

	_, err := LoadFixture(path)
	require.Error(t, err)
}
