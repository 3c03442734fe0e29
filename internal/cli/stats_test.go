package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/unshorts/internal/history"
)

func TestStatsCommand_HumanOutput(t *testing.T) {
	store, _ := testStore(t)
	store.Append(history.Record{URL: "u1", Date: "2024-01-01", Type: history.TypeShorts})
	store.Append(history.Record{URL: "u2", Date: "2024-01-01", Type: history.TypeShorts})
	store.Append(history.Record{URL: "u3", Date: "2024-01-01", Type: history.TypeShorts})
	store.Append(history.Record{URL: "u4", Date: "2024-01-02", Type: history.TypeShorts})

	cmd := &StatsCommand{globals: &GlobalFlags{}}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, out, "Shorts Stats")
	assert.Contains(t, out, "Most conversions in one day: 2024-01-01 with 3 conversions")
	assert.Contains(t, out, "Avg/day: 2")
	assert.Contains(t, out, "Regular Videos Stats")
	assert.Contains(t, out, "No conversions yet.")
}

func TestStatsCommand_EmptyHistory(t *testing.T) {
	store, _ := testStore(t)

	cmd := &StatsCommand{globals: &GlobalFlags{}}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, out, "Shorts Stats")
	assert.Contains(t, out, "Regular Videos Stats")
	assert.Contains(t, out, "No conversions yet.")
}

func TestStatsCommand_JSONOutput(t *testing.T) {
	store, _ := testStore(t)
	store.Append(history.Record{URL: "u1", Date: "2024-01-01", Type: history.TypeRegular})

	cmd := &StatsCommand{globals: &GlobalFlags{JSON: true}}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, out, `"top_day": "2024-01-01"`)
	assert.Contains(t, out, "No shorts conversions yet.")
}
