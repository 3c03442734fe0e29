package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/unshorts/internal/config"
)

func TestStatusCommand_HumanOutput(t *testing.T) {
	store, _ := seedHistory(t)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "test"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, config.DefaultConfig()))
	})

	assert.Contains(t, out, "unshorts Status")
	assert.Contains(t, out, "Records:       3 (2 shorts, 1 regular)")
	assert.Contains(t, out, "Oldest:        2024-01-01")
	assert.Contains(t, out, "Newest:        2024-01-03")
	assert.Contains(t, out, "keep forever")
	assert.Contains(t, out, "Poll interval: 1s")
}

func TestStatusCommand_RetentionDaysShown(t *testing.T) {
	store, _ := testStore(t)

	cfg := config.DefaultConfig()
	cfg.Retention.KeepForever = false
	cfg.Retention.Days = 14

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "test"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, cfg))
	})

	assert.Contains(t, out, "14 days")
}

func TestStatusCommand_JSONOutput(t *testing.T) {
	store, _ := seedHistory(t)

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, config.DefaultConfig()))
	})

	assert.Contains(t, out, `"version": "1.0.0"`)
	assert.Contains(t, out, `"total_records": 3`)
	assert.Contains(t, out, `"shorts_records": 2`)
	assert.Contains(t, out, `"regular_records": 1`)
	assert.Contains(t, out, `"oldest_date": "2024-01-01"`)
}
