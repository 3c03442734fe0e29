package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := RunWithArgs("0.1.0-test", []string{"--version"})

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	assert.NoError(t, err)
	assert.Contains(t, output, "unshorts 0.1.0-test")
}

func TestVersionOutputFormat(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	_ = RunWithArgs("1.2.3", []string{"--version"})

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := strings.TrimSpace(buf.String())

	assert.Equal(t, "unshorts 1.2.3", output)
}

func TestAllSubcommandsRegistered(t *testing.T) {
	// Parsing a subcommand executes it, so registration is checked
	// without parsing.
	parser, _, _ := buildParser("test")
	for _, name := range []string{"watch", "add", "list", "remove", "stats", "status", "prune", "purge"} {
		assert.NotNil(t, parser.Find(name), "subcommand %q not registered", name)
	}
}

func TestPurgeRequiresAllFlag(t *testing.T) {
	err := RunWithArgs("test", []string{"purge"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestAddRequiresURL(t *testing.T) {
	err := RunWithArgs("test", []string{"add"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--url is required")
}

func TestRemoveRequiresURL(t *testing.T) {
	err := RunWithArgs("test", []string{"remove"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--url is required")
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		hours   float64
		wantErr bool
	}{
		{"30d", 720, false},
		{"24h", 24, false},
		{"2w", 336, false},
		{"", 0, true},
		{"d", 0, true},
		{"10x", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		d, err := parseDuration(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.hours, d.Hours(), "input %q", tt.in)
	}
}

func TestFormatDurationHuman(t *testing.T) {
	d, _ := parseDuration("30d")
	assert.Equal(t, "30 days", formatDurationHuman(d))

	d, _ = parseDuration("1d")
	assert.Equal(t, "1 day", formatDurationHuman(d))

	d, _ = parseDuration("5h")
	assert.Equal(t, "5 hours", formatDurationHuman(d))
}
