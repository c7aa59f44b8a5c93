package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{"0644", 0o644, false},
		{"755", 0o755, false},
		{"4755", 0o755 | os.ModeSetuid, false},
		{"1777", 0o777 | os.ModeSticky, false},
		{"0888", 0, true},
		{"17777", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(nil))
	assert.Nil(t, splitLines([]byte("\n")))
	assert.Equal(t, []string{"a", "", "b"}, splitLines([]byte("a\n\nb\n")))
	assert.Equal(t, []string{"a", "b"}, splitLines([]byte("a\r\nb")))
}

func TestInitLogging(t *testing.T) {
	t.Cleanup(resetFlags)

	resetFlags()
	require.NoError(t, initLogging())

	logLevel, logFormat = "debug", "json"
	require.NoError(t, initLogging())

	logLevel = "loud"
	assert.Error(t, initLogging())

	logLevel, logFormat = "info", "xml"
	assert.ErrorContains(t, initLogging(), "unknown log format")
}

func TestRootCommand_Execute(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()

	rootCmd.SetArgs([]string{"version"})
	out, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)
	assert.Contains(t, out, "gkit dev")

	rootCmd.SetArgs([]string{"--log-level", "loud", "version"})
	_, err = captureOutput(t, rootCmd.Execute)
	assert.Error(t, err)
	rootCmd.SetArgs(nil)
}
