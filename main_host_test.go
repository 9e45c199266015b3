//go:build !tinygo

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, replayKeys(&buf, "12A3*"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "A"))
	assert.True(t, strings.HasSuffix(lines[2], "12+"))
	assert.True(t, strings.HasSuffix(lines[4], " 15"))
}

func TestReplayKeysRejectsForeignKey(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, replayKeys(&buf, "1x"))
}

func TestPrintFrame(t *testing.T) {
	var buf bytes.Buffer
	printFrame(&buf, []string{"M:7     ", "12+3    "})
	assert.Equal(t, "[M:7 | 12+3]\n", buf.String())
}

func TestKeysCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"keys", "5DC2*"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "500")
}
