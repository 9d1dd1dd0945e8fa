package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Stdout(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run([]string{"-rows", "5", "-seed", "9"}, &a))
	require.NoError(t, run([]string{"-rows", "5", "-seed", "9"}, &b))

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 6, strings.Count(a.String(), "\n"))
}

func TestRun_File(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "zips.csv")
	require.NoError(t, run([]string{"-out", out, "-rows", "3", "-regions", "OK, TX"}, &bytes.Buffer{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines[1:] {
		assert.True(t, strings.Contains(line, ",OK,") || strings.Contains(line, ",TX,"), line)
	}
}

func TestRun_NegativeRows(t *testing.T) {
	err := run([]string{"-rows", "-1"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSplitRegions(t *testing.T) {
	assert.Equal(t, []string{"AK", "CA"}, splitRegions(" AK ,,CA"))
	assert.Empty(t, splitRegions(""))
}
