package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderSingleChart(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "render", "cache-misses", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved: MT25082_cache_misses.png\n")

	_, err = os.Stat(filepath.Join(dir, "MT25082_cache_misses.png"))
	require.NoError(t, err)
}

func TestRenderAllCharts(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "render", "all", "--output-dir", dir)
	require.NoError(t, err)

	want := []string{
		"MT25082_cache_misses.png",
		"MT25082_cycles_per_byte.png",
		"MT25082_latency.png",
		"MT25082_throughput.png",
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(want))
	for i, file := range want {
		assert.Equal(t, "Saved: "+file, lines[i])
		_, err := os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, file)
	}
}

func TestRenderOutputDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOCKPLOT_OUTPUT_DIR", dir)

	out, err := runCommand(t, "render", "throughput")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved: MT25082_throughput.png\n")

	_, err = os.Stat(filepath.Join(dir, "MT25082_throughput.png"))
	require.NoError(t, err)
}

func TestRenderUnwritableDirectoryFails(t *testing.T) {
	_, err := runCommand(t, "render", "latency", "-o", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestListCharts(t *testing.T) {
	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "cache-misses\ncycles-per-byte\nlatency\nthroughput\n", out)
}

func TestDescribeChart(t *testing.T) {
	out, err := runCommand(t, "describe", "throughput")
	require.NoError(t, err)
	assert.Contains(t, out, "file: MT25082_throughput.png")
	assert.Contains(t, out, "scale: log2")
}

func TestDescribeUnknownChart(t *testing.T) {
	_, err := runCommand(t, "describe", "flamegraph")
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runCommand(t, "list", "--log-level", "chatty")
	require.Error(t, err)
}
