package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// detourGrid forces the only route around a wall in the middle row.
const detourGrid = "rows:\n  - \"...\"\n  - \"##.\"\n  - \"...\"\n"

func TestSearch_Found(t *testing.T) {
	grid := writeTemp(t, "grid.yaml", detourGrid)
	code, out, _ := run(t, "search", "--grid", grid, "--start", "0,0", "--goal", "2,0")
	require.Equal(t, ExitOK, code, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "path found: 7 cells, cost 6, expanded "), lines[0])
	assert.Equal(t, []string{
		"step 1: (0, 0) right",
		"step 2: (0, 1) right",
		"step 3: (0, 2) down",
		"step 4: (1, 2) down",
		"step 5: (2, 2) left",
		"step 6: (2, 1) left",
	}, lines[1:])
}

func TestSearch_ExitCodes(t *testing.T) {
	walled := writeTemp(t, "walled.yaml", "rows:\n  - \".#.\"\n")
	cases := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"NoPath", []string{"search", "--grid", walled, "--start", "0,0", "--goal", "0,2"}, ExitNoPath, "no path found", ""},
		{"Truncated", []string{"search", "--size", "8", "--seed", "1", "--start", "0,0", "--goal", "0,7", "--max-expansions", "1"},
			ExitNoPath, "expansion limit reached", ""},
		{"BlockedGoal", []string{"search", "--grid", walled, "--start", "0,0", "--goal", "0,1"}, ExitInvalid, "", "blocked"},
		{"OutOfBounds", []string{"search", "--grid", walled, "--start", "0,0", "--goal", "3,3"}, ExitInvalid, "", "out of bounds"},
		{"BadCell", []string{"search", "--start", "zero,0"}, ExitInvalid, "", "--start"},
		{"BadSize", []string{"search", "--size", "0"}, ExitInvalid, "", "dimensions"},
		{"MissingConfig", []string{"search", "--config", filepath.Join(t.TempDir(), "none.yaml")}, ExitInvalid, "", "none.yaml"},
		{"UnknownFlag", []string{"search", "--bogus"}, ExitInvalid, "", "bogus"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.args...)
			assert.Equal(t, tc.code, code, "stdout=%q stderr=%q", out, errOut)
			assert.Contains(t, out, tc.stdout)
			assert.Contains(t, errOut, tc.stderr)
		})
	}
}

func TestSearch_GeneratedOpenGrid(t *testing.T) {
	cfg := writeTemp(t, "open.yaml", "grid:\n  generate:\n    obstacle_probability: 0\n")
	code, out, errOut := run(t, "search", "--config", cfg, "--log-level", "debug", "--size", "6", "--goal", "5,5")
	require.Equal(t, ExitOK, code, errOut)
	assert.True(t, strings.HasPrefix(out, "path found: 11 cells, cost 10, expanded "), out)
	assert.Contains(t, errOut, "grid ready")
	assert.Contains(t, errOut, "astar search finished")
}

func TestBatch_WritesMetrics(t *testing.T) {
	dir := t.TempDir()
	grid := writeTemp(t, "grid.yaml", detourGrid)
	prom := filepath.Join(dir, "gridpath.prom")
	cfg := writeTemp(t, "run.yaml", `
grid:
  file: `+grid+`
search:
  concurrency: 2
  queries:
    - {start: {row: 0, col: 0}, goal: {row: 2, col: 0}}
    - {start: {row: 2, col: 2}, goal: {row: 2, col: 2}}
    - {start: {row: 0, col: 0}, goal: {row: 0, col: 2}}
metrics:
  textfile: `+prom+`
`)

	code, out, errOut := run(t, "batch", "--config", cfg)
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "query 0: (0, 0) -> (2, 0): cost 6")
	assert.Contains(t, out, "query 1: (2, 2) -> (2, 2): cost 0")
	assert.Contains(t, out, "query 2: (0, 0) -> (0, 2): cost 2")
	assert.Contains(t, out, "3/3 queries found a path")

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gridpath_searches_total{outcome="found"} 3`)
}

func TestBatch_Errors(t *testing.T) {
	code, _, errOut := run(t, "batch")
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, errOut, "search.queries is empty")

	grid := writeTemp(t, "grid.yaml", detourGrid)
	cfg := writeTemp(t, "run.yaml", "grid:\n  file: "+grid+"\nsearch:\n  queries:\n    - {start: {row: 0, col: 0}, goal: {row: 1, col: 0}}\n")
	code, _, errOut = run(t, "batch", "--config", cfg)
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, errOut, "query 0")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "gridpath "+Version+"\n", out)
}

func TestParseCell(t *testing.T) {
	c, err := parseCell(" 3, 14")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 14}, c)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parseCell(bad)
		assert.Error(t, err, bad)
	}
}
