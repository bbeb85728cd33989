package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/algotrace/race"
	"github.com/katalvlaran/algotrace/step"
)

// run executes the root command with args and an empty config directory
// and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runSplit(t, args...)
	return out, err
}

// runSplit is run that also returns stderr.
func runSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	prevLogger, prevTracer := slog.Default(), otel.GetTracerProvider()
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		otel.SetTracerProvider(prevTracer)
	})

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "bubble")
	assert.Contains(t, out, "Dijkstra's Algorithm")

	out, err = run(t, "list", "--category", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal")
	assert.NotContains(t, out, "bubble")

	_, err = run(t, "list", "--category", "trees")
	assert.Error(t, err)
}

func TestTraceJSON(t *testing.T) {
	out, err := run(t, "trace", "bubble", "--values", "3, 1, 2", "--json")
	require.NoError(t, err)

	var tr step.Trace
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	require.NotEmpty(t, tr)
	assert.Equal(t, step.ActionStart, tr[0].Action)
	assert.Equal(t, step.ActionComplete, tr.Last().Action)
	assert.Equal(t, []float64{1, 2, 3}, tr.Last().Values)
}

func TestTraceSearchInput(t *testing.T) {
	out, err := run(t, "trace", "binary", "--values", "[7, 1, 5, 3] | 5", "--json")
	require.NoError(t, err)

	var tr step.Trace
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	found, ok := tr.Last().Params.Bool("found")
	assert.True(t, ok)
	assert.True(t, found)

	_, err = run(t, "trace", "linear", "--values", "1, 2")
	assert.ErrorIs(t, err, errInputFlags)
	_, err = run(t, "trace", "linear", "--values", "[1] | 1", "--target", "1")
	assert.ErrorIs(t, err, errInputFlags)
	_, err = run(t, "trace", "bubble", "--values", "1", "--random")
	assert.ErrorIs(t, err, errInputFlags)
}

func TestTraceGraph(t *testing.T) {
	out, err := run(t, "trace", "bfs", "--vertices", "5", "--seed", "7", "--legacy")
	require.NoError(t, err)
	var tuples []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &tuples))
	assert.NotEmpty(t, tuples)

	out, err = run(t, "trace", "prim", "--vertices", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "Prim's Algorithm")

	_, err = run(t, "trace", "dfs", "--values", "1,2")
	assert.ErrorIs(t, err, errInputFlags)
	_, err = run(t, "trace", "bogosort")
	assert.Error(t, err)
}

func TestRace(t *testing.T) {
	out, err := run(t, "race", "bubble", "quick", "--values", "5,1,4,2,8,7,3,6", "--interval", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "quick wins, ")
	assert.Contains(t, out, "% faster than bubble")
	assert.Contains(t, out, "bubble")

	_, err = run(t, "race", "bubble", "binary", "--values", "1,2")
	assert.ErrorContains(t, err, "cannot race")
	_, err = run(t, "race", "bubble")
	assert.Error(t, err)
}

func TestTraceTopology(t *testing.T) {
	out, err := run(t, "trace", "bfs", "--topology", "path", "--vertices", "4", "--json")
	require.NoError(t, err)
	var tr step.Trace
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, []int{0, 1, 2, 3}, tr.Last().Elements)

	out, err = run(t, "trace", "kruskal", "--topology", "empty", "--vertices", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "! Graph is disconnected: spanning forest with 3 components")

	_, err = run(t, "trace", "prim", "--topology", "torus")
	assert.ErrorContains(t, err, "unknown topology")
}

func TestRaceTickLimit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("race:\n  tick_interval: 0s\n  max_ticks: 2\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "race", "bubble", "merge", "--values", "5,1,4,2,8")
	assert.ErrorIs(t, err, race.ErrTickLimit)
	assert.Contains(t, out, "! stopped after 2 ticks")
}

func TestDebugExportsTelemetry(t *testing.T) {
	out, errOut, err := runSplit(t, "--debug", "trace", "linear", "--values", "[4, 2, 9] | 9", "--json")
	require.NoError(t, err)

	var tr step.Trace
	require.NoError(t, json.Unmarshal([]byte(out), &tr), "stdout stays plain JSON")
	assert.Contains(t, errOut, `"Name": "Catalog.Generate"`)
	assert.Contains(t, errOut, "algotrace_traces_generated_total")
}
