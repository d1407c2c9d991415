package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("PATHGRID_CONFIG", "")
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Summary(t *testing.T) {
	code, out, _ := runCLI(t, "", "-grid", "testdata/maze.txt")
	require.Equal(t, exitFound, code)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "algorithm: dijkstra (none)", lines[0])
	assert.Equal(t, "grid:      12x7, 84 cells", lines[1])
	assert.Equal(t, "explored:  48 nodes", lines[2])
	assert.Equal(t, "path:      21 nodes, cost 22.0", lines[3])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[4]), "(0,0) (0,1) (0,2)"), lines[4])
	assert.True(t, strings.HasSuffix(lines[4], "(10,6) (11,6)"), lines[4])
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runCLI(t, "", "-grid", "testdata/maze.txt", "-json", "-algorithm", "astar", "-heuristic", "manhattan")
	require.Equal(t, exitFound, code)

	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "astar", res.Algorithm)
	assert.Equal(t, "manhattan", res.Heuristic)
	assert.True(t, res.Found)
	assert.InDelta(t, 22.6, res.Cost, 1e-9)
	assert.Len(t, res.Path, 22)
	assert.Len(t, res.Explored, 38)
	assert.Equal(t, jsonPoint{X: 0, Y: 0}, res.Path[0])
	assert.Equal(t, jsonPoint{X: 11, Y: 6}, res.Path[21])
}

func TestRun_AStarPicksFirstHeuristic(t *testing.T) {
	code, out, _ := runCLI(t, "", "-grid", "testdata/maze.txt", "-algorithm", "astar")
	require.Equal(t, exitFound, code)
	assert.Contains(t, out, "algorithm: astar (euclidean)")
	assert.Contains(t, out, "explored:  40 nodes")
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, "S.\n.E\n", "-grid", "-")
	require.Equal(t, exitFound, code)
	assert.Contains(t, out, "path:      2 nodes, cost 1.4")
}

func TestRun_NoPath(t *testing.T) {
	code, out, _ := runCLI(t, "", "-grid", "testdata/sealed.txt")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "explored:  5 nodes")
	assert.Contains(t, out, "path:      none")

	code, _, _ = runCLI(t, "", "-grid", "testdata/maze.txt", "-max-steps", "3")
	assert.Equal(t, exitNoPath, code)
}

func TestRun_Errors(t *testing.T) {
	cases := map[string][]string{
		"NoGrid":           {},
		"MissingFile":      {"-grid", "testdata/absent.txt"},
		"UnknownAlgorithm": {"-grid", "testdata/maze.txt", "-algorithm", "bfs"},
		"HeuristicOnDijk":  {"-grid", "testdata/maze.txt", "-algorithm", "dijkstra", "-heuristic", "manhattan"},
		"NegativeSteps":    {"-grid", "testdata/maze.txt", "-max-steps", "-1"},
		"UnknownFlag":      {"-grid", "testdata/maze.txt", "-speed", "9"},
		"GridAndRandom":    {"-grid", "testdata/maze.txt", "-random", "5x5"},
		"BadRandomSize":    {"-random", "big"},
		"BadDensity":       {"-random", "5x5", "-density", "2"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", args...)
			assert.Equal(t, exitError, code)
			assert.NotEmpty(t, errOut)
		})
	}

	code, _, errOut := runCLI(t, "S..\n", "-grid", "-")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "no start/end")
}

func TestRun_Images(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "final.png")
	frames := filepath.Join(dir, "frames")

	code, _, _ := runCLI(t, "", "-grid", "testdata/sealed.txt", "-png", out, "-frames", frames, "-cell-size", "3")
	require.Equal(t, exitNoPath, code)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 15, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())

	entries, err := os.ReadDir(frames)
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, "frame-00000.png", entries[0].Name())
	assert.Equal(t, "frame-00005.png", entries[5].Name())
}

func TestRun_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pathgrid.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  algorithm: astar\n  heuristic: manhattan\n"), 0o600))

	code, out, _ := runCLI(t, "", "-config", cfgPath, "-grid", "testdata/maze.txt")
	require.Equal(t, exitFound, code)
	assert.Contains(t, out, "algorithm: astar (manhattan)")
	assert.Contains(t, out, "explored:  38 nodes")
}

func TestRun_Random(t *testing.T) {
	code, out, _ := runCLI(t, "", "-random", "20x10", "-density", "0")
	require.Equal(t, exitFound, code)
	assert.Contains(t, out, "grid:      20x10, 200 cells")
	assert.Contains(t, out, "path:      20 nodes")

	_, first, _ := runCLI(t, "", "-random", "30x30", "-seed", "4", "-json")
	_, second, _ := runCLI(t, "", "-random", "30x30", "-seed", "4", "-json")
	assert.Equal(t, first, second, "equal seeds give equal runs")
}
