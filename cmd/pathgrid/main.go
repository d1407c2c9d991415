// Command pathgrid searches a text grid and prints the result.
//
// Usage:
//
//	pathgrid -grid maze.txt [-algorithm astar -heuristic manhattan] [-png out.png] [-frames dir]
//	pathgrid -random 75x75 [-density 0.25] [-seed 7]
//
// The grid uses '.' for empty cells, '#' for walls, 'S' for the start and
// 'E' for the end. "-grid -" reads standard input.
//
// Exit status is 0 when a path is found, 2 when none exists and 1 on error.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/config"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/search"
)

const (
	exitFound  = 0
	exitError  = 1
	exitNoPath = 2
)

var errUsage = errors.New("pathgrid: one of -grid or -random is required")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	gridPath   string
	randomSize string
	density    float64
	seed       int64
	algorithm  string
	heuristic  string
	maxSteps   int
	cellSize   int
	pngPath    string
	framesDir  string
	jsonOut    bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pathgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", os.Getenv(config.EnvPrefix+"CONFIG"), "YAML config file")
	fs.StringVar(&o.gridPath, "grid", "", "grid file, or - for stdin")
	fs.StringVar(&o.randomSize, "random", "", "generate a WxH grid instead of reading one")
	fs.Float64Var(&o.density, "density", 0.25, "wall probability for -random")
	fs.Int64Var(&o.seed, "seed", 1, "random seed for -random")
	fs.StringVar(&o.algorithm, "algorithm", "", "dijkstra or astar (default from config)")
	fs.StringVar(&o.heuristic, "heuristic", "", "none, euclidean or manhattan")
	fs.IntVar(&o.maxSteps, "max-steps", 0, "cap on frontier selections (0 = node count)")
	fs.IntVar(&o.cellSize, "cell-size", 0, "pixels per cell (default from config)")
	fs.StringVar(&o.pngPath, "png", "", "write the final frame to this PNG file")
	fs.StringVar(&o.framesDir, "frames", "", "write every frame as frame-NNNNN.png into this directory")
	fs.BoolVar(&o.jsonOut, "json", false, "print the result as JSON")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if (o.gridPath == "") == (o.randomSize == "") {
		fs.Usage()
		return o, errUsage
	}
	if o.maxSteps < 0 || o.cellSize < 0 {
		return o, fmt.Errorf("pathgrid: -max-steps and -cell-size must not be negative")
	}

	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
	}
	logger, _, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	found, err := solve(o, cfg, stdin, stdout, logger)
	if err != nil {
		logger.Error("Search failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if !found {
		return exitNoPath
	}

	return exitFound
}

func solve(o options, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) (bool, error) {
	alg, kind, err := cfg.Search.Resolve(o.algorithm, o.heuristic)
	if err != nil {
		return false, err
	}

	grid, err := loadGrid(o, stdin)
	if err != nil {
		return false, err
	}
	g, err := gridgraph.Build(grid)
	if err != nil {
		return false, err
	}
	start, end, err := gridgraph.Endpoints(g, grid)
	if err != nil {
		return false, err
	}

	opts := []search.Option{search.WithAlgorithm(alg), search.WithHeuristicKind(kind)}
	if o.maxSteps > 0 {
		opts = append(opts, search.WithMaxSteps(o.maxSteps))
	}
	began := time.Now()
	res, err := search.Search(g, start, end, opts...)
	if err != nil {
		return false, err
	}
	logger.Debug("Search finished",
		zap.String("algorithm", alg.String()),
		zap.String("heuristic", kind.String()),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("explored", len(res.Explored)),
		zap.Duration("took", time.Since(began)),
	)

	if o.jsonOut {
		err = printJSON(stdout, alg, kind.String(), res)
	} else {
		printSummary(stdout, grid, alg, kind.String(), res)
	}
	if err != nil {
		return false, err
	}

	cell := cfg.Grid.CellSize
	if o.cellSize > 0 {
		cell = o.cellSize
	}
	if o.pngPath != "" || o.framesDir != "" {
		rd, err := render.NewRenderer(grid, res, render.WithCellSize(cell))
		if err != nil {
			return false, err
		}
		if err := writeImages(rd, o, logger); err != nil {
			return false, err
		}
	}

	return res.Found(), nil
}

func loadGrid(o options, stdin io.Reader) (*gridgraph.RoleGrid, error) {
	if o.randomSize != "" {
		var w, h int
		if _, err := fmt.Sscanf(o.randomSize, "%dx%d", &w, &h); err != nil {
			return nil, fmt.Errorf("pathgrid: -random %q: want WxH", o.randomSize)
		}
		return gridgraph.Random(w, h, o.density, gridgraph.WithSeed(o.seed))
	}
	if o.gridPath == "-" {
		return gridgraph.Parse(stdin)
	}
	f, err := os.Open(o.gridPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gridgraph.Parse(f)
}

func printSummary(w io.Writer, grid *gridgraph.RoleGrid, alg search.Algorithm, kind string, res search.Result) {
	cells := int64(grid.Width() * grid.Height())
	fmt.Fprintf(w, "algorithm: %s (%s)\n", alg, kind)
	fmt.Fprintf(w, "grid:      %dx%d, %s cells\n", grid.Width(), grid.Height(), humanize.Comma(cells))
	fmt.Fprintf(w, "explored:  %s nodes\n", humanize.Comma(int64(len(res.Explored))))
	if !res.Found() {
		fmt.Fprintln(w, "path:      none")
		return
	}
	pts := res.Points()
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	fmt.Fprintf(w, "path:      %s nodes, cost %.1f\n", humanize.Comma(int64(len(pts))), res.Cost())
	fmt.Fprintf(w, "           %s\n", strings.Join(parts, " "))
}

type jsonPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type jsonResult struct {
	Algorithm string      `json:"algorithm"`
	Heuristic string      `json:"heuristic"`
	Found     bool        `json:"found"`
	Cost      float64     `json:"cost"`
	Path      []jsonPoint `json:"path"`
	Explored  []jsonPoint `json:"explored"`
}

func printJSON(w io.Writer, alg search.Algorithm, kind string, res search.Result) error {
	out := jsonResult{
		Algorithm: alg.String(),
		Heuristic: kind,
		Found:     res.Found(),
		Cost:      res.Cost(),
		Path:      make([]jsonPoint, 0, len(res.Path)),
		Explored:  make([]jsonPoint, 0, len(res.Explored)),
	}
	for _, c := range res.Points() {
		out.Path = append(out.Path, jsonPoint{X: c.X, Y: c.Y})
	}
	for _, c := range res.ExploredPoints() {
		out.Explored = append(out.Explored, jsonPoint{X: c.X, Y: c.Y})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func writeImages(rd *render.Renderer, o options, logger *zap.Logger) error {
	if o.pngPath != "" {
		if err := rd.SavePNG(o.pngPath, rd.Frames()-1); err != nil {
			return err
		}
		logWritten(logger, o.pngPath)
	}
	if o.framesDir == "" {
		return nil
	}
	if err := os.MkdirAll(o.framesDir, 0o755); err != nil {
		return err
	}
	for i := 0; i < rd.Frames(); i++ {
		path := filepath.Join(o.framesDir, fmt.Sprintf("frame-%05d.png", i))
		if err := rd.SavePNG(path, i); err != nil {
			return err
		}
	}
	logger.Info("Frames written",
		zap.String("dir", o.framesDir),
		zap.String("count", humanize.Comma(int64(rd.Frames()))),
	)

	return nil
}

func logWritten(logger *zap.Logger, path string) {
	fields := []zap.Field{zap.String("path", path)}
	if st, err := os.Stat(path); err == nil {
		fields = append(fields, zap.String("size", humanize.Bytes(uint64(st.Size()))))
	}
	logger.Info("Image written", fields...)
}
