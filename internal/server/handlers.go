package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathgrid/canvas"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/search"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	def := s.Defaults()
	out := make([]AlgorithmInfo, 0, 2)
	for _, alg := range []search.Algorithm{search.AlgorithmDijkstra, search.AlgorithmAStar} {
		kinds := alg.Heuristics()
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		out = append(out, AlgorithmInfo{
			Name:       alg.String(),
			Heuristics: names,
			Default:    alg == def.Algorithm,
		})
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	_, alg, kind, res, err := s.runSearch(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := newSearchResponse(uuid.NewString(), alg, kind.String(), res)
	s.logger.Debug("Search completed",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.String("search_id", resp.ID),
		zap.String("algorithm", resp.Algorithm),
		zap.Bool("found", resp.Found),
		zap.Int("explored", len(resp.Explored)),
	)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		s.writeJSON(w, r, http.StatusOK, resp)
	case "geojson":
		w.Header().Set("Content-Type", "application/geo+json")
		s.encode(w, r, http.StatusOK, toGeoJSON(resp))
	default:
		s.writeError(w, r, fmt.Errorf("%w: format %q", errBadQuery, format))
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	cell := s.cellSize
	if v := r.URL.Query().Get("cell_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 64 {
			s.writeError(w, r, fmt.Errorf("%w: cell_size %q", errBadQuery, v))
			return
		}
		cell = n
	}

	grid, _, _, res, err := s.runSearch(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rd, err := render.NewRenderer(grid, res, render.WithCellSize(cell))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	frame := rd.Frames() - 1
	if v := r.URL.Query().Get("frame"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: frame %q", errBadQuery, v))
			return
		}
		if n < 0 || n >= rd.Frames() {
			s.writeError(w, r, fmt.Errorf("%w: %d of %d", render.ErrFrameRange, n, rd.Frames()))
			return
		}
		frame = n
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Frame-Count", strconv.Itoa(rd.Frames()))
	w.WriteHeader(http.StatusOK)
	if err := rd.WritePNG(w, frame); err != nil {
		s.logger.Error("Failed to encode PNG",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
	}
}

func (s *Server) handlePaint(w http.ResponseWriter, r *http.Request) {
	var req PaintRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.checkSize(req.Width, req.Height); err != nil {
		s.writeError(w, r, err)
		return
	}
	alg, kind, err := s.resolve(req.Algorithm, req.Heuristic)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := canvas.NewPainter(req.Width, req.Height)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for _, c := range req.Clicks {
		p.Click(c.X, c.Y)
	}
	for _, stroke := range req.Drags {
		coords := make([]core.Coord, len(stroke))
		for i, pt := range stroke {
			coords[i] = pt.coord()
		}
		p.Drag(coords)
	}

	res, err := s.observe(alg, kind, func() (search.Result, error) {
		return p.Solve(alg, kind)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	grid, err := p.Grid()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, PaintResponse{
		SearchResponse: newSearchResponse(uuid.NewString(), alg, kind.String(), res),
		State:          p.State().String(),
		Grid:           strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n"),
	})
}

// runSearch parses the grid, checks its size, builds the graph and searches.
func (s *Server) runSearch(req SearchRequest) (*gridgraph.RoleGrid, search.Algorithm, heuristic.Kind, search.Result, error) {
	alg, kind, err := s.resolve(req.Algorithm, req.Heuristic)
	if err != nil {
		return nil, alg, kind, search.Result{}, err
	}
	if len(req.Grid) > s.maxCells {
		return nil, alg, kind, search.Result{}, fmt.Errorf("%w: %d rows", errGridTooLarge, len(req.Grid))
	}

	grid, err := gridgraph.ParseRows(req.Grid)
	if err != nil {
		return nil, alg, kind, search.Result{}, err
	}
	if err := s.checkSize(grid.Width(), grid.Height()); err != nil {
		return nil, alg, kind, search.Result{}, err
	}

	opts := []search.Option{search.WithAlgorithm(alg), search.WithHeuristicKind(kind)}
	if req.MaxSteps > 0 {
		opts = append(opts, search.WithMaxSteps(req.MaxSteps))
	}

	res, err := s.observe(alg, kind, func() (search.Result, error) {
		g, err := gridgraph.Build(grid)
		if err != nil {
			return search.Result{}, err
		}
		start, end, err := gridgraph.Endpoints(g, grid)
		if err != nil {
			return search.Result{}, err
		}
		return search.Search(g, start, end, opts...)
	})
	if err != nil {
		return nil, alg, kind, search.Result{}, err
	}

	return grid, alg, kind, res, nil
}

// checkSize rejects a width×height grid with more than maxCells cells. The
// product is never formed, so huge dimensions cannot wrap around.
func (s *Server) checkSize(width, height int) error {
	if width > s.maxCells || height > s.maxCells/width {
		return fmt.Errorf("%w: %dx%d", errGridTooLarge, width, height)
	}

	return nil
}

// decode reads a JSON body of at most maxBodyBytes into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadBody, err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return formatValidationError(err)
	}

	return nil
}
