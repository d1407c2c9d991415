package server

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/search"
)

// SearchRequest is the body of /search and /render.
type SearchRequest struct {
	Grid      []string `json:"grid" validate:"required,min=1,dive,required"`
	Algorithm string   `json:"algorithm"`
	Heuristic string   `json:"heuristic"`
	MaxSteps  int      `json:"max_steps" validate:"gte=0"`
}

// PaintRequest replays clicks on an empty canvas. Drag strokes are applied
// after the clicks, in order.
type PaintRequest struct {
	Width     int       `json:"width" validate:"required,min=1"`
	Height    int       `json:"height" validate:"required,min=1"`
	Clicks    []Point   `json:"clicks"`
	Drags     [][]Point `json:"drags"`
	Algorithm string    `json:"algorithm"`
	Heuristic string    `json:"heuristic"`
}

// Point is a cell coordinate on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) coord() core.Coord { return core.Coord{X: p.X, Y: p.Y} }

// SearchResponse reports a search. Path runs from start to end.
type SearchResponse struct {
	ID        string  `json:"id"`
	Algorithm string  `json:"algorithm"`
	Heuristic string  `json:"heuristic"`
	Found     bool    `json:"found"`
	Cost      float64 `json:"cost"`
	Path      []Point `json:"path"`
	Explored  []Point `json:"explored"`
}

// PaintResponse adds the painted grid and the painter state.
type PaintResponse struct {
	SearchResponse
	State string   `json:"state"`
	Grid  []string `json:"grid"`
}

// AlgorithmInfo describes one selectable algorithm.
type AlgorithmInfo struct {
	Name       string   `json:"name"`
	Heuristics []string `json:"heuristics"`
	Default    bool     `json:"default"`
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func points(cs []core.Coord) []Point {
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = Point{X: c.X, Y: c.Y}
	}

	return out
}

func newSearchResponse(id string, alg search.Algorithm, kind string, res search.Result) SearchResponse {
	return SearchResponse{
		ID:        id,
		Algorithm: alg.String(),
		Heuristic: kind,
		Found:     res.Found(),
		Cost:      res.Cost(),
		Path:      points(res.Points()),
		Explored:  points(res.ExploredPoints()),
	}
}

// toGeoJSON maps grid cells to planar points (x right, y down) and returns
// the path as a LineString (a Point for a single node) and the explored
// cells as a MultiPoint.
func toGeoJSON(resp SearchResponse) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(resp.Path) > 0 {
		var geom orb.Geometry
		if len(resp.Path) == 1 {
			geom = orbPoint(resp.Path[0])
		} else {
			ls := make(orb.LineString, len(resp.Path))
			for i, p := range resp.Path {
				ls[i] = orbPoint(p)
			}
			geom = ls
		}
		f := geojson.NewFeature(geom)
		f.Properties["kind"] = "path"
		f.Properties["cost"] = resp.Cost
		fc.Append(f)
	}

	mp := make(orb.MultiPoint, len(resp.Explored))
	for i, p := range resp.Explored {
		mp[i] = orbPoint(p)
	}
	explored := geojson.NewFeature(mp)
	explored.Properties["kind"] = "explored"
	explored.Properties["count"] = len(mp)
	fc.Append(explored)

	fc.ExtraMembers = geojson.Properties{
		"id":        resp.ID,
		"algorithm": resp.Algorithm,
		"heuristic": resp.Heuristic,
		"found":     resp.Found,
	}

	return fc
}

func orbPoint(p Point) orb.Point { return orb.Point{float64(p.X), float64(p.Y)} }
