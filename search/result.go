package search

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pathgrid/core"
)

// Result is the outcome of one search.
//
// Path runs End→…→Start and is empty iff no route exists. Explored holds the
// settle order; it excludes the start node and ends with the end node on
// success.
type Result struct {
	Path     []*core.Node
	Explored []*core.Node
}

// Found reports whether a path was found.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Ordered returns a Start→End copy of Path.
func (r Result) Ordered() []*core.Node {
	out := make([]*core.Node, len(r.Path))
	for i, n := range r.Path {
		out[len(r.Path)-1-i] = n
	}

	return out
}

// Cost returns the sum of edge weights along Path, or 0 when no path exists.
func (r Result) Cost() float64 {
	return floats.Sum(r.Weights())
}

// Weights returns the edge weights along the path in Start→End order.
func (r Result) Weights() []float64 {
	if len(r.Path) < 2 {
		return nil
	}
	out := make([]float64, 0, len(r.Path)-1)
	for i := len(r.Path) - 1; i > 0; i-- {
		w, _ := r.Path[i].Weight(r.Path[i-1].Coord())
		out = append(out, w)
	}

	return out
}

// Points returns the path coordinates in Start→End order.
func (r Result) Points() []core.Coord {
	return coords(r.Ordered())
}

// ExploredPoints returns the coordinates of Explored in settle order.
func (r Result) ExploredPoints() []core.Coord {
	return coords(r.Explored)
}

// OnPath reports whether c is a path member.
func (r Result) OnPath(c core.Coord) bool {
	for _, n := range r.Path {
		if n.Coord() == c {
			return true
		}
	}

	return false
}

func coords(nodes []*core.Node) []core.Coord {
	out := make([]core.Coord, len(nodes))
	for i, n := range nodes {
		out[i] = n.Coord()
	}

	return out
}
