// Package heuristic provides distance estimates between grid coordinates for
// informed search. Functions are pure and stateless.
//
// "No heuristic" is represented by a nil Func (Kind None), never by a
// function returning zero, so uninformed and informed searches stay
// structurally distinct.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathgrid/core"
)

// ErrUnknownHeuristic indicates a heuristic name that is not recognised.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining distance from a to b.
type Func func(a, b core.Coord) float64

// Euclidean returns the straight-line distance sqrt(dx²+dy²).
func Euclidean(a, b core.Coord) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns |dx|+|dy|.
//
// With diagonal moves costing 1.4 this overestimates diagonal distances, so it
// is not admissible on 8-connected grids.
func Manhattan(a, b core.Coord) float64 {
	dx := b.X - a.X
	if dx < 0 {
		dx = -dx
	}
	dy := b.Y - a.Y
	if dy < 0 {
		dy = -dy
	}

	return float64(dx + dy)
}

// Kind selects a heuristic by name.
type Kind int

const (
	// None selects no heuristic (Dijkstra).
	None Kind = iota
	// KindEuclidean selects Euclidean.
	KindEuclidean
	// KindManhattan selects Manhattan.
	KindManhattan
)

var kindNames = map[Kind]string{
	None:          "none",
	KindEuclidean: "euclidean",
	KindManhattan: "manhattan",
}

// String returns the canonical lower-case name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Func returns the heuristic function for k, or nil for None.
func (k Kind) Func() Func {
	switch k {
	case KindEuclidean:
		return Euclidean
	case KindManhattan:
		return Manhattan
	default:
		return nil
	}
}

// ParseKind parses a heuristic name. The empty string and "none" map to None.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "euclidean":
		return KindEuclidean, nil
	case "manhattan":
		return KindManhattan, nil
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Choices lists the heuristics offered for an algorithm name, in display
// order: uninformed search offers only None; informed search offers
// Euclidean then Manhattan.
func Choices(informed bool) []Kind {
	if informed {
		return []Kind{KindEuclidean, KindManhattan}
	}

	return []Kind{None}
}
