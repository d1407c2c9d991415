package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/heuristic"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidNode indicates that start or end is nil or belongs to another graph.
	ErrInvalidNode = fmt.Errorf("search: endpoint: %w", core.ErrInvalidNode)

	// ErrHeuristicRequired indicates A* was requested without a heuristic.
	ErrHeuristicRequired = errors.New("search: A* requires a heuristic")

	// ErrHeuristicNotAllowed indicates a heuristic was supplied to Dijkstra.
	ErrHeuristicNotAllowed = errors.New("search: Dijkstra does not take a heuristic")

	// ErrUnknownAlgorithm indicates an algorithm outside the enumeration.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBadMaxSteps indicates WithMaxSteps was given a non-positive value.
	ErrBadMaxSteps = errors.New("search: MaxSteps must be positive")
)

// Algorithm selects the frontier key and relaxation rule.
type Algorithm int

const (
	// AlgorithmDijkstra selects by tentative distance.
	AlgorithmDijkstra Algorithm = iota
	// AlgorithmAStar selects by tentative distance plus heuristic estimate.
	AlgorithmAStar
)

// String returns "dijkstra" or "astar".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmAStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return a == AlgorithmDijkstra || a == AlgorithmAStar }

// Informed reports whether the algorithm uses a heuristic.
func (a Algorithm) Informed() bool { return a == AlgorithmAStar }

// Heuristics lists the heuristic kinds offered for a, in display order.
func (a Algorithm) Heuristics() []heuristic.Kind { return heuristic.Choices(a.Informed()) }

// ParseAlgorithm parses "dijkstra", "astar", "a*" or "a-star", ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	}

	return AlgorithmDijkstra, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Options configures a single Search call.
//
// Algorithm – frontier key and relaxation rule (default AlgorithmDijkstra).
// Heuristic – estimate used by A*; must be nil for Dijkstra.
// MaxSteps  – upper bound on frontier selections; 0 means the graph's node count.
type Options struct {
	Algorithm Algorithm
	Heuristic heuristic.Func
	MaxSteps  int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Dijkstra without a heuristic and no explicit step cap.
func DefaultOptions() Options {
	return Options{Algorithm: AlgorithmDijkstra}
}

// WithAlgorithm selects the search algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithHeuristic sets the A* heuristic. A nil h clears it.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithHeuristicKind sets the heuristic by kind; heuristic.None clears it.
func WithHeuristicKind(k heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristic = k.Func()
	}
}

// WithMaxSteps caps the number of frontier selections. When the cap is hit
// before the end node is selected the search reports no path.
// Panics if n <= 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxSteps.Error())
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}
