package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty (or the grid is nil).
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownRole indicates a cell value or character that is not a Role.
	ErrUnknownRole = errors.New("gridgraph: unknown cell role")
	// ErrOutOfBounds indicates a coordinate outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrMissingEndpoint indicates the grid has no Start or no End cell.
	ErrMissingEndpoint = errors.New("gridgraph: no start/end found")
	// ErrMultipleEndpoints indicates the grid has more than one Start or End cell.
	ErrMultipleEndpoints = errors.New("gridgraph: more than one start/end found")
	// ErrInvalidDensity indicates a wall density outside [0,1].
	ErrInvalidDensity = errors.New("gridgraph: wall density must lie in [0,1]")
	// ErrNeedRandSource indicates Random was asked to sample without an RNG.
	ErrNeedRandSource = errors.New("gridgraph: random source is required")
)
