// Package gridgraph treats a 2D grid of cell roles as a weighted graph for
// shortest-path search.
//
// What:
//
//   - RoleGrid wraps a rectangular grid of core.Role values (Empty, Start, End, Wall).
//   - Build converts it into a *core.Graph: one node per cell, a ring of
//     synthetic Wall nodes one cell outside the grid, and undirected
//     8-neighbor edges (orthogonal 1.0, diagonal 1.4).
//   - Endpoints resolves the unique Start and End nodes before a search.
//   - Reachable flood-fills the open cells around a coordinate.
//   - Random samples a seeded maze with Start and End in opposite corners.
//
// Why the ring:
//
//   - Edge and corner cells get real Wall neighbors instead of missing
//     ones, so every grid cell has exactly 8 neighbor entries and walls
//     block movement the same way everywhere.
//
// Complexity:
//
//   - Build:     O(W×H×8), Memory: O((W+2)×(H+2) + 8×W×H).
//   - Reachable: O(W×H×8), Memory: O(W×H).
//
// Text format (Parse / String):
//
//	'.' empty, 'S' start, 'E' end, '#' wall, one row per line.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownRole: a value or character outside the role set.
//   - ErrOutOfBounds: With on a coordinate outside the grid.
//   - ErrMissingEndpoint: no Start or no End cell.
//   - ErrMultipleEndpoints: more than one Start or End cell.
//   - ErrInvalidDensity, ErrNeedRandSource: bad Random arguments.
package gridgraph
