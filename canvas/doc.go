// Package canvas implements the painting workflow that turns user clicks into
// a RoleGrid and hands it to the search engine.
//
// States advance in one direction:
//
//	PlacingStart → PlacingEnd → PlacingWalls → Done
//
// The first click on an empty cell places the start, the second the end,
// every later click a wall. Clicks outside the grid or on a painted cell are
// ignored. Solve is allowed once both endpoints are placed; it builds the
// graph, runs the search and moves the painter to Done, where clicks are
// ignored until Reset.
//
// A Painter is not safe for concurrent use.
package canvas
