// Package probe drives the kernel library over a fixed list of query
// points and prints each result at a requested decimal precision, so
// faster implementations can be diffed line-by-line against it.
package probe

// Default is the canonical probe list: cube corners, primaries, greys
// with single-channel variations, interior points, and two
// out-of-bounds points that exercise the input clamp.
var Default = [][3]float64{
	{0.0, 0.0, 0.0},
	{1.0, 1.0, 1.0},
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
	{0.0, 0.0, 1.0},
	{1.0, 1.0, 0.0},
	{1.0, 0.0, 1.0},
	{0.1, 0.5, 0.9},
	{0.15, 0.15, 0.15},
	{0.155, 0.15, 0.15},
	{0.15, 0.155, 0.15},
	{0.15, 0.15, 0.155},
	{0.5, 0.5, 0.5},
	{0.75, 0.75, 0.75},
	{0.8, 0.2, 0.4},
	{0.8, 0.21, 0.4},
	{0.335, 0.127, 0.023},
	{0.997, 0.782, 0.901},
	{1.0 / 3, 1.0 / 7, 1.0 / 6},
	{0.25, 0.5, 0.75},
	{0.75, 0.5, 0.25},
	{0.251, 0.51, 0.751},
	{-0.1, 0.5, 1.1},
	{-0.01, 0.62, 1.01},
}
