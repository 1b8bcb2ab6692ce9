// Package interp implements the 3D LUT interpolation kernel library.
//
// Every kernel shares one preamble: the query point is clamped to the
// unit cube, continuous grid coordinates are computed per axis, and the
// kernel-specific result is clamped against the grid's domain bounds.
// Kernels that need a neighbourhood the grid cannot supply fall back to
// a lower-order kernel through the same public entry points.
package interp

import (
	"github.com/cwbudde/cubelut/internal/lut"
)

// clampUnit limits a query component to [0, 1].
func clampUnit[T any](ops lut.Real[T], v T) T {
	return lut.Clamp(ops, v, ops.FromInt(0), ops.FromInt(1))
}

// clampQuery applies the input policy-clamp to all three components.
func clampQuery[T any](ops lut.Real[T], p lut.Triple[T]) lut.Triple[T] {
	return lut.Triple[T]{
		R: clampUnit(ops, p.R),
		G: clampUnit(ops, p.G),
		B: clampUnit(ops, p.B),
	}
}

// axis maps a clamped component v to the continuous grid coordinate
// v*(n-1) and returns the floor anchor with its fractional part.
// A degenerate axis of size 1 pins both to zero.
func axis[T any](ops lut.Real[T], v T, n int) (int, T) {
	if n == 1 {
		return 0, ops.FromInt(0)
	}
	x := ops.Mul(v, ops.FromInt(n-1))
	f := ops.Floor(x)
	return ops.Int(f), ops.Sub(x, f)
}

// nearestAxis selects the grid index closest to the clamped component v,
// rounding halves to even. Callers pass the result through
// Grid.ClampIndex before addressing samples.
func nearestAxis[T any](ops lut.Real[T], v T, n int) int {
	if n == 1 {
		return 0
	}
	return ops.Int(ops.Round(ops.Mul(v, ops.FromInt(n-1))))
}

// clampDomain applies the output clamp against the grid domain bounds.
func clampDomain[T any](ops lut.Real[T], g *lut.Grid[T], t lut.Triple[T]) lut.Triple[T] {
	return t.Clamp(ops, g.DomainMin, g.DomainMax)
}
