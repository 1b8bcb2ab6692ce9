package interp

import (
	"log/slog"

	"github.com/cwbudde/cubelut/internal/lut"
)

// Nearest returns the stored sample closest to the query point.
func Nearest[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	q := clampQuery(ops, p)
	i := g.ClampIndex(nearestAxis(ops, q.R, g.NR), 0)
	j := g.ClampIndex(nearestAxis(ops, q.G, g.NG), 1)
	k := g.ClampIndex(nearestAxis(ops, q.B, g.NB), 2)
	return clampDomain(ops, g, g.Sample(i, j, k))
}

// Linear interpolates along the R axis only. The G and B indices are
// selected by nearest neighbour.
func Linear[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	q := clampQuery(ops, p)
	j := g.ClampIndex(nearestAxis(ops, q.G, g.NG), 1)
	k := g.ClampIndex(nearestAxis(ops, q.B, g.NB), 2)

	if g.NR == 1 {
		return clampDomain(ops, g, g.Sample(0, j, k))
	}

	i, tx := axis(ops, q.R, g.NR)
	c0 := g.Sample(g.ClampIndex(i, 0), j, k)
	c1 := g.Sample(g.ClampIndex(i+1, 0), j, k)
	return clampDomain(ops, g, c0.Lerp(ops, c1, tx))
}

// Bilinear interpolates on the RG plane selected by the nearest B index.
func Bilinear[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.NR == 1 || g.NG == 1 {
		slog.Warn("bilinear needs 2 points on R and G, falling back to linear", "nr", g.NR, "ng", g.NG)
		return Linear(ops, g, p)
	}

	q := clampQuery(ops, p)
	k := g.ClampIndex(nearestAxis(ops, q.B, g.NB), 2)

	i, tx := axis(ops, q.R, g.NR)
	j, ty := axis(ops, q.G, g.NG)
	i0, i1 := g.ClampIndex(i, 0), g.ClampIndex(i+1, 0)
	j0, j1 := g.ClampIndex(j, 1), g.ClampIndex(j+1, 1)

	c00 := g.Sample(i0, j0, k)
	c10 := g.Sample(i1, j0, k)
	c01 := g.Sample(i0, j1, k)
	c11 := g.Sample(i1, j1, k)

	c0 := c00.Lerp(ops, c10, tx)
	c1 := c01.Lerp(ops, c11, tx)
	return clampDomain(ops, g, c0.Lerp(ops, c1, ty))
}

// Trilinear interpolates over the 8-corner cell containing the query
// point, first along R, then G, then B.
func Trilinear[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.MinDim() < 2 {
		slog.Warn("trilinear needs 2 points per axis, falling back to nearest neighbour",
			"nr", g.NR, "ng", g.NG, "nb", g.NB)
		return Nearest(ops, g, p)
	}

	q := clampQuery(ops, p)
	i, tx := axis(ops, q.R, g.NR)
	j, ty := axis(ops, q.G, g.NG)
	k, tz := axis(ops, q.B, g.NB)
	i0, i1 := g.ClampIndex(i, 0), g.ClampIndex(i+1, 0)
	j0, j1 := g.ClampIndex(j, 1), g.ClampIndex(j+1, 1)
	k0, k1 := g.ClampIndex(k, 2), g.ClampIndex(k+1, 2)

	c00 := g.Sample(i0, j0, k0).Lerp(ops, g.Sample(i1, j0, k0), tx)
	c10 := g.Sample(i0, j1, k0).Lerp(ops, g.Sample(i1, j1, k0), tx)
	c01 := g.Sample(i0, j0, k1).Lerp(ops, g.Sample(i1, j0, k1), tx)
	c11 := g.Sample(i0, j1, k1).Lerp(ops, g.Sample(i1, j1, k1), tx)

	c0 := c00.Lerp(ops, c10, ty)
	c1 := c01.Lerp(ops, c11, ty)
	return clampDomain(ops, g, c0.Lerp(ops, c1, tz))
}
