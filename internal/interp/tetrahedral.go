package interp

import (
	"log/slog"

	"github.com/cwbudde/cubelut/internal/lut"
)

// Tetrahedral interpolates by splitting the unit cell into six
// tetrahedra keyed on the ordering of the fractional parts. The anchor
// is always C000; three edge vectors along the matching space diagonal
// carry a permutation of (tx,ty,tz) as barycentric weights. On the
// equality hyperplanes the two adjacent cases produce the same value,
// so tie-breaking between them is free.
func Tetrahedral[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.MinDim() < 2 {
		slog.Warn("tetrahedral needs 2 points per axis, falling back to trilinear",
			"nr", g.NR, "ng", g.NG, "nb", g.NB)
		return Trilinear(ops, g, p)
	}

	q := clampQuery(ops, p)
	i, tx := axis(ops, q.R, g.NR)
	j, ty := axis(ops, q.G, g.NG)
	k, tz := axis(ops, q.B, g.NB)
	i0, i1 := g.ClampIndex(i, 0), g.ClampIndex(i+1, 0)
	j0, j1 := g.ClampIndex(j, 1), g.ClampIndex(j+1, 1)
	k0, k1 := g.ClampIndex(k, 2), g.ClampIndex(k+1, 2)

	c000 := g.Sample(i0, j0, k0)
	c100 := g.Sample(i1, j0, k0)
	c010 := g.Sample(i0, j1, k0)
	c001 := g.Sample(i0, j0, k1)
	c110 := g.Sample(i1, j1, k0)
	c101 := g.Sample(i1, j0, k1)
	c011 := g.Sample(i0, j1, k1)
	c111 := g.Sample(i1, j1, k1)

	var e1, e2, e3 lut.Triple[T]
	var s1, s2, s3 T

	if ops.Cmp(tx, ty) >= 0 {
		switch {
		case ops.Cmp(ty, tz) >= 0: // tx >= ty >= tz
			e1, e2, e3 = c100.Sub(ops, c000), c110.Sub(ops, c100), c111.Sub(ops, c110)
			s1, s2, s3 = tx, ty, tz
		case ops.Cmp(tx, tz) >= 0: // tx >= tz > ty
			e1, e2, e3 = c100.Sub(ops, c000), c101.Sub(ops, c100), c111.Sub(ops, c101)
			s1, s2, s3 = tx, tz, ty
		default: // tz > tx >= ty
			e1, e2, e3 = c001.Sub(ops, c000), c101.Sub(ops, c001), c111.Sub(ops, c101)
			s1, s2, s3 = tz, tx, ty
		}
	} else {
		switch {
		case ops.Cmp(tz, ty) > 0: // tz > ty > tx
			e1, e2, e3 = c001.Sub(ops, c000), c011.Sub(ops, c001), c111.Sub(ops, c011)
			s1, s2, s3 = tz, ty, tx
		case ops.Cmp(tz, tx) > 0: // ty >= tz > tx
			e1, e2, e3 = c010.Sub(ops, c000), c011.Sub(ops, c010), c111.Sub(ops, c011)
			s1, s2, s3 = ty, tz, tx
		default: // ty > tx >= tz
			e1, e2, e3 = c010.Sub(ops, c000), c110.Sub(ops, c010), c111.Sub(ops, c110)
			s1, s2, s3 = ty, tx, tz
		}
	}

	res := c000.
		Add(ops, e1.Scale(ops, s1)).
		Add(ops, e2.Scale(ops, s2)).
		Add(ops, e3.Scale(ops, s3))
	return clampDomain(ops, g, res)
}
