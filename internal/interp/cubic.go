package interp

import (
	"log/slog"

	"github.com/cwbudde/cubelut/internal/lut"
)

// cubicWeight evaluates the Catmull-Rom cubic convolution kernel
// K(u; a=-0.5) with compact support [-2, 2].
func cubicWeight[T any](ops lut.Real[T], u T) T {
	a := ops.FromFloat(-0.5)
	one := ops.FromInt(1)
	two := ops.FromInt(2)

	ax := ops.Abs(u)
	if ops.Cmp(ax, one) <= 0 {
		// (a+2)|u|^3 - (a+3)|u|^2 + 1
		ax2 := ops.Mul(ax, ax)
		ax3 := ops.Mul(ax2, ax)
		t := ops.Sub(ops.Mul(ops.Add(a, two), ax3), ops.Mul(ops.Add(a, ops.FromInt(3)), ax2))
		return ops.Add(t, one)
	}
	if ops.Cmp(ax, two) < 0 {
		// a|u|^3 - 5a|u|^2 + 8a|u| - 4a
		ax2 := ops.Mul(ax, ax)
		ax3 := ops.Mul(ax2, ax)
		t := ops.Sub(ops.Mul(a, ax3), ops.Mul(ops.Mul(ops.FromInt(5), a), ax2))
		t = ops.Add(t, ops.Mul(ops.Mul(ops.FromInt(8), a), ax))
		return ops.Sub(t, ops.Mul(ops.FromInt(4), a))
	}
	return ops.FromInt(0)
}

// cubicWeights returns the weight vector for a taps-wide neighbourhood
// whose first tap sits at anchor-1 (taps=4) or anchor-2 (taps=6):
// weight[n] = K(t - offset(n)). Catmull-Rom sums to one at any t, so
// no runtime renormalisation is applied.
func cubicWeights[T any](ops lut.Real[T], t T, taps int) []T {
	lead := 1
	if taps == 6 {
		lead = 2
	}
	w := make([]T, taps)
	for n := range w {
		off := ops.FromInt(n - lead)
		w[n] = cubicWeight(ops, ops.Sub(t, off))
	}
	return w
}

// dot accumulates the weighted sum of pts with the given weights.
func dot[T any](ops lut.Real[T], w []T, pts []lut.Triple[T]) lut.Triple[T] {
	acc := lut.Triple[T]{R: ops.FromInt(0), G: ops.FromInt(0), B: ops.FromInt(0)}
	for n := range w {
		acc = acc.Add(ops, pts[n].Scale(ops, w[n]))
	}
	return acc
}

// Bicubic interpolates a 4x4 neighbourhood on the RG plane selected by
// the nearest B index, applying Catmull-Rom weights along R then G.
func Bicubic[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.NR < 4 || g.NG < 4 {
		slog.Warn("bicubic needs 4 points on R and G, falling back to bilinear", "nr", g.NR, "ng", g.NG)
		return Bilinear(ops, g, p)
	}

	q := clampQuery(ops, p)
	k := g.ClampIndex(nearestAxis(ops, q.B, g.NB), 2)
	i, tx := axis(ops, q.R, g.NR)
	j, ty := axis(ops, q.G, g.NG)

	wx := cubicWeights(ops, tx, 4)
	wy := cubicWeights(ops, ty, 4)

	rows := make([]lut.Triple[T], 4)
	line := make([]lut.Triple[T], 4)
	for jj := 0; jj < 4; jj++ {
		pj := g.ClampIndex(j+jj-1, 1)
		for ii := 0; ii < 4; ii++ {
			line[ii] = g.Sample(g.ClampIndex(i+ii-1, 0), pj, k)
		}
		rows[jj] = dot(ops, wx, line)
	}
	return clampDomain(ops, g, dot(ops, wy, rows))
}

// Cubic1D interpolates a 4-sample neighbourhood along R only; the G and
// B indices are selected by nearest neighbour.
func Cubic1D[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.NR < 4 {
		slog.Warn("1D cubic needs 4 points on R, falling back to linear", "nr", g.NR)
		return Linear(ops, g, p)
	}

	q := clampQuery(ops, p)
	j := g.ClampIndex(nearestAxis(ops, q.G, g.NG), 1)
	k := g.ClampIndex(nearestAxis(ops, q.B, g.NB), 2)
	i, tx := axis(ops, q.R, g.NR)

	wx := cubicWeights(ops, tx, 4)
	line := make([]lut.Triple[T], 4)
	for ii := 0; ii < 4; ii++ {
		line[ii] = g.Sample(g.ClampIndex(i+ii-1, 0), j, k)
	}
	return clampDomain(ops, g, dot(ops, wx, line))
}

// Tricubic interpolates the full 4x4x4 neighbourhood, applying
// Catmull-Rom weights sequentially along R, G and B.
func Tricubic[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.MinDim() < 4 {
		slog.Warn("tricubic needs 4 points per axis, falling back to trilinear",
			"nr", g.NR, "ng", g.NG, "nb", g.NB)
		return Trilinear(ops, g, p)
	}
	return clampDomain(ops, g, separable(ops, g, p, 4))
}

// SixCube interpolates a 6x6x6 neighbourhood with the Catmull-Rom
// kernel stretched over six taps per axis. The two outer taps carry
// kernel arguments outside [-2, 2], so the weight vector is not a
// consistent convolution filter; the variant exists to benchmark
// extended support widths, not to improve on Tricubic.
func SixCube[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T] {
	if g.MinDim() < 6 {
		slog.Warn("6x6x6 needs 6 points per axis, falling back to tricubic",
			"nr", g.NR, "ng", g.NG, "nb", g.NB)
		return Tricubic(ops, g, p)
	}
	return clampDomain(ops, g, separable(ops, g, p, 6))
}

// separable runs the shared taps-wide sequential interpolation along
// R, then G, then B.
func separable[T any](ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T], taps int) lut.Triple[T] {
	lead := 1
	if taps == 6 {
		lead = 2
	}

	q := clampQuery(ops, p)
	i, tx := axis(ops, q.R, g.NR)
	j, ty := axis(ops, q.G, g.NG)
	k, tz := axis(ops, q.B, g.NB)

	wx := cubicWeights(ops, tx, taps)
	wy := cubicWeights(ops, ty, taps)
	wz := cubicWeights(ops, tz, taps)

	planes := make([]lut.Triple[T], taps)
	rows := make([]lut.Triple[T], taps)
	line := make([]lut.Triple[T], taps)
	for kk := 0; kk < taps; kk++ {
		pk := g.ClampIndex(k+kk-lead, 2)
		for jj := 0; jj < taps; jj++ {
			pj := g.ClampIndex(j+jj-lead, 1)
			for ii := 0; ii < taps; ii++ {
				line[ii] = g.Sample(g.ClampIndex(i+ii-lead, 0), pj, pk)
			}
			rows[jj] = dot(ops, wx, line)
		}
		planes[kk] = dot(ops, wy, rows)
	}
	return dot(ops, wz, planes)
}
