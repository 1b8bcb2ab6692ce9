package lut

import "fmt"

const maxDim = 1<<16 - 1

// Grid is an immutable 3D array of RGB triples plus the domain
// rectangle used for output clamping. sample(i,j,k) holds the value at
// normalized coordinate (i/(NR-1), j/(NG-1), k/(NB-1)); a dimension of
// size 1 uses coordinate 0. Samples live in one dense contiguous
// buffer so neighbour loads are fixed-stride accesses.
type Grid[T any] struct {
	Title                string
	NR, NG, NB           int
	DomainMin, DomainMax Triple[T]

	samples []T // (i,j,k) -> 3 scalars at ((i*NG+j)*NB+k)*3
}

// New builds a grid from samples listed in CUBE file order, i.e.
// R fastest and B slowest: file index k*nr*ng + j*nr + i.
func New[T any](ops Real[T], title string, nr, ng, nb int, samples []Triple[T], dmin, dmax Triple[T]) (*Grid[T], error) {
	for _, n := range [3]int{nr, ng, nb} {
		if n < 1 || n > maxDim {
			return nil, fmt.Errorf("grid dimension %d out of range [1, %d]", n, maxDim)
		}
	}
	if want := nr * ng * nb; len(samples) != want {
		return nil, fmt.Errorf("grid has %d samples, %dx%dx%d needs %d", len(samples), nr, ng, nb, want)
	}
	if ops.Cmp(dmin.R, dmax.R) > 0 || ops.Cmp(dmin.G, dmax.G) > 0 || ops.Cmp(dmin.B, dmax.B) > 0 {
		return nil, fmt.Errorf("domain minimum exceeds domain maximum")
	}

	g := &Grid[T]{
		Title:     title,
		NR:        nr,
		NG:        ng,
		NB:        nb,
		DomainMin: dmin,
		DomainMax: dmax,
		samples:   make([]T, nr*ng*nb*3),
	}
	for n, s := range samples {
		i := n % nr
		j := (n / nr) % ng
		k := n / (nr * ng)
		idx := g.offset(i, j, k)
		g.samples[idx], g.samples[idx+1], g.samples[idx+2] = s.R, s.G, s.B
	}
	return g, nil
}

// ConvertGrid converts a binary64 grid to the backend scalar type T.
// Values travel through the backend's FromFloat so the conversion
// matches how probe inputs are converted.
func ConvertGrid[T any](ops Real[T], g *Grid[float64]) *Grid[T] {
	out := &Grid[T]{
		Title: g.Title,
		NR:    g.NR,
		NG:    g.NG,
		NB:    g.NB,
		DomainMin: Triple[T]{
			R: ops.FromFloat(g.DomainMin.R),
			G: ops.FromFloat(g.DomainMin.G),
			B: ops.FromFloat(g.DomainMin.B),
		},
		DomainMax: Triple[T]{
			R: ops.FromFloat(g.DomainMax.R),
			G: ops.FromFloat(g.DomainMax.G),
			B: ops.FromFloat(g.DomainMax.B),
		},
		samples: make([]T, len(g.samples)),
	}
	for idx, v := range g.samples {
		out.samples[idx] = ops.FromFloat(v)
	}
	return out
}

func (g *Grid[T]) offset(i, j, k int) int {
	return ((i*g.NG+j)*g.NB + k) * 3
}

// Sample returns the stored triple at integer grid indices (i,j,k).
// Callers clamp indices through ClampIndex first.
func (g *Grid[T]) Sample(i, j, k int) Triple[T] {
	idx := g.offset(i, j, k)
	return Triple[T]{R: g.samples[idx], G: g.samples[idx+1], B: g.samples[idx+2]}
}

// Dim returns the size of axis dim (0=R, 1=G, 2=B).
func (g *Grid[T]) Dim(dim int) int {
	switch dim {
	case 0:
		return g.NR
	case 1:
		return g.NG
	default:
		return g.NB
	}
}

// ClampIndex limits a to [0, Dim(dim)-1].
func (g *Grid[T]) ClampIndex(a, dim int) int {
	n := g.Dim(dim)
	if a < 0 {
		return 0
	}
	if a >= n {
		return n - 1
	}
	return a
}

// MinDim returns the smallest of the three axis sizes.
func (g *Grid[T]) MinDim() int {
	n := g.NR
	if g.NG < n {
		n = g.NG
	}
	if g.NB < n {
		n = g.NB
	}
	return n
}
