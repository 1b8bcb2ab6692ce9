package interp

import (
	"testing"

	"github.com/cwbudde/cubelut/internal/lut"
)

// Fallbacks go through the public entry points, so a fallen-back kernel
// must produce bit-identical results to the kernel it delegates to.
func TestCubicFallbacksMatchExactly(t *testing.T) {
	ops := lut.F64{}

	points := []lut.Triple[float64]{
		{R: 0.1, G: 0.9, B: 0.4},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0.77, G: 0.13, B: 0.66},
		{R: -0.2, G: 1.3, B: 0.5},
	}

	g3 := bumpyGrid(t, 3)
	for _, p := range points {
		if got, want := Bicubic(ops, g3, p), Bilinear(ops, g3, p); got != want {
			t.Errorf("Bicubic fallback at %+v: %+v, want bilinear %+v", p, got, want)
		}
		if got, want := Cubic1D(ops, g3, p), Linear(ops, g3, p); got != want {
			t.Errorf("Cubic1D fallback at %+v: %+v, want linear %+v", p, got, want)
		}
		if got, want := Tricubic(ops, g3, p), Trilinear(ops, g3, p); got != want {
			t.Errorf("Tricubic fallback at %+v: %+v, want trilinear %+v", p, got, want)
		}
	}

	g5 := bumpyGrid(t, 5)
	for _, p := range points {
		if got, want := SixCube(ops, g5, p), Tricubic(ops, g5, p); got != want {
			t.Errorf("SixCube fallback at %+v: %+v, want tricubic %+v", p, got, want)
		}
	}
}

func TestSinglePointGrid(t *testing.T) {
	ops := lut.F64{}
	c := lut.Triple[float64]{R: 0.3, G: 0.6, B: 0.9}
	dmin, dmax := unitDomain()
	g, err := lut.New(ops, "single", 1, 1, 1, []lut.Triple[float64]{c}, dmin, dmax)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, k := range Kernels[float64]() {
		got := k.Eval(ops, g, lut.Triple[float64]{R: 0.7, G: 0.2, B: 0.5})
		if got != c {
			t.Errorf("%s on 1x1x1 grid = %+v, want %+v", k.Name, got, c)
		}
	}
}

func TestDegenerateRAxis(t *testing.T) {
	// 1xNGxNB grid: bilinear must fall through to linear, which in turn
	// reads the single R sample.
	ops := lut.F64{}
	dmin, dmax := unitDomain()
	samples := make([]lut.Triple[float64], 0, 3*3)
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			samples = append(samples, lut.Triple[float64]{
				R: float64(j) / 2, G: float64(k) / 2, B: 0.5,
			})
		}
	}
	g, err := lut.New(ops, "flat", 1, 3, 3, samples, dmin, dmax)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p := lut.Triple[float64]{R: 0.4, G: 0.6, B: 0.1}
	if got, want := Bilinear(ops, g, p), Linear(ops, g, p); got != want {
		t.Errorf("Bilinear fallback = %+v, want linear %+v", got, want)
	}
	if got, want := Trilinear(ops, g, p), Nearest(ops, g, p); got != want {
		t.Errorf("Trilinear fallback = %+v, want nearest %+v", got, want)
	}
	if got, want := Tetrahedral(ops, g, p), Trilinear(ops, g, p); got != want {
		t.Errorf("Tetrahedral fallback = %+v, want trilinear %+v", got, want)
	}
}
