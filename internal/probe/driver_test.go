package probe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/cubelut/internal/lut"
)

func testGrid(t *testing.T, n int) *lut.Grid[float64] {
	t.Helper()
	div := float64(n - 1)
	samples := make([]lut.Triple[float64], 0, n*n*n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				samples = append(samples, lut.Triple[float64]{
					R: float64(i) / div, G: float64(j) / div, B: float64(k) / div,
				})
			}
		}
	}
	g, err := lut.New(lut.F64{}, "driver test", n, n, n, samples,
		lut.Triple[float64]{R: 0, G: 0, B: 0}, lut.Triple[float64]{R: 1, G: 1, B: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestRunFormat(t *testing.T) {
	g := testGrid(t, 4)
	probes := [][3]float64{
		{0, 0, 0},
		{0.5, 0.5, 0.5},
	}

	var buf bytes.Buffer
	if err := Run(&buf, lut.F64{}, g, probes, 6); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "Input RGB: "); got != 2 {
		t.Errorf("probe headers = %d, want 2", got)
	}
	if !strings.Contains(out, "Input RGB: (0.000000, 0.000000, 0.000000)") {
		t.Errorf("missing formatted input header:\n%s", out)
	}
	if got := strings.Count(out, "--------------------\n"); got != 2 {
		t.Errorf("separators = %d, want 2", got)
	}

	// One line per kernel per probe.
	for _, name := range []string{
		"Nearest Neighbour",
		"Linear (1D along R)",
		"Bilinear (RG plane)",
		"Trilinear",
		"Tetrahedral (6-simplex decomposition)",
		"Bicubic (RG plane)",
		"1D Cubic (along R)",
		"Tricubic",
		"Conceptual 6×6×6",
	} {
		if got := strings.Count(out, name); got != 2 {
			t.Errorf("kernel %q appears %d times, want 2", name, got)
		}
	}

	// The identity grid reproduces the origin exactly for every kernel.
	if got := strings.Count(out, "[0.000000, 0.000000, 0.000000]"); got != 9 {
		t.Errorf("origin results = %d, want 9:\n%s", got, out)
	}
}

func TestRunDecimalBackend(t *testing.T) {
	g := testGrid(t, 4)
	dec, err := lut.NewDec(8)
	if err != nil {
		t.Fatalf("NewDec: %v", err)
	}

	var buf bytes.Buffer
	if err := Run(&buf, dec, dec.ConvertGrid(g), [][3]float64{{1, 1, 1}}, 8); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Input RGB: (1.00000000, 1.00000000, 1.00000000)") {
		t.Errorf("missing input header:\n%s", out)
	}
	if got := strings.Count(out, "[1.00000000, 1.00000000, 1.00000000]"); got != 9 {
		t.Errorf("white-corner results = %d, want 9:\n%s", got, out)
	}
}

func TestDefaultProbeList(t *testing.T) {
	if len(Default) != 24 {
		t.Fatalf("default probe count = %d, want 24", len(Default))
	}

	// The list must keep out-of-bounds probes that exercise the input clamp.
	hasOOB := false
	for _, p := range Default {
		if p[0] < 0 || p[0] > 1 || p[1] < 0 || p[1] > 1 || p[2] < 0 || p[2] > 1 {
			hasOOB = true
		}
	}
	if !hasOOB {
		t.Error("default probes contain no out-of-bounds point")
	}
}
