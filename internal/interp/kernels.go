package interp

import "github.com/cwbudde/cubelut/internal/lut"

// Kernel pairs a display name with an interpolation entry point.
type Kernel[T any] struct {
	Name string
	Eval func(ops lut.Real[T], g *lut.Grid[T], p lut.Triple[T]) lut.Triple[T]
}

// Kernels lists the full kernel family in reference order.
func Kernels[T any]() []Kernel[T] {
	return []Kernel[T]{
		{Name: "Nearest Neighbour", Eval: Nearest[T]},
		{Name: "Linear (1D along R)", Eval: Linear[T]},
		{Name: "Bilinear (RG plane)", Eval: Bilinear[T]},
		{Name: "Trilinear", Eval: Trilinear[T]},
		{Name: "Tetrahedral (6-simplex decomposition)", Eval: Tetrahedral[T]},
		{Name: "Bicubic (RG plane)", Eval: Bicubic[T]},
		{Name: "1D Cubic (along R)", Eval: Cubic1D[T]},
		{Name: "Tricubic", Eval: Tricubic[T]},
		{Name: "Conceptual 6×6×6", Eval: SixCube[T]},
	}
}
