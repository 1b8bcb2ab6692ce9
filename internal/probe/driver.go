package probe

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cwbudde/cubelut/internal/interp"
	"github.com/cwbudde/cubelut/internal/lut"
)

const separator = "--------------------"

// nameWidth pads kernel names so the result columns line up; the widest
// name is "Tetrahedral (6-simplex decomposition)".
const nameWidth = 37

// Run evaluates every kernel at every probe point and writes the
// formatted results to w. A panic inside one kernel (possible under the
// decimal backend) is recovered and logged; the remaining kernels and
// probes still run. digits controls the printed decimal places.
func Run[T any](w io.Writer, ops lut.Real[T], g *lut.Grid[T], probes [][3]float64, digits int) error {
	kernels := interp.Kernels[T]()

	for _, pt := range probes {
		in := fmt.Sprintf("(%s, %s, %s)",
			strconv.FormatFloat(pt[0], 'f', digits, 64),
			strconv.FormatFloat(pt[1], 'f', digits, 64),
			strconv.FormatFloat(pt[2], 'f', digits, 64))
		if _, err := fmt.Fprintf(w, "Input RGB: %s\n", in); err != nil {
			return err
		}

		q := lut.Triple[T]{
			R: ops.FromFloat(pt[0]),
			G: ops.FromFloat(pt[1]),
			B: ops.FromFloat(pt[2]),
		}
		for _, k := range kernels {
			out, err := eval(ops, g, k, q)
			if err != nil {
				slog.Error("kernel evaluation failed", "kernel", k.Name, "probe", in, "err", err)
				if _, werr := fmt.Fprintf(w, "  %-*s: error - %v\n", nameWidth, k.Name, err); werr != nil {
					return werr
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "  %-*s: [%s, %s, %s]\n", nameWidth, k.Name,
				ops.Text(out.R, digits), ops.Text(out.G, digits), ops.Text(out.B, digits)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, separator); err != nil {
			return err
		}
	}
	return nil
}

func eval[T any](ops lut.Real[T], g *lut.Grid[T], k interp.Kernel[T], q lut.Triple[T]) (out lut.Triple[T], err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("kernel %s: %v", k.Name, v)
		}
	}()
	return k.Eval(ops, g, q), nil
}
