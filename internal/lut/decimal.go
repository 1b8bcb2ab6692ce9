package lut

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Precision limits for the decimal backend, in significant decimal digits.
const (
	MinDigits = 4
	MaxDigits = 50
)

// Dec is the arbitrary-precision decimal backend. All arithmetic is
// rounded half-to-even at the configured number of significant digits,
// mirroring the binary64 default rounding mode.
//
// Arithmetic on finite operands cannot fail; a failing apd operation
// (e.g. exhausted memory) panics and is recovered by the driver.
type Dec struct {
	ctx    *apd.Context
	digits int
}

// NewDec creates a decimal backend with the given number of significant
// decimal digits. Digits outside [MinDigits, MaxDigits] are rejected.
func NewDec(digits int) (*Dec, error) {
	if digits < MinDigits || digits > MaxDigits {
		return nil, fmt.Errorf("decimal precision %d out of range [%d, %d]", digits, MinDigits, MaxDigits)
	}
	ctx := apd.BaseContext.WithPrecision(uint32(digits))
	ctx.Rounding = apd.RoundHalfEven
	return &Dec{ctx: ctx, digits: digits}, nil
}

// Digits reports the configured number of significant decimal digits.
func (d *Dec) Digits() int { return d.digits }

func (d *Dec) FromFloat(x float64) *apd.Decimal {
	// Convert through the shortest round-trip decimal text so the
	// decimal value matches the printed form of the binary64 input.
	v, err := d.Parse(strconv.FormatFloat(x, 'g', -1, 64))
	if err != nil {
		panic(err)
	}
	return v
}

func (d *Dec) FromInt(n int) *apd.Decimal {
	return apd.New(int64(n), 0)
}

func (d *Dec) Parse(s string) (*apd.Decimal, error) {
	v, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	d.check(d.ctx.Round(v, v))
	return v, nil
}

func (d *Dec) Add(a, b *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.Add(res, a, b))
	return res
}

func (d *Dec) Sub(a, b *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.Sub(res, a, b))
	return res
}

func (d *Dec) Mul(a, b *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.Mul(res, a, b))
	return res
}

func (d *Dec) Neg(a *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.Neg(res, a))
	return res
}

func (d *Dec) Abs(a *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.Abs(res, a))
	return res
}

func (d *Dec) Cmp(a, b *apd.Decimal) int {
	return a.Cmp(b)
}

func (d *Dec) Floor(a *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.Floor(res, a))
	return res
}

func (d *Dec) Round(a *apd.Decimal) *apd.Decimal {
	res := new(apd.Decimal)
	d.check(d.ctx.RoundToIntegralValue(res, a))
	return res
}

func (d *Dec) Int(a *apd.Decimal) int {
	n, err := a.Int64()
	if err != nil {
		panic(err)
	}
	return int(n)
}

func (d *Dec) Float(a *apd.Decimal) float64 {
	f, err := a.Float64()
	if err != nil {
		panic(err)
	}
	return f
}

func (d *Dec) Text(a *apd.Decimal, digits int) string {
	// Quantizing to 10^-digits may need more significant digits than
	// the working precision, so widen the context for formatting only.
	ctx := d.ctx.WithPrecision(uint32(d.digits + digits + 2))
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, a, int32(-digits)); err != nil {
		panic(err)
	}
	return q.Text('f')
}

// ConvertGrid converts a binary64 grid to the decimal representation
// once per run; kernels then stay in decimal arithmetic throughout.
func (d *Dec) ConvertGrid(g *Grid[float64]) *Grid[*apd.Decimal] {
	return ConvertGrid[*apd.Decimal](d, g)
}

func (d *Dec) check(_ apd.Condition, err error) {
	if err != nil {
		panic(err)
	}
}
