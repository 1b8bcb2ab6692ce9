package lut

// Triple is an ordered RGB scalar triple in the backend's scalar type T.
type Triple[T any] struct {
	R, G, B T
}

// Add returns the component-wise sum t + u.
func (t Triple[T]) Add(ops Real[T], u Triple[T]) Triple[T] {
	return Triple[T]{
		R: ops.Add(t.R, u.R),
		G: ops.Add(t.G, u.G),
		B: ops.Add(t.B, u.B),
	}
}

// Sub returns the component-wise difference t - u.
func (t Triple[T]) Sub(ops Real[T], u Triple[T]) Triple[T] {
	return Triple[T]{
		R: ops.Sub(t.R, u.R),
		G: ops.Sub(t.G, u.G),
		B: ops.Sub(t.B, u.B),
	}
}

// Scale returns the triple scaled by s in every component.
func (t Triple[T]) Scale(ops Real[T], s T) Triple[T] {
	return Triple[T]{
		R: ops.Mul(t.R, s),
		G: ops.Mul(t.G, s),
		B: ops.Mul(t.B, s),
	}
}

// Lerp returns t*(1-s) + u*s component-wise.
func (t Triple[T]) Lerp(ops Real[T], u Triple[T], s T) Triple[T] {
	one := ops.FromInt(1)
	inv := ops.Sub(one, s)
	return Triple[T]{
		R: ops.Add(ops.Mul(t.R, inv), ops.Mul(u.R, s)),
		G: ops.Add(ops.Mul(t.G, inv), ops.Mul(u.G, s)),
		B: ops.Add(ops.Mul(t.B, inv), ops.Mul(u.B, s)),
	}
}

// Clamp limits every component to the [lo, hi] range given per channel.
func (t Triple[T]) Clamp(ops Real[T], lo, hi Triple[T]) Triple[T] {
	return Triple[T]{
		R: Clamp(ops, t.R, lo.R, hi.R),
		G: Clamp(ops, t.G, lo.G, hi.G),
		B: Clamp(ops, t.B, lo.B, hi.B),
	}
}

// Clamp limits x to [lo, hi].
func Clamp[T any](ops Real[T], x, lo, hi T) T {
	if ops.Cmp(x, lo) < 0 {
		return lo
	}
	if ops.Cmp(x, hi) > 0 {
		return hi
	}
	return x
}
