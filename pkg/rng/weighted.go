package rng

// Choice is one outcome of a weighted draw.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Weighted draws values with probability proportional to their weight.
// The zero value is not usable; build one with [NewWeighted].
type Weighted[T any] struct {
	values     []T
	cumulative []float64
	total      float64
}

// NewWeighted builds a sampler from the given choices. Choices with a
// non-positive weight can never be drawn. At least one choice is required.
func NewWeighted[T any](choices ...Choice[T]) *Weighted[T] {
	if len(choices) == 0 {
		panic("rng: NewWeighted needs at least one choice")
	}
	w := &Weighted[T]{
		values:     make([]T, len(choices)),
		cumulative: make([]float64, len(choices)),
	}
	for i, c := range choices {
		w.values[i] = c.Value
		if c.Weight > 0 {
			w.total += c.Weight
		}
		w.cumulative[i] = w.total
	}
	return w
}

// Pick draws one value. A draw that falls past the last bucket (possible
// only through float rounding) returns the first value.
func (w *Weighted[T]) Pick(src Source) T {
	r := src.Float64() * w.total
	for i, c := range w.cumulative {
		if r < c {
			return w.values[i]
		}
	}
	return w.values[0]
}

// Values returns the drawable values in declaration order.
func (w *Weighted[T]) Values() []T {
	out := make([]T, len(w.values))
	copy(out, w.values)
	return out
}
