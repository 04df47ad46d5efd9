package sampler

// Weighted pairs a value with its relative selection weight
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Choice is a reusable weighted categorical distribution over a fixed variant set.
// Weights are relative and need not sum to 1; zero-weight variants are never picked.
type Choice[T any] struct {
	values     []T
	cumulative []float64
}

// NewChoice builds a distribution from the given weight table.
// Panics if the table is empty, a weight is negative, or all weights are zero,
// since weight tables are fixed at compile time.
func NewChoice[T any](items ...Weighted[T]) *Choice[T] {
	if len(items) == 0 {
		panic("sampler: weight table must not be empty")
	}

	c := &Choice[T]{
		values:     make([]T, len(items)),
		cumulative: make([]float64, len(items)),
	}

	total := 0.0
	for i, item := range items {
		if item.Weight < 0 {
			panic("sampler: weights must not be negative")
		}
		total += item.Weight
		c.values[i] = item.Value
		c.cumulative[i] = total
	}

	if total == 0 {
		panic("sampler: weights must not all be zero")
	}

	return c
}

// Pick draws one value from the distribution
func (c *Choice[T]) Pick(s *Source) T {
	r := s.Float64() * c.cumulative[len(c.cumulative)-1]
	for i, bound := range c.cumulative {
		if r < bound {
			return c.values[i]
		}
	}
	return c.values[len(c.values)-1]
}

// Values returns the variant set in table order
func (c *Choice[T]) Values() []T {
	return append([]T(nil), c.values...)
}

// OneOf picks one element of items with equal probability; items must not be empty
func OneOf[T any](s *Source, items []T) T {
	return items[s.IntN(len(items))]
}
