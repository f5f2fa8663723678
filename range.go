package gaussmap

import (
	"errors"
	"fmt"
)

// ErrRange reports an inverted parameter range.
var ErrRange = errors.New("gaussmap: range min exceeds max")

// Range bounds one parameter of a surface: min ≤ max.
type Range struct {
	Min, Max float64
}

// NewRange validates the bounds before constructing a Range.
func NewRange(min, max float64) (Range, error) {
	if min > max {
		return Range{}, fmt.Errorf("%w: [%g, %g]", ErrRange, min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }
