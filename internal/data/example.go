package data

import (
	"fmt"
	"strings"
)

// Example is an encoded row of the data set.
type Example struct {
	values []float64
	class  float64
}

// NewExample creates a new example from the feature values and the class value.
// The values are copied, examples do not change after construction.
func NewExample(class float64, values ...float64) *Example {
	vv := make([]float64, len(values))
	copy(vv, values)
	return &Example{
		values: vv,
		class:  class,
	}
}

// FromRow creates a new example out of an encoded row, the last field being the class value.
func FromRow(row []float64) (*Example, error) {
	if len(row) == 0 {
		return nil, fmt.Errorf("empty row has no class value: %w", FormatErr)
	}
	return NewExample(row[len(row)-1], row[:len(row)-1]...), nil
}

// Class returns the class value.
func (e *Example) Class() float64 {
	return e.class
}

// Size returns the number of feature values.
func (e *Example) Size() int {
	return len(e.values)
}

// Value returns the feature value at the given index.
func (e *Example) Value(i int) float64 {
	return e.values[i]
}

// Values returns a copy of the feature values.
func (e *Example) Values() []float64 {
	vv := make([]float64, len(e.values))
	copy(vv, e.values)
	return vv
}

// Vector returns the feature values without copying.
// NOTE : the slice is shared, callers must not modify it.
func (e *Example) Vector() []float64 {
	return e.values
}

func (e *Example) String() string {
	ss := make([]string, len(e.values)+1)
	for i, v := range e.values {
		ss[i] = fmt.Sprintf("%v", v)
	}
	ss[len(e.values)] = fmt.Sprintf("%v", e.class)
	return fmt.Sprintf("#%s", strings.Join(ss, " "))
}
