package data

import "fmt"

// Dataset is an ordered collection of examples sharing the same attributes.
// Membership is based on identity, the same example can only be added once.
type Dataset struct {
	examples []*Example
	index    map[*Example]struct{}
}

// NewDataset creates a new data set out of the given examples.
func NewDataset(examples ...*Example) *Dataset {
	ds := &Dataset{
		examples: make([]*Example, 0, len(examples)),
		index:    make(map[*Example]struct{}, len(examples)),
	}
	for _, e := range examples {
		ds.Add(e)
	}
	return ds
}

// Add appends the example to the data set.
// It returns false if the example is already part of it.
func (ds *Dataset) Add(e *Example) bool {
	if _, ok := ds.index[e]; ok {
		return false
	}
	ds.index[e] = struct{}{}
	ds.examples = append(ds.examples, e)
	return true
}

// Size returns the number of examples.
func (ds *Dataset) Size() int {
	return len(ds.examples)
}

// Get returns the example at the given position.
func (ds *Dataset) Get(i int) *Example {
	return ds.examples[i]
}

// Examples returns the examples in insertion order.
func (ds *Dataset) Examples() []*Example {
	ee := make([]*Example, len(ds.examples))
	copy(ee, ds.examples)
	return ee
}

// Contains checks if the given example is part of the data set.
func (ds *Dataset) Contains(e *Example) bool {
	_, ok := ds.index[e]
	return ok
}

// Classes returns the distinct class values in order of first appearance.
func (ds *Dataset) Classes() []float64 {
	seen := make(map[float64]struct{})
	classes := make([]float64, 0)
	for _, e := range ds.examples {
		if _, ok := seen[e.class]; !ok {
			seen[e.class] = struct{}{}
			classes = append(classes, e.class)
		}
	}
	return classes
}

// Labels returns the class value of every example, parallel to the example order.
func (ds *Dataset) Labels() []float64 {
	labels := make([]float64, len(ds.examples))
	for i, e := range ds.examples {
		labels[i] = e.class
	}
	return labels
}

// FeatureValues returns the values of the given feature across all examples.
func (ds *Dataset) FeatureValues(i int) []float64 {
	values := make([]float64, len(ds.examples))
	for j, e := range ds.examples {
		values[j] = e.values[i]
	}
	return values
}

// WithClass returns the examples with the given class value.
// The examples are shared with the original data set.
func (ds *Dataset) WithClass(class float64) *Dataset {
	subset := NewDataset()
	for _, e := range ds.examples {
		if e.class == class {
			subset.Add(e)
		}
	}
	return subset
}

// Count returns the number of examples for each class value.
func (ds *Dataset) Count() map[float64]int {
	count := make(map[float64]int)
	for _, e := range ds.examples {
		count[e.class]++
	}
	return count
}

// Majority returns the most frequent class value.
// Ties are resolved in favour of the class appearing first.
func (ds *Dataset) Majority() (float64, error) {
	if len(ds.examples) == 0 {
		return 0, fmt.Errorf("no majority for empty data set: %w", PreconditionErr)
	}
	count := ds.Count()
	var majority float64
	max := 0
	for _, c := range ds.Classes() {
		if count[c] > max {
			max = count[c]
			majority = c
		}
	}
	return majority, nil
}

// IsHomogeneous checks if all examples share the same class value.
func (ds *Dataset) IsHomogeneous() bool {
	return len(ds.Classes()) <= 1
}
