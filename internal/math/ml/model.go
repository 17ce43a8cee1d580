package ml

import (
	"fmt"

	"github.com/drakos74/classifier/internal/data"
)

// Classifier is a supervised model trained on a data set and its attributes.
// The attributes describe the feature values of every example positionally.
type Classifier interface {
	// Name is a short identifier of the classifier.
	Name() string
	// Train prepares the classifier for the given training set.
	Train(attributes *data.Attributes, set *data.Dataset) error
	// Classify returns the class value for the given example.
	Classify(example *data.Example) (float64, error)
	// Test classifies every example of the set, in order.
	Test(set *data.Dataset) ([]float64, error)
}

// test applies the classify function on every example of the set.
func test(set *data.Dataset, classify func(example *data.Example) (float64, error)) ([]float64, error) {
	labels := make([]float64, set.Size())
	for i, e := range set.Examples() {
		label, err := classify(e)
		if err != nil {
			return nil, fmt.Errorf("could not classify example %d: %w", i, err)
		}
		labels[i] = label
	}
	return labels, nil
}

// checkWidth makes sure every example carries one value per feature attribute.
func checkWidth(attributes *data.Attributes, set *data.Dataset) (int, error) {
	width := len(attributes.Features())
	for i, e := range set.Examples() {
		if e.Size() != width {
			return 0, fmt.Errorf("example %d has %d values for %d features: %w", i, e.Size(), width, data.FormatErr)
		}
	}
	return width, nil
}
