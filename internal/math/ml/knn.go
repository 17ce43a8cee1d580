package ml

import (
	"fmt"

	"github.com/drakos74/classifier/internal/data"
	mlmath "github.com/drakos74/classifier/internal/math"
	"github.com/rs/zerolog/log"
)

// KNN is a lazy nearest neighbour classifier.
// It votes among the closest WindowSize training examples.
type KNN struct {
	distance mlmath.Distance
	width    int
	train    *data.Dataset
}

// KNNOption configures a KNN classifier.
type KNNOption func(knn *KNN)

// WithDistance sets the distance metric used to compare examples.
func WithDistance(distance mlmath.Distance) KNNOption {
	return func(knn *KNN) {
		knn.distance = distance
	}
}

// NewKNN creates a new nearest neighbour classifier using the euclidean distance by default.
func NewKNN(options ...KNNOption) *KNN {
	knn := &KNN{
		distance: mlmath.Euclidean,
	}
	for _, opt := range options {
		opt(knn)
	}
	return knn
}

// Name returns the classifier name.
func (knn *KNN) Name() string {
	return "knn"
}

// Train keeps a reference to the training set.
func (knn *KNN) Train(attributes *data.Attributes, set *data.Dataset) error {
	width, err := checkWidth(attributes, set)
	if err != nil {
		return fmt.Errorf("could not train knn: %w", err)
	}
	knn.width = width
	knn.train = set
	log.Debug().Int("examples", set.Size()).Int("features", width).Msg("trained knn")
	return nil
}

// Classify votes among the training examples closest to the given example.
func (knn *KNN) Classify(example *data.Example) (float64, error) {
	if knn.train == nil || knn.train.Size() == 0 {
		return 0, fmt.Errorf("knn has no training examples: %w", data.PreconditionErr)
	}
	if example.Size() != knn.width {
		return 0, fmt.Errorf("example has %d values for %d features: %w", example.Size(), knn.width, data.FormatErr)
	}
	window := NewWindow()
	x := example.Vector()
	for _, t := range knn.train.Examples() {
		window.Insert(knn.distance(x, t.Vector()), t.Class())
	}
	return window.Decide()
}

// Test classifies every example of the set.
func (knn *KNN) Test(set *data.Dataset) ([]float64, error) {
	return test(set, knn.Classify)
}
