package math

import (
	"fmt"
	"math"
	"strings"

	"github.com/drakos74/classifier/internal/data"
	"gonum.org/v1/gonum/floats"
)

// Distance computes the dissimilarity of two feature vectors of equal length.
// NOTE : no weighting or normalisation is applied, nominal codes and numeric values are compared as they are.
type Distance func(a, b []float64) float64

// Euclidean is the square root of the sum of squared differences.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan is the sum of absolute differences.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev is the largest absolute difference.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Hamming is the number of positions with different values.
func Hamming(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(a), len(b)))
	}
	var d float64
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

var distances = map[string]Distance{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"hamming":   Hamming,
}

// DistanceOf returns the distance metric with the given name.
func DistanceOf(name string) (Distance, error) {
	if d, ok := distances[strings.ToLower(name)]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unknown distance '%s': %w", name, data.UnknownEntityErr)
}
