package math

import (
	"testing"

	"github.com/drakos74/classifier/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	type test struct {
		a, b []float64
		d    map[string]float64
	}

	tests := map[string]test{
		"no-shared-values": {
			a: []float64{0, 3, 0},
			b: []float64{4, 0, 0},
			d: map[string]float64{
				"euclidean": 5,
				"manhattan": 7,
				"chebyshev": 4,
				"hamming":   2,
			},
		},
		"identical": {
			a: []float64{1, 2, 3},
			b: []float64{1, 2, 3},
			d: map[string]float64{
				"euclidean": 0,
				"manhattan": 0,
				"chebyshev": 0,
				"hamming":   0,
			},
		},
		"all-different": {
			a: []float64{1, 1},
			b: []float64{-1, 2},
			d: map[string]float64{
				"euclidean": 2.23606797749979,
				"manhattan": 3,
				"chebyshev": 2,
				"hamming":   2,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for metric, expected := range tt.d {
				d, err := DistanceOf(metric)
				require.NoError(t, err)
				assert.InDelta(t, expected, d(tt.a, tt.b), 1e-9, metric)
				// symmetric
				assert.InDelta(t, d(tt.a, tt.b), d(tt.b, tt.a), 1e-9, metric)
			}
		})
	}
}

func TestDistanceOf(t *testing.T) {
	d, err := DistanceOf("Manhattan")
	require.NoError(t, err)
	assert.Equal(t, 7.0, d([]float64{0, 3, 0}, []float64{4, 0, 0}))

	_, err = DistanceOf("cosine")
	assert.ErrorIs(t, err, data.UnknownEntityErr)
}

func TestDistance_Mismatch(t *testing.T) {
	for _, d := range []Distance{Euclidean, Hamming} {
		assert.Panics(t, func() {
			d([]float64{1, 2}, []float64{1})
		})
	}
}
