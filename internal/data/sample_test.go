package data

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weather(t *testing.T) *Dataset {
	src, err := LoadFile("testdata/weather.txt")
	require.NoError(t, err)
	return src.Examples
}

func TestSampler_Subset(t *testing.T) {
	ds := weather(t)

	type test struct {
		fraction float64
		size     int
		err      error
	}

	// 9 'yes' and 5 'no' examples
	tests := map[string]test{
		"none":     {fraction: 0, size: 0},
		"all":      {fraction: 1, size: 14},
		"sixty":    {fraction: 0.6, size: 5 + 3},
		"half-up":  {fraction: 0.5, size: 5 + 3},
		"tenth":    {fraction: 0.1, size: 1 + 1},
		"too-many": {fraction: 1.2, err: NonTerminatingSampleErr},
		"negative": {fraction: -0.1, err: RangeErr},
		"nan":      {fraction: math.NaN(), err: RangeErr},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			subset, err := NewSampler(rand.New(rand.NewSource(1))).Subset(ds, tt.fraction)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, subset.Size())

			// every stratum is drawn without replacement
			count := ds.Count()
			for c, n := range subset.Count() {
				assert.Equal(t, int(math.Round(tt.fraction*float64(count[c]))), n)
			}
			for _, e := range subset.Examples() {
				assert.True(t, ds.Contains(e))
			}
		})
	}
}

func TestSampler_SubsetStrataOrder(t *testing.T) {
	ds := weather(t)
	subset, err := NewSeededSampler(3).Subset(ds, 0.6)
	require.NoError(t, err)

	// classes follow their first appearance, 'no' comes first in the weather data
	labels := subset.Labels()
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0, 0, 0}, labels)
}

func TestSampler_Seeded(t *testing.T) {
	ds := weather(t)
	first, err := NewSeededSampler(42).Subset(ds, 0.5)
	require.NoError(t, err)
	second, err := NewSeededSampler(42).Subset(ds, 0.5)
	require.NoError(t, err)
	assert.Equal(t, first.Examples(), second.Examples())
}

func TestSampler_TrainTest(t *testing.T) {
	ds := weather(t)
	for seed := int64(0); seed < 10; seed++ {
		train, test, err := NewSeededSampler(seed).TrainTest(ds, 0.6)
		require.NoError(t, err)

		assert.Equal(t, 8, train.Size())
		assert.Equal(t, 6, test.Size())
		for _, e := range ds.Examples() {
			// exactly one partition holds every example
			assert.True(t, train.Contains(e) != test.Contains(e))
		}
		// test keeps the original order
		previous := -1
		for _, e := range test.Examples() {
			i := index(ds, e)
			assert.Greater(t, i, previous)
			previous = i
		}
	}
}

func TestSampler_TrainValidationTest(t *testing.T) {
	ds := weather(t)

	type test struct {
		train      float64
		validation float64
		sizes      [3]int
		err        error
	}

	tests := map[string]test{
		"split": {
			train:      0.5,
			validation: 0.2,
			sizes:      [3]int{8, 3, 3},
		},
		"no-validation": {
			train: 0.6,
			sizes: [3]int{8, 0, 6},
		},
		"no-test": {
			train:      0.6,
			validation: 0.4,
			err:        RangeErr,
		},
		"nan-train": {
			train:      math.NaN(),
			validation: 0.2,
			err:        RangeErr,
		},
		"nan-validation": {
			train:      0.5,
			validation: math.NaN(),
			err:        RangeErr,
		},
		"negative-validation": {
			train:      0.6,
			validation: -0.1,
			err:        RangeErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			train, validation, test, err := NewSeededSampler(5).TrainValidationTest(ds, tt.train, tt.validation)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sizes, [3]int{train.Size(), validation.Size(), test.Size()})

			// validation takes the first examples not drawn for training
			rest := make([]*Example, 0)
			for _, e := range ds.Examples() {
				if !train.Contains(e) {
					rest = append(rest, e)
				}
			}
			assert.Equal(t, rest[:validation.Size()], validation.Examples())
			assert.Equal(t, rest[validation.Size():], test.Examples())
		})
	}
}

func index(ds *Dataset, e *Example) int {
	for i, x := range ds.Examples() {
		if x == e {
			return i
		}
	}
	return -1
}
