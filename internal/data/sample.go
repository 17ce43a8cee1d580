package data

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
)

// Sampler draws stratified subsets of a data set.
type Sampler struct {
	rand *rand.Rand
}

// NewSampler creates a new sampler drawing from the given random source.
func NewSampler(r *rand.Rand) *Sampler {
	return &Sampler{rand: r}
}

// NewSeededSampler creates a new sampler with a random source for the given seed.
func NewSeededSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

// Subset draws the given fraction of the examples of each class, without replacement.
// The result holds the examples of the first class first, in the order they were drawn.
func (s *Sampler) Subset(ds *Dataset, fraction float64) (*Dataset, error) {
	if !(fraction >= 0) {
		return nil, fmt.Errorf("invalid fraction %v: %w", fraction, RangeErr)
	}
	classes := ds.Classes()
	strata := make([]*Dataset, len(classes))
	targets := make([]int, len(classes))
	// check all strata before drawing anything
	for i, c := range classes {
		strata[i] = ds.WithClass(c)
		targets[i] = int(math.Round(fraction * float64(strata[i].Size())))
		if targets[i] > strata[i].Size() {
			return nil, fmt.Errorf("cannot draw %d examples out of %d for class %v: %w",
				targets[i], strata[i].Size(), c, NonTerminatingSampleErr)
		}
	}

	subset := NewDataset()
	for i, stratum := range strata {
		chosen := make(map[int]struct{}, targets[i])
		for len(chosen) < targets[i] {
			index := s.rand.Intn(stratum.Size())
			if _, ok := chosen[index]; ok {
				continue
			}
			chosen[index] = struct{}{}
			subset.Add(stratum.Get(index))
		}
		log.Debug().
			Float64("class", classes[i]).
			Int("stratum", stratum.Size()).
			Int("drawn", targets[i]).
			Msg("sampled stratum")
	}
	return subset, nil
}

// TrainTest splits the data set into a stratified training set with the given fraction
// and a test set holding all other examples in their original order.
func (s *Sampler) TrainTest(ds *Dataset, trainFraction float64) (*Dataset, *Dataset, error) {
	train, err := s.Subset(ds, trainFraction)
	if err != nil {
		return nil, nil, fmt.Errorf("could not sample training set: %w", err)
	}
	test := NewDataset()
	for _, e := range ds.examples {
		if !train.Contains(e) {
			test.Add(e)
		}
	}
	return train, test, nil
}

// TrainValidationTest splits the data set into a stratified training set,
// a validation set and a test set.
// The validation and test sets are filled in the original order from the examples
// not drawn for training. They are not stratified.
func (s *Sampler) TrainValidationTest(ds *Dataset, trainFraction, validationFraction float64) (*Dataset, *Dataset, *Dataset, error) {
	if !(trainFraction+validationFraction < 1.0) {
		return nil, nil, nil, fmt.Errorf("train %v and validation %v leave no examples for testing: %w",
			trainFraction, validationFraction, RangeErr)
	}
	if !(validationFraction >= 0) {
		return nil, nil, nil, fmt.Errorf("invalid validation fraction %v: %w", validationFraction, RangeErr)
	}
	train, err := s.Subset(ds, trainFraction)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not sample training set: %w", err)
	}
	remaining := int(math.Round(validationFraction * float64(ds.Size())))
	validation := NewDataset()
	test := NewDataset()
	for _, e := range ds.examples {
		if train.Contains(e) {
			continue
		}
		if remaining > 0 {
			validation.Add(e)
			remaining--
		} else {
			test.Add(e)
		}
	}
	log.Debug().
		Int("train", train.Size()).
		Int("validation", validation.Size()).
		Int("test", test.Size()).
		Msg("split data set")
	return train, validation, test, nil
}
