package buffer

import (
	"math"
)

// Stats keeps the running mean and variance of a sample of numbers.
type Stats struct {
	count          int
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{}
}

// Push adds the given elements to the sample.
func (s *Stats) Push(vv ...float64) {
	for _, v := range vv {
		s.push(v)
	}
}

func (s *Stats) push(v float64) {
	s.count++
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean
}

// Avg returns the average value of the sample.
func (s Stats) Avg() float64 {
	return s.mean
}

// Variance is the population variance of the sample e.g. divided by n.
func (s Stats) Variance() float64 {
	return s.dSquared / float64(s.count)
}

// StDev is the population standard deviation of the sample.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}
