package ml

import (
	"fmt"
	"math"

	"github.com/drakos74/classifier/internal/buffer"
	"github.com/drakos74/classifier/internal/data"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat/distuv"
)

// feature holds the per class statistics of one feature.
// Nominal features count the occurrences of each value,
// numeric features keep the gaussian fitted on the raw sample.
type feature struct {
	kind   data.Kind
	counts map[float64]int
	total  int
	normal distuv.Normal
}

func newFeature(kind data.Kind, values []float64) *feature {
	f := &feature{kind: kind}
	switch kind {
	case data.Nominal:
		f.counts = make(map[float64]int)
		for _, v := range values {
			f.counts[v]++
		}
		f.total = len(values)
	default:
		sample := buffer.NewStats()
		sample.Push(values...)
		f.normal = distuv.Normal{
			Mu:    sample.Avg(),
			Sigma: sample.StDev(),
		}
	}
	return f
}

// probability estimates the likelihood of the value under this feature.
// NOTE : an unseen nominal value counts as seen once, without adjusting the total.
func (f *feature) probability(v float64) float64 {
	if f.kind == data.Nominal {
		count, ok := f.counts[v]
		if !ok {
			count = 1
		}
		return float64(count) / float64(f.total)
	}
	return f.normal.Prob(v)
}

// NaiveBayes is a naive bayes classifier over nominal and numeric features.
type NaiveBayes struct {
	classes  []float64
	priors   map[float64]int
	total    int
	features map[float64][]*feature
}

// NewNaiveBayes creates a new untrained naive bayes classifier.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{}
}

// Name returns the classifier name.
func (nb *NaiveBayes) Name() string {
	return "bayes"
}

// Train collects the class priors and per class feature statistics.
func (nb *NaiveBayes) Train(attributes *data.Attributes, set *data.Dataset) error {
	if set.Size() == 0 {
		return fmt.Errorf("cannot train naive bayes on empty set: %w", data.PreconditionErr)
	}
	if _, err := checkWidth(attributes, set); err != nil {
		return fmt.Errorf("could not train naive bayes: %w", err)
	}
	features := attributes.Features()

	nb.classes = set.Classes()
	nb.priors = make(map[float64]int, len(nb.classes))
	nb.features = make(map[float64][]*feature, len(nb.classes))
	nb.total = set.Size()
	for _, c := range nb.classes {
		stratum := set.WithClass(c)
		nb.priors[c] = stratum.Size()
		ff := make([]*feature, len(features))
		for i, a := range features {
			ff[i] = newFeature(a.Kind(), stratum.FeatureValues(i))
		}
		nb.features[c] = ff
	}
	log.Debug().
		Int("examples", set.Size()).
		Int("classes", len(nb.classes)).
		Int("features", len(features)).
		Msg("trained naive bayes")
	return nil
}

// Priors returns the relative frequency of each class in the training set.
func (nb *NaiveBayes) Priors() map[float64]float64 {
	priors := make(map[float64]float64, len(nb.priors))
	for c, n := range nb.priors {
		priors[c] = float64(n) / float64(nb.total)
	}
	return priors
}

// Score returns the negative log likelihood of the example for the given class.
// Lower scores mean more probable classes.
func (nb *NaiveBayes) Score(class float64, example *data.Example) (float64, error) {
	ff, ok := nb.features[class]
	if !ok {
		return 0, fmt.Errorf("class %v not seen in training: %w", class, data.UnknownEntityErr)
	}
	if example.Size() != len(ff) {
		return 0, fmt.Errorf("example has %d values for %d features: %w", example.Size(), len(ff), data.FormatErr)
	}
	score := logTerm(float64(nb.priors[class]) / float64(nb.total))
	for i, f := range ff {
		score += logTerm(f.probability(example.Value(i)))
	}
	return score, nil
}

// Classify returns the class with the lowest score.
func (nb *NaiveBayes) Classify(example *data.Example) (float64, error) {
	if len(nb.classes) == 0 {
		return 0, fmt.Errorf("naive bayes is not trained: %w", data.PreconditionErr)
	}
	var class float64
	min := math.Inf(1)
	for i, c := range nb.classes {
		score, err := nb.Score(c, example)
		if err != nil {
			return 0, err
		}
		if i == 0 || score < min {
			min = score
			class = c
		}
	}
	return class, nil
}

// Test classifies every example of the set.
func (nb *NaiveBayes) Test(set *data.Dataset) ([]float64, error) {
	return test(set, nb.Classify)
}

// logTerm is the negative base 10 logarithm of the probability.
// Zero and NaN probabilities do not contribute to the score.
func logTerm(p float64) float64 {
	if p == 0 || math.IsNaN(p) {
		return 0
	}
	return -math.Log10(p)
}
