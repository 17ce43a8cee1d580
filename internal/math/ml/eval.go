package ml

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/drakos74/classifier/internal/data"
	"github.com/drakos74/classifier/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Report is the outcome of testing a trained classifier against a labelled set.
type Report struct {
	ID         string                     `json:"id"`
	Dataset    string                     `json:"dataset"`
	Classifier string                     `json:"classifier"`
	Time       time.Time                  `json:"time"`
	Samples    int                        `json:"samples"`
	Accuracy   float64                    `json:"accuracy"`
	F1         map[string]float64         `json:"f1"`
	Confusion  evaluation.ConfusionMatrix `json:"confusion"`
}

// Summary returns the per class precision, recall and f1 summary.
func (r Report) Summary() string {
	return evaluation.GetSummary(r.Confusion)
}

// Evaluator tests classifiers and records the outcome.
type Evaluator struct {
	dataset string
	metrics *metrics.Metrics
}

// NewEvaluator creates a new evaluator for the given data set.
// metrics can be nil.
func NewEvaluator(dataset string, m *metrics.Metrics) *Evaluator {
	return &Evaluator{
		dataset: dataset,
		metrics: m,
	}
}

// Evaluate classifies the test set with the trained classifier
// and compares the outcome to the actual class of each example.
func (ev *Evaluator) Evaluate(clf Classifier, attributes *data.Attributes, set *data.Dataset) (Report, error) {
	if set.Size() == 0 {
		return Report{}, fmt.Errorf("cannot evaluate on empty set: %w", data.PreconditionErr)
	}
	class, err := attributes.Class()
	if err != nil {
		return Report{}, fmt.Errorf("could not evaluate: %w", err)
	}
	predictions, err := clf.Test(set)
	if err != nil {
		return Report{}, fmt.Errorf("could not test classifier '%s': %w", clf.Name(), err)
	}

	confusion := ConfusionMatrix(class, set.Labels(), predictions)
	if ev.metrics != nil {
		for i, actual := range set.Labels() {
			ev.metrics.Classified(ev.dataset, clf.Name(), actual == predictions[i])
		}
	}

	report := Report{
		ID:         uuid.New().String(),
		Dataset:    ev.dataset,
		Classifier: clf.Name(),
		Time:       time.Now(),
		Samples:    set.Size(),
		Accuracy:   evaluation.GetAccuracy(confusion),
		F1:         make(map[string]float64, len(confusion)),
		Confusion:  confusion,
	}
	for label := range confusion {
		f1 := evaluation.GetF1Score(label, confusion)
		// undefined when the label was never predicted correctly
		if math.IsNaN(f1) {
			f1 = 0
		}
		report.F1[label] = f1
	}
	if ev.metrics != nil {
		ev.metrics.Evaluated(ev.dataset, clf.Name(), report.Accuracy)
	}
	log.Info().
		Str("dataset", ev.dataset).
		Str("classifier", clf.Name()).
		Int("samples", report.Samples).
		Float64("accuracy", report.Accuracy).
		Msg("evaluated classifier")
	return report, nil
}

// ConfusionMatrix counts the predicted labels for each actual label,
// decoding the class values with the class attribute.
func ConfusionMatrix(class *data.Attribute, actual, predicted []float64) evaluation.ConfusionMatrix {
	confusion := make(evaluation.ConfusionMatrix)
	for i := range actual {
		a := decodeClass(class, actual[i])
		p := decodeClass(class, predicted[i])
		if _, ok := confusion[a]; !ok {
			confusion[a] = make(map[string]int)
		}
		confusion[a][p]++
	}
	return confusion
}

// decodeClass keeps class values without label distinguishable.
func decodeClass(class *data.Attribute, v float64) string {
	label := class.Decode(v)
	if label == data.NotAvailable {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return label
}
