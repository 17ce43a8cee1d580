package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Correct is the outcome of a classification matching the expected class.
	Correct = "correct"
	// Wrong is the outcome of a classification not matching the expected class.
	Wrong = "wrong"
)

// Observer is the default metrics collector, registered with the default prometheus registry.
var Observer = NewMetrics(prometheus.DefaultRegisterer)

// Metrics records the classification activity.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
	accuracy   map[string]float64
}

// NewMetrics creates a new metrics collector and registers it with the given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	p := NewPrometheusMetrics()
	if registerer != nil {
		registerer.MustRegister(p.Classifications, p.Accuracy, p.Examples)
	}
	return &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: p,
		accuracy:   make(map[string]float64),
	}
}

// Classified counts a classification outcome.
func (m *Metrics) Classified(dataset, classifier string, correct bool) {
	outcome := Wrong
	if correct {
		outcome = Correct
	}
	m.prometheus.Classifications.WithLabelValues(dataset, classifier, outcome).Inc()
}

// Evaluated records the accuracy of an evaluation.
func (m *Metrics) Evaluated(dataset, classifier string, accuracy float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.accuracy[classifier] = accuracy
	m.prometheus.Accuracy.WithLabelValues(dataset, classifier).Set(accuracy)
}

// Split records the size of a data set partition.
func (m *Metrics) Split(dataset, partition string, size int) {
	m.prometheus.Examples.WithLabelValues(dataset, partition).Set(float64(size))
}

// Accuracy returns the last recorded accuracy for the classifier.
func (m *Metrics) Accuracy(classifier string) (float64, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	a, ok := m.accuracy[classifier]
	return a, ok
}
