package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the collectors of the classifier.
type Prometheus struct {
	Classifications *prometheus.CounterVec
	Accuracy        *prometheus.GaugeVec
	Examples        *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the collectors, without registering them.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "classifier",
				Name:      "classifications_total",
				Help:      "classified examples by classifier and outcome",
			}, []string{"dataset", "classifier", "outcome"}),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "classifier",
				Name:      "accuracy",
				Help:      "accuracy of the last evaluation",
			}, []string{"dataset", "classifier"}),
		Examples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "classifier",
				Name:      "examples",
				Help:      "size of each partition of the last split",
			}, []string{"dataset", "partition"}),
	}
}
