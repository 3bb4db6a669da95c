package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prediction outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeTransport = "transport_error"
	OutcomeMalformed = "malformed_response"
	OutcomeInFlight  = "in_flight"
)

// Metrics groups the service's Prometheus collectors
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	Predictions       *prometheus.CounterVec
	PredictionRisk    *prometheus.CounterVec
	InferenceDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stayflow",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stayflow",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stayflow",
			Name:      "predictions_total",
			Help:      "Prediction submissions by outcome.",
		}, []string{"outcome"}),
		PredictionRisk: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stayflow",
			Name:      "prediction_risk_total",
			Help:      "Successful predictions by risk band.",
		}, []string{"band"}),
		InferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stayflow",
			Name:      "inference_duration_seconds",
			Help:      "Round-trip time of inference service calls.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
	}

	if reg != nil {
		reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Predictions, m.PredictionRisk, m.InferenceDuration)
	}

	return m
}

// ObservePrediction counts one submission outcome. Nil receivers are ignored.
func (m *Metrics) ObservePrediction(outcome string) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(outcome).Inc()
}

// ObserveRisk counts one successful prediction in band
func (m *Metrics) ObserveRisk(band string) {
	if m == nil {
		return
	}
	m.PredictionRisk.WithLabelValues(band).Inc()
}

// ObserveInference records an inference round trip in seconds
func (m *Metrics) ObserveInference(seconds float64) {
	if m == nil {
		return
	}
	m.InferenceDuration.Observe(seconds)
}
