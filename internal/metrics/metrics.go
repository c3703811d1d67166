package metrics

import (
	"errors"

	"ai-act-tracker/internal/certification"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the readiness metrics.
type Registry struct {
	Evaluations    *prometheus.CounterVec
	ReadinessScore prometheus.Histogram
	MissingItems   prometheus.Histogram
}

// NewRegistry creates the metrics and registers them with reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiact_readiness_evaluations_total",
				Help: "Readiness evaluations by outcome (ready, not_ready, not_found, error)",
			},
			[]string{"outcome"},
		),
		ReadinessScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aiact_readiness_score",
				Help:    "Distribution of readiness scores (0-100)",
				Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 100},
			},
		),
		MissingItems: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aiact_readiness_missing_items",
				Help:    "Number of blocking items per evaluation",
				Buckets: []float64{0, 1, 2, 3, 4},
			},
		),
	}
	reg.MustRegister(r.Evaluations, r.ReadinessScore, r.MissingItems)
	return r
}

// ObserveReport implements certification.Recorder.
func (r *Registry) ObserveReport(rep certification.Report) {
	outcome := "not_ready"
	if rep.Ready {
		outcome = "ready"
	}
	r.Evaluations.WithLabelValues(outcome).Inc()
	r.ReadinessScore.Observe(float64(rep.Score))
	r.MissingItems.Observe(float64(len(rep.MissingItems)))
}

// ObserveFailure counts an evaluation that never produced a report.
func (r *Registry) ObserveFailure(err error) {
	outcome := "error"
	if errors.Is(err, certification.ErrNotFound) {
		outcome = "not_found"
	}
	r.Evaluations.WithLabelValues(outcome).Inc()
}
