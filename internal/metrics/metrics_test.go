package metrics

import (
	"errors"
	"fmt"
	"testing"

	"ai-act-tracker/internal/certification"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveReport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRegistry(reg)

	m.ObserveReport(certification.Report{Ready: true, Score: 100})
	m.ObserveReport(certification.Report{Score: 20, MissingItems: []string{"a", "b", "c"}})
	m.ObserveReport(certification.Report{Score: 64, MissingItems: []string{"a"}})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("ready")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("not_ready")))

	var scores dto.Metric
	require.NoError(t, m.ReadinessScore.Write(&scores))
	assert.Equal(t, uint64(3), scores.GetHistogram().GetSampleCount())
	assert.Equal(t, 184.0, scores.GetHistogram().GetSampleSum())

	var _ certification.Recorder = m
}

func TestObserveFailure(t *testing.T) {
	m := NewRegistry(prometheus.NewRegistry())

	m.ObserveFailure(fmt.Errorf("load system 4: %w", certification.ErrNotFound))
	m.ObserveFailure(errors.New("connection reset"))
	m.ObserveFailure(errors.New("timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("not_found")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("error")))
	assert.Equal(t, uint64(0), histogramCount(t, m.ReadinessScore))
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, h.Write(&metric))
	return metric.GetHistogram().GetSampleCount()
}

func TestNewRegistryRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRegistry(reg)
	assert.Panics(t, func() { NewRegistry(reg) })
}
