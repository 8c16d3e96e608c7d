// Package observability counts what cableviz renders and exports the
// counters in the Prometheus textfile format for node_exporter.
package observability

import (
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cableviz"

// Metrics holds the render counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	renders         *prometheus.CounterVec
	emissionBands   *prometheus.CounterVec
	gaugeSkipped    prometheus.Counter
	chartErrors     prometheus.Counter
	renderDuration  prometheus.Histogram
	peakTemperature prometheus.Gauge
}

// New registers the cableviz collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Rendered predictions by peak temperature status.",
		}, []string{"status"}),
		emissionBands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emission_band_total",
			Help:      "Rendered predictions by emissions severity band.",
		}, []string{"band"}),
		gaugeSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gauge_skipped_total",
			Help:      "Gauge draws skipped because no surface was available.",
		}),
		chartErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_errors_total",
			Help:      "Temperature series rejected by the chart adapter.",
		}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent building one report.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		peakTemperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_temperature_celsius",
			Help:      "Peak temperature of the last rendered prediction.",
		}),
	}
	m.registry.MustRegister(m.renders, m.emissionBands, m.gaugeSkipped,
		m.chartErrors, m.renderDuration, m.peakTemperature)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveRender counts one report. An empty band means the prediction had
// no emissions; a NaN peak leaves the peak gauge untouched.
func (m *Metrics) ObserveRender(status, band string, peak float64, took time.Duration) {
	m.renders.WithLabelValues(status).Inc()
	if band != "" {
		m.emissionBands.WithLabelValues(band).Inc()
	}
	if !math.IsNaN(peak) && !math.IsInf(peak, 0) {
		m.peakTemperature.Set(peak)
	}
	m.renderDuration.Observe(took.Seconds())
}

// GaugeSkipped counts a gauge draw without surface.
func (m *Metrics) GaugeSkipped() { m.gaugeSkipped.Inc() }

// ChartError counts a rejected series.
func (m *Metrics) ChartError() { m.chartErrors.Inc() }

// WriteTextfile writes every metric to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
