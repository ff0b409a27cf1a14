// Package metrics exposes Prometheus counters for the portfolio server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the site's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
//
// Metrics:
//   - folio_page_views_total{view} - pages rendered, by view kind
//   - folio_lightbox_opens_total{project} - pages rendered with an open lightbox
//   - folio_render_duration_seconds{view} - time spent rendering a page
//   - folio_content_reloads_total{result} - content reloads by outcome
//   - folio_livereload_clients - connected live-reload browsers
type Metrics struct {
	PageViews      *prometheus.CounterVec
	LightboxOpens  *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	Reloads        *prometheus.CounterVec
	LiveClients    prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PageViews: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_page_views_total",
				Help: "Total number of pages rendered",
			},
			[]string{"view"},
		),
		LightboxOpens: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_lightbox_opens_total",
				Help: "Total number of pages rendered with the lightbox open",
			},
			[]string{"project"},
		),
		RenderDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_render_duration_seconds",
				Help:    "Duration of page rendering in seconds",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
			},
			[]string{"view"},
		),
		Reloads: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_content_reloads_total",
				Help: "Total number of content reloads",
			},
			[]string{"result"},
		),
		LiveClients: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "folio_livereload_clients",
				Help: "Number of connected live-reload clients",
			},
		),
	}
}

// PageView records one rendered page of the given view kind.
func (m *Metrics) PageView(view string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.PageViews.WithLabelValues(view).Inc()
	m.RenderDuration.WithLabelValues(view).Observe(elapsed.Seconds())
}

// LightboxOpen records a page served with project's lightbox open.
func (m *Metrics) LightboxOpen(project string) {
	if m == nil {
		return
	}
	m.LightboxOpens.WithLabelValues(project).Inc()
}

// Reload records a content reload attempt.
func (m *Metrics) Reload(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Reloads.WithLabelValues(result).Inc()
}

// ClientConnected adjusts the live-reload client gauge by delta.
func (m *Metrics) ClientConnected(delta int) {
	if m == nil {
		return
	}
	m.LiveClients.Add(float64(delta))
}
