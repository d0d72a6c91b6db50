// Package telemetry provides OpenTelemetry instrumentation for the narrative
// analyzer. It exports Prometheus metrics and a tracer for detection runs.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "narrative-analyzer"

// Metrics holds all analyzer Prometheus metrics.
type Metrics struct {
	// Detection run metrics
	RunsTotal        prometheus.Counter
	RunDuration      prometheus.Histogram
	RecordsPerRun    prometheus.Histogram
	RecordsLabeled   *prometheus.CounterVec
	RunsNoTextField  prometheus.Counter
	ThreatLevelTotal *prometheus.CounterVec

	// Scoring metrics
	BotScores     prometheus.Histogram
	RecordsScored prometheus.Counter

	// Graph metrics
	GraphNodes prometheus.Histogram
	GraphEdges prometheus.Histogram
}

// Provider wraps the tracer and metrics.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartRun opens a span for one detection run.
func (p *Provider) StartRun(ctx context.Context, recordCount int) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, "analysis.run",
		trace.WithAttributes(attribute.Int("records", recordCount)))
}

// RecordRun records the outcome of one detection run.
func (p *Provider) RecordRun(duration time.Duration, recordCount int, threatLevel string) {
	p.Metrics.RunsTotal.Inc()
	p.Metrics.RunDuration.Observe(duration.Seconds())
	p.Metrics.RecordsPerRun.Observe(float64(recordCount))
	p.Metrics.ThreatLevelTotal.WithLabelValues(threatLevel).Inc()
}

// RecordLabel counts one labeled record.
func (p *Provider) RecordLabel(label string) {
	p.Metrics.RecordsLabeled.WithLabelValues(label).Inc()
}

// RecordNoTextField counts a run that had no usable text field.
func (p *Provider) RecordNoTextField() {
	p.Metrics.RunsNoTextField.Inc()
}

// RecordBotScore records one computed bot score.
func (p *Provider) RecordBotScore(score int) {
	p.Metrics.BotScores.Observe(float64(score))
	p.Metrics.RecordsScored.Inc()
}

// RecordGraph records the size of a built mention graph.
func (p *Provider) RecordGraph(nodes, edges int) {
	p.Metrics.GraphNodes.Observe(float64(nodes))
	p.Metrics.GraphEdges.Observe(float64(edges))
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initRunMetrics(m)
	initScoringMetrics(m)
	initGraphMetrics(m)
	return m
}

func initRunMetrics(m *Metrics) {
	m.RunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_runs_total",
		Help: "Total detection runs executed",
	})

	m.RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_run_duration_seconds",
		Help:    "Time to complete one detection run",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	})

	m.RecordsPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_records_per_run",
		Help:    "Number of records per detection run",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.RecordsLabeled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_records_labeled_total",
		Help: "Total records labeled, by narrative label",
	}, []string{"label"})

	m.RunsNoTextField = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_runs_no_text_field_total",
		Help: "Runs where the record set had no usable text field",
	})

	m.ThreatLevelTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_threat_level_total",
		Help: "Detection runs by assessed threat level",
	}, []string{"level"})
}

func initScoringMetrics(m *Metrics) {
	m.BotScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_bot_scores",
		Help:    "Distribution of computed bot scores",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})

	m.RecordsScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_records_scored_total",
		Help: "Total records that carried account metadata and were scored",
	})
}

func initGraphMetrics(m *Metrics) {
	m.GraphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_graph_nodes",
		Help:    "Mention graph node count per run",
		Buckets: []float64{0, 5, 10, 25, 50, 100, 200, 500},
	})

	m.GraphEdges = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_graph_edges",
		Help:    "Mention graph edge count per run",
		Buckets: []float64{0, 5, 10, 25, 50, 100, 200, 500},
	})
}
