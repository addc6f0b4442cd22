package services

import (
	"time"

	"finsight/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementsParsed     *prometheus.CounterVec
	statementRows        *prometheus.CounterVec
	statementRowsSkipped *prometheus.CounterVec
	statementRowErrors   *prometheus.CounterVec
	parseDuration        prometheus.Histogram
	categorizationsTotal *prometheus.CounterVec
	trainingRuns         *prometheus.CounterVec
	trainingDuration     prometheus.Histogram
	reportsGenerated     *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		statementsParsed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_parsed_total",
				Help: "Total number of statements parsed",
			},
			[]string{"bank", "format"},
		),
		statementRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_parsed_total",
				Help: "Total number of statement rows parsed into transactions",
			},
			[]string{"bank"},
		),
		statementRowsSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_skipped_total",
				Help: "Total number of free-text lines that matched no record pattern",
			},
			[]string{"bank"},
		),
		statementRowErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_row_errors_total",
				Help: "Total number of statement rows rejected with a record error",
			},
			[]string{"bank"},
		),
		parseDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_parse_duration_milliseconds",
				Help:    "Statement parse duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		categorizationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorizations_total",
				Help: "Total number of categorizations by winning tier",
			},
			[]string{"tier"},
		),
		trainingRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifier_training_runs_total",
				Help: "Total number of classifier training runs",
			},
			[]string{"status"},
		),
		trainingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classifier_training_duration_seconds",
				Help:    "Classifier training duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_reports_generated_total",
				Help: "Total number of analytics reports generated",
			},
			[]string{"report"},
		),
	}
}

func (m *PrometheusMetrics) RecordStatementParsed(bank models.Bank, format string, rows, skipped, rowErrors int) {
	m.statementsParsed.WithLabelValues(string(bank), format).Inc()
	m.statementRows.WithLabelValues(string(bank)).Add(float64(rows))
	m.statementRowsSkipped.WithLabelValues(string(bank)).Add(float64(skipped))
	m.statementRowErrors.WithLabelValues(string(bank)).Add(float64(rowErrors))
}

func (m *PrometheusMetrics) RecordParseDuration(duration time.Duration) {
	m.parseDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordCategorization(tier string) {
	m.categorizationsTotal.WithLabelValues(tier).Inc()
}

func (m *PrometheusMetrics) RecordTrainingRun(status string, duration time.Duration) {
	m.trainingRuns.WithLabelValues(status).Inc()
	m.trainingDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordReport(report string) {
	m.reportsGenerated.WithLabelValues(report).Inc()
}

// NoopMetrics discards every observation; the default recorder in
// tests and in library use.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordStatementParsed(models.Bank, string, int, int, int) {}
func (m *NoopMetrics) RecordParseDuration(time.Duration)                        {}
func (m *NoopMetrics) RecordCategorization(string)                              {}
func (m *NoopMetrics) RecordTrainingRun(string, time.Duration)                  {}
func (m *NoopMetrics) RecordReport(string)                                      {}
