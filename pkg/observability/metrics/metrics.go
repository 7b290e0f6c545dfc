package metrics

import (
	"errors"
	"time"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "playbill"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

const (
	ReasonUnknownPlayID       = "unknown_play_id"
	ReasonUnsupportedPlayType = "unsupported_play_type"
	ReasonInvalidInvoice      = "invalid_invoice"
	ReasonOther               = "other"
)

// Metrics groups the collectors for statement generation and rendering.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	StatementsTotal      *prometheus.CounterVec
	StatementErrorsTotal *prometheus.CounterVec
	RenderDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg leaves them
// unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StatementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_total",
			Help:      "Count of statement generation attempts by result.",
		}, []string{"result"}),
		StatementErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statement_errors_total",
			Help:      "Count of failed statement generations by reason.",
		}, []string{"reason"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering a statement, by format.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"format"}),
	}
	if reg != nil {
		reg.MustRegister(m.StatementsTotal, m.StatementErrorsTotal, m.RenderDuration)
	}
	return m
}

// ObserveStatement records the outcome of one statement generation.
func (m *Metrics) ObserveStatement(err error) {
	if m == nil {
		return
	}
	if err == nil {
		m.StatementsTotal.WithLabelValues(ResultSuccess).Inc()
		return
	}
	m.StatementsTotal.WithLabelValues(ResultError).Inc()
	m.StatementErrorsTotal.WithLabelValues(Reason(err)).Inc()
}

// ObserveRender records how long a render took.
func (m *Metrics) ObserveRender(format string, d time.Duration) {
	if m == nil {
		return
	}
	m.RenderDuration.WithLabelValues(format).Observe(d.Seconds())
}

// Reason maps an error onto a low-cardinality label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownPlayID):
		return ReasonUnknownPlayID
	case errors.Is(err, domain.ErrUnsupportedPlayType):
		return ReasonUnsupportedPlayType
	case errors.Is(err, domain.ErrInvalidInvoice):
		return ReasonInvalidInvoice
	default:
		return ReasonOther
	}
}
