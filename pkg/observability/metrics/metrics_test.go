package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStatement(t *testing.T) {
	m := New(nil)

	m.ObserveStatement(nil)
	m.ObserveStatement(nil)
	m.ObserveStatement(fmt.Errorf("performance 0: %w", domain.ErrUnknownPlayID))
	m.ObserveStatement(errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StatementsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StatementsTotal.WithLabelValues(ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatementErrorsTotal.WithLabelValues(ReasonUnknownPlayID)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatementErrorsTotal.WithLabelValues(ReasonOther)))
}

func TestReason(t *testing.T) {
	assert.Equal(t, ReasonUnsupportedPlayType, Reason(fmt.Errorf("x: %w", domain.ErrUnsupportedPlayType)))
	assert.Equal(t, ReasonInvalidInvoice, Reason(domain.ErrInvalidInvoice))
	assert.Equal(t, ReasonOther, Reason(errors.New("other")))
}

func TestObserveRender(t *testing.T) {
	m := New(nil)

	m.ObserveRender("text", 2*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.RenderDuration))
}

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveStatement(nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "playbill_statements_total")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveStatement(errors.New("x"))
		m.ObserveRender("text", time.Second)
	})
}
