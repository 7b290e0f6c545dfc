package statement

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/observability/metrics"
	"github.com/de-tools/playbill/pkg/render"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/rs/zerolog"
)

// Service is the entry point used by the CLI and the web API: it prices invoices
// and hands finished statements to the renderer for the requested format.
type Service struct {
	aggregator  *Aggregator
	calculators pricing.Registry
	renderers   *render.Registry
	money       render.MoneyFormatter
	metrics     *metrics.Metrics
}

func NewService(
	calculators pricing.Registry,
	renderers *render.Registry,
	money render.MoneyFormatter,
	m *metrics.Metrics,
) *Service {
	return &Service{
		aggregator:  NewAggregator(calculators),
		calculators: calculators,
		renderers:   renderers,
		money:       money,
		metrics:     m,
	}
}

func (s *Service) Generate(ctx context.Context, invoice domain.Invoice, plays catalog.Catalog) (domain.Statement, error) {
	logger := zerolog.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		return domain.Statement{}, err
	}

	stmt, err := s.aggregator.Aggregate(invoice, plays)
	s.metrics.ObserveStatement(err)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("customer", invoice.Customer).
			Msg("failed to generate statement")
		return domain.Statement{}, fmt.Errorf("statement for %s: %w", invoice.Customer, err)
	}

	logger.Debug().
		Str("customer", stmt.Customer()).
		Int("performances", stmt.Len()).
		Int64("total_amount", stmt.TotalAmount()).
		Int64("volume_credits", stmt.TotalVolumeCredits()).
		Msg("statement generated")

	return stmt, nil
}

// Render writes stmt to w in the given format.
func (s *Service) Render(ctx context.Context, w io.Writer, stmt domain.Statement, format string) error {
	renderer, err := s.renderers.Get(format)
	if err != nil {
		return err
	}

	start := time.Now()
	err = renderer.Render(w, stmt, s.money)
	s.metrics.ObserveRender(format, time.Since(start))
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("format", format).
			Str("customer", stmt.Customer()).
			Msg("failed to render statement")
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}

func (s *Service) Renderer(format string) (render.Renderer, error) {
	return s.renderers.Get(format)
}

func (s *Service) PlayTypes() []domain.PlayType {
	return s.calculators.PlayTypes()
}

func (s *Service) Formats() []string {
	return s.renderers.Formats()
}
