package statement

import (
	"fmt"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/de-tools/playbill/pkg/services/pricing"
)

// Aggregator turns an invoice into a Statement. It has no side effects and may be
// shared between goroutines.
type Aggregator struct {
	calculators pricing.Registry
}

func NewAggregator(calculators pricing.Registry) *Aggregator {
	return &Aggregator{calculators: calculators}
}

// Aggregate prices every performance of invoice in order. The first performance
// that cannot be priced aborts the whole statement.
func (a *Aggregator) Aggregate(invoice domain.Invoice, plays catalog.Catalog) (domain.Statement, error) {
	rows := make([]domain.PerformanceRow, 0, len(invoice.Performances))

	for i, perf := range invoice.Performances {
		play, err := plays.Resolve(perf.PlayID)
		if err != nil {
			return domain.Statement{}, fmt.Errorf("performance %d: %w", i, err)
		}

		calc, err := a.calculators.Calculator(play.Type)
		if err != nil {
			return domain.Statement{}, fmt.Errorf("performance %d (play %s): %w", i, play.ID, err)
		}

		charge := pricing.Charge(calc, perf.Audience)
		rows = append(rows, domain.PerformanceRow{
			PlayName:      play.Name,
			PlayType:      play.Type,
			Audience:      perf.Audience,
			Amount:        charge.Amount,
			VolumeCredits: charge.VolumeCredits,
		})
	}

	return domain.NewStatement(invoice.Customer, rows), nil
}
