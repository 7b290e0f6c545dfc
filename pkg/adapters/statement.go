package adapters

import (
	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func MapStatementDomainToApi(stmt domain.Statement, currency string) api.Statement {
	rows := stmt.Rows()
	out := api.Statement{
		Customer:           stmt.Customer(),
		Performances:       make([]api.PerformanceRow, 0, len(rows)),
		TotalAmountCents:   stmt.TotalAmount(),
		TotalAmount:        centsToString(stmt.TotalAmount()),
		TotalVolumeCredits: stmt.TotalVolumeCredits(),
		Currency:           currency,
	}
	for _, row := range rows {
		out.Performances = append(out.Performances, api.PerformanceRow{
			Play:          row.PlayName,
			Type:          row.PlayType.String(),
			Audience:      row.Audience,
			AmountCents:   row.Amount,
			Amount:        centsToString(row.Amount),
			VolumeCredits: row.VolumeCredits,
		})
	}
	return out
}

func centsToString(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func MapPlayTypesDomainToApi(types []domain.PlayType) api.PlayTypes {
	out := api.PlayTypes{PlayTypes: make([]string, 0, len(types))}
	for _, t := range types {
		out.PlayTypes = append(out.PlayTypes, t.String())
	}
	return out
}
