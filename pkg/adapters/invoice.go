package adapters

import (
	"fmt"
	"slices"

	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MapInvoiceApiToDomain validates an invoice document and converts it. Audience
// sizes are checked here so the calculators only ever see non-negative values.
func MapInvoiceApiToDomain(invoice api.Invoice) (domain.Invoice, error) {
	if err := validate.Struct(invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: %v", domain.ErrInvalidInvoice, err)
	}

	out := domain.Invoice{
		Customer:     invoice.Customer,
		Performances: make([]domain.Performance, 0, len(invoice.Performances)),
	}
	for _, perf := range invoice.Performances {
		out.Performances = append(out.Performances, domain.Performance{
			PlayID:   perf.PlayID,
			Audience: perf.Audience,
		})
	}
	return out, nil
}

// MapPlaysApiToStore flattens a plays document into records sorted by play id.
func MapPlaysApiToStore(plays api.Plays) []store.PlayRecord {
	ids := make([]string, 0, len(plays))
	for id := range plays {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	records := make([]store.PlayRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, store.PlayRecord{
			ID:   id,
			Name: plays[id].Name,
			Type: plays[id].Type,
		})
	}
	return records
}

func MapPlayRecordToDomain(record store.PlayRecord) (domain.Play, error) {
	if record.ID == "" {
		return domain.Play{}, fmt.Errorf("play record has no id")
	}
	if record.Name == "" || record.Type == "" {
		return domain.Play{}, fmt.Errorf("play %s: name and type are required", record.ID)
	}
	return domain.Play{
		ID:   record.ID,
		Name: record.Name,
		Type: domain.PlayType(record.Type),
	}, nil
}

func MapPlayRecordsToDomain(records []store.PlayRecord) ([]domain.Play, error) {
	plays := make([]domain.Play, 0, len(records))
	for _, record := range records {
		play, err := MapPlayRecordToDomain(record)
		if err != nil {
			return nil, err
		}
		plays = append(plays, play)
	}
	return plays, nil
}
