package adapters

import (
	"errors"
	"testing"

	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInvoiceApiToDomain(t *testing.T) {
	invoice, err := MapInvoiceApiToDomain(api.Invoice{
		Customer: "BigCo",
		Performances: []api.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 0},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Invoice{
		Customer: "BigCo",
		Performances: []domain.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 0},
		},
	}, invoice)
}

func TestMapInvoiceApiToDomain_RejectsInvalidInvoices(t *testing.T) {
	tests := []struct {
		name    string
		invoice api.Invoice
	}{
		{name: "negative audience", invoice: api.Invoice{Customer: "BigCo", Performances: []api.Performance{{PlayID: "hamlet", Audience: -1}}}},
		{name: "missing play id", invoice: api.Invoice{Customer: "BigCo", Performances: []api.Performance{{Audience: 10}}}},
		{name: "missing customer", invoice: api.Invoice{Performances: []api.Performance{{PlayID: "hamlet", Audience: 10}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MapInvoiceApiToDomain(tc.invoice)
			assert.True(t, errors.Is(err, domain.ErrInvalidInvoice), "got %v", err)
		})
	}
}

func TestMapPlaysApiToStore_SortsByID(t *testing.T) {
	records := MapPlaysApiToStore(api.Plays{
		"othello": {Name: "Othello", Type: "tragedy"},
		"as-like": {Name: "As You Like It", Type: "comedy"},
	})

	assert.Equal(t, []store.PlayRecord{
		{ID: "as-like", Name: "As You Like It", Type: "comedy"},
		{ID: "othello", Name: "Othello", Type: "tragedy"},
	}, records)
}

func TestMapPlayRecordsToDomain(t *testing.T) {
	plays, err := MapPlayRecordsToDomain([]store.PlayRecord{{ID: "hamlet", Name: "Hamlet", Type: "tragedy"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.Play{{ID: "hamlet", Name: "Hamlet", Type: domain.PlayTypeTragedy}}, plays)

	_, err = MapPlayRecordsToDomain([]store.PlayRecord{{ID: "hamlet", Type: "tragedy"}})
	assert.EqualError(t, err, "play hamlet: name and type are required")
}
