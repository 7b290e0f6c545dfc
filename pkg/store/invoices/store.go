package invoices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Decode reads a JSON array of invoices. A single invoice object is accepted
// as well. Every invoice is validated before it is returned.
func Decode(r io.Reader) ([]domain.Invoice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoices: %w", err)
	}

	var docs []api.Invoice
	if err := json.Unmarshal(data, &docs); err != nil {
		var single api.Invoice
		if singleErr := json.Unmarshal(data, &single); singleErr != nil {
			return nil, fmt.Errorf("failed to decode invoices json: %w", err)
		}
		docs = []api.Invoice{single}
	}

	out := make([]domain.Invoice, 0, len(docs))
	for i, doc := range docs {
		invoice, err := adapters.MapInvoiceApiToDomain(doc)
		if err != nil {
			return nil, fmt.Errorf("invoice %d: %w", i, err)
		}
		out = append(out, invoice)
	}
	return out, nil
}

// Load opens location and decodes the invoices it holds.
func Load(ctx context.Context, opener Opener, location string) ([]domain.Invoice, error) {
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("location", location).Msg("failed to close invoices document")
		}
	}()

	invoices, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return invoices, nil
}
