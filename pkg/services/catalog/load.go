package catalog

import (
	"context"
	"fmt"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/rs/zerolog"
)

// Source lists the plays of a catalog backend (a file, a table, ...).
type Source interface {
	List(ctx context.Context) ([]store.PlayRecord, error)
}

// Load reads every record from src into an in-memory Map. The catalog is
// loaded once up front so that pricing never touches the backend.
func Load(ctx context.Context, src Source) (*Map, error) {
	records, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plays: %w", err)
	}

	plays, err := adapters.MapPlayRecordsToDomain(records)
	if err != nil {
		return nil, err
	}

	m, err := NewMap(plays...)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int("plays", m.Len()).Msg("catalog loaded")
	return m, nil
}
