package catalog

import (
	"fmt"
	"slices"

	"github.com/de-tools/playbill/pkg/models/domain"
)

// Catalog resolves a play identifier to its catalog entry.
type Catalog interface {
	Resolve(playID string) (domain.Play, error)
}

// Map is an in-memory, read-only Catalog.
type Map struct {
	plays map[string]domain.Play
}

// NewMap builds a catalog from plays. Play ids must be unique and non-empty.
func NewMap(plays ...domain.Play) (*Map, error) {
	m := &Map{plays: make(map[string]domain.Play, len(plays))}
	for _, play := range plays {
		if play.ID == "" {
			return nil, fmt.Errorf("play id cannot be empty")
		}
		if _, exists := m.plays[play.ID]; exists {
			return nil, fmt.Errorf("duplicate play id: %s", play.ID)
		}
		m.plays[play.ID] = play
	}
	return m, nil
}

func (m *Map) Resolve(playID string) (domain.Play, error) {
	play, ok := m.plays[playID]
	if !ok {
		return domain.Play{}, fmt.Errorf("%w: %q", domain.ErrUnknownPlayID, playID)
	}
	return play, nil
}

// IDs returns the catalog play ids, sorted.
func (m *Map) IDs() []string {
	ids := make([]string, 0, len(m.plays))
	for id := range m.plays {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *Map) Len() int {
	return len(m.plays)
}
