package plays

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/store"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Decoder reads a plays document into records.
type Decoder func(r io.Reader) ([]store.PlayRecord, error)

// DecodeJSON reads {"hamlet": {"name": "Hamlet", "type": "tragedy"}, ...}.
func DecodeJSON(r io.Reader) ([]store.PlayRecord, error) {
	var plays api.Plays
	if err := json.NewDecoder(r).Decode(&plays); err != nil {
		return nil, fmt.Errorf("failed to decode plays json: %w", err)
	}
	return adapters.MapPlaysApiToStore(plays), nil
}

// DecodeYAML reads the YAML form of the JSON document.
func DecodeYAML(r io.Reader) ([]store.PlayRecord, error) {
	var plays api.Plays
	if err := yaml.NewDecoder(r).Decode(&plays); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode plays yaml: %w", err)
	}
	return adapters.MapPlaysApiToStore(plays), nil
}

// DecodeINI reads one section per play id:
//
//	[hamlet]
//	name = Hamlet
//	type = tragedy
func DecodeINI(r io.Reader) ([]store.PlayRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read plays ini: %w", err)
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plays ini: %w", err)
	}

	var records []store.PlayRecord
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}
		records = append(records, store.PlayRecord{
			ID:   section.Name(),
			Name: section.Key("name").String(),
			Type: section.Key("type").String(),
		})
	}
	return records, nil
}
