package render

import (
	"encoding/json"
	"io"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/domain"
)

// JSONRenderer writes the statement as an api.Statement document.
type JSONRenderer struct {
	currency string
}

func NewJSONRenderer(currency string) *JSONRenderer {
	return &JSONRenderer{currency: currency}
}

func (r *JSONRenderer) Format() string { return "json" }

func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(w io.Writer, stmt domain.Statement, _ MoneyFormatter) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(adapters.MapStatementDomainToApi(stmt, r.currency))
}
