package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/de-tools/playbill/pkg/models/domain"
)

const textTemplate = `Statement for {{.Customer}}
{{range .Rows}}  {{.PlayName}}: {{money .Amount}} ({{.Audience}} seats)
{{end}}Amount owed is {{money .TotalAmount}}
You earned {{.TotalVolumeCredits}} credits
`

// TextRenderer writes the plain-text statement.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Format() string { return "text" }

func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TextRenderer) Render(w io.Writer, stmt domain.Statement, money MoneyFormatter) error {
	t, err := template.New("statement").
		Funcs(template.FuncMap{"money": moneyOrDefault(money)}).
		Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(w, stmt)
}
