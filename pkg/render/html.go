package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/de-tools/playbill/pkg/models/domain"
)

const htmlTemplate = `<h1>Statement for {{.Customer}}</h1>
<table>
 <caption>Statement for {{.Customer}}</caption>
 <tr><th>play</th><th>seats</th><th>cost</th></tr>
{{range .Rows}} <tr><td>{{.PlayName}}</td><td>{{.Audience}}</td><td>{{money .Amount}}</td></tr>
{{end}}</table>
<p>Amount owed is <em>{{money .TotalAmount}}</em></p>
<p>You earned <em>{{.TotalVolumeCredits}}</em> credits</p>
`

// HTMLRenderer writes the statement as an HTML fragment. Customer and play names
// are escaped.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Format() string { return "html" }

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(w io.Writer, stmt domain.Statement, money MoneyFormatter) error {
	t, err := template.New("statement").
		Funcs(template.FuncMap{"money": moneyOrDefault(money)}).
		Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(w, stmt)
}
