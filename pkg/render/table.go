package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/de-tools/playbill/pkg/models/domain"
)

type TableConfig struct {
	PlayWidth    int
	TypeWidth    int
	SeatsWidth   int
	AmountWidth  int
	CreditsWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		PlayWidth:    32,
		TypeWidth:    10,
		SeatsWidth:   7,
		AmountWidth:  14,
		CreditsWidth: 8,
	}
}

// TableRenderer writes the statement as a fixed-width ASCII table.
type TableRenderer struct {
	config TableConfig
}

func NewTableRenderer(config TableConfig) *TableRenderer {
	return &TableRenderer{config: config}
}

func (r *TableRenderer) Format() string { return "table" }

func (r *TableRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TableRenderer) Render(w io.Writer, stmt domain.Statement, money MoneyFormatter) error {
	cfg := r.config
	funcMap := template.FuncMap{
		"money": moneyOrDefault(money),
		"formatRow": func(play, playType, seats, amount, credits any) string {
			return fmt.Sprintf("| %-*v | %-*v | %*v | %*v | %*v |",
				cfg.PlayWidth, play,
				cfg.TypeWidth, playType,
				cfg.SeatsWidth, seats,
				cfg.AmountWidth, amount,
				cfg.CreditsWidth, credits)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.PlayWidth+2),
				strings.Repeat("-", cfg.TypeWidth+2),
				strings.Repeat("-", cfg.SeatsWidth+2),
				strings.Repeat("-", cfg.AmountWidth+2),
				strings.Repeat("-", cfg.CreditsWidth+2))
		},
	}

	tmpl := `Statement for {{.Customer}}
{{separator}}
{{formatRow "Play" "Type" "Seats" "Amount" "Credits"}}
{{separator}}
{{range .Rows}}{{formatRow .PlayName .PlayType .Audience (money .Amount) .VolumeCredits}}
{{end}}{{separator}}
{{formatRow "Total" "" "" (money .TotalAmount) .TotalVolumeCredits}}
{{separator}}
`

	t, err := template.New("statement").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(w, stmt)
}
