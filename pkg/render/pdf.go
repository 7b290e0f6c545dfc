package render

import (
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer writes a one-page A4 statement.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Format() string { return "pdf" }

func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Render(w io.Writer, stmt domain.Statement, money MoneyFormatter) error {
	money = moneyOrDefault(money)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(fmt.Sprintf("Statement for %s", stmt.Customer())))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Play", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Seats", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Cost", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Credits", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range stmt.Rows() {
		pdf.CellFormat(80, 6, tr(row.PlayName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", row.Audience), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(money(row.Amount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", row.VolumeCredits), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Amount owed is %s", money(stmt.TotalAmount()))))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("You earned %d credits", stmt.TotalVolumeCredits()))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
