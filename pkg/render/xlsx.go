package render

import (
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "summary"
	performancesSheet = "performances"
)

// XLSXRenderer writes a workbook with a summary sheet and one row per performance.
// Amounts are written in major units as numbers so they stay summable in a spreadsheet.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (r *XLSXRenderer) Format() string { return "xlsx" }

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *XLSXRenderer) Render(w io.Writer, stmt domain.Statement, money MoneyFormatter) error {
	money = moneyOrDefault(money)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(performancesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Statement for")
	_ = f.SetCellValue(summarySheet, "B1", stmt.Customer())
	_ = f.SetCellValue(summarySheet, "A2", "Amount owed")
	_ = f.SetCellValue(summarySheet, "B2", MajorUnits(stmt.TotalAmount()).InexactFloat64())
	_ = f.SetCellValue(summarySheet, "C2", money(stmt.TotalAmount()))
	_ = f.SetCellValue(summarySheet, "A3", "Credits earned")
	_ = f.SetCellValue(summarySheet, "B3", stmt.TotalVolumeCredits())

	_ = f.SetCellValue(performancesSheet, "A1", "Play")
	_ = f.SetCellValue(performancesSheet, "B1", "Type")
	_ = f.SetCellValue(performancesSheet, "C1", "Seats")
	_ = f.SetCellValue(performancesSheet, "D1", "Amount")
	_ = f.SetCellValue(performancesSheet, "E1", "Credits")
	for i, row := range stmt.Rows() {
		line := i + 2
		_ = f.SetCellValue(performancesSheet, fmt.Sprintf("A%d", line), row.PlayName)
		_ = f.SetCellValue(performancesSheet, fmt.Sprintf("B%d", line), row.PlayType.String())
		_ = f.SetCellValue(performancesSheet, fmt.Sprintf("C%d", line), row.Audience)
		_ = f.SetCellValue(performancesSheet, fmt.Sprintf("D%d", line), MajorUnits(row.Amount).InexactFloat64())
		_ = f.SetCellValue(performancesSheet, fmt.Sprintf("E%d", line), row.VolumeCredits)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
