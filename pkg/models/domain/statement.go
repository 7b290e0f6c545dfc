package domain

import "slices"

// PerformanceRow is the computed result for one performance of an invoice.
type PerformanceRow struct {
	PlayName      string
	PlayType      PlayType
	Audience      int
	Amount        int64 // cents
	VolumeCredits int64
}

// Statement is the computed result for one invoice. It is read-only once built:
// totals are derived from the rows handed to NewStatement and rows cannot be
// modified through the accessors.
type Statement struct {
	customer           string
	rows               []PerformanceRow
	totalAmount        int64
	totalVolumeCredits int64
}

func NewStatement(customer string, rows []PerformanceRow) Statement {
	s := Statement{
		customer: customer,
		rows:     slices.Clone(rows),
	}
	for _, row := range s.rows {
		s.totalAmount += row.Amount
		s.totalVolumeCredits += row.VolumeCredits
	}
	return s
}

func (s Statement) Customer() string { return s.customer }

// Rows returns a copy of the rows in invoice order.
func (s Statement) Rows() []PerformanceRow { return slices.Clone(s.rows) }

func (s Statement) Len() int { return len(s.rows) }

func (s Statement) TotalAmount() int64 { return s.totalAmount }

func (s Statement) TotalVolumeCredits() int64 { return s.totalVolumeCredits }
