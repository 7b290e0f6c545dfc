package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewMoneyFormatter formats cents as a currency string using the locale's digit
// grouping and decimal separator, e.g. "$1,475.00" for en-US and USD. The
// symbol always leads the amount, as in en-US, whatever the locale.
func NewMoneyFormatter(locale, currencyCode string) (MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	printer := message.NewPrinter(tag)
	symbol := printer.Sprint(currency.NarrowSymbol(unit))
	separator := strings.TrimSuffix(strings.TrimPrefix(printer.Sprintf("%.1f", 1.5), "1"), "5")

	return func(cents int64) string {
		sign := ""
		abs := uint64(cents)
		if cents < 0 {
			sign = "-"
			abs = uint64(-cents)
		}
		// Integer arithmetic keeps every digit exact.
		return fmt.Sprintf("%s%s%s%s%02d", sign, symbol, printer.Sprintf("%d", abs/100), separator, abs%100)
	}, nil
}

// USD is the en-US dollar formatter.
func USD() MoneyFormatter {
	f, err := NewMoneyFormatter("en-US", "USD")
	if err != nil {
		panic(err)
	}
	return f
}

// MajorUnits converts cents into an exact decimal amount of major units.
func MajorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
