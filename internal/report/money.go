package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ptBR renders numbers with Brazilian separators ("1.234,56"). Printers are
// safe for concurrent use, so one per process is enough.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a numeric amount as "R$ 1.234,56". Anything that is
// not a number comes back as nil, never an error: the bureau omits or nulls
// monetary fields freely and the result must mirror that.
func FormatCurrency(v any) any {
	switch n := v.(type) {
	case float64:
		return ptBR.Sprintf("R$ %v", number.Decimal(n, number.Scale(2)))
	case int:
		return ptBR.Sprintf("R$ %v", number.Decimal(n, number.Scale(2)))
	case int64:
		return ptBR.Sprintf("R$ %v", number.Decimal(n, number.Scale(2)))
	default:
		return nil
	}
}

// formatAmount renders an integer amount lifted out of a vendor enumeration
// ("FROM_1000_TO_5000") as "1.000", without decimals.
func formatAmount(n int64) string {
	return ptBR.Sprintf("%v", number.Decimal(n))
}
