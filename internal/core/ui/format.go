package ui

import (
	"strconv"

	"campaign-manager/internal/core/domain"
)

const (
	// DateLayout is the fixed MM/dd/yyyy display format.
	DateLayout = "01/02/2006"
	// InvalidDate is shown for dates that cannot be parsed.
	InvalidDate = "Invalid Date"
)

// FormatDate renders a stored date string as MM/dd/yyyy.
func FormatDate(s string) string {
	t, ok := domain.ParseDate(s)
	if !ok {
		return InvalidDate
	}
	return t.Format(DateLayout)
}

// FormatMoney renders v with a dollar sign and two decimals. Negative
// amounts keep the sign after the dollar sign ("$-50.00").
func FormatMoney(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatAmount renders v with two decimals and no currency sign.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ProfitStyle is the visual class of a profit cell.
type ProfitStyle string

const (
	ProfitPositive ProfitStyle = "positive"
	ProfitNegative ProfitStyle = "negative"
)

// StyleForProfit returns ProfitPositive for zero or more, ProfitNegative
// otherwise.
func StyleForProfit(profit float64) ProfitStyle {
	if profit >= 0 {
		return ProfitPositive
	}
	return ProfitNegative
}
