package utils

import (
	"fmt"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatFare renders an optional fare, "-" when unknown.
func FormatFare(fare *float64) string {
	if fare == nil {
		return "-"
	}
	return FormatMoney(*fare)
}
