package gui

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const realBalanceDecimals = 6

// FormatDemoBalance formats the simulated balance with thousand separators and 4 decimals
func FormatDemoBalance(balance float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Demo: %.4f ETH", balance)
}

// FormatEtherDecimal formats an exact ether amount with thousand separators and 6 decimals
func FormatEtherDecimal(amount decimal.Decimal) string {
	p := message.NewPrinter(language.English)

	fixed := amount.Abs().StringFixed(realBalanceDecimals)
	intPart, frac, _ := strings.Cut(fixed, ".")
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// beyond int64, skip grouping
		return amount.StringFixed(realBalanceDecimals) + " ETH"
	}

	sign := ""
	if amount.IsNegative() && !amount.Round(realBalanceDecimals).IsZero() {
		sign = "-"
	}
	return sign + p.Sprintf("%d", whole) + "." + frac + " ETH"
}

// FormatStep renders a button increment without trailing zeros, e.g. 0.1
func FormatStep(step float64) string {
	return strconv.FormatFloat(step, 'f', -1, 64)
}

// FormatAmountInput renders a default amount for an entry field
func FormatAmountInput(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
