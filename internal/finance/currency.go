// Package finance is the pure calculation engine behind the app's
// financial screens: currency formatting and parsing, month/period
// utilities, transaction aggregation, and recurrence/compound-interest
// projection. Every function is stateless, performs no I/O, and never
// mutates its inputs.
package finance

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode identifies one of the supported display currencies.
type CurrencyCode string

const (
	CurrencyBRL CurrencyCode = "BRL"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"

	// DefaultCurrency is used whenever an unknown code is supplied.
	DefaultCurrency = CurrencyBRL
)

// CurrencyConfig describes how amounts of one currency are rendered.
type CurrencyConfig struct {
	Code          CurrencyCode
	Symbol        string
	Locale        string
	DecimalPlaces int32
	ThousandsSep  string
	DecimalSep    string
	SymbolAfter   bool // symbol trails the amount (de-DE euro style)
	SymbolSpace   bool // space between symbol and amount
}

var currencyConfigs = map[CurrencyCode]CurrencyConfig{
	CurrencyBRL: {Code: CurrencyBRL, Symbol: "R$", Locale: "pt-BR", DecimalPlaces: 2, ThousandsSep: ".", DecimalSep: ",", SymbolSpace: true},
	CurrencyUSD: {Code: CurrencyUSD, Symbol: "$", Locale: "en-US", DecimalPlaces: 2, ThousandsSep: ",", DecimalSep: "."},
	CurrencyEUR: {Code: CurrencyEUR, Symbol: "€", Locale: "de-DE", DecimalPlaces: 2, ThousandsSep: ".", DecimalSep: ",", SymbolAfter: true, SymbolSpace: true},
}

// CurrencyConfigFor returns the rendering configuration for code,
// falling back to the default currency for unknown codes.
func CurrencyConfigFor(code CurrencyCode) CurrencyConfig {
	if cfg, ok := currencyConfigs[code]; ok {
		return cfg
	}
	return currencyConfigs[DefaultCurrency]
}

// FormatCurrency renders amount using the locale conventions of code:
// the currency's symbol, fixed decimal places, per-locale thousands and
// decimal separators, and a leading minus for negative amounts.
func FormatCurrency(amount decimal.Decimal, code CurrencyCode) string {
	cfg := CurrencyConfigFor(code)

	fixed := amount.Abs().StringFixed(cfg.DecimalPlaces)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	if !cfg.SymbolAfter {
		b.WriteString(cfg.Symbol)
		if cfg.SymbolSpace {
			b.WriteString(" ")
		}
	}
	b.WriteString(groupDigits(intPart, cfg.ThousandsSep))
	if hasFrac {
		b.WriteString(cfg.DecimalSep)
		b.WriteString(fracPart)
	}
	if cfg.SymbolAfter {
		if cfg.SymbolSpace {
			b.WriteString(" ")
		}
		b.WriteString(cfg.Symbol)
	}
	return b.String()
}

// groupDigits inserts sep between every group of three digits, counting
// from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseCurrencyInput converts user-typed currency text into a number.
// Non-numeric or empty input yields zero; a leading minus is preserved.
//
// When both "." and "," are present, "." is treated as a thousands
// separator and "," as the decimal separator (Brazilian convention),
// regardless of the actual locale. US-formatted text such as "1,234.56"
// therefore parses to 1.23456. This ambiguity is pinned behavior and
// must not change without product sign-off.
func ParseCurrencyInput(text string) decimal.Decimal {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")
	switch {
	case hasDot && hasComma:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// FormatPercentage renders value with the given number of fractional
// digits followed by "%", rounding half up.
func FormatPercentage(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	factor := math.Pow(10, float64(decimals))
	rounded := math.Round(value*factor) / factor
	return strconv.FormatFloat(rounded, 'f', decimals, 64) + "%"
}
