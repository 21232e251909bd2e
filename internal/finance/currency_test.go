package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   CurrencyCode
		want   string
	}{
		{"BRL simple", "1234.56", CurrencyBRL, "R$ 1.234,56"},
		{"BRL zero is padded", "0", CurrencyBRL, "R$ 0,00"},
		{"BRL negative", "-1234.56", CurrencyBRL, "-R$ 1.234,56"},
		{"BRL millions", "1234567.89", CurrencyBRL, "R$ 1.234.567,89"},
		{"BRL no grouping under a thousand", "999.99", CurrencyBRL, "R$ 999,99"},
		{"USD simple", "1234.56", CurrencyUSD, "$1,234.56"},
		{"USD negative", "-0.5", CurrencyUSD, "-$0.50"},
		{"EUR symbol trails", "1234.56", CurrencyEUR, "1.234,56 €"},
		{"EUR zero", "0", CurrencyEUR, "0,00 €"},
		{"unknown code falls back to BRL", "10", CurrencyCode("XYZ"), "R$ 10,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("bad amount %q: %v", tt.amount, err)
			}
			if got := FormatCurrency(amount, tt.code); got != tt.want {
				t.Errorf("FormatCurrency(%s, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestCurrencyConfigFor(t *testing.T) {
	cfg := CurrencyConfigFor(CurrencyUSD)
	if cfg.Code != CurrencyUSD || cfg.Locale != "en-US" || cfg.DecimalPlaces != 2 {
		t.Errorf("unexpected USD config: %+v", cfg)
	}

	// Unknown codes fall back to the default currency, never fail
	cfg = CurrencyConfigFor(CurrencyCode("GBP"))
	if cfg.Code != DefaultCurrency {
		t.Errorf("expected fallback to %s, got %s", DefaultCurrency, cfg.Code)
	}
}

func TestParseCurrencyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"brazilian convention", "1.234,56", "1234.56"},
		{"brazilian with symbol", "R$ 1.234,56", "1234.56"},
		{"comma only is decimal", "12,5", "12.5"},
		{"dot only is decimal", "12.5", "12.5"},
		{"plain integer", "1200", "1200"},
		{"negative preserved", "-R$ 50,25", "-50.25"},
		{"dollar sign stripped", "$99.90", "99.9"},
		{"euro sign stripped", "99,90 €", "99.9"},
		{"empty input", "", "0"},
		{"garbage input", "abc", "0"},
		{"lone minus", "-", "0"},
		// Pinned ambiguity: both separators always read as Brazilian
		// convention, so US-formatted input misparses. Do not "fix".
		{"us format misparses", "1,234.56", "1.23456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			if err != nil {
				t.Fatalf("bad want %q: %v", tt.want, err)
			}
			if got := ParseCurrencyInput(tt.text); !got.Equal(want) {
				t.Errorf("ParseCurrencyInput(%q) = %s, want %s", tt.text, got, want)
			}
		})
	}
}

// Formatting then parsing must return the original amount for the
// Brazilian-convention and plain-decimal cases.
func TestParseFormatRoundTrip(t *testing.T) {
	amounts := []string{"0", "0.5", "12.34", "999.99", "1234.56", "1234567.89", "-1234.56"}

	for _, s := range amounts {
		amount, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad amount %q: %v", s, err)
		}
		formatted := FormatCurrency(amount, CurrencyBRL)
		parsed := ParseCurrencyInput(formatted)
		if !parsed.Equal(amount) {
			t.Errorf("round trip %s: formatted %q, parsed back %s", s, formatted, parsed)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{75.567, 1, "75.6%"},
		{75.567, 0, "76%"},
		{75.567, 2, "75.57%"},
		{0, 1, "0.0%"},
		{100, 0, "100%"},
		{33.333, 1, "33.3%"},
		{-12.34, 1, "-12.3%"},
	}

	for _, tt := range tests {
		if got := FormatPercentage(tt.value, tt.decimals); got != tt.want {
			t.Errorf("FormatPercentage(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
		}
	}
}
