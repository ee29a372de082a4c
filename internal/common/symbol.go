// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// NSESuffix is the market suffix for the National Stock Exchange of India.
// The data fetcher's single retry appends this suffix for symbols quoted
// only on the NSE (e.g. "RELIANCE" -> "RELIANCE.NS").
const NSESuffix = ".NS"

// Symbol represents a stock symbol as accepted by the market data API:
// either a bare code ("NVDA") or a code with an exchange suffix
// ("RELIANCE.NS").
type Symbol struct {
	// Code is the normalized symbol, suffix included when present.
	Code string
	// Raw is the original input string.
	Raw string
}

// ParseSymbol normalizes a symbol string: trims whitespace and upper-cases.
// An empty input yields a zero Symbol.
func ParseSymbol(symbol string) Symbol {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Symbol{}
	}
	return Symbol{
		Code: strings.ToUpper(symbol),
		Raw:  symbol,
	}
}

// String returns the normalized symbol.
func (s Symbol) String() string {
	return s.Code
}

// IsZero reports whether the symbol is empty.
func (s Symbol) IsZero() bool {
	return s.Code == ""
}

// HasMarketSuffix reports whether the symbol already carries the NSE suffix.
func (s Symbol) HasMarketSuffix(suffix string) bool {
	if suffix == "" {
		suffix = NSESuffix
	}
	return strings.HasSuffix(s.Code, strings.ToUpper(suffix))
}

// WithMarketSuffix returns a copy of the symbol with the suffix appended.
// Already-suffixed symbols are returned unchanged.
func (s Symbol) WithMarketSuffix(suffix string) Symbol {
	if suffix == "" {
		suffix = NSESuffix
	}
	if s.IsZero() || s.HasMarketSuffix(suffix) {
		return s
	}
	return Symbol{
		Code: s.Code + strings.ToUpper(suffix),
		Raw:  s.Raw,
	}
}
