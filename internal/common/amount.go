package common

import (
	"fmt"
	"strconv"
	"strings"
)

// SOLDecimals is the decimal scale of the native currency (1 SOL = 10^9 lamports).
const SOLDecimals = 9

// LamportsToSOL converts lamports to a SOL string without float precision loss.
func LamportsToSOL(lamports uint64) string {
	return FormatAmount(lamports, SOLDecimals)
}

// SOLToLamports converts a SOL string to lamports without float precision loss.
func SOLToLamports(sol string) (uint64, error) {
	return ParseAmount(sol, SOLDecimals)
}

// FormatAmount converts a smallest-unit integer to a decimal string by
// inserting the decimal point.
// Example: FormatAmount(24981836, 9) = "0.024981836"
func FormatAmount(value uint64, decimals uint8) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= int(decimals) {
		s = "0" + s
	}

	if decimals == 0 {
		return s
	}
	pos := len(s) - int(decimals)
	return s[:pos] + "." + s[pos:]
}

// ParseAmount converts a decimal string to a smallest-unit integer.
// Excess fractional digits are truncated, not rounded: the converted amount
// is the exact amount moved on chain, so "1.9999999999" at 9 decimals is
// 1999999999 lamports, never 2 SOL.
func ParseAmount(s string, decimals uint8) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, found := strings.Cut(s, ".")
	if !found {
		frac = ""
	}
	if whole == "" {
		whole = "0"
	}
	if strings.Contains(frac, ".") {
		return 0, fmt.Errorf("invalid decimal format")
	}

	// Pad or truncate the fractional part to the exact decimal count
	if len(frac) < int(decimals) {
		frac += strings.Repeat("0", int(decimals)-len(frac))
	} else if len(frac) > int(decimals) {
		frac = frac[:decimals]
	}

	return strconv.ParseUint(whole+frac, 10, 64)
}
