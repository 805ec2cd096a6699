// Package money parses and formats the monetary text that users type into
// the app. It is the single place where strings become decimals; everything
// below it works on decimal.Decimal only.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for text that is not a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	// Epsilon is the tolerance used when comparing two display amounts.
	Epsilon = decimal.New(1, -2)

	hundred = decimal.NewFromInt(100)

	// Plain numerals only. Exponent forms and very long digit runs are
	// rejected so stored values stay within ordinary money magnitudes.
	numeralRe = regexp.MustCompile(`^[+-]?(\d{1,15}(\.\d{0,10})?|\.\d{1,10})$`)
)

// ParseAmount parses a user-entered number such as "12.50", "12,50" or
// "1,234.50". When both separators appear, commas are thousands separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	t := normalize(s)
	if t == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	if !numeralRe.MatchString(t) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(t, "+"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParsePrice parses an item price. Prices must not be negative.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price %q is negative", ErrInvalidAmount, s)
	}
	return d, nil
}

// ValidateTip checks tip text. An empty tip is valid and means no tip.
// Negative tips are accepted and reduce the total.
func ValidateTip(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ParseAmount(s)
	return err
}

// ParseOrZero is the permissive form used inside the allocation engine:
// anything unparseable counts as zero.
func ParseOrZero(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Percent returns pct percent of base.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// Format renders an amount with two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatWithSymbol renders an amount prefixed by a currency symbol, e.g. "€12.50"
// or "-$3.00".
func FormatWithSymbol(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// Round2 rounds to the minor unit.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func normalize(s string) string {
	t := strings.TrimSpace(s)
	t = strings.ReplaceAll(t, " ", "")
	switch {
	case strings.Contains(t, ",") && strings.Contains(t, "."):
		t = strings.ReplaceAll(t, ",", "")
	case strings.Count(t, ",") == 1:
		t = strings.Replace(t, ",", ".", 1)
	}
	return t
}
