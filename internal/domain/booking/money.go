package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrMalformedAmount = errors.New("malformed decimal amount")
	ErrAmountTooLarge  = errors.New("amount exceeds the maximum")
)

// maxAmountCents bounds any single amount so that a per-day rate multiplied
// by maxStayDays stays well inside int64.
const maxAmountCents int64 = 10_000_000_000_000

// Money is a non-negative currency amount held in cents. Totals are exact
// integer products (days x per-day rate); rounding only ever happens when
// parsing decimal input.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	if cents > maxAmountCents {
		return Money{}, ErrAmountTooLarge
	}
	return Money{cents: cents}, nil
}

// ParseMoney parses a plain decimal string ("150000", "150000.5",
// "150000.505") into cents. Digits beyond two decimal places are rounded
// half-up; negative amounts are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrMalformedAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return Money{}, ErrMalformedAmount
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrMalformedAmount
	}

	frac := fracPart
	if len(frac) < 2 {
		frac += strings.Repeat("0", 2-len(frac))
	}
	cents, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil {
		return Money{}, ErrMalformedAmount
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	if whole > maxAmountCents/100 || whole*100+cents > maxAmountCents {
		return Money{}, ErrAmountTooLarge
	}
	return Money{cents: whole*100 + cents}, nil
}

// FormatCents renders a stored cent amount with two decimal places.
func FormatCents(cents int64) string {
	return Money{cents: cents}.String()
}

func (m Money) Cents() int64 {
	return m.cents
}

// MulDays derives a total for a whole-day duration.
func (m Money) MulDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
