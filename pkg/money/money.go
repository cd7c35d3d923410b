// Package money implements deterministic currency arithmetic.
//
// All amounts are kept as integer cents. Conversion from a dollar value rounds
// half-up on the value scaled by 100, so every service instance and every client
// that follows the same rule arrives at identical totals.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when an amount cannot be parsed.
var ErrInvalidAmount = errors.New("money: invalid amount")

// Cents is a monetary amount in the smallest currency unit (USD cents).
type Cents int64

// Zero is the zero amount.
const Zero Cents = 0

// FromDollars converts a dollar value to cents, rounding half-up.
func FromDollars(amount float64) Cents {
	return Cents(math.Floor(amount*100 + 0.5))
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(quantity int) Cents {
	return c * Cents(quantity)
}

// Percent returns percent% of the amount. The cents value is rounded,
// not the fractional dollar value.
func (c Cents) Percent(percent float64) Cents {
	return Cents(math.Floor(float64(c)*percent/100 + 0.5))
}

// Max returns the larger of two amounts.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// String formats the amount as "D.CC".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Parse parses a decimal dollar string such as "224.5" or "-3.75".
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDollars(f), nil
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number (or numeric string) in dollars.
func (c *Cents) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value stores the amount in a NUMERIC(10,2) column.
func (c Cents) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan reads the amount from a NUMERIC column.
func (c *Cents) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = 0
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case float64:
		*c = FromDollars(v)
		return nil
	case int64:
		*c = Cents(v * 100)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, src)
	}
}
