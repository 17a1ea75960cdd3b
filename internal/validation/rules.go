package validation

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// String requires a submitted, non-blank value.
func String(name, message string, checks ...Check) Field {
	return Field{
		Name:    name,
		Message: message,
		Coerce: func(raw string, present bool) (any, bool) {
			if !present || strings.TrimSpace(raw) == "" {
				return nil, false
			}
			return raw, true
		},
		Checks: checks,
	}
}

// Decimal comparisons rescale to the smaller exponent, so both are kept small.
const (
	maxDecimalLen      = 64
	maxDecimalExponent = 20
)

// Decimal coerces the whole raw string into a decimal. Blank input, surrounding
// whitespace, trailing garbage and out-of-range exponents are coercion failures.
func Decimal(name, message string, checks ...Check) Field {
	return Field{
		Name:    name,
		Message: message,
		Coerce: func(raw string, present bool) (any, bool) {
			if !present || raw == "" || len(raw) > maxDecimalLen || strings.TrimSpace(raw) != raw {
				return nil, false
			}
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, false
			}
			if exp := d.Exponent(); exp < -maxDecimalExponent || exp > maxDecimalExponent {
				return nil, false
			}
			return d, true
		},
		Checks: checks,
	}
}

// Enum accepts exactly one of the allowed values.
func Enum(name, message string, allowed ...string) Field {
	return Field{
		Name:    name,
		Message: message,
		Coerce: func(raw string, present bool) (any, bool) {
			if !present || !slices.Contains(allowed, raw) {
				return nil, false
			}
			return raw, true
		},
	}
}

func GreaterThan(bound decimal.Decimal, message string) Check {
	return Check{
		Test: func(v any) bool {
			d, ok := v.(decimal.Decimal)
			return ok && d.GreaterThan(bound)
		},
		Message: message,
	}
}

func AtMost(bound decimal.Decimal, message string) Check {
	return Check{
		Test: func(v any) bool {
			d, ok := v.(decimal.Decimal)
			return ok && d.LessThanOrEqual(bound)
		},
		Message: message,
	}
}

// TimeLayout accepts strings that parse with the given time layout.
func TimeLayout(layout, message string) Check {
	return Check{
		Test: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := time.Parse(layout, s)
			return err == nil
		},
		Message: message,
	}
}
