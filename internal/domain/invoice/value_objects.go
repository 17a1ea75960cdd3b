package invoice

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

var hundred = decimal.NewFromInt(100)

// MaxAmount is the largest amount whose cent count fits the store's integer column.
var MaxAmount = AmountFromCents(math.MaxInt32)

// Amount is a strictly positive monetary amount in the major currency unit.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, ErrNonPositiveAmount
	}
	if d.GreaterThan(MaxAmount) {
		return Amount{}, ErrAmountTooLarge
	}
	return Amount{value: d}, nil
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Cents returns round(amount * 100). Half cents round away from zero.
func (a Amount) Cents() int64 {
	return a.value.Mul(hundred).Round(0).IntPart()
}

// AmountFromCents converts a stored cent count back to the major unit.
func AmountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

type CustomerID struct {
	value string
}

// NewCustomerID only checks presence; whether the customer exists is left to the store.
func NewCustomerID(s string) (CustomerID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CustomerID{}, ErrMissingCustomer
	}
	return CustomerID{value: s}, nil
}

func (c CustomerID) String() string {
	return c.value
}
