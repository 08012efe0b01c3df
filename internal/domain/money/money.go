// Package money provides exact currency amounts.
//
// A Money value always holds its amount quantized to the currency's minor
// units with half-up rounding (ties away from zero). Amounts in different
// currencies cannot be compared or combined, except that zero is equal to
// zero in any currency.
package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"oafund/internal/core/apperror"
	"oafund/internal/domain/currency"
)

// ExchangeFunc returns the rate that converts one unit of from into to.
type ExchangeFunc func(from, to currency.Currency) (decimal.Decimal, error)

// Money is an immutable amount tagged with a currency.
type Money struct {
	amount   decimal.Decimal
	currency currency.Currency
}

// New quantizes amount to the minor units of c.
func New(amount decimal.Decimal, c currency.Currency) Money {
	return Money{amount: quantize(amount, c), currency: c}
}

// NewFromInt creates a Money value from a whole amount.
func NewFromInt(amount int64, c currency.Currency) Money {
	return New(decimal.NewFromInt(amount), c)
}

// NewFromString parses a decimal string such as "100.005".
func NewFromString(amount string, c currency.Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, apperror.NewValidation("invalid amount").
			WithDetail("field", "amount").
			WithDetail("value", amount).
			WithCause(err)
	}
	return New(d, c), nil
}

// MustFromString is NewFromString that panics on error.
// Use only for constants and tests.
func MustFromString(amount string, c currency.Currency) Money {
	m, err := NewFromString(amount, c)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero amount in c.
func Zero(c currency.Currency) Money {
	return New(decimal.Zero, c)
}

func quantize(d decimal.Decimal, c currency.Currency) decimal.Decimal {
	return d.Round(int32(c.MinorUnits()))
}

// Amount returns the quantized amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency of m.
func (m Money) Currency() currency.Currency { return m.currency }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// ConvertTo converts m into target using rate. When target is already the
// currency of m, m is returned unchanged and rate is not called.
func (m Money) ConvertTo(target currency.Currency, rate ExchangeFunc) (Money, error) {
	if target == m.currency {
		return m, nil
	}
	r, err := rate(m.currency, target)
	if err != nil {
		return Money{}, err
	}
	return New(m.amount.Mul(r), target), nil
}

// comparable reports whether m and o may be compared or combined.
func (m Money) comparable(o Money) error {
	if m.currency == o.currency || m.IsZero() || o.IsZero() {
		return nil
	}
	return apperror.NewCurrencyMismatch(m.currency.Code(), o.currency.Code())
}

// Compare returns -1, 0 or +1 like decimal.Cmp.
func (m Money) Compare(o Money) (int, error) {
	if err := m.comparable(o); err != nil {
		return 0, err
	}
	return m.amount.Cmp(o.amount), nil
}

// Equal reports whether m and o denote the same amount.
func (m Money) Equal(o Money) (bool, error) {
	c, err := m.Compare(o)
	return c == 0, err
}

// Less reports whether m < o.
func (m Money) Less(o Money) (bool, error) {
	c, err := m.Compare(o)
	return c < 0, err
}

// LessOrEqual reports whether m <= o.
func (m Money) LessOrEqual(o Money) (bool, error) {
	c, err := m.Compare(o)
	return c <= 0, err
}

// Greater reports whether m > o.
func (m Money) Greater(o Money) (bool, error) {
	c, err := m.Compare(o)
	return c > 0, err
}

// GreaterOrEqual reports whether m >= o.
func (m Money) GreaterOrEqual(o Money) (bool, error) {
	c, err := m.Compare(o)
	return c >= 0, err
}

// HashKey returns a key that is equal for values that are Equal.
// All zero amounts share one key regardless of currency.
func (m Money) HashKey() string {
	if m.IsZero() {
		return "0"
	}
	return m.amount.String() + " " + m.currency.Code()
}

// Add returns m + o. A zero operand adopts the currency of the other one.
func (m Money) Add(o Money) (Money, error) {
	if err := m.comparable(o); err != nil {
		return Money{}, err
	}
	c := m.currency
	if m.IsZero() && m.currency != o.currency {
		c = o.currency
	}
	return New(m.amount.Add(o.amount), c), nil
}

// Sub returns m - o with the same currency rules as Add.
func (m Money) Sub(o Money) (Money, error) {
	return m.Add(o.Neg())
}

// Mul multiplies by factor and quantizes the result.
func (m Money) Mul(factor decimal.Decimal) Money {
	return New(m.amount.Mul(factor), m.currency)
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// String formats m as "100.00 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(int32(m.currency.MinorUnits())), m.currency.Code())
}

type jsonMoney struct {
	Amount   string            `json:"amount"`
	Currency currency.Currency `json:"currency"`
}

// MarshalJSON encodes m as {"amount":"100.00","currency":"EUR"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{
		Amount:   m.amount.StringFixed(int32(m.currency.MinorUnits())),
		Currency: m.currency,
	})
}

// UnmarshalJSON decodes and re-quantizes the amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw jsonMoney
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Currency.IsZero() {
		return apperror.NewValidation("currency is required").WithDetail("field", "currency")
	}
	parsed, err := NewFromString(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
