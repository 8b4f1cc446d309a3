package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// minorExponent is the decimal exponent between minor and major units for every
// supported currency (cents, öre).
const minorExponent = -2

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// NewSupportedCurrency creates a Currency and additionally requires it to be one of
// the currencies the payment endpoint accepts.
func NewSupportedCurrency(code string) (Currency, error) {
	c, err := NewCurrency(code)
	if err != nil {
		return Currency{}, err
	}
	if !c.IsSupported() {
		return Currency{}, fmt.Errorf("unsupported currency %q", code)
	}
	return c, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level variable
// initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// IsSupported reports whether c is in the accepted currency set.
func (c Currency) IsSupported() bool {
	_, ok := supported[c.code]
	return ok
}

// Supported currencies.
var (
	EUR = MustCurrency("EUR")
	SEK = MustCurrency("SEK")
	USD = MustCurrency("USD")
)

var supported = map[string]Currency{
	EUR.code: EUR,
	SEK.code: SEK,
	USD.code: USD,
}

// Money represents an immutable monetary amount with currency.
// Fields are unexported to enforce immutability.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// FromMinor creates a Money value from an integer amount of minor units.
func FromMinor(minor int64, currency Currency) Money {
	return Money{amount: MinorToMajor(minor), currency: currency}
}

// Amount returns the decimal amount in major units.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Major renders the amount in major units with exactly two fraction digits, e.g. "10.50".
func (m Money) Major() string {
	return m.amount.StringFixed(2)
}

// String formats the Money value as "<amount> <currency>", for example "10.50 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Major(), m.currency.Code())
}

// MinorToMajor converts an integer amount of minor units into major units.
func MinorToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, minorExponent)
}
