// Package price normalizes storefront price strings and renders them as
// localized currency amounts.
package price

import (
	"errors"
	"strings"

	"github.com/bojanz/currency"
	"github.com/shopspring/decimal"
)

// DefaultLocale is used by Format when no locale is given.
const DefaultLocale = "en-US"

var stripper = strings.NewReplacer("$", "", "USD", "", ",", "")

// Parse strips the dollar sign, the literal USD token and thousands
// separators from raw and returns the exact decimal value. No
// locale-aware parsing is attempted.
func Parse(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(stripper.Replace(raw))
	if cleaned == "" {
		return decimal.Zero, &MalformedPriceError{Raw: raw}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &MalformedPriceError{Raw: raw, Err: err}
	}

	return d, nil
}

// Normalize is Parse reduced to a float64 for comparison.
func Normalize(raw string) (float64, error) {
	d, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// Equal reports whether two raw price strings normalize to the same value.
func Equal(a, b string) (bool, error) {
	da, err := Parse(a)
	if err != nil {
		return false, err
	}
	db, err := Parse(b)
	if err != nil {
		return false, err
	}
	return da.Equal(db), nil
}

// ValidateCurrency returns an *UnsupportedCurrencyError when code is not a
// known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if !currency.IsValid(strings.ToUpper(code)) {
		return &UnsupportedCurrencyError{Code: code}
	}
	return nil
}

// Format normalizes raw and renders it as an amount of the given currency in
// the given CLDR locale, e.g. "$1,234.56" for USD in en-US.
func Format(raw, code, locale string) (string, error) {
	d, err := Parse(raw)
	if err != nil {
		return "", err
	}

	if locale == "" {
		locale = DefaultLocale
	}

	amount, err := currency.NewAmount(d.String(), strings.ToUpper(code))
	if err != nil {
		var codeErr currency.InvalidCurrencyCodeError
		if errors.As(err, &codeErr) {
			return "", &UnsupportedCurrencyError{Code: code}
		}
		return "", &MalformedPriceError{Raw: raw, Err: err}
	}

	formatter := currency.NewFormatter(currency.NewLocale(locale))
	return formatter.Format(amount), nil
}
