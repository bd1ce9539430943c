package price

import (
	"errors"
	"fmt"
)

// ErrMalformedPrice is matched by every *MalformedPriceError.
var ErrMalformedPrice = errors.New("malformed price")

// MalformedPriceError reports a price string that does not normalize to a number.
type MalformedPriceError struct {
	Raw string
	Err error
}

func (e *MalformedPriceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed price %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("malformed price %q", e.Raw)
}

// Is lets errors.Is(err, ErrMalformedPrice) match.
func (e *MalformedPriceError) Is(target error) bool {
	return target == ErrMalformedPrice
}

func (e *MalformedPriceError) Unwrap() error { return e.Err }

// UnsupportedCurrencyError reports a currency code unknown to CLDR.
type UnsupportedCurrencyError struct {
	Code string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency %q", e.Code)
}
