package histoconv

import "errors"

var (
	ErrInvalidDate         = errors.New("date must be a real calendar date in format YYYY-MM-DD")
	ErrInvalidAmount       = errors.New("amount must be a non-negative number with exactly two decimal places")
	ErrInvalidCurrencyCode = errors.New("currency code must be three letters")
)
