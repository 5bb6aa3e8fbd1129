// Package fetchers contains the HTTP clients that retrieve historical
// exchange rates from external services.
package fetchers

import (
	"errors"
	"fmt"
)

var (
	ErrUnAuthorized   = errors.New("unauthorized, API key is not valid")
	ErrClient         = errors.New("client error")
	ErrServer         = errors.New("server error")
	ErrUnknown        = errors.New("unknown error")
	ErrMissingResults = errors.New("response does not contain a results field")
)

type (
	// FetchError is returned for every failed rate fetch. It carries the
	// date and base currency of the attempted lookup and wraps the cause,
	// which is one of the package sentinels or a transport/decoding error.
	FetchError struct {
		Date         string
		BaseCurrency string
		Err          error
	}
)

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching rates for %s on %s: %v", e.BaseCurrency, e.Date, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
