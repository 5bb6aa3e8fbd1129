package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/velurian/histoconv"
)

var (
	ErrRateNotFound      = errors.New("rate for the currency is not found")
	ErrNoStorageProvided = errors.New("no storage provided")
)

type (
	// RateNotFoundError reports that the fetched rate table has no usable
	// rate for the requested target currency. It matches ErrRateNotFound
	// under errors.Is.
	RateNotFoundError struct {
		Currency string
	}

	// PersistError reports that a completed conversion could not be written
	// to a history storage. It matches ErrPersistFailed under errors.Is and
	// unwraps to the storage cause.
	PersistError struct {
		Storage string
		Err     error
	}
)

// ErrPersistFailed marks history persistence failures so callers can report
// durability loss distinctly from a failed conversion.
var ErrPersistFailed = errors.New("conversion history could not be persisted")

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("rate for %s not found", e.Currency)
}

func (e *RateNotFoundError) Unwrap() error {
	return ErrRateNotFound
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("storing conversion in %s: %v", e.Storage, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	return target == ErrPersistFailed
}

// Convert looks up targetCurrency in the rate table and returns amount
// multiplied by its rate, rounded to two decimal places half away from zero.
// A missing or non-positive rate yields a *RateNotFoundError naming the
// currency.
func Convert(rates histoconv.RateTable, amount decimal.Decimal, targetCurrency string) (decimal.Decimal, error) {
	rate, ok := rates[targetCurrency]

	if !ok || !rate.IsPositive() {
		return decimal.Decimal{}, &RateNotFoundError{Currency: targetCurrency}
	}

	return amount.Mul(rate).Round(2), nil
}
