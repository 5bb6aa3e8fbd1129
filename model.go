package histoconv

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/velurian/histoconv/validator"
)

// RateTable maps a target currency code to its exchange rate relative to one
// (date, base currency) pair. It is owned by the call that fetched it and is
// discarded after a single conversion.
type RateTable map[string]decimal.Decimal

// ConversionRequest is a fully validated conversion input. Construct it with
// NewConversionRequest; the zero value is not usable.
type ConversionRequest struct {
	Date           string
	Amount         decimal.Decimal
	BaseCurrency   string
	TargetCurrency string
}

// ConversionRecord is the persisted shape of one successful conversion.
// Amounts are stored as two-decimal strings. Records are never updated or
// deleted once written.
type ConversionRecord struct {
	Date            string `json:"dateInput"`
	Amount          string `json:"amount"`
	BaseCurrency    string `json:"base_currency"`
	TargetCurrency  string `json:"target_currency"`
	ConvertedAmount string `json:"converted_amount"`
}

// NewConversionRequest validates all four inputs and returns an immutable
// request. Currency codes are normalized to uppercase.
func NewConversionRequest(date, amount, baseCurrency, targetCurrency string) (ConversionRequest, error) {
	if !validator.IsValidDate(date) {
		return ConversionRequest{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}

	if !validator.IsValidAmount(amount) {
		return ConversionRequest{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	if !validator.IsValidCurrencyCode(baseCurrency) {
		return ConversionRequest{}, fmt.Errorf("%w: %s", ErrInvalidCurrencyCode, baseCurrency)
	}

	if !validator.IsValidCurrencyCode(targetCurrency) {
		return ConversionRequest{}, fmt.Errorf("%w: %s", ErrInvalidCurrencyCode, targetCurrency)
	}

	value, _ := decimal.NewFromString(amount)

	return ConversionRequest{
		Date:           date,
		Amount:         value,
		BaseCurrency:   strings.ToUpper(baseCurrency),
		TargetCurrency: strings.ToUpper(targetCurrency),
	}, nil
}

// Record builds the persisted record for this request and its converted
// amount, rendering both amounts with exactly two decimal places.
func (r ConversionRequest) Record(convertedAmount decimal.Decimal) ConversionRecord {
	return ConversionRecord{
		Date:            r.Date,
		Amount:          r.Amount.StringFixed(2),
		BaseCurrency:    r.BaseCurrency,
		TargetCurrency:  r.TargetCurrency,
		ConvertedAmount: convertedAmount.StringFixed(2),
	}
}
