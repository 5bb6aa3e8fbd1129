package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/velurian/histoconv"
)

type (
	// ConversionService runs the full pipeline for one request: fetch the
	// rate table for the request's date and base currency, convert, and
	// append the resulting record to every configured storage. At most one
	// conversion is in flight at a time; storage appends are sequential
	// because the append contract is a single-writer read-modify-write.
	ConversionService struct {
		Fetcher  histoconv.Fetcher
		Storages []histoconv.Storage
	}

	// Result is the outcome of a successful conversion. Record is what was
	// handed to the storages.
	Result struct {
		Request         histoconv.ConversionRequest
		Rate            decimal.Decimal
		ConvertedAmount decimal.Decimal
		Record          histoconv.ConversionRecord
	}
)

// ConvertOnDate converts the requested amount using the historical rate for
// the request's date. On success the record is appended to every storage; a
// storage failure is returned as a *PersistError while the returned Result
// still carries the completed conversion. Fetch and conversion failures
// return a zero Result and nothing is persisted.
func (s ConversionService) ConvertOnDate(ctx context.Context, req histoconv.ConversionRequest) (Result, error) {
	if len(s.Storages) == 0 {
		return Result{}, ErrNoStorageProvided
	}

	rates, err := s.Fetcher.FetchRates(ctx, req.Date, req.BaseCurrency)

	if err != nil {
		return Result{}, err
	}

	convertedAmount, err := Convert(rates, req.Amount, req.TargetCurrency)

	if err != nil {
		return Result{}, err
	}

	result := Result{
		Request:         req,
		Rate:            rates[req.TargetCurrency],
		ConvertedAmount: convertedAmount,
		Record:          req.Record(convertedAmount),
	}

	for _, storage := range s.Storages {
		if err := storage.Append(result.Record); err != nil {
			return result, &PersistError{Storage: storage.GetStorageProviderName(), Err: err}
		}
	}

	return result, nil
}

// History returns every stored conversion from the primary storage, oldest
// first.
func (s ConversionService) History() ([]histoconv.ConversionRecord, error) {
	if len(s.Storages) == 0 {
		return nil, ErrNoStorageProvided
	}

	return s.Storages[0].Load()
}
