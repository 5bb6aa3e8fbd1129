package histoconv

import "context"

type (
	// Fetcher retrieves the exchange rates of every currency against the base
	// currency, as published for the given calendar date. Inputs must already
	// have passed the validator checks.
	Fetcher interface {
		FetchRates(ctx context.Context, date, baseCurrency string) (RateTable, error)
	}
)
