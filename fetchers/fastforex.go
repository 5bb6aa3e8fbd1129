package fetchers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velurian/histoconv"
)

const (
	FastForexFetchURL = "https://api.fastforex.io/historical"

	defaultTimeout = time.Duration(10) * time.Second
)

type (
	// FastForexFetcher retrieves historical exchange rates from the
	// fastforex.io API. The API key is injected at construction and sent as
	// a query parameter. One outbound request is made per FetchRates call;
	// nothing is cached and nothing is retried.
	FastForexFetcher struct {
		URL    string
		APIKey string
		Client *http.Client
	}

	fastForexResponse struct {
		Date    string                     `json:"date,omitempty"`
		Base    string                     `json:"base,omitempty"`
		Results map[string]decimal.Decimal `json:"results,omitempty"`
	}
)

// NewFastForexFetcher returns a fetcher for the public fastforex.io endpoint
// with a bounded request timeout.
func NewFastForexFetcher(apiKey string) *FastForexFetcher {
	return &FastForexFetcher{
		APIKey: apiKey,
		Client: &http.Client{Timeout: defaultTimeout},
	}
}

func (f *FastForexFetcher) handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode == http.StatusOK {
		return nil
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return ErrUnAuthorized
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return ErrClient
	case res.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnknown
	}
}

// FetchRates issues one GET request for the given date and base currency and
// returns the service's results field as a rate table. Both inputs must
// already have passed the validator checks. Every failure is reported as a
// *FetchError wrapping the cause.
func (f *FastForexFetcher) FetchRates(ctx context.Context, date, baseCurrency string) (histoconv.RateTable, error) {
	table, err := f.fetchRates(ctx, date, baseCurrency)

	if err != nil {
		return nil, &FetchError{Date: date, BaseCurrency: baseCurrency, Err: err}
	}

	return table, nil
}

func (f *FastForexFetcher) fetchRates(ctx context.Context, date, baseCurrency string) (histoconv.RateTable, error) {
	url := f.URL

	if url == "" {
		url = FastForexFetchURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	q := req.URL.Query()
	q.Add("date", date)
	q.Add("from", baseCurrency)
	q.Add("api_key", f.APIKey)
	req.URL.RawQuery = q.Encode()

	client := f.Client

	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if err := f.handleHTTPStatusCodeError(res); err != nil {
		return nil, err
	}

	body, err := ioutil.ReadAll(res.Body)

	if err != nil {
		return nil, err
	}

	var data fastForexResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	if data.Results == nil {
		return nil, ErrMissingResults
	}

	return histoconv.RateTable(data.Results), nil
}
