package fetchers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velurian/histoconv/fetchers"
)

func TestFastForexFetcher_FetchRates(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal("2023-01-10", q.Get("date"))
		assert.Equal("USD", q.Get("from"))
		assert.Equal("test-key", q.Get("api_key"))
		assert.Equal("application/json", r.Header.Get("Accept"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date":"2023-01-10","base":"USD","results":{"EUR":0.92,"JPY":130.25}}`))
	}))
	defer server.Close()

	fetcher := fetchers.FastForexFetcher{URL: server.URL, APIKey: "test-key", Client: server.Client()}

	rates, err := fetcher.FetchRates(context.Background(), "2023-01-10", "USD")

	assert.Nil(err)
	assert.Len(rates, 2)
	assert.Equal("0.92", rates["EUR"].String())
	assert.Equal("130.25", rates["JPY"].String())
}

func TestFastForexFetcher_Unauthorized(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"API key is invalid"}`))
	}))
	defer server.Close()

	fetcher := fetchers.FastForexFetcher{URL: server.URL, APIKey: "bad-key", Client: server.Client()}

	rates, err := fetcher.FetchRates(context.Background(), "2023-01-10", "USD")

	assert.Nil(rates)
	assert.True(errors.Is(err, fetchers.ErrUnAuthorized))
}

func TestFastForexFetcher_ServerError(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := fetchers.FastForexFetcher{URL: server.URL, APIKey: "test-key", Client: server.Client()}

	_, err := fetcher.FetchRates(context.Background(), "2023-01-10", "USD")

	assert.True(errors.Is(err, fetchers.ErrServer))
}

func TestFastForexFetcher_MissingResults(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date":"2023-01-10","base":"USD"}`))
	}))
	defer server.Close()

	fetcher := fetchers.FastForexFetcher{URL: server.URL, APIKey: "test-key", Client: server.Client()}

	_, err := fetcher.FetchRates(context.Background(), "2023-01-10", "USD")

	assert.True(errors.Is(err, fetchers.ErrMissingResults))
}

func TestFastForexFetcher_ErrorCarriesContext(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	fetcher := fetchers.FastForexFetcher{URL: server.URL, APIKey: "test-key", Client: server.Client()}

	_, err := fetcher.FetchRates(context.Background(), "2023-01-10", "EUR")

	var fetchErr *fetchers.FetchError
	assert.True(errors.As(err, &fetchErr))
	assert.Equal("2023-01-10", fetchErr.Date)
	assert.Equal("EUR", fetchErr.BaseCurrency)
	assert.Contains(err.Error(), "EUR")
	assert.Contains(err.Error(), "2023-01-10")
}
