package services_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/velurian/histoconv"
	"github.com/velurian/histoconv/services"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	rates := histoconv.RateTable{"EUR": decimal.RequireFromString("0.92")}

	converted, err := services.Convert(rates, decimal.RequireFromString("100.00"), "EUR")

	assert.Nil(err)
	assert.Equal("92.00", converted.StringFixed(2))
}

func TestConvert_Rounding(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	// 10.05 * 0.915 = 9.19575 rounds half away from zero to 9.20
	rates := histoconv.RateTable{"GBP": decimal.RequireFromString("0.915")}

	converted, err := services.Convert(rates, decimal.RequireFromString("10.05"), "GBP")

	assert.Nil(err)
	assert.Equal("9.20", converted.StringFixed(2))
}

func TestConvert_RateNotFound(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	rates := histoconv.RateTable{"EUR": decimal.RequireFromString("0.92")}

	_, err := services.Convert(rates, decimal.RequireFromString("100.00"), "GBP")

	assert.True(errors.Is(err, services.ErrRateNotFound))

	var notFound *services.RateNotFoundError
	assert.True(errors.As(err, &notFound))
	assert.Equal("GBP", notFound.Currency)
	assert.Contains(err.Error(), "GBP")
}

func TestConvert_NonPositiveRate(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	rates := histoconv.RateTable{"XXX": decimal.Zero}

	_, err := services.Convert(rates, decimal.RequireFromString("100.00"), "XXX")

	assert.True(errors.Is(err, services.ErrRateNotFound))
}
