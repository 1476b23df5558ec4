package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_ToUSD(t *testing.T) {
	rates := RateTable{"RUB": 90.0, "EUR": 0.9}

	usd, err := rates.ToUSD(180, "RUB")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, usd, 1e-9)

	usd, err = rates.ToUSD(9, "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, usd, 1e-9)
}

func TestRateTable_FromUSD(t *testing.T) {
	rates := RateTable{"EUR": 0.9}

	amount, err := rates.FromUSD(10, "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, amount, 1e-9)
}

func TestRateTable_UnknownCurrency(t *testing.T) {
	rates := RateTable{"EUR": 0.9}

	_, err := rates.ToUSD(1, "XXX")
	var unknown *UnknownCurrencyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "XXX", unknown.Code)

	_, err = rates.FromUSD(1, "XXX")
	assert.True(t, errors.As(err, &unknown))
}

func TestRateTable_NonPositiveRateRejected(t *testing.T) {
	rates := RateTable{"BAD": 0, "NEG": -1}

	_, err := rates.Rate("BAD")
	var unknown *UnknownCurrencyError
	require.ErrorAs(t, err, &unknown)

	_, err = rates.Rate("NEG")
	require.ErrorAs(t, err, &unknown)
}
