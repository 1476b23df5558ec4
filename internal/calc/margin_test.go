package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMargin_Compute(t *testing.T) {
	res, err := ComputeMargin(MarginInput{PricePerShare: 25, SharesCount: 40, Leverage: 10})
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, res.Volume, 1e-9)
	assert.InDelta(t, 100.0, res.Margin, 1e-9)
}

// margin × leverage recovers the volume for any valid input.
func TestMargin_LeverageRoundTrip(t *testing.T) {
	cases := []MarginInput{
		{PricePerShare: 1, SharesCount: 1, Leverage: 1},
		{PricePerShare: 99.5, SharesCount: 3, Leverage: 7},
		{PricePerShare: 0.003, SharesCount: 1e6, Leverage: 125},
	}
	for _, in := range cases {
		res, err := ComputeMargin(in)
		require.NoError(t, err)
		assert.InDelta(t, res.Volume, res.Margin*in.Leverage, 1e-9)
	}
}

func TestMargin_Validation(t *testing.T) {
	_, err := ComputeMargin(MarginInput{PricePerShare: 10, SharesCount: 5, Leverage: 0})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "leverage", verr.Field)
}
