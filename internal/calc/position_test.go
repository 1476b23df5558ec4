package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestPosition_CryptoUnleveraged(t *testing.T) {
	res, err := ComputePosition(PositionInput{
		AssetType:  AssetCrypto,
		OpenPrice:  100,
		ClosePrice: 120,
		Amount:     2,
	})
	require.NoError(t, err)

	assert.InDelta(t, 200.0, res.PositionSize, 1e-9)
	assert.InDelta(t, 40.0, res.ProfitLoss, 1e-9)
	assert.InDelta(t, 20.0, res.ProfitLossYieldPct, 1e-9)
	assert.Zero(t, res.Margin)
}

// Leveraged crypto/stock profit is multiplied by the leverage factor. The
// historical implementations disagreed on this; the multiplying convention
// is the published contract.
func TestPosition_LeveragedPinsLeverageMultiplier(t *testing.T) {
	res, err := ComputePosition(PositionInput{
		AssetType:  AssetStock,
		OpenPrice:  100,
		ClosePrice: 110,
		Amount:     4,
		Leverage:   f(5),
	})
	require.NoError(t, err)

	// margin = 100*4/5 = 80, position = 400, P&L = 10*4*5 = 200
	assert.InDelta(t, 80.0, res.Margin, 1e-9)
	assert.InDelta(t, 400.0, res.PositionSize, 1e-9)
	assert.InDelta(t, 200.0, res.ProfitLoss, 1e-9)
	assert.InDelta(t, 50.0, res.ProfitLossYieldPct, 1e-9)
}

func TestPosition_LeverageOfOneIsUnleveraged(t *testing.T) {
	leveraged, err := ComputePosition(PositionInput{
		AssetType: AssetCrypto, OpenPrice: 100, ClosePrice: 120, Amount: 2, Leverage: f(1),
	})
	require.NoError(t, err)

	plain, err := ComputePosition(PositionInput{
		AssetType: AssetCrypto, OpenPrice: 100, ClosePrice: 120, Amount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, plain, leveraged)
}

func TestPosition_Forex(t *testing.T) {
	res, err := ComputePosition(PositionInput{
		AssetType:  AssetForex,
		OpenPrice:  1.10,
		ClosePrice: 1.15,
		Amount:     2,
		Volume:     f(100000),
		Leverage:   f(100),
	})
	require.NoError(t, err)

	// notional = 2*100000*1.10 = 220000; margin = 2200
	assert.InDelta(t, 220000.0, res.PositionSize, 1e-6)
	assert.InDelta(t, 2200.0, res.Margin, 1e-6)
	// P&L = 0.05*100000*2 = 10000; yield = 10000/2200*100
	assert.InDelta(t, 10000.0, res.ProfitLoss, 1e-6)
	assert.InDelta(t, 10000.0/2200.0*100, res.ProfitLossYieldPct, 1e-6)
}

func TestPosition_ForexRequiresLeverageAndVolume(t *testing.T) {
	_, err := ComputePosition(PositionInput{
		AssetType: AssetForex, OpenPrice: 1.1, ClosePrice: 1.2, Amount: 1, Volume: f(1000),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "leverage", verr.Field)
}

func TestPosition_VolumeRejectedForSpotAssets(t *testing.T) {
	_, err := ComputePosition(PositionInput{
		AssetType: AssetStock, OpenPrice: 10, ClosePrice: 11, Amount: 1, Volume: f(100),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "volume", verr.Field)
}

func TestPosition_ZeroOpenPriceNamesField(t *testing.T) {
	_, err := ComputePosition(PositionInput{
		AssetType: AssetCrypto, OpenPrice: 0, ClosePrice: 120, Amount: 2,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "open_price", verr.Field)
}

func TestPosition_InvalidAssetType(t *testing.T) {
	_, err := ComputePosition(PositionInput{
		AssetType: "bonds", OpenPrice: 10, ClosePrice: 12, Amount: 1,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "asset_type", verr.Field)
}

// For a fixed invested amount, buying amount/price_before units gives
// profit_loss = amount/price_before*price_after - amount and a yield of
// profit_loss/amount*100.
func TestPosition_SimpleInvestedAmountProperty(t *testing.T) {
	cases := []struct {
		before, after, invested float64
	}{
		{100, 120, 1000},
		{250, 200, 5000},
		{3.5, 3.9, 42},
	}
	for _, tc := range cases {
		units := tc.invested / tc.before
		res, err := ComputePosition(PositionInput{
			AssetType: AssetCrypto, OpenPrice: tc.before, ClosePrice: tc.after, Amount: units,
		})
		require.NoError(t, err)

		wantPL := tc.invested/tc.before*tc.after - tc.invested
		assert.InDelta(t, wantPL, res.ProfitLoss, 1e-9)
		assert.InDelta(t, wantPL/tc.invested*100, res.ProfitLossYieldPct, 1e-9)
	}
}
