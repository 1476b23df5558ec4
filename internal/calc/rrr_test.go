package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRRRInput() RRRInput {
	return RRRInput{
		OpenPrice:       100,
		TakeProfit:      120,
		StopLoss:        90,
		Balance:         10000,
		RiskPerTradePct: 1,
	}
}

func TestRRR_Scenario(t *testing.T) {
	res, err := ComputeRiskReward(baseRRRInput())
	require.NoError(t, err)

	assert.InDelta(t, 10.0, res.RiskPerShare, 1e-9)
	assert.InDelta(t, 20.0, res.ProfitPerShare, 1e-9)
	assert.InDelta(t, 100.0, res.TotalRisk, 1e-9)
	assert.InDelta(t, 10.0, res.PositionSize, 1e-9)
	assert.InDelta(t, 1000.0, res.PositionCost, 1e-9)
	assert.InDelta(t, 2.0, res.RiskRewardRatio, 1e-9)
	assert.InDelta(t, 200.0, res.TotalProfit, 1e-9)
	assert.InDelta(t, 10200.0, res.BalanceAfterProfit, 1e-9)
	assert.InDelta(t, 9900.0, res.BalanceAfterLoss, 1e-9)
}

// Scaling the balance scales the position linearly and leaves the
// risk/reward ratio unchanged.
func TestRRR_BalanceScaleInvariance(t *testing.T) {
	base, err := ComputeRiskReward(baseRRRInput())
	require.NoError(t, err)

	for _, k := range []float64{0.5, 3, 1000} {
		in := baseRRRInput()
		in.Balance *= k

		scaled, err := ComputeRiskReward(in)
		require.NoError(t, err)

		assert.InDelta(t, base.RiskRewardRatio, scaled.RiskRewardRatio, 1e-9)
		assert.InDelta(t, base.PositionSize*k, scaled.PositionSize, 1e-6)
		assert.InDelta(t, base.TotalRisk*k, scaled.TotalRisk, 1e-6)
	}
}

func TestRRR_OrderingEnforced(t *testing.T) {
	in := baseRRRInput()
	in.StopLoss = 100

	_, err := ComputeRiskReward(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "stop_loss", verr.Field)

	in = baseRRRInput()
	in.TakeProfit = 100

	_, err = ComputeRiskReward(in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "take_profit", verr.Field)
}
