package calc

// RRRInput describes a planned trade for risk/reward sizing.
type RRRInput struct {
	OpenPrice       float64
	TakeProfit      float64
	StopLoss        float64
	Balance         float64
	RiskPerTradePct float64
}

// Validate checks positivity and the stop < open < take-profit ordering.
func (in RRRInput) Validate() error {
	if in.OpenPrice <= 0 {
		return invalid("open_price", "must be greater than zero")
	}
	if in.TakeProfit <= 0 {
		return invalid("take_profit", "must be greater than zero")
	}
	if in.StopLoss <= 0 {
		return invalid("stop_loss", "must be greater than zero")
	}
	if in.Balance <= 0 {
		return invalid("balance", "must be greater than zero")
	}
	if in.RiskPerTradePct <= 0 {
		return invalid("risk_per_trade", "must be greater than zero")
	}
	if in.StopLoss >= in.OpenPrice {
		return invalid("stop_loss", "must be less than open price")
	}
	if in.TakeProfit <= in.OpenPrice {
		return invalid("take_profit", "must be greater than open price")
	}
	return nil
}

// RRRResult sizes a trade so that hitting the stop loses exactly the
// configured fraction of the balance.
type RRRResult struct {
	PositionSize       float64 `json:"position_size"`
	PositionCost       float64 `json:"position_cost"`
	RiskRewardRatio    float64 `json:"rrr"`
	ProfitPerShare     float64 `json:"profit_per_share"`
	RiskPerShare       float64 `json:"risk_per_share"`
	TotalProfit        float64 `json:"total_profit"`
	TotalRisk          float64 `json:"total_risk"`
	BalanceAfterProfit float64 `json:"balance_after_profit"`
	BalanceAfterLoss   float64 `json:"balance_after_loss"`
}

// ComputeRiskReward derives the risk/reward ratio and position sizing for a
// planned trade.
func ComputeRiskReward(in RRRInput) (RRRResult, error) {
	if err := in.Validate(); err != nil {
		return RRRResult{}, err
	}

	riskPerShare := in.OpenPrice - in.StopLoss
	profitPerShare := in.TakeProfit - in.OpenPrice
	totalRisk := in.RiskPerTradePct / 100 * in.Balance
	positionSize := totalRisk / riskPerShare
	totalProfit := profitPerShare * positionSize

	return RRRResult{
		PositionSize:       positionSize,
		PositionCost:       positionSize * in.OpenPrice,
		RiskRewardRatio:    profitPerShare / riskPerShare,
		ProfitPerShare:     profitPerShare,
		RiskPerShare:       riskPerShare,
		TotalProfit:        totalProfit,
		TotalRisk:          totalRisk,
		BalanceAfterProfit: in.Balance + totalProfit,
		BalanceAfterLoss:   in.Balance - totalRisk,
	}, nil
}
