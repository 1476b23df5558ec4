package calc

// AssetType identifies the instrument class of a position.
type AssetType string

const (
	AssetCrypto AssetType = "crypto"
	AssetStock  AssetType = "stock"
	AssetForex  AssetType = "forex"
)

func (a AssetType) valid() bool {
	switch a {
	case AssetCrypto, AssetStock, AssetForex:
		return true
	}
	return false
}

// PositionInput describes a closed (or hypothetically closed) position.
// Volume and Leverage are optional; for forex both are required together.
type PositionInput struct {
	AssetType  AssetType
	OpenPrice  float64
	ClosePrice float64
	Amount     float64
	Volume     *float64
	Leverage   *float64
}

// Validate checks the strictly-positive and cross-field constraints.
func (in PositionInput) Validate() error {
	if !in.AssetType.valid() {
		return invalid("asset_type", "must be one of crypto, stock, forex")
	}
	if in.OpenPrice <= 0 {
		return invalid("open_price", "must be greater than zero")
	}
	if in.ClosePrice <= 0 {
		return invalid("close_price", "must be greater than zero")
	}
	if in.Amount <= 0 {
		return invalid("amount", "must be greater than zero")
	}
	if in.Leverage != nil && *in.Leverage <= 0 {
		return invalid("leverage", "must be greater than zero when provided")
	}
	if in.Volume != nil && *in.Volume <= 0 {
		return invalid("volume", "must be greater than zero when provided")
	}
	if in.AssetType == AssetForex {
		if in.Leverage == nil || in.Volume == nil {
			return invalid("leverage", "forex requires leverage and volume together")
		}
	} else if in.Volume != nil {
		return invalid("volume", "only valid for forex positions")
	}
	return nil
}

// PositionResult carries the derived sizing and profit figures. The four
// fields are always computed together. Margin is zero for unleveraged
// crypto/stock positions.
type PositionResult struct {
	PositionSize       float64 `json:"position_size"`
	Margin             float64 `json:"margin"`
	ProfitLoss         float64 `json:"profit_loss"`
	ProfitLossYieldPct float64 `json:"profit_loss_yield"`
}

// ComputePosition derives position size, margin, profit/loss and yield for
// the given input. Leveraged crypto/stock profit is multiplied by the
// leverage factor.
func ComputePosition(in PositionInput) (PositionResult, error) {
	if err := in.Validate(); err != nil {
		return PositionResult{}, err
	}
	if in.AssetType == AssetForex {
		return forexPosition(in), nil
	}
	return spotPosition(in), nil
}

// spotPosition handles crypto and stock instruments. Leverage of 1 or less
// is treated as an unleveraged position.
func spotPosition(in PositionInput) PositionResult {
	if in.Leverage != nil && *in.Leverage > 1 {
		lev := *in.Leverage
		margin := in.OpenPrice * in.Amount / lev
		return PositionResult{
			PositionSize:       margin * lev,
			Margin:             margin,
			ProfitLoss:         (in.ClosePrice - in.OpenPrice) * in.Amount * lev,
			ProfitLossYieldPct: (in.ClosePrice/in.OpenPrice - 1) * lev * 100,
		}
	}
	return PositionResult{
		PositionSize:       in.OpenPrice * in.Amount,
		ProfitLoss:         (in.ClosePrice - in.OpenPrice) * in.Amount,
		ProfitLossYieldPct: (in.ClosePrice/in.OpenPrice - 1) * 100,
	}
}

// forexPosition sizes a forex position as its notional value
// (amount × volume × open price). Yield is measured against posted margin.
func forexPosition(in PositionInput) PositionResult {
	volume := *in.Volume
	leverage := *in.Leverage

	notional := in.Amount * volume * in.OpenPrice
	margin := notional / leverage
	profitLoss := (in.ClosePrice - in.OpenPrice) * volume * in.Amount

	return PositionResult{
		PositionSize:       notional,
		Margin:             margin,
		ProfitLoss:         profitLoss,
		ProfitLossYieldPct: profitLoss / margin * 100,
	}
}
