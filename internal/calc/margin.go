package calc

// MarginInput describes a leveraged sizing query.
type MarginInput struct {
	PricePerShare float64
	SharesCount   float64
	Leverage      float64
}

// Validate checks the strictly-positive constraints.
func (in MarginInput) Validate() error {
	if in.PricePerShare <= 0 {
		return invalid("price_per_share", "must be greater than zero")
	}
	if in.SharesCount <= 0 {
		return invalid("shares_count", "must be greater than zero")
	}
	if in.Leverage <= 0 {
		return invalid("leverage", "must be greater than zero")
	}
	return nil
}

// MarginResult holds the position volume and the margin required to open it.
type MarginResult struct {
	Volume float64 `json:"volume"`
	Margin float64 `json:"margin"`
}

// ComputeMargin derives volume and required margin. The same formula applies
// to every asset class.
func ComputeMargin(in MarginInput) (MarginResult, error) {
	if err := in.Validate(); err != nil {
		return MarginResult{}, err
	}
	volume := in.PricePerShare * in.SharesCount
	return MarginResult{
		Volume: volume,
		Margin: volume / in.Leverage,
	}, nil
}
