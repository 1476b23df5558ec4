package calc

// ConversionInput describes a spot currency conversion.
type ConversionInput struct {
	Amount       float64
	FromCurrency string
	ToCurrency   string
}

// Validate checks the conversion preconditions.
func (in ConversionInput) Validate() error {
	if in.Amount <= 0 {
		return invalid("amount", "must be greater than zero")
	}
	if in.FromCurrency == "" {
		return invalid("from_currency", "is required")
	}
	if in.ToCurrency == "" {
		return invalid("to_currency", "is required")
	}
	return nil
}

// ConversionResult holds the converted amount and the effective rate.
//
// ExchangeRate is the number of target-currency units received per one unit
// of the source currency (converted_amount / amount). Callers wanting the
// inverse quote divide 1 by it.
type ConversionResult struct {
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
}

// Convert exchanges an amount between two currencies through their USD
// rates in the supplied snapshot.
func Convert(in ConversionInput, rates RateTable) (ConversionResult, error) {
	if err := in.Validate(); err != nil {
		return ConversionResult{}, err
	}

	usd, err := rates.ToUSD(in.Amount, in.FromCurrency)
	if err != nil {
		return ConversionResult{}, err
	}
	converted, err := rates.FromUSD(usd, in.ToCurrency)
	if err != nil {
		return ConversionResult{}, err
	}

	return ConversionResult{
		ConvertedAmount: converted,
		ExchangeRate:    converted / in.Amount,
	}, nil
}
