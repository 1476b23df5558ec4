// Package calc implements the Hiver calculation engine: pure, stateless
// transformations from validated trade/investment inputs (plus an exchange
// rate snapshot where currency is involved) to result records. The package
// performs no I/O and holds no state; callers fetch a fresh RateTable per
// calculation and pass it in.
package calc

// RateTable is a snapshot of USD exchange rates keyed by 3-letter currency
// code. The value is the number of units of that currency per one US dollar,
// the convention used by the Open Exchange Rates latest.json feed.
type RateTable map[string]float64

// Rate returns the USD exchange rate for code. A missing code or a
// non-positive rate yields an UnknownCurrencyError; there is no silent
// fallback to 1.0.
func (r RateTable) Rate(code string) (float64, error) {
	rate, ok := r[code]
	if !ok || rate <= 0 {
		return 0, &UnknownCurrencyError{Code: code}
	}
	return rate, nil
}

// ToUSD converts an amount denominated in currency to US dollars.
func (r RateTable) ToUSD(amount float64, currency string) (float64, error) {
	rate, err := r.Rate(currency)
	if err != nil {
		return 0, err
	}
	return amount / rate, nil
}

// FromUSD converts a US dollar amount back into currency.
func (r RateTable) FromUSD(amountUSD float64, currency string) (float64, error) {
	rate, err := r.Rate(currency)
	if err != nil {
		return 0, err
	}
	return amountUSD * rate, nil
}
