package calc

import "math"

// PayPeriod is how often a dividend is paid out.
type PayPeriod string

const (
	PayMonthly PayPeriod = "month"
	PayYearly  PayPeriod = "year"
)

func (p PayPeriod) valid() bool {
	return p == PayMonthly || p == PayYearly
}

// periodsPerYear returns the number of payouts in a year.
func (p PayPeriod) periodsPerYear() float64 {
	if p == PayMonthly {
		return 12
	}
	return 1
}

// DividendInput describes a dividend income projection. TaxRatePct and
// GrowthRatePct are optional; a present zero means "0% rate" and still runs
// the taxed (resp. growing) branch, which is not the same as leaving the
// field absent.
type DividendInput struct {
	PricePerShare    float64
	Currency         string
	SharesCount      float64
	DividendPerShare float64
	PayPeriod        PayPeriod
	OwnershipYears   float64
	TaxRatePct       *float64
	GrowthRatePct    *float64
}

// Validate checks the strictly-positive and range constraints.
func (in DividendInput) Validate() error {
	if in.PricePerShare <= 0 {
		return invalid("price_per_share", "must be greater than zero")
	}
	if in.Currency == "" {
		return invalid("currency", "is required")
	}
	if in.SharesCount <= 0 {
		return invalid("shares_count", "must be greater than zero")
	}
	if in.DividendPerShare <= 0 {
		return invalid("dividend_per_share", "must be greater than zero")
	}
	if !in.PayPeriod.valid() {
		return invalid("pay_period", "must be month or year")
	}
	if in.OwnershipYears <= 0 {
		return invalid("ownership_period", "must be greater than zero")
	}
	if in.TaxRatePct != nil && *in.TaxRatePct < 0 {
		return invalid("tax_rate", "cannot be negative")
	}
	if in.GrowthRatePct != nil && *in.GrowthRatePct < 0 {
		return invalid("dividend_growth", "cannot be negative")
	}
	return nil
}

// DividendVariant tags which projection branch produced a result.
type DividendVariant string

const (
	DividendBasic        DividendVariant = "basic"
	DividendTaxed        DividendVariant = "taxed"
	DividendGrowing      DividendVariant = "growing"
	DividendTaxedGrowing DividendVariant = "taxed_growing"
)

// DividendResult is the projected income over the ownership period.
// Monetary fields are denominated in the input currency; percentage fields
// are currency-independent. Fields past AverageAnnualReturnPct are only
// populated by some variants, so they are pointers: a computed 0 still
// serializes, only fields the variant never sets are omitted.
type DividendResult struct {
	Variant                     DividendVariant `json:"variant"`
	TotalDividends              float64         `json:"total_div"`
	DividendYieldPct            float64         `json:"div_yield"`
	TotalDividendYieldPct       float64         `json:"total_div_yield"`
	TotalDividendIncome         float64         `json:"div_income_total"`
	EndingValue                 float64         `json:"ending_value"`
	AverageAnnualReturnPct      float64         `json:"ave_ann_ret"`
	InvestedAmount              *float64        `json:"invest,omitempty"`
	AnnualDividendYieldPct      *float64        `json:"ann_div_yield,omitempty"`
	TotalPeriodDividendYieldPct *float64        `json:"total_period_div_yield,omitempty"`
	TotalReturnPct              *float64        `json:"total_return,omitempty"`
}

func ptr(v float64) *float64 { return &v }

// ProjectDividends computes dividend income over the ownership period.
// The branch taken is an explicit dispatch over which optional rates are
// present. All intermediate arithmetic runs in USD; monetary outputs are
// converted back to the input currency.
func ProjectDividends(in DividendInput, rates RateTable) (DividendResult, error) {
	if err := in.Validate(); err != nil {
		return DividendResult{}, err
	}

	priceUSD, err := rates.ToUSD(in.PricePerShare, in.Currency)
	if err != nil {
		return DividendResult{}, err
	}
	divUSD, err := rates.ToUSD(in.DividendPerShare, in.Currency)
	if err != nil {
		return DividendResult{}, err
	}

	beginningValue := priceUSD * in.SharesCount
	annualBasic := divUSD * in.PayPeriod.periodsPerYear()
	years := in.OwnershipYears

	taxPresent := in.TaxRatePct != nil
	growthPresent := in.GrowthRatePct != nil

	annual := annualBasic
	if taxPresent {
		annual = afterTax(annualBasic, *in.TaxRatePct)
	}

	var totalPerShare float64
	if growthPresent {
		totalPerShare = growingTotalPerShare(annual, *in.GrowthRatePct/100, years)
	} else {
		totalPerShare = linearTotalPerShare(annual, years)
	}

	totalDividends := totalPerShare * in.SharesCount
	endingValue := beginningValue + totalDividends

	res := DividendResult{
		TotalDividends:         totalDividends,
		DividendYieldPct:       annual / priceUSD * 100,
		TotalDividendYieldPct:  totalDividends / beginningValue * 100,
		TotalDividendIncome:    totalDividends,
		EndingValue:            endingValue,
		AverageAnnualReturnPct: averageAnnualReturnPct(beginningValue, endingValue, years),
	}

	switch {
	case !taxPresent && !growthPresent:
		res.Variant = DividendBasic
		res.InvestedAmount = ptr(beginningValue)
	case taxPresent && !growthPresent:
		res.Variant = DividendTaxed
		res.AnnualDividendYieldPct = ptr(annual / priceUSD * 100)
	case !taxPresent && growthPresent:
		res.Variant = DividendGrowing
		res.AnnualDividendYieldPct = ptr(annual / priceUSD * 100)
		res.TotalPeriodDividendYieldPct = ptr(res.TotalDividendYieldPct)
		res.TotalReturnPct = ptr(res.TotalDividendYieldPct)
	default:
		res.Variant = DividendTaxedGrowing
		res.AnnualDividendYieldPct = ptr(annual / priceUSD * 100)
		res.TotalPeriodDividendYieldPct = ptr(res.TotalDividendYieldPct)
	}

	// Monetary values back to the input currency
	monetary := []*float64{&res.TotalDividends, &res.TotalDividendIncome, &res.EndingValue}
	if res.InvestedAmount != nil {
		monetary = append(monetary, res.InvestedAmount)
	}
	for _, p := range monetary {
		converted, err := rates.FromUSD(*p, in.Currency)
		if err != nil {
			return DividendResult{}, err
		}
		*p = converted
	}

	return res, nil
}

// DividendPoint is one year of a dividend projection, in the input currency.
type DividendPoint struct {
	Year             int     `json:"year"`
	CumulativeIncome float64 `json:"cumulative_income"`
}

// ProjectDividendSeries computes the cumulative dividend income at the end
// of each year of the ownership period, in the input currency. No rate table
// is needed: income scales linearly with the per-share dividend, so the USD
// round-trip cancels out.
func ProjectDividendSeries(in DividendInput) ([]DividendPoint, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	annual := in.DividendPerShare * in.PayPeriod.periodsPerYear()
	if in.TaxRatePct != nil {
		annual = afterTax(annual, *in.TaxRatePct)
	}

	var growth float64
	if in.GrowthRatePct != nil {
		growth = *in.GrowthRatePct / 100
	}

	lastYear := int(math.Ceil(in.OwnershipYears))
	if lastYear < 1 {
		lastYear = 1
	}

	points := make([]DividendPoint, 0, lastYear)
	for year := 1; year <= lastYear; year++ {
		elapsed := math.Min(float64(year), in.OwnershipYears)
		points = append(points, DividendPoint{
			Year:             year,
			CumulativeIncome: growingTotalPerShare(annual, growth, elapsed) * in.SharesCount,
		})
	}
	return points, nil
}

// afterTax reduces an annual dividend by a percentage tax rate.
func afterTax(annual, taxRatePct float64) float64 {
	return annual * (1 - taxRatePct/100)
}

// linearTotalPerShare accumulates a constant annual dividend.
func linearTotalPerShare(annual, years float64) float64 {
	return annual * years
}

// growingTotalPerShare accumulates an annually growing dividend as the sum
// of a geometric series. A growth rate of zero degenerates to the linear
// accumulation rather than dividing by zero.
func growingTotalPerShare(annual, growth, years float64) float64 {
	if growth <= 0 {
		return linearTotalPerShare(annual, years)
	}
	return annual * (math.Pow(1+growth, years) - 1) / growth
}

// averageAnnualReturnPct is the annualised growth rate from beginning to
// ending value. Returns 0 rather than failing when the period or beginning
// value is degenerate.
func averageAnnualReturnPct(beginning, ending, years float64) float64 {
	if years <= 0 || beginning <= 0 {
		return 0
	}
	return (math.Pow(ending/beginning, 1/years) - 1) * 100
}
