package calculate

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moneyhiver/hiver/internal/calc"
	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/models"
)

// --- Mocks ---

type mockRateProvider struct {
	snapshot *models.RateSnapshot
	err      error
	calls    int
}

func (m *mockRateProvider) GetLatestRates(_ context.Context) (*models.RateSnapshot, error) {
	m.calls++
	return m.snapshot, m.err
}

func testSnapshot() *models.RateSnapshot {
	return &models.RateSnapshot{
		Base:      "USD",
		FetchedAt: time.Now(),
		Rates: calc.RateTable{
			"USD": 1,
			"EUR": 0.8,
			"RUB": 80,
		},
	}
}

func f(v float64) *float64 { return &v }

// --- Tests ---

func TestProfitLoss_NoRateFetch(t *testing.T) {
	rates := &mockRateProvider{err: errors.New("should not be called")}
	svc := NewService(rates, common.NewSilentLogger())

	result, err := svc.ProfitLoss(context.Background(), calc.PositionInput{
		AssetType:  calc.AssetCrypto,
		OpenPrice:  100,
		ClosePrice: 120,
		Amount:     2,
	})
	if err != nil {
		t.Fatalf("ProfitLoss returned error: %v", err)
	}
	if result.ProfitLoss != 40 {
		t.Errorf("profit_loss = %v, want 40", result.ProfitLoss)
	}
	if rates.calls != 0 {
		t.Errorf("rate provider called %d times, want 0", rates.calls)
	}
}

func TestDividend_UsesFreshRates(t *testing.T) {
	rates := &mockRateProvider{snapshot: testSnapshot()}
	svc := NewService(rates, common.NewSilentLogger())

	result, err := svc.Dividend(context.Background(), calc.DividendInput{
		PricePerShare:    50,
		Currency:         "EUR",
		SharesCount:      10,
		DividendPerShare: 1,
		PayPeriod:        calc.PayYearly,
		OwnershipYears:   5,
	})
	if err != nil {
		t.Fatalf("Dividend returned error: %v", err)
	}
	if result.Variant != calc.DividendBasic {
		t.Errorf("variant = %q, want basic", result.Variant)
	}
	if rates.calls != 1 {
		t.Errorf("rate provider called %d times, want 1", rates.calls)
	}
}

func TestDividend_RateFetchFailureWrapped(t *testing.T) {
	fetchErr := errors.New("upstream down")
	svc := NewService(&mockRateProvider{err: fetchErr}, common.NewSilentLogger())

	_, err := svc.Dividend(context.Background(), calc.DividendInput{
		PricePerShare:    50,
		Currency:         "USD",
		SharesCount:      10,
		DividendPerShare: 1,
		PayPeriod:        calc.PayYearly,
		OwnershipYears:   5,
	})
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestConvert_EndToEnd(t *testing.T) {
	svc := NewService(&mockRateProvider{snapshot: testSnapshot()}, common.NewSilentLogger())

	result, err := svc.Convert(context.Background(), calc.ConversionInput{
		Amount:       100,
		FromCurrency: "EUR",
		ToCurrency:   "RUB",
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if result.ConvertedAmount != 10000 {
		t.Errorf("converted = %v, want 10000", result.ConvertedAmount)
	}
	if result.ExchangeRate != 100 {
		t.Errorf("rate = %v, want 100", result.ExchangeRate)
	}
}

func TestConvert_ValidationErrorSurfaces(t *testing.T) {
	svc := NewService(&mockRateProvider{snapshot: testSnapshot()}, common.NewSilentLogger())

	_, err := svc.Convert(context.Background(), calc.ConversionInput{
		Amount:       -5,
		FromCurrency: "USD",
		ToCurrency:   "EUR",
	})
	var verr *calc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDividendChart_RendersPNG(t *testing.T) {
	svc := NewService(&mockRateProvider{}, common.NewSilentLogger())

	png, err := svc.DividendChart(context.Background(), calc.DividendInput{
		PricePerShare:    50,
		Currency:         "USD",
		SharesCount:      10,
		DividendPerShare: 1,
		PayPeriod:        calc.PayYearly,
		OwnershipYears:   5,
		GrowthRatePct:    f(10),
	})
	if err != nil {
		t.Fatalf("DividendChart returned error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output does not start with PNG magic bytes")
	}
}

func TestDividendChart_SingleYearRejected(t *testing.T) {
	svc := NewService(&mockRateProvider{}, common.NewSilentLogger())

	_, err := svc.DividendChart(context.Background(), calc.DividendInput{
		PricePerShare:    50,
		Currency:         "USD",
		SharesCount:      10,
		DividendPerShare: 1,
		PayPeriod:        calc.PayYearly,
		OwnershipYears:   1,
	})
	if err == nil {
		t.Fatal("expected error for single-year projection")
	}
}
