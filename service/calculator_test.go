package service

import (
	"errors"
	"math"
	"testing"

	"debt-assistant/domain"
)

func TestAmortizedPayment_KnownValue(t *testing.T) {

	result, err := AmortizedPayment(50000, 5, 10)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50k at 5% over 10 years is the textbook $530.33/month.
	if math.Abs(result.MonthlyPayment-530.33) > 0.01 {
		t.Errorf("expected monthly payment 530.33, got %.2f", result.MonthlyPayment)
	}
}

func TestAmortizedPayment_Invariants(t *testing.T) {

	cases := []struct {
		principal, rate, years float64
	}{
		{10000, 12, 2},
		{50000, 5, 10},
		{250000, 6.5, 30},
		{1200, 18, 1},
	}

	for _, c := range cases {
		result, err := AmortizedPayment(c.principal, c.rate, c.years)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", c, err)
		}

		n := c.years * 12
		if math.Abs(result.TotalPayment-result.MonthlyPayment*n) > 0.01*n {
			t.Errorf("total %.2f not within tolerance of monthly %.2f x %v",
				result.TotalPayment, result.MonthlyPayment, n)
		}
		if math.Abs(result.TotalInterest-(result.TotalPayment-c.principal)) > 0.01 {
			t.Errorf("interest %.2f != total %.2f - principal %.2f",
				result.TotalInterest, result.TotalPayment, c.principal)
		}
	}
}

func TestAmortizedPayment_InvalidInput(t *testing.T) {

	cases := []struct {
		name                   string
		principal, rate, years float64
	}{
		{"zero principal", 0, 5, 10},
		{"negative rate", 1000, -1, 5},
		{"zero years", 1000, 5, 0},
		{"negative principal", -100, 5, 10},
	}

	for _, c := range cases {
		_, err := AmortizedPayment(c.principal, c.rate, c.years)
		if !errors.Is(err, ErrInvalidPlanInput) {
			t.Errorf("%s: expected ErrInvalidPlanInput, got %v", c.name, err)
		}
	}
}

func TestAmortizedPayment_NearZeroRate(t *testing.T) {

	result, err := AmortizedPayment(12000, 0.0001, 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MonthlyPayment != 1000.00 {
		t.Errorf("expected 1000.00 monthly at near-zero rate, got %.2f", result.MonthlyPayment)
	}
}

func TestRoundTo2Decimals(t *testing.T) {

	// Half away from zero; 0.125 is exact in binary so this pins the mode.
	if got := roundTo2Decimals(0.125); got != 0.13 {
		t.Errorf("expected 0.13, got %v", got)
	}
	if got := roundTo2Decimals(-0.125); got != -0.13 {
		t.Errorf("expected -0.13, got %v", got)
	}
}

func TestGlobalStats(t *testing.T) {

	records := []domain.CountryDebtRecord{
		{Name: "A", Year: 2023, DebtToGDP: 100, DebtUSD: 1e12},
		{Name: "B", Year: 2023, DebtToGDP: 200, DebtUSD: 2e12},
		{Name: "C", Year: 2023, DebtToGDP: 60, DebtUSD: 3e12},
	}

	stats, err := GlobalStats(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalDebtUSD != 6e12 {
		t.Errorf("expected total 6e12, got %v", stats.TotalDebtUSD)
	}
	if stats.AvgDebtToGDP != 120 {
		t.Errorf("expected average 120, got %v", stats.AvgDebtToGDP)
	}
	if stats.Highest.Country != "B" || stats.Lowest.Country != "C" {
		t.Errorf("expected highest B / lowest C, got %s / %s",
			stats.Highest.Country, stats.Lowest.Country)
	}
}

func TestGlobalStats_TieKeepsFirst(t *testing.T) {

	records := []domain.CountryDebtRecord{
		{Name: "First", Year: 2023, DebtToGDP: 150, DebtUSD: 1e12},
		{Name: "Second", Year: 2023, DebtToGDP: 150, DebtUSD: 1e12},
	}

	stats, err := GlobalStats(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Highest.Country != "First" {
		t.Errorf("tie should keep first record, got %s", stats.Highest.Country)
	}
	if stats.Lowest.Country != "First" {
		t.Errorf("tie should keep first record, got %s", stats.Lowest.Country)
	}
}

func TestGlobalStats_Empty(t *testing.T) {

	_, err := GlobalStats(nil)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestSimpleTrend(t *testing.T) {

	cases := []struct {
		series []float64
		want   domain.Trend
	}{
		{[]float64{80, 85}, domain.TrendIncreasing},
		{[]float64{85, 80}, domain.TrendDecreasing},
		{[]float64{80, 80}, domain.TrendStable},
		{[]float64{90, 80, 85}, domain.TrendIncreasing}, // only the last pair counts
		{[]float64{80}, domain.TrendInsufficientData},
		{nil, domain.TrendInsufficientData},
	}

	for _, c := range cases {
		if got := SimpleTrend(c.series); got != c.want {
			t.Errorf("SimpleTrend(%v) = %s, want %s", c.series, got, c.want)
		}
	}
}

func TestHistoryTrend(t *testing.T) {

	cases := []struct {
		series []float64
		want   domain.Trend
	}{
		{[]float64{80, 85, 85, 90}, domain.TrendIncreasing},
		{[]float64{90, 85, 85, 80}, domain.TrendDecreasing},
		{[]float64{80, 80, 80}, domain.TrendStable},
		{[]float64{80, 85, 80}, domain.TrendFluctuating},
		{[]float64{80, 85}, domain.TrendInsufficientData},
		{[]float64{80}, domain.TrendInsufficientData},
	}

	for _, c := range cases {
		if got := HistoryTrend(c.series); got != c.want {
			t.Errorf("HistoryTrend(%v) = %s, want %s", c.series, got, c.want)
		}
	}
}
