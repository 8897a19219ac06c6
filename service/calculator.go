package service

import (
	"errors"
	"fmt"
	"math"

	"debt-assistant/domain"
)

// ErrInvalidPlanInput marks payment-plan inputs the calculator rejects.
var ErrInvalidPlanInput = errors.New("invalid payment plan input")

// ErrNoData is returned by aggregate computations over an empty dataset.
var ErrNoData = errors.New("no country data")

// roundTo2Decimals rounds a monetary value to 2 decimals, half away from zero.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// AmortizedPayment computes the fixed monthly payment that retires the
// principal over the given term at the given annual rate.
func AmortizedPayment(principal, annualRatePct, years float64) (domain.PaymentPlanResult, error) {
	if principal <= 0 {
		return domain.PaymentPlanResult{}, fmt.Errorf("%w: principal must be positive", ErrInvalidPlanInput)
	}
	if principal > MaxPrincipal {
		return domain.PaymentPlanResult{}, fmt.Errorf("%w: principal exceeds $%.2f", ErrInvalidPlanInput, MaxPrincipal)
	}
	if annualRatePct <= 0 {
		return domain.PaymentPlanResult{}, fmt.Errorf("%w: rate must be positive", ErrInvalidPlanInput)
	}
	if annualRatePct > MaxAnnualRate {
		return domain.PaymentPlanResult{}, fmt.Errorf("%w: rate exceeds %.2f%%", ErrInvalidPlanInput, MaxAnnualRate)
	}
	if years <= 0 {
		return domain.PaymentPlanResult{}, fmt.Errorf("%w: term must be positive", ErrInvalidPlanInput)
	}
	if years > MaxPlanYears {
		return domain.PaymentPlanResult{}, fmt.Errorf("%w: term exceeds %.0f years", ErrInvalidPlanInput, MaxPlanYears)
	}

	monthlyRate := annualRatePct / 12 / 100
	n := years * 12

	var monthly float64
	if monthlyRate < NearZeroMonthlyRate {
		// The amortization denominator (1+r)^n - 1 vanishes here.
		monthly = principal / n
	} else {
		factor := math.Pow(1+monthlyRate, n)
		monthly = principal * monthlyRate * factor / (factor - 1)
	}

	total := monthly * n
	interest := total - principal

	return domain.PaymentPlanResult{
		MonthlyPayment: roundTo2Decimals(monthly),
		TotalInterest:  roundTo2Decimals(interest),
		TotalPayment:   roundTo2Decimals(total),
		Years:          years,
	}, nil
}

// GlobalStats aggregates the latest-year records: total debt, mean ratio, and
// the highest/lowest countries by debt-to-GDP. Ties keep the first record in
// dataset order.
func GlobalStats(records []domain.CountryDebtRecord) (domain.GlobalStats, error) {
	if len(records) == 0 {
		return domain.GlobalStats{}, ErrNoData
	}

	var totalDebt, ratioSum float64
	highest := records[0]
	lowest := records[0]
	for _, r := range records {
		totalDebt += r.DebtUSD
		ratioSum += r.DebtToGDP
		if r.DebtToGDP > highest.DebtToGDP {
			highest = r
		}
		if r.DebtToGDP < lowest.DebtToGDP {
			lowest = r
		}
	}

	return domain.GlobalStats{
		TotalDebtUSD: totalDebt,
		AvgDebtToGDP: ratioSum / float64(len(records)),
		Highest:      domain.CountryRatio{Country: highest.Name, Ratio: highest.DebtToGDP},
		Lowest:       domain.CountryRatio{Country: lowest.Name, Ratio: lowest.DebtToGDP},
	}, nil
}

// SimpleTrend classifies direction from the last two points only.
func SimpleTrend(series []float64) domain.Trend {
	if len(series) < 2 {
		return domain.TrendInsufficientData
	}
	latest := series[len(series)-1]
	previous := series[len(series)-2]
	switch {
	case latest > previous:
		return domain.TrendIncreasing
	case latest < previous:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// HistoryTrend classifies the full series: monotone non-decreasing with at
// least one strict rise is Increasing, symmetric for Decreasing, all-equal is
// Stable, anything else Fluctuating.
func HistoryTrend(series []float64) domain.Trend {
	if len(series) < 3 {
		return domain.TrendInsufficientData
	}
	nonDecreasing, nonIncreasing := true, true
	anyRise, anyFall := false, false
	for i := 1; i < len(series); i++ {
		if series[i] > series[i-1] {
			anyRise = true
			nonIncreasing = false
		}
		if series[i] < series[i-1] {
			anyFall = true
			nonDecreasing = false
		}
	}
	switch {
	case !anyRise && !anyFall:
		return domain.TrendStable
	case nonDecreasing:
		return domain.TrendIncreasing
	case nonIncreasing:
		return domain.TrendDecreasing
	default:
		return domain.TrendFluctuating
	}
}
