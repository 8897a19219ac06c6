package repository

import (
	"sort"
	"strings"

	"debt-assistant/domain"
)

// Metric names accepted by TopN.
const (
	MetricDebtToGDP = "debt_to_gdp"
	MetricDebtUSD   = "debt_usd"
)

// CountryDataset is a read-only view over the debt table: one record per
// country per year, loaded once at startup and never mutated.
type CountryDataset struct {
	records   []domain.CountryDebtRecord
	countries []string
	byCountry map[string][]domain.CountryDebtRecord
}

// NewCountryDataset builds a dataset from the given records. Per-country
// histories are kept sorted ascending by year; country order follows first
// appearance in the input.
func NewCountryDataset(records []domain.CountryDebtRecord) *CountryDataset {
	d := &CountryDataset{
		records:   records,
		byCountry: make(map[string][]domain.CountryDebtRecord),
	}
	for _, r := range records {
		key := strings.ToLower(r.Name)
		if _, seen := d.byCountry[key]; !seen {
			d.countries = append(d.countries, r.Name)
		}
		d.byCountry[key] = append(d.byCountry[key], r)
	}
	for key := range d.byCountry {
		history := d.byCountry[key]
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Year < history[j].Year
		})
	}
	return d
}

// Countries returns the unique country names in dataset order.
func (d *CountryDataset) Countries() []string {
	return d.countries
}

// LookupCountry returns the latest-year record for the named country.
// Matching is case-insensitive and exact.
func (d *CountryDataset) LookupCountry(name string) (domain.CountryDebtRecord, bool) {
	history, ok := d.byCountry[strings.ToLower(name)]
	if !ok || len(history) == 0 {
		return domain.CountryDebtRecord{}, false
	}
	return history[len(history)-1], true
}

// Latest returns the most recent record per country, in dataset order.
func (d *CountryDataset) Latest() []domain.CountryDebtRecord {
	out := make([]domain.CountryDebtRecord, 0, len(d.countries))
	for _, name := range d.countries {
		if r, ok := d.LookupCountry(name); ok {
			out = append(out, r)
		}
	}
	return out
}

// TopN returns the n latest-year records ranked by the given metric.
// The sort is stable: equal metric values keep dataset order.
func (d *CountryDataset) TopN(metric string, n int, ascending bool) []domain.CountryDebtRecord {
	ranked := d.Latest()
	value := func(r domain.CountryDebtRecord) float64 {
		if metric == MetricDebtUSD {
			return r.DebtUSD
		}
		return r.DebtToGDP
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return value(ranked[i]) < value(ranked[j])
		}
		return value(ranked[i]) > value(ranked[j])
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// HistoricalSeries returns the country's records ascending by year, bounded
// inclusively by startYear/endYear when non-zero.
func (d *CountryDataset) HistoricalSeries(country string, startYear, endYear int) []domain.HistoricalPoint {
	history := d.byCountry[strings.ToLower(country)]
	var out []domain.HistoricalPoint
	for _, r := range history {
		if startYear != 0 && r.Year < startYear {
			continue
		}
		if endYear != 0 && r.Year > endYear {
			continue
		}
		out = append(out, domain.HistoricalPoint{
			Year:      r.Year,
			DebtToGDP: r.DebtToGDP,
			DebtUSD:   r.DebtUSD,
		})
	}
	return out
}

// RatioSeries returns the country's debt-to-GDP values ascending by year.
func (d *CountryDataset) RatioSeries(country string) []float64 {
	history := d.byCountry[strings.ToLower(country)]
	out := make([]float64, 0, len(history))
	for _, r := range history {
		out = append(out, r.DebtToGDP)
	}
	return out
}
