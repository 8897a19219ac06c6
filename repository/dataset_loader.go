package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"debt-assistant/domain"
)

// Column headers expected in the external dataset file.
const (
	columnCountry = "Country"
	columnYear    = "Year"
	columnRatio   = "Debt-to-GDP Ratio"
	columnDebtUSD = "Total Debt (USD)"
)

// LoadDatasetCSV reads the debt table from a CSV file. It returns an explicit
// error for a missing file, missing columns, or an unparseable cell; the
// caller decides whether to degrade to a data-unavailable mode.
func LoadDatasetCSV(path string) (*CountryDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	index := make(map[string]int)
	for i, header := range rows[0] {
		index[strings.TrimSpace(header)] = i
	}
	for _, required := range []string{columnCountry, columnYear, columnRatio, columnDebtUSD} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("dataset %s missing column %q", path, required)
		}
	}

	records := make([]domain.CountryDebtRecord, 0, len(rows)-1)
	for line, row := range rows[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(row[index[columnYear]]))
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: bad year: %w", path, line+2, err)
		}
		ratio, err := strconv.ParseFloat(strings.TrimSpace(row[index[columnRatio]]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: bad ratio: %w", path, line+2, err)
		}
		debt, err := strconv.ParseFloat(strings.TrimSpace(row[index[columnDebtUSD]]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: bad debt: %w", path, line+2, err)
		}
		records = append(records, domain.CountryDebtRecord{
			Name:      strings.TrimSpace(row[index[columnCountry]]),
			Year:      year,
			DebtToGDP: ratio,
			DebtUSD:   debt,
		})
	}
	return NewCountryDataset(records), nil
}

// BuiltinDataset returns the embedded ten-country table used when no external
// data file is configured. Three years of history per country keep the trend
// and historical intents functional.
func BuiltinDataset() *CountryDataset {
	type row struct {
		name   string
		ratios [3]float64 // 2021..2023
		debt   float64    // latest total debt, USD
	}
	rows := []row{
		{"United States", [3]float64{120.1, 121.7, 123.4}, 30e12},
		{"Japan", [3]float64{262.5, 263.9, 264.1}, 12e12},
		{"China", [3]float64{71.8, 74.4, 77.1}, 15e12},
		{"United Kingdom", [3]float64{102.6, 101.2, 101.9}, 3e12},
		{"France", [3]float64{112.8, 111.8, 112.9}, 3e12},
		{"Italy", [3]float64{147.1, 144.4, 150.8}, 3e12},
		{"Germany", [3]float64{69.0, 66.1, 69.3}, 3e12},
		{"Canada", [3]float64{112.1, 107.4, 106.4}, 1.5e12},
		{"Brazil", [3]float64{90.0, 88.9, 88.6}, 1.5e12},
		{"India", [3]float64{84.7, 83.8, 83.5}, 2e12},
	}
	var records []domain.CountryDebtRecord
	for _, r := range rows {
		for i, ratio := range r.ratios {
			records = append(records, domain.CountryDebtRecord{
				Name:      r.name,
				Year:      2021 + i,
				DebtToGDP: ratio,
				DebtUSD:   r.debt,
			})
		}
	}
	return NewCountryDataset(records)
}
