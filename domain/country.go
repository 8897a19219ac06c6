package domain

// CountryDebtRecord is one country/year row of the debt dataset.
type CountryDebtRecord struct {
	Name      string  `json:"name"`
	Year      int     `json:"year"`
	DebtToGDP float64 `json:"debt_to_gdp"`
	DebtUSD   float64 `json:"debt_usd"`
}

type CountryInfo struct {
	Name             string  `json:"name"`
	Year             int     `json:"year"`
	DebtToGDP        float64 `json:"debt_to_gdp"`
	DebtUSD          float64 `json:"debt_usd"`
	DebtUSDFormatted string  `json:"debt_usd_formatted"`
	Trend            Trend   `json:"trend"`
}

type CountryRatio struct {
	Country string  `json:"country"`
	Ratio   float64 `json:"ratio"`
}

type GlobalStats struct {
	TotalDebtUSD float64      `json:"total_debt_usd"`
	AvgDebtToGDP float64      `json:"avg_debt_to_gdp"`
	Highest      CountryRatio `json:"highest"`
	Lowest       CountryRatio `json:"lowest"`
}

type ComparisonEntry struct {
	Country   string  `json:"country"`
	DebtToGDP float64 `json:"debt_to_gdp"`
	DebtUSD   float64 `json:"debt_usd"`
	Trend     Trend   `json:"trend"`
}

type HistoricalData struct {
	Country        string            `json:"country"`
	Points         []HistoricalPoint `json:"points"`
	LatestMovement Trend             `json:"latest_movement"`
}

type HistoricalPoint struct {
	Year      int     `json:"year"`
	DebtToGDP float64 `json:"debt_to_gdp"`
	DebtUSD   float64 `json:"debt_usd"`
}

// Trend classifies the direction of a debt-to-GDP series.
type Trend string

const (
	TrendIncreasing       Trend = "Increasing"
	TrendDecreasing       Trend = "Decreasing"
	TrendStable           Trend = "Stable"
	TrendFluctuating      Trend = "Fluctuating"
	TrendInsufficientData Trend = "Insufficient data"
)
