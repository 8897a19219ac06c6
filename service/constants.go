package service

const (
	MaxPrincipal   = 1_000_000_000.0 // 1 billion USD
	MaxAnnualRate  = 1000.0          // 1000% annual
	MaxPlanYears   = 50.0
	DefaultYears   = 10.0
	ThousandsScale = 1000.0 // payment queries give the principal in thousands

	// Monthly rates below this are treated as zero-interest plans; the
	// amortization denominator loses all precision there.
	NearZeroMonthlyRate = 1e-7

	TopCountriesCount = 5

	// Fallback generation bound, tokens.
	MaxGeneratedTokens = 150
)
