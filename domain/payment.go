package domain

type PaymentPlanInput struct {
	Principal     float64
	AnnualRatePct float64
	Years         float64
}

type PaymentPlanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayment   float64 `json:"total_payment"`
	Years          float64 `json:"years"`
}
