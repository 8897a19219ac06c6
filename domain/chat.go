package domain

import "time"

// Intent is the classified purpose of a user query.
type Intent string

const (
	IntentGreeting           Intent = "greeting"
	IntentCapabilities       Intent = "capabilities"
	IntentPaymentPlan        Intent = "payment_plan"
	IntentPaymentPlanRequest Intent = "payment_plan_request"
	IntentCountryInfo        Intent = "country_info"
	IntentGlobalStats        Intent = "global_stats"
	IntentTopCountries       Intent = "top_countries"
	IntentComparison         Intent = "comparison"
	IntentHistorical         Intent = "historical"
	IntentInvestmentAdvice   Intent = "investment_advice"
	IntentRetirementAdvice   Intent = "retirement_advice"
	IntentTermDefinition     Intent = "term_definition"
	IntentFallback           Intent = "fallback"
	IntentError              Intent = "error"
)

// ChatResponse is the result of one pipeline invocation. Data carries the
// structured values interpolated into Message, so consumers never need to
// re-parse the text.
type ChatResponse struct {
	Type    Intent      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

type ChatLogEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	Message   string       `json:"message"`
	Response  ChatResponse `json:"response"`
	Status    string       `json:"status"`
}
