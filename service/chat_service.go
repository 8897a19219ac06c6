package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"debt-assistant/domain"
	"debt-assistant/repository"
)

// ChatService runs the query pipeline: normalize, classify against the rule
// chain, compute, and render a ChatResponse. The dataset may be nil, in which
// case every data-dependent intent degrades to an apology while the rest of
// the assistant keeps working.
type ChatService struct {
	dataset   *repository.CountryDataset
	cache     repository.CacheRepository
	generator Generator
}

// NewChatService creates a ChatService. dataset and generator may be nil;
// cache must not be.
func NewChatService(
	dataset *repository.CountryDataset,
	cache repository.CacheRepository,
	generator Generator,
) *ChatService {
	return &ChatService{dataset: dataset, cache: cache, generator: generator}
}

// Process answers one message. It never returns an error: every failure mode
// is converted into an error-typed response.
func (s *ChatService) Process(message string) domain.ChatResponse {
	q := s.newQuery(message)

	cacheKey := "chat:" + q.normalized
	if cached, ok := s.cache.Get(cacheKey); ok {
		var resp domain.ChatResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp
		}
	}

	var resp domain.ChatResponse
	matched := false
	for _, r := range s.rules() {
		if r.match(q) {
			resp = r.handle(q)
			matched = true
			break
		}
	}
	if !matched {
		resp = s.handleFallback(q)
	}

	// Generated replies are not deterministic; everything else is.
	if resp.Type != domain.IntentFallback {
		if encoded, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(cacheKey, string(encoded)); err != nil {
				log.Printf("Warning: failed to cache response: %v", err)
			}
		}
	}
	return resp
}

func (s *ChatService) handlePaymentPlan(q *query) domain.ChatResponse {
	if len(q.numbers) < 2 {
		return domain.ChatResponse{
			Type:    domain.IntentPaymentPlanRequest,
			Message: paymentInstructionMessages[0],
		}
	}

	principal, err0 := strconv.ParseFloat(q.numbers[0], 64)
	rate, err1 := strconv.ParseFloat(q.numbers[1], 64)
	if err0 != nil || err1 != nil {
		return errorResponse(invalidNumbersMessage)
	}
	principal *= ThousandsScale
	years := DefaultYears
	if len(q.numbers) > 2 {
		if y, err := strconv.ParseFloat(q.numbers[2], 64); err == nil {
			years = y
		}
	}

	plan, err := AmortizedPayment(principal, rate, years)
	if err != nil {
		return errorResponse(invalidNumbersMessage)
	}

	return domain.ChatResponse{
		Type: domain.IntentPaymentPlan,
		Data: plan,
		Message: "Here's your payment plan:\n\n" +
			fmt.Sprintf("💰 Monthly Payment: $%.2f\n", plan.MonthlyPayment) +
			fmt.Sprintf("💵 Total Interest: $%.2f\n", plan.TotalInterest) +
			fmt.Sprintf("💸 Total Payment: $%.2f\n", plan.TotalPayment) +
			fmt.Sprintf("⏱️ Term: %s years", formatNumber(plan.Years)),
	}
}

func (s *ChatService) handleCountryInfo(q *query) domain.ChatResponse {
	if s.dataset == nil {
		return errorResponse(dataUnavailableMessage)
	}
	name := q.countries[0]
	record, ok := s.dataset.LookupCountry(name)
	if !ok {
		return errorResponse(dataUnavailableMessage)
	}

	info := domain.CountryInfo{
		Name:             record.Name,
		Year:             record.Year,
		DebtToGDP:        record.DebtToGDP,
		DebtUSD:          record.DebtUSD,
		DebtUSDFormatted: formatUSD(record.DebtUSD),
		Trend:            HistoryTrend(s.dataset.RatioSeries(name)),
	}
	return domain.ChatResponse{
		Type: domain.IntentCountryInfo,
		Data: info,
		Message: fmt.Sprintf("Here's the debt information for %s:\n\n", info.Name) +
			fmt.Sprintf("📊 Debt-to-GDP Ratio: %s%% (as of %d)\n", formatNumber(info.DebtToGDP), info.Year) +
			fmt.Sprintf("💰 Total Debt: %s\n", info.DebtUSDFormatted) +
			fmt.Sprintf("📈 Trend: %s\n\n", info.Trend) +
			"Would you like to compare this with other countries or get historical data?",
	}
}

func (s *ChatService) handleComparison(q *query) domain.ChatResponse {
	if s.dataset == nil {
		return errorResponse(dataUnavailableMessage)
	}
	var entries []domain.ComparisonEntry
	var b strings.Builder
	b.WriteString("Comparison of selected countries:\n\n")
	for _, name := range q.countries {
		record, ok := s.dataset.LookupCountry(name)
		if !ok {
			continue
		}
		entry := domain.ComparisonEntry{
			Country:   record.Name,
			DebtToGDP: record.DebtToGDP,
			DebtUSD:   record.DebtUSD,
			Trend:     HistoryTrend(s.dataset.RatioSeries(name)),
		}
		entries = append(entries, entry)
		b.WriteString(fmt.Sprintf("• %s:\n", entry.Country))
		b.WriteString(fmt.Sprintf("  - Debt-to-GDP: %s%%\n", formatNumber(entry.DebtToGDP)))
		b.WriteString(fmt.Sprintf("  - Total Debt: %s\n", formatUSD(entry.DebtUSD)))
		b.WriteString(fmt.Sprintf("  - Trend: %s\n\n", entry.Trend))
	}
	b.WriteString("Would you like to compare other countries?")
	return domain.ChatResponse{
		Type:    domain.IntentComparison,
		Data:    entries,
		Message: b.String(),
	}
}

func (s *ChatService) handleHistorical(q *query) domain.ChatResponse {
	if s.dataset == nil {
		return errorResponse(dataUnavailableMessage)
	}
	name := q.countries[0]

	var startYear, endYear int
	if years := q.years(); len(years) >= 2 {
		startYear, endYear = years[0], years[1]
	} else if len(years) == 1 {
		startYear = years[0]
	}

	points := s.dataset.HistoricalSeries(name, startYear, endYear)
	if len(points) == 0 {
		return errorResponse(fmt.Sprintf("I don't have historical debt data for %s in that range.", name))
	}

	ratios := make([]float64, len(points))
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Historical Debt Data for %s:\n\n", name))
	for i, p := range points {
		ratios[i] = p.DebtToGDP
		b.WriteString(fmt.Sprintf("• %d: %s%% (%s)\n", p.Year, formatNumber(p.DebtToGDP), formatUSD(p.DebtUSD)))
	}
	movement := SimpleTrend(ratios)
	b.WriteString(fmt.Sprintf("\n📈 Most recent change: %s\n", movement))
	b.WriteString("\nWould you like to analyze this trend further?")

	return domain.ChatResponse{
		Type: domain.IntentHistorical,
		Data: domain.HistoricalData{
			Country:        name,
			Points:         points,
			LatestMovement: movement,
		},
		Message: b.String(),
	}
}

func (s *ChatService) handleAggregate(q *query) domain.ChatResponse {
	if s.dataset == nil {
		return errorResponse(dataUnavailableMessage)
	}

	switch {
	case q.has("highest"):
		return s.topCountriesResponse(false)
	case q.has("lowest"):
		return s.topCountriesResponse(true)
	}

	stats, err := GlobalStats(s.dataset.Latest())
	if err != nil {
		return errorResponse(dataUnavailableMessage)
	}
	return domain.ChatResponse{
		Type: domain.IntentGlobalStats,
		Data: stats,
		Message: "Global Debt Statistics:\n\n" +
			fmt.Sprintf("🌍 Total Global Debt: %s\n", formatUSD(stats.TotalDebtUSD)) +
			fmt.Sprintf("📊 Average Debt-to-GDP: %.2f%%\n", stats.AvgDebtToGDP) +
			fmt.Sprintf("⬆️ Highest Debt: %s (%s%%)\n", stats.Highest.Country, formatNumber(stats.Highest.Ratio)) +
			fmt.Sprintf("⬇️ Lowest Debt: %s (%s%%)", stats.Lowest.Country, formatNumber(stats.Lowest.Ratio)),
	}
}

func (s *ChatService) topCountriesResponse(ascending bool) domain.ChatResponse {
	ranked := s.dataset.TopN(repository.MetricDebtToGDP, TopCountriesCount, ascending)

	heading := "Countries with highest debt-to-GDP ratios:\n\n"
	if ascending {
		heading = "Countries with lowest debt-to-GDP ratios:\n\n"
	}
	var b strings.Builder
	b.WriteString(heading)
	for _, r := range ranked {
		b.WriteString(fmt.Sprintf("• %s: %s%%\n", r.Name, formatNumber(r.DebtToGDP)))
	}
	b.WriteString("\nWould you like more details about any of these countries?")

	return domain.ChatResponse{
		Type:    domain.IntentTopCountries,
		Data:    ranked,
		Message: b.String(),
	}
}

func (s *ChatService) handleInvestment(q *query) domain.ChatResponse {
	tier := "balanced"
	if q.has("conservative") {
		tier = "conservative"
	} else if q.has("aggressive") {
		tier = "aggressive"
	}
	strategy := investmentStrategies[tier]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here's information about %s:\n\n", strategy.Description))
	b.WriteString(fmt.Sprintf("Risk Level: %s\n", strategy.RiskLevel))
	b.WriteString(fmt.Sprintf("Expected Return: %s\n\n", strategy.ExpectedReturn))
	b.WriteString("Investment Options:\n")
	for _, option := range strategy.Options {
		b.WriteString(fmt.Sprintf("- %s\n", option))
	}
	b.WriteString("\nWould you like more specific advice about any of these options?")

	return domain.ChatResponse{
		Type:    domain.IntentInvestmentAdvice,
		Data:    strategy,
		Message: b.String(),
	}
}

func (s *ChatService) handleRetirement(q *query) domain.ChatResponse {
	var tier string
	switch {
	case q.has("young"):
		tier = "young"
	case q.has("middle"):
		tier = "middle"
	case q.has("near"):
		tier = "near"
	default:
		return domain.ChatResponse{
			Type:    domain.IntentRetirementAdvice,
			Message: retirementPrompt,
		}
	}
	advice := retirementAdvice[tier]

	var b strings.Builder
	b.WriteString("Retirement Planning Advice:\n\n")
	b.WriteString(fmt.Sprintf("Strategy: %s\n", advice.Strategy))
	b.WriteString(fmt.Sprintf("Risk Tolerance: %s\n", advice.RiskTolerance))
	b.WriteString(fmt.Sprintf("Time Horizon: %s\n\n", advice.TimeHorizon))
	b.WriteString("Recommendations:\n")
	for _, rec := range advice.Recommendations {
		b.WriteString(fmt.Sprintf("- %s\n", rec))
	}
	b.WriteString("\nWould you like more detailed information about any of these recommendations?")

	return domain.ChatResponse{
		Type:    domain.IntentRetirementAdvice,
		Data:    advice,
		Message: b.String(),
	}
}

func (s *ChatService) handleTermDefinition(q *query) domain.ChatResponse {
	for _, term := range financialTerms {
		if strings.Contains(q.normalized, term.Term) {
			return domain.ChatResponse{
				Type: domain.IntentTermDefinition,
				Data: term,
				Message: fmt.Sprintf("Definition of %s:\n\n%s\n\nWould you like to know more about related concepts?",
					term.Term, term.Definition),
			}
		}
	}
	return errorResponse(errorMessages[0])
}

func (s *ChatService) handleGreeting(q *query) domain.ChatResponse {
	if q.hasToken("hello", "hi", "hey") {
		return domain.ChatResponse{
			Type:    domain.IntentGreeting,
			Message: greetingMessages[0],
		}
	}
	return domain.ChatResponse{
		Type:    domain.IntentCapabilities,
		Message: capabilityMessages[0],
	}
}

// handleFallback forwards the raw, un-normalized message to the generation
// collaborator. Any failure becomes an apology, never a raw error.
func (s *ChatService) handleFallback(q *query) domain.ChatResponse {
	if s.generator == nil || !s.generator.Enabled() {
		return errorResponse(errorMessages[0])
	}
	text, err := s.generator.Generate(q.raw, MaxGeneratedTokens)
	if err != nil {
		log.Printf("Warning: fallback generation failed: %v", err)
		return errorResponse(collaboratorFailedMsg)
	}
	return domain.ChatResponse{
		Type:    domain.IntentFallback,
		Message: text,
	}
}

func errorResponse(message string) domain.ChatResponse {
	return domain.ChatResponse{
		Type:    domain.IntentError,
		Message: message,
	}
}

// formatUSD renders a debt magnitude; values of a trillion dollars and up are
// shown in trillions.
func formatUSD(v float64) string {
	if v >= 1e12 {
		return fmt.Sprintf("$%.2f trillion", v/1e12)
	}
	return fmt.Sprintf("$%.2f", v)
}

// formatNumber trims trailing zeros: 123.40 prints as 123.4, 10 as 10.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
