package service

import (
	"regexp"
	"strconv"
	"strings"

	"debt-assistant/domain"
)

var numberPattern = regexp.MustCompile(`\d+`)

// query carries one request through the rule chain: the raw text for the
// fallback delegate, the normalized text for matching, and the parameters
// already extracted from it.
type query struct {
	raw        string
	normalized string
	numbers    []string
	countries  []string
}

func (q *query) has(keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q.normalized, kw) {
			return true
		}
	}
	return false
}

// hasToken matches whole words only. Short triggers like "hi" would otherwise
// claim every message containing "this".
func (q *query) hasToken(keywords ...string) bool {
	for _, field := range strings.Fields(q.normalized) {
		for _, kw := range keywords {
			if field == kw {
				return true
			}
		}
	}
	return false
}

// years returns the numeric tokens that look like calendar years.
func (q *query) years() []int {
	var out []int
	for _, tok := range q.numbers {
		if len(tok) != 4 {
			continue
		}
		if year, err := strconv.Atoi(tok); err == nil {
			out = append(out, year)
		}
	}
	return out
}

// rule is one entry of the intent chain: a predicate and the handler invoked
// when it claims the query. The chain is tried in declaration order and the
// first match wins; overlapping keyword sets make that order load-bearing.
type rule struct {
	intent domain.Intent
	match  func(q *query) bool
	handle func(q *query) domain.ChatResponse
}

// rules builds the canonical chain. Payment keywords are checked before
// country names on purpose: "payment plan for United States debt 50 5 10"
// is a calculation request, not a country lookup.
func (s *ChatService) rules() []rule {
	return []rule{
		{
			intent: domain.IntentPaymentPlan,
			match: func(q *query) bool {
				return q.has("payment", "repay", "plan", "monthly")
			},
			handle: s.handlePaymentPlan,
		},
		{
			intent: domain.IntentCountryInfo,
			match: func(q *query) bool {
				if len(q.countries) == 0 {
					return false
				}
				// Leave comparison and history requests to the later rules.
				if q.has("compare") && len(q.countries) >= 2 {
					return false
				}
				if q.has("historical", "trend") {
					return false
				}
				return true
			},
			handle: s.handleCountryInfo,
		},
		{
			intent: domain.IntentComparison,
			match: func(q *query) bool {
				return q.has("compare") && len(q.countries) >= 2
			},
			handle: s.handleComparison,
		},
		{
			intent: domain.IntentHistorical,
			match: func(q *query) bool {
				return q.has("historical", "trend") && len(q.countries) >= 1
			},
			handle: s.handleHistorical,
		},
		{
			intent: domain.IntentGlobalStats,
			match: func(q *query) bool {
				return q.has("global", "total", "average", "highest", "lowest")
			},
			handle: s.handleAggregate,
		},
		{
			intent: domain.IntentInvestmentAdvice,
			match: func(q *query) bool {
				return q.has("invest", "portfolio")
			},
			handle: s.handleInvestment,
		},
		{
			intent: domain.IntentRetirementAdvice,
			match: func(q *query) bool {
				return q.has("retirement")
			},
			handle: s.handleRetirement,
		},
		{
			intent: domain.IntentTermDefinition,
			match: func(q *query) bool {
				return q.has(termPhrases()...)
			},
			handle: s.handleTermDefinition,
		},
		{
			intent: domain.IntentGreeting,
			match: func(q *query) bool {
				return q.hasToken("hello", "hi", "hey", "help")
			},
			handle: s.handleGreeting,
		},
	}
}

func termPhrases() []string {
	phrases := make([]string, len(financialTerms))
	for i, t := range financialTerms {
		phrases[i] = t.Term
	}
	return phrases
}

// newQuery normalizes the message and extracts numeric tokens and recognized
// country names. Countries come back in dataset order, mirroring the
// iteration order the dataset guarantees elsewhere.
func (s *ChatService) newQuery(message string) *query {
	q := &query{
		raw:        message,
		normalized: Normalize(message),
	}
	q.numbers = numberPattern.FindAllString(q.normalized, -1)
	if s.dataset != nil {
		for _, country := range s.dataset.Countries() {
			if strings.Contains(q.normalized, strings.ToLower(country)) {
				q.countries = append(q.countries, country)
			}
		}
	}
	return q
}
