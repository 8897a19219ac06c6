package service

import "debt-assistant/domain"

// Message banks for the non-computed intents. The first entry of each bank is
// the canonical reply; the rest document the original phrasing variants.
var (
	greetingMessages = []string{
		"Hello! 👋 I'm your debt management assistant. How can I help you today?",
		"Hi there! I'm here to help with debt management. What would you like to know?",
		"Welcome! I can help you understand global debt and create payment plans. What would you like to know?",
	}

	capabilityMessages = []string{
		"I can help you with:\n1. 📊 Global debt information\n2. 💰 Payment planning\n3. 🌍 Country-specific data\n4. 📈 Financial insights",
		"I specialize in:\n- Debt analysis\n- Payment planning\n- Country comparisons\n- Financial advice",
	}

	paymentInstructionMessages = []string{
		"I can help create a payment plan. Please provide:\n1. Total debt amount\n2. Interest rate\n3. Repayment period",
		"For a payment plan, I need:\n- Debt amount\n- Interest rate\n- Years to repay",
	}

	errorMessages = []string{
		"I'm not sure I understand. Could you rephrase that?",
		"I need more information to help with that. Could you be more specific?",
		"I'm not sure about that. Could you ask something else?",
	}
)

const (
	dataUnavailableMessage = "I'm sorry, but I'm currently unable to access the debt data. Please try again later."
	invalidNumbersMessage  = "Please provide valid numbers for the payment plan calculation."
	collaboratorFailedMsg  = "I'm sorry, I encountered an error processing your request. Please try again."
)

var investmentStrategies = map[string]domain.InvestmentStrategy{
	"conservative": {
		Tier:        "conservative",
		Description: "Low-risk investments focusing on capital preservation",
		Options: []string{
			"Government bonds (Treasury securities)",
			"High-grade corporate bonds",
			"Dividend-paying blue-chip stocks",
			"Money market funds",
			"Certificates of Deposit (CDs)",
		},
		RiskLevel:      "Low",
		ExpectedReturn: "2-4% annually",
	},
	"balanced": {
		Tier:        "balanced",
		Description: "Moderate-risk investments balancing growth and income",
		Options: []string{
			"60/40 stocks/bonds portfolio",
			"Index funds (S&P 500, Total Market)",
			"REITs (Real Estate Investment Trusts)",
			"Corporate bond funds",
			"Dividend growth stocks",
		},
		RiskLevel:      "Medium",
		ExpectedReturn: "4-7% annually",
	},
	"aggressive": {
		Tier:        "aggressive",
		Description: "High-risk investments focusing on growth",
		Options: []string{
			"Growth stocks (Tech, Biotech)",
			"Emerging markets funds",
			"Sector-specific ETFs",
			"Small-cap stocks",
			"Cryptocurrencies (with caution)",
		},
		RiskLevel:      "High",
		ExpectedReturn: "7-12% annually",
	},
}

var retirementAdvice = map[string]domain.RetirementAdvice{
	"young": {
		Tier:     "young",
		Strategy: "Focus on growth investments with higher risk tolerance",
		Recommendations: []string{
			"Maximize 401(k) contributions",
			"Consider Roth IRA for tax-free growth",
			"Invest in growth-oriented mutual funds",
			"Maintain emergency fund of 3-6 months expenses",
			"Consider real estate investments",
		},
		RiskTolerance: "High",
		TimeHorizon:   "30+ years",
	},
	"middle": {
		Tier:     "middle",
		Strategy: "Balance between growth and income investments",
		Recommendations: []string{
			"Continue maxing out retirement accounts",
			"Diversify into income-generating assets",
			"Consider target-date funds",
			"Review and adjust asset allocation annually",
			"Plan for healthcare costs",
		},
		RiskTolerance: "Medium",
		TimeHorizon:   "15-30 years",
	},
	"near": {
		Tier:     "near",
		Strategy: "Focus on capital preservation and income generation",
		Recommendations: []string{
			"Shift to conservative investments",
			"Consider annuities for guaranteed income",
			"Maintain cash reserves",
			"Review Social Security claiming strategy",
			"Plan for required minimum distributions",
		},
		RiskTolerance: "Low",
		TimeHorizon:   "0-15 years",
	},
}

const retirementPrompt = "It's important to start planning early. Would you like specific advice for your age group?"

// financialTerms maps glossary phrases, as they appear in normalized user
// text, to definitions. Longer phrases come first so a query mentioning
// "compound interest" is not claimed by a shorter overlapping term.
var financialTerms = []domain.TermDefinition{
	{Term: "debt to gdp", Definition: "The ratio of a country's debt to its Gross Domestic Product, indicating its ability to pay back debts"},
	{Term: "compound interest", Definition: "Interest earned on both the initial principal and accumulated interest"},
	{Term: "interest rate", Definition: "The cost of borrowing money or the return on invested funds"},
	{Term: "asset allocation", Definition: "The distribution of investments across different asset classes"},
	{Term: "risk tolerance", Definition: "An investor's ability to endure market volatility"},
	{Term: "diversification", Definition: "Spreading investments across different assets to reduce risk"},
	{Term: "inflation", Definition: "The rate at which prices for goods and services rise, reducing purchasing power"},
	{Term: "portfolio", Definition: "A collection of financial investments like stocks, bonds, and cash"},
}
