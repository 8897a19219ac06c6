package domain

type InvestmentStrategy struct {
	Tier           string   `json:"tier"`
	Description    string   `json:"description"`
	Options        []string `json:"options"`
	RiskLevel      string   `json:"risk_level"`
	ExpectedReturn string   `json:"expected_return"`
}

type RetirementAdvice struct {
	Tier            string   `json:"tier"`
	Strategy        string   `json:"strategy"`
	Recommendations []string `json:"recommendations"`
	RiskTolerance   string   `json:"risk_tolerance"`
	TimeHorizon     string   `json:"time_horizon"`
}

type TermDefinition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}
