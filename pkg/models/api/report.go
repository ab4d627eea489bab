package api

// Report is the canonical report as serialized for clients and export
// adapters. Field order is fixed so identical input re-serializes to
// identical bytes.
type Report struct {
	Title        string       `json:"title"`
	Reference    string       `json:"reference_currency"`
	Count        int          `json:"proposal_count"`
	AverageScore float64      `json:"average_score"`
	Best         *ProposalRef `json:"best,omitempty"`
	Distribution Distribution `json:"distribution"`
	Evaluations  []Evaluation `json:"evaluations"`
}

type ProposalRef struct {
	ID      string  `json:"id"`
	Company string  `json:"company"`
	Score   float64 `json:"score"`
}

type Distribution struct {
	Strong   int `json:"strong"`
	Moderate int `json:"moderate"`
	Weak     int `json:"weak"`
}

type Evaluation struct {
	Proposal       ProposalRef      `json:"proposal"`
	FileName       string           `json:"file_name,omitempty"`
	Rank           int              `json:"rank"`
	Score          float64          `json:"score"`
	RiskLevel      string           `json:"risk_level"`
	Recommendation string           `json:"recommendation"`
	Price          *Money           `json:"price,omitempty"`
	PriceDisplay   string           `json:"price_display"`
	ReferencePrice *float64         `json:"reference_price,omitempty"`
	PricePerPoint  *float64         `json:"price_per_point,omitempty"`
	Currencies     []string         `json:"currencies,omitempty"`
	Primary        string           `json:"primary_currency,omitempty"`
	Sections       []Section        `json:"sections"`
	Competency     []CompetencyAxis `json:"competency_profile"`
}

type Money struct {
	Code    string  `json:"code"`
	Symbol  string  `json:"symbol,omitempty"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

type Section struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Score           float64  `json:"score"`
	Description     string   `json:"description,omitempty"`
	KeyFindings     []string `json:"key_findings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	RiskLevel       string   `json:"risk_level"`
	Estimated       bool     `json:"estimated,omitempty"`
}

type CompetencyAxis struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Estimated bool    `json:"estimated"`
}
