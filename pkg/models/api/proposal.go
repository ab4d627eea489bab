package api

// AnalyzeRequest is the inbound payload of the analysis endpoint: one
// record per proposal, as produced by the external AI analysis service.
type AnalyzeRequest struct {
	Title     string     `json:"title,omitempty"`
	Proposals []Proposal `json:"proposals"`
}

// Proposal accepts the legacy field-name variants still emitted by older
// clients (company/companyName/vendor, pricing/budget/cost,
// techStack/technologies, sections/analysis). The variants are resolved
// once, in the boundary adapter; business logic only ever sees the strict
// domain schema.
type Proposal struct {
	ID          string `json:"id"`
	Company     string `json:"company,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	File        string `json:"file,omitempty"`

	Pricing string `json:"pricing,omitempty"`
	Budget  string `json:"budget,omitempty"`
	Cost    string `json:"cost,omitempty"`

	Timeline     string `json:"timeline,omitempty"`
	TechStack    string `json:"techStack,omitempty"`
	Technologies string `json:"technologies,omitempty"`

	Narrative map[string]string `json:"narrative,omitempty"`

	Financials      *Financials `json:"financials,omitempty"`
	ComplianceScore float64     `json:"complianceScore"`

	Sections map[string]SectionAnalysis `json:"sections,omitempty"`
	Analysis map[string]SectionAnalysis `json:"analysis,omitempty"`
}

type Financials struct {
	Currencies  []CurrencyMention `json:"currencies,omitempty"`
	TotalBudget *CurrencyMention  `json:"totalBudget,omitempty"`
	Breakdown   []CostLine        `json:"breakdown,omitempty"`
}

type CurrencyMention struct {
	Code         string  `json:"code"`
	Symbol       string  `json:"symbol,omitempty"`
	Name         string  `json:"name,omitempty"`
	Amount       float64 `json:"amount"`
	OriginalText string  `json:"originalText,omitempty"`
	Position     int     `json:"position,omitempty"`
}

type CostLine struct {
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type SectionAnalysis struct {
	Score           float64  `json:"score"`
	Findings        []string `json:"findings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}
