package domain

// ProposalRecord is one commercial offer under evaluation. Records arrive
// from the external analysis service already scored; the pipeline never
// mutates them.
type ProposalRecord struct {
	ID        string
	Company   string
	FileName  string
	Pricing   string // free-text pricing description
	Timeline  string
	TechStack string
	Narrative map[string]string // section-id -> free text

	Financials      Financials
	ComplianceScore float64 // [0,100], supplied externally

	// Sections holds the per-dimension AI analysis, keyed by dimension id.
	Sections map[string]SectionAnalysis
}

// Financials carries the structured monetary data detected for a proposal.
// TotalBudget, when present, takes precedence over both the cost breakdown
// and any amount parsed from free text.
type Financials struct {
	Mentions    []CurrencyAmount
	TotalBudget *CurrencyAmount
	Breakdown   []CostItem
}

// CostItem is one line of a structured cost breakdown.
type CostItem struct {
	Label  string
	Amount float64
	Code   Code
}

// SectionAnalysis is the raw per-dimension output of the external AI
// service: a score plus findings and recommendation text.
type SectionAnalysis struct {
	Score           float64
	Findings        []string
	Recommendations []string
}
