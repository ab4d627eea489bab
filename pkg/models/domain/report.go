package domain

// RiskLevel is a three-tier classification derived solely from score
// thresholds. It is never set directly.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Recommendation is the final verdict derived from an overall score.
type Recommendation string

const (
	Accept            Recommendation = "accept"
	ConditionalAccept Recommendation = "conditional_accept"
	NeedsRevision     Recommendation = "needs_revision"
)

// RiskFromScore maps a [0,100] score onto a risk level. Boundary values
// select the higher tier: exactly 80 is low, exactly 60 is medium.
func RiskFromScore(score float64) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RecommendationFromScore is the single place the accept/conditional/revise
// thresholds live. Every surface that shows a final recommendation must go
// through it.
func RecommendationFromScore(score float64) Recommendation {
	switch {
	case score >= 80:
		return Accept
	case score >= 60:
		return ConditionalAccept
	default:
		return NeedsRevision
	}
}

// RankedResult is one proposal's position in the cross-proposal ordering.
// Rank is 1-based. ReferencePrice and PricePerPoint are nil when the price
// could not be resolved ("not specified"), never zero-coerced.
type RankedResult struct {
	Proposal       ProposalRecord
	Rank           int
	Score          float64
	Price          *CurrencyAmount
	ReferencePrice *float64
	PricePerPoint  *float64
	RiskLevel      RiskLevel
	Currencies     []Code
	Primary        *Code
}

// Distribution counts proposals per score bucket: Strong [80,100],
// Moderate [60,80), Weak [0,60). The three counts always sum to the number
// of proposals.
type Distribution struct {
	Strong   int
	Moderate int
	Weak     int
}

// Summary is the pure reduction over all RankedResults.
type Summary struct {
	Count        int
	AverageScore float64
	Best         *ProposalRef
	Distribution Distribution
}

// ProposalRef is a lightweight reference to a proposal inside report
// metadata.
type ProposalRef struct {
	ID      string
	Company string
	Score   float64
}

// Section is one dimension of a proposal evaluation in the canonical
// report. Estimated marks sections synthesized for missing AI output; a
// real AI-supplied score is never overwritten.
type Section struct {
	ID              string
	Title           string
	Score           float64
	Description     string
	KeyFindings     []string
	Recommendations []string
	RiskLevel       RiskLevel
	Estimated       bool
}

// CompetencyAxis is one spoke of the competency profile. Values are
// deterministic estimates derived from the overall score, flagged as such.
type CompetencyAxis struct {
	Name      string
	Value     float64
	Estimated bool
}

// Evaluation is the full per-proposal portion of a report, ordered by rank.
type Evaluation struct {
	Proposal       ProposalRef
	FileName       string
	Rank           int
	Score          float64
	RiskLevel      RiskLevel
	Recommendation Recommendation
	Price          *CurrencyAmount
	ReferencePrice *float64
	PricePerPoint  *float64
	Currencies     []Code
	Primary        *Code
	Sections       []Section
	Competency     []CompetencyAxis
}

// Report is the canonical, format-independent analysis result consumed by
// every export renderer. It is recomputed from scratch on every run and
// contains nothing non-deterministic.
type Report struct {
	Title        string
	Reference    Code
	Count        int
	AverageScore float64
	Best         *ProposalRef
	Distribution Distribution
	Evaluations  []Evaluation
}
