package metrics

import (
	"sort"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// Scored is one proposal with its price already resolved and normalized.
type Scored struct {
	Proposal       domain.ProposalRecord
	Price          *domain.CurrencyAmount
	ReferencePrice *float64
	Currencies     []domain.Code
	Primary        *domain.Code
}

// Aggregator derives per-proposal metrics and cross-proposal statistics.
// Summarize is a pure reduction over the full ranked set and must only run
// once every RankedResult is available.
type Aggregator interface {
	Rank(items []Scored) []domain.RankedResult
	Summarize(ranked []domain.RankedResult) domain.Summary
}

type aggregator struct{}

func NewAggregator() Aggregator {
	return &aggregator{}
}

// Rank orders proposals by compliance score descending. Ties keep the
// original input order (stable sort) so repeated runs over the same input
// produce the same ranking.
func (a *aggregator) Rank(items []Scored) []domain.RankedResult {
	ranked := make([]domain.RankedResult, 0, len(items))
	for _, it := range items {
		score := it.Proposal.ComplianceScore
		ranked = append(ranked, domain.RankedResult{
			Proposal:       it.Proposal,
			Score:          score,
			Price:          it.Price,
			ReferencePrice: it.ReferencePrice,
			PricePerPoint:  pricePerPoint(it.ReferencePrice, score),
			RiskLevel:      domain.RiskFromScore(score),
			Currencies:     it.Currencies,
			Primary:        it.Primary,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func (a *aggregator) Summarize(ranked []domain.RankedResult) domain.Summary {
	s := domain.Summary{Count: len(ranked)}
	if len(ranked) == 0 {
		return s
	}

	var total float64
	for _, r := range ranked {
		total += r.Score
		switch domain.RiskFromScore(r.Score) {
		case domain.RiskLow:
			s.Distribution.Strong++
		case domain.RiskMedium:
			s.Distribution.Moderate++
		default:
			s.Distribution.Weak++
		}
	}
	s.AverageScore = total / float64(len(ranked))

	best := ranked[0]
	s.Best = &domain.ProposalRef{
		ID:      best.Proposal.ID,
		Company: best.Proposal.Company,
		Score:   best.Score,
	}
	return s
}

// pricePerPoint guards the ratio: no price or a zero score means
// "not applicable", never Inf or NaN.
func pricePerPoint(price *float64, score float64) *float64 {
	if price == nil || score <= 0 {
		return nil
	}
	v := *price / score
	return &v
}
