package adapters

import (
	"github.com/bid-tools/proposal-atlas/pkg/models/api"
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
)

func MapReportDomainToApi(r domain.Report) api.Report {
	out := api.Report{
		Title:        r.Title,
		Reference:    string(r.Reference),
		Count:        r.Count,
		AverageScore: r.AverageScore,
		Distribution: api.Distribution{
			Strong:   r.Distribution.Strong,
			Moderate: r.Distribution.Moderate,
			Weak:     r.Distribution.Weak,
		},
		Evaluations: make([]api.Evaluation, 0, len(r.Evaluations)),
	}
	if r.Best != nil {
		out.Best = &api.ProposalRef{ID: r.Best.ID, Company: r.Best.Company, Score: r.Best.Score}
	}
	for _, ev := range r.Evaluations {
		out.Evaluations = append(out.Evaluations, mapEvaluation(ev))
	}
	return out
}

func mapEvaluation(ev domain.Evaluation) api.Evaluation {
	out := api.Evaluation{
		Proposal:       api.ProposalRef{ID: ev.Proposal.ID, Company: ev.Proposal.Company, Score: ev.Proposal.Score},
		FileName:       ev.FileName,
		Rank:           ev.Rank,
		Score:          ev.Score,
		RiskLevel:      string(ev.RiskLevel),
		Recommendation: string(ev.Recommendation),
		PriceDisplay:   currency.FormatOptional(ev.Price),
		ReferencePrice: ev.ReferencePrice,
		PricePerPoint:  ev.PricePerPoint,
		Sections:       make([]api.Section, 0, len(ev.Sections)),
		Competency:     make([]api.CompetencyAxis, 0, len(ev.Competency)),
	}

	if ev.Price != nil {
		out.Price = &api.Money{
			Code:    string(ev.Price.Code),
			Symbol:  ev.Price.Symbol,
			Amount:  ev.Price.Amount,
			Display: currency.Format(ev.Price.Code, ev.Price.Amount),
		}
	}
	for _, c := range ev.Currencies {
		out.Currencies = append(out.Currencies, string(c))
	}
	if ev.Primary != nil {
		out.Primary = string(*ev.Primary)
	}
	for _, s := range ev.Sections {
		out.Sections = append(out.Sections, api.Section{
			ID:              s.ID,
			Title:           s.Title,
			Score:           s.Score,
			Description:     s.Description,
			KeyFindings:     s.KeyFindings,
			Recommendations: s.Recommendations,
			RiskLevel:       string(s.RiskLevel),
			Estimated:       s.Estimated,
		})
	}
	for _, c := range ev.Competency {
		out.Competency = append(out.Competency, api.CompetencyAxis{
			Name:      c.Name,
			Value:     c.Value,
			Estimated: c.Estimated,
		})
	}
	return out
}
