package adapters

import (
	"strings"

	"github.com/bid-tools/proposal-atlas/pkg/models/api"
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// MapProposalApiToDomain resolves the legacy field-name variants exactly
// once, here at the boundary. Everything past this point works with the
// strict domain schema.
func MapProposalApiToDomain(p api.Proposal) domain.ProposalRecord {
	sections := p.Sections
	if len(sections) == 0 {
		sections = p.Analysis
	}

	return domain.ProposalRecord{
		ID:              p.ID,
		Company:         firstNonEmpty(p.Company, p.CompanyName, p.Vendor),
		FileName:        firstNonEmpty(p.FileName, p.File),
		Pricing:         firstNonEmpty(p.Pricing, p.Budget, p.Cost),
		Timeline:        p.Timeline,
		TechStack:       firstNonEmpty(p.TechStack, p.Technologies),
		Narrative:       p.Narrative,
		Financials:      mapFinancials(p.Financials),
		ComplianceScore: clampScore(p.ComplianceScore),
		Sections:        mapSections(sections),
	}
}

func MapAnalyzeRequestApiToDomain(req api.AnalyzeRequest) []domain.ProposalRecord {
	records := make([]domain.ProposalRecord, 0, len(req.Proposals))
	for _, p := range req.Proposals {
		records = append(records, MapProposalApiToDomain(p))
	}
	return records
}

func mapFinancials(f *api.Financials) domain.Financials {
	if f == nil {
		return domain.Financials{}
	}

	out := domain.Financials{}
	for _, m := range f.Currencies {
		out.Mentions = append(out.Mentions, mapMention(m))
	}
	if f.TotalBudget != nil {
		tb := mapMention(*f.TotalBudget)
		out.TotalBudget = &tb
	}
	for _, l := range f.Breakdown {
		out.Breakdown = append(out.Breakdown, domain.CostItem{
			Label:  l.Label,
			Amount: l.Amount,
			Code:   domain.Code(strings.ToUpper(l.Currency)),
		})
	}
	return out
}

func mapMention(m api.CurrencyMention) domain.CurrencyAmount {
	return domain.CurrencyAmount{
		Code:         domain.Code(strings.ToUpper(m.Code)),
		Symbol:       m.Symbol,
		Name:         m.Name,
		Amount:       m.Amount,
		OriginalText: m.OriginalText,
		Position:     m.Position,
	}
}

func mapSections(in map[string]api.SectionAnalysis) map[string]domain.SectionAnalysis {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]domain.SectionAnalysis, len(in))
	for id, s := range in {
		out[id] = domain.SectionAnalysis{
			Score:           clampScore(s.Score),
			Findings:        s.Findings,
			Recommendations: s.Recommendations,
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
