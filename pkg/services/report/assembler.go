package report

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

const reportTitle = "Commercial Proposal Evaluation"

// dimension is one canonical analysis axis every evaluation must cover.
// Offset is the fixed delta applied to the overall score when the external
// AI service supplied no section for the axis; the result is clamped to
// [0,100]. Synthesized scores are estimates for incomplete AI output, not
// a scoring method, and never replace a real AI score.
type dimension struct {
	id          string
	title       string
	offset      float64
	description string
}

var dimensions = []dimension{
	{"technical_compliance", "Technical Compliance", 0,
		"Estimated from the overall compliance score; no dedicated analysis was provided."},
	{"team_expertise", "Team Expertise", 5,
		"Estimated from the overall compliance score; no dedicated analysis was provided."},
	{"timeline_realism", "Timeline Realism", -5,
		"Estimated from the overall compliance score; no dedicated analysis was provided."},
	{"cost_effectiveness", "Cost Effectiveness", -3,
		"Estimated from the overall compliance score; no dedicated analysis was provided."},
	{"risk_management", "Risk Management", -8,
		"Estimated from the overall compliance score; no dedicated analysis was provided."},
}

// competencyAxes drive the competency profile. Values are deterministic
// estimates (overall score plus a fixed delta, clamped), always marked as
// estimated since there is no measured data behind them.
var competencyAxes = []struct {
	name  string
	delta float64
}{
	{"Technical", 0},
	{"Experience", 3},
	{"Management", -4},
	{"Communication", -7},
	{"Innovation", -10},
}

// Assembler combines AI-supplied section analyses with aggregated metrics
// into one canonical, format-independent report. Assembly is deterministic:
// identical input yields byte-identical serialized output.
type Assembler interface {
	Assemble(ctx context.Context, ranked []domain.RankedResult, summary domain.Summary) domain.Report
}

type assembler struct {
	reference domain.Code
}

func NewAssembler(reference domain.Code) Assembler {
	return &assembler{reference: reference}
}

func (a *assembler) Assemble(
	ctx context.Context,
	ranked []domain.RankedResult,
	summary domain.Summary,
) domain.Report {
	logger := zerolog.Ctx(ctx)

	evaluations := make([]domain.Evaluation, 0, len(ranked))
	for _, r := range ranked {
		evaluations = append(evaluations, domain.Evaluation{
			Proposal: domain.ProposalRef{
				ID:      r.Proposal.ID,
				Company: r.Proposal.Company,
				Score:   r.Score,
			},
			FileName:       r.Proposal.FileName,
			Rank:           r.Rank,
			Score:          r.Score,
			RiskLevel:      r.RiskLevel,
			Recommendation: domain.RecommendationFromScore(r.Score),
			Price:          r.Price,
			ReferencePrice: r.ReferencePrice,
			PricePerPoint:  r.PricePerPoint,
			Currencies:     r.Currencies,
			Primary:        r.Primary,
			Sections:       a.sections(logger, r.Proposal),
			Competency:     competency(r.Score),
		})
	}

	return domain.Report{
		Title:        reportTitle,
		Reference:    a.reference,
		Count:        summary.Count,
		AverageScore: summary.AverageScore,
		Best:         summary.Best,
		Distribution: summary.Distribution,
		Evaluations:  evaluations,
	}
}

// sections maps every AI-supplied section verbatim, recomputing only the
// section-level risk from that section's own score, and synthesizes a
// default for each canonical dimension the AI output is missing. Section
// risk is independent of the proposal-level risk level.
func (a *assembler) sections(logger *zerolog.Logger, p domain.ProposalRecord) []domain.Section {
	out := make([]domain.Section, 0, len(dimensions))
	used := make(map[string]bool, len(p.Sections))

	for _, d := range dimensions {
		if sa, ok := p.Sections[d.id]; ok {
			used[d.id] = true
			out = append(out, fromAnalysis(d.id, d.title, sa))
			continue
		}

		score := clamp(p.ComplianceScore + d.offset)
		logger.Info().
			Str("proposal", p.ID).
			Str("dimension", d.id).
			Float64("estimate", score).
			Msg("analysis section missing, synthesized default")

		out = append(out, domain.Section{
			ID:          d.id,
			Title:       d.title,
			Score:       score,
			Description: d.description,
			RiskLevel:   domain.RiskFromScore(score),
			Estimated:   true,
		})
	}

	// AI sections outside the canonical dimension list still flow through,
	// in sorted id order to keep assembly deterministic.
	extra := make([]string, 0)
	for id := range p.Sections {
		if !used[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		out = append(out, fromAnalysis(id, id, p.Sections[id]))
	}

	return out
}

func fromAnalysis(id, title string, sa domain.SectionAnalysis) domain.Section {
	return domain.Section{
		ID:              id,
		Title:           title,
		Score:           sa.Score,
		KeyFindings:     sa.Findings,
		Recommendations: sa.Recommendations,
		RiskLevel:       domain.RiskFromScore(sa.Score),
	}
}

func competency(overall float64) []domain.CompetencyAxis {
	axes := make([]domain.CompetencyAxis, 0, len(competencyAxes))
	for _, ax := range competencyAxes {
		axes = append(axes, domain.CompetencyAxis{
			Name:      ax.name,
			Value:     clamp(overall + ax.delta),
			Estimated: true,
		})
	}
	return axes
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
