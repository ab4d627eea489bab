package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
	"github.com/bid-tools/proposal-atlas/pkg/services/extract"
	"github.com/bid-tools/proposal-atlas/pkg/services/metrics"
	"github.com/bid-tools/proposal-atlas/pkg/services/report"
)

// Analyzer runs the full evaluation pipeline: amount extraction, currency
// normalization, metric aggregation, report assembly. Every stage is pure;
// re-running on the same input produces the same report.
type Analyzer interface {
	Analyze(ctx context.Context, proposals []domain.ProposalRecord) (*domain.Report, error)
}

type analyzer struct {
	extractor  extract.Extractor
	normalizer currency.Normalizer
	aggregator metrics.Aggregator
	assembler  report.Assembler
}

func NewAnalyzer(
	extractor extract.Extractor,
	normalizer currency.Normalizer,
	aggregator metrics.Aggregator,
	assembler report.Assembler,
) Analyzer {
	return &analyzer{
		extractor:  extractor,
		normalizer: normalizer,
		aggregator: aggregator,
		assembler:  assembler,
	}
}

func (a *analyzer) Analyze(ctx context.Context, proposals []domain.ProposalRecord) (*domain.Report, error) {
	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals to analyze")
	}

	// Per-proposal work is independent, so it fans out. The cross-proposal
	// summary is a reduction over the full set and waits for the barrier.
	scored := make([]metrics.Scored, len(proposals))
	var wg sync.WaitGroup
	for i, p := range proposals {
		wg.Add(1)
		go func(i int, p domain.ProposalRecord) {
			defer wg.Done()
			scored[i] = a.score(p)
		}(i, p)
	}
	wg.Wait()

	ranked := a.aggregator.Rank(scored)
	summary := a.aggregator.Summarize(ranked)

	rep := a.assembler.Assemble(ctx, ranked, summary)
	return &rep, nil
}

func (a *analyzer) score(p domain.ProposalRecord) metrics.Scored {
	var price *domain.CurrencyAmount
	if ca, ok := a.extractor.ExtractFromRecord(p); ok {
		price = &ca
	}

	norm := a.normalizer.Normalize(p.Financials, price)

	return metrics.Scored{
		Proposal:       p,
		Price:          price,
		ReferencePrice: norm.Total,
		Currencies:     norm.Distinct,
		Primary:        norm.Primary,
	}
}
