package currency

import (
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// Normalized is the canonical view of a proposal's monetary data: the
// distinct supported currencies observed (first-seen order), the primary
// currency, and the resolved price converted into the reference currency.
type Normalized struct {
	Distinct []domain.Code
	Primary  *domain.Code
	// Total is the reference-currency value of the resolved price, nil
	// when no price was resolved or no rate exists for its currency.
	Total *float64
}

// Normalizer canonicalizes raw currency mentions against an injected rate
// table. Codes outside the supported set are dropped, never defaulted.
type Normalizer interface {
	// Normalize deduplicates the mentions in fin, selects the primary
	// currency, and converts price into the reference currency. The total
	// budget's currency is primary regardless of mention order; otherwise
	// the first supported mention wins, then the price's own currency.
	Normalize(fin domain.Financials, price *domain.CurrencyAmount) Normalized

	// Convert translates a single amount into the reference currency.
	Convert(a domain.CurrencyAmount) (float64, bool)

	Rates() domain.RateTable
}

type normalizer struct {
	rates domain.RateTable
}

func NewNormalizer(rates domain.RateTable) Normalizer {
	return &normalizer{rates: rates}
}

func (n *normalizer) Normalize(fin domain.Financials, price *domain.CurrencyAmount) Normalized {
	var out Normalized

	seen := make(map[domain.Code]bool)
	for _, m := range fin.Mentions {
		if !m.Code.Supported() || seen[m.Code] {
			continue
		}
		seen[m.Code] = true
		out.Distinct = append(out.Distinct, m.Code)
	}

	switch {
	case fin.TotalBudget != nil && fin.TotalBudget.Code.Supported():
		c := fin.TotalBudget.Code
		out.Primary = &c
	case len(out.Distinct) > 0:
		c := out.Distinct[0]
		out.Primary = &c
	case price != nil && price.Code.Supported():
		c := price.Code
		out.Primary = &c
	}

	if price != nil {
		if v, ok := n.Convert(*price); ok {
			out.Total = &v
		}
	}

	return out
}

func (n *normalizer) Convert(a domain.CurrencyAmount) (float64, bool) {
	return n.rates.ToReference(a)
}

func (n *normalizer) Rates() domain.RateTable {
	return n.rates
}
