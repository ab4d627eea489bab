package currency

import "github.com/bid-tools/proposal-atlas/pkg/models/domain"

// DefaultRates is the built-in static table used when no rates profile is
// configured. Values are reference units (KGS) per one unit of the code.
// This is configuration, not market data; production swaps the table
// through NewNormalizer without touching normalization logic.
func DefaultRates() domain.RateTable {
	return domain.RateTable{
		Reference: domain.KGS,
		Rates: map[domain.Code]float64{
			domain.KGS: 1,
			domain.RUB: 0.95,
			domain.USD: 87.5,
			domain.EUR: 94.8,
			domain.KZT: 0.17,
			domain.UZS: 0.0071,
			domain.TJS: 8.2,
			domain.UAH: 2.1,
		},
	}
}
