package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// testRates keeps conversion arithmetic trivial to follow in assertions.
func testRates() domain.RateTable {
	return domain.RateTable{
		Reference: domain.KGS,
		Rates: map[domain.Code]float64{
			domain.KGS: 1,
			domain.RUB: 1,
			domain.USD: 90,
			domain.EUR: 100,
		},
	}
}

func TestNormalize_DeduplicatesAndDropsUnsupported(t *testing.T) {
	n := NewNormalizer(testRates())

	fin := domain.Financials{
		Mentions: []domain.CurrencyAmount{
			{Code: domain.RUB, Amount: 100},
			{Code: domain.USD, Amount: 50},
			{Code: domain.RUB, Amount: 200},
			{Code: "GBP", Amount: 10},
			{Code: domain.EUR, Amount: 5},
		},
	}

	got := n.Normalize(fin, nil)
	assert.Equal(t, []domain.Code{domain.RUB, domain.USD, domain.EUR}, got.Distinct)
	require.NotNil(t, got.Primary)
	assert.Equal(t, domain.RUB, *got.Primary)
	assert.Nil(t, got.Total)
}

func TestNormalize_PrimarySelection(t *testing.T) {
	n := NewNormalizer(testRates())

	t.Run("total budget currency wins regardless of mention order", func(t *testing.T) {
		fin := domain.Financials{
			Mentions: []domain.CurrencyAmount{
				{Code: domain.RUB, Amount: 100},
				{Code: domain.USD, Amount: 50},
			},
			TotalBudget: &domain.CurrencyAmount{Code: domain.USD, Amount: 50000},
		}
		got := n.Normalize(fin, nil)
		require.NotNil(t, got.Primary)
		assert.Equal(t, domain.USD, *got.Primary)
	})

	t.Run("first mention otherwise", func(t *testing.T) {
		fin := domain.Financials{
			Mentions: []domain.CurrencyAmount{
				{Code: domain.EUR, Amount: 10},
				{Code: domain.RUB, Amount: 100},
			},
		}
		got := n.Normalize(fin, nil)
		require.NotNil(t, got.Primary)
		assert.Equal(t, domain.EUR, *got.Primary)
	})

	t.Run("price currency when there are no mentions", func(t *testing.T) {
		price := &domain.CurrencyAmount{Code: domain.RUB, Amount: 500000}
		got := n.Normalize(domain.Financials{}, price)
		require.NotNil(t, got.Primary)
		assert.Equal(t, domain.RUB, *got.Primary)
	})

	t.Run("no monetary data at all", func(t *testing.T) {
		got := n.Normalize(domain.Financials{}, nil)
		assert.Nil(t, got.Primary)
		assert.Empty(t, got.Distinct)
		assert.Nil(t, got.Total)
	})
}

func TestNormalize_ReferenceTotal(t *testing.T) {
	n := NewNormalizer(testRates())

	t.Run("converts the resolved price", func(t *testing.T) {
		price := &domain.CurrencyAmount{Code: domain.USD, Amount: 1000}
		got := n.Normalize(domain.Financials{}, price)
		require.NotNil(t, got.Total)
		assert.InDelta(t, 90000, *got.Total, 0.001)
	})

	t.Run("no rate means no total, not zero", func(t *testing.T) {
		price := &domain.CurrencyAmount{Code: domain.KZT, Amount: 1000}
		got := n.Normalize(domain.Financials{}, price)
		assert.Nil(t, got.Total)
	})
}

func TestConvert_InjectableRates(t *testing.T) {
	fixed := domain.RateTable{
		Reference: domain.KGS,
		Rates:     map[domain.Code]float64{domain.RUB: 2},
	}
	n := NewNormalizer(fixed)

	v, ok := n.Convert(domain.CurrencyAmount{Code: domain.RUB, Amount: 10})
	require.True(t, ok)
	assert.InDelta(t, 20, v, 0.001)

	_, ok = n.Convert(domain.CurrencyAmount{Code: domain.USD, Amount: 10})
	assert.False(t, ok)
}

func TestDefaultRates_CoverTheClosedSet(t *testing.T) {
	rates := DefaultRates()
	assert.Equal(t, domain.KGS, rates.Reference)
	for _, code := range domain.SupportedCodes() {
		assert.Contains(t, rates.Rates, code)
		assert.Greater(t, rates.Rates[code], 0.0)
	}
}
