package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

func scored(id string, score float64, refPrice *float64) Scored {
	return Scored{
		Proposal: domain.ProposalRecord{
			ID:              id,
			Company:         "company-" + id,
			ComplianceScore: score,
		},
		ReferencePrice: refPrice,
	}
}

func ref(v float64) *float64 { return &v }

func TestRank_ScoreDescendingRegardlessOfPrice(t *testing.T) {
	a := NewAggregator()

	// The cheaper proposal has the lower score; ranking must ignore price.
	ranked := a.Rank([]Scored{
		scored("a", 68, ref(500000)),
		scored("b", 92, ref(600000)),
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Proposal.ID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "a", ranked[1].Proposal.ID)
	assert.Equal(t, 2, ranked[1].Rank)

	summary := a.Summarize(ranked)
	require.NotNil(t, summary.Best)
	assert.Equal(t, "b", summary.Best.ID)
}

func TestRank_TiesKeepOriginalInputOrder(t *testing.T) {
	a := NewAggregator()

	ranked := a.Rank([]Scored{
		scored("first", 75, nil),
		scored("second", 75, nil),
		scored("third", 75, nil),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{ranked[0].Proposal.ID, ranked[1].Proposal.ID, ranked[2].Proposal.ID})
}

func TestRank_RiskLevelBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{100, domain.RiskLow},
		{80, domain.RiskLow}, // exactly 80 selects the higher tier
		{79.9, domain.RiskMedium},
		{60, domain.RiskMedium}, // exactly 60 selects the higher tier
		{59.9, domain.RiskHigh},
		{0, domain.RiskHigh},
	}

	a := NewAggregator()
	for _, tt := range tests {
		ranked := a.Rank([]Scored{scored("p", tt.score, nil)})
		assert.Equal(t, tt.want, ranked[0].RiskLevel, "score %v", tt.score)
	}
}

func TestRank_PricePerPointGuards(t *testing.T) {
	a := NewAggregator()

	t.Run("computed when price and score are present", func(t *testing.T) {
		ranked := a.Rank([]Scored{scored("p", 80, ref(400000))})
		require.NotNil(t, ranked[0].PricePerPoint)
		assert.InDelta(t, 5000, *ranked[0].PricePerPoint, 0.001)
	})

	t.Run("not applicable without a price", func(t *testing.T) {
		ranked := a.Rank([]Scored{scored("p", 80, nil)})
		assert.Nil(t, ranked[0].PricePerPoint)
	})

	t.Run("not applicable at score zero, never a division by zero", func(t *testing.T) {
		ranked := a.Rank([]Scored{scored("p", 0, ref(400000))})
		assert.Nil(t, ranked[0].PricePerPoint)
	})
}

func TestSummarize_DistributionBucketsSumToN(t *testing.T) {
	sets := [][]float64{
		{},
		{50},
		{92, 68},
		{80, 60, 59.9, 100, 0, 75},
		{60, 60, 60},
		{79.99, 80, 80.01},
	}

	a := NewAggregator()
	for _, scores := range sets {
		items := make([]Scored, 0, len(scores))
		for i, s := range scores {
			items = append(items, scored(string(rune('a'+i)), s, nil))
		}
		summary := a.Summarize(a.Rank(items))

		total := summary.Distribution.Strong + summary.Distribution.Moderate + summary.Distribution.Weak
		assert.Equal(t, len(scores), total, "buckets must sum to N for %v", scores)
		assert.Equal(t, len(scores), summary.Count)
	}
}

func TestSummarize_AverageAndBest(t *testing.T) {
	a := NewAggregator()

	summary := a.Summarize(a.Rank([]Scored{
		scored("a", 90, nil),
		scored("b", 70, nil),
		scored("c", 50, nil),
	}))

	assert.InDelta(t, 70, summary.AverageScore, 0.001)
	require.NotNil(t, summary.Best)
	assert.Equal(t, "a", summary.Best.ID)
	assert.Equal(t, domain.Distribution{Strong: 1, Moderate: 1, Weak: 1}, summary.Distribution)
}

func TestSummarize_EmptySet(t *testing.T) {
	a := NewAggregator()

	summary := a.Summarize(nil)
	assert.Equal(t, 0, summary.Count)
	assert.Nil(t, summary.Best)
	assert.Zero(t, summary.AverageScore)
}
