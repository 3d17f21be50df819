package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hoopsedge/internal/models"
)

func quoteWithOdds(american int) models.OddsQuote {
	return models.OddsQuote{
		GameID:       "bos-mia",
		Bookmaker:    "DraftKings",
		Market:       models.MarketMoneyline,
		Side:         "home",
		AmericanOdds: american,
		FetchedAt:    time.Now(),
	}
}

func TestEvaluateConcreteScenario(t *testing.T) {
	// odds -115 with our probability 0.583
	eval, err := Evaluate(0.583, quoteWithOdds(-115))
	require.NoError(t, err)

	assert.InDelta(t, 115.0/215.0, eval.MarketProbability, 1e-9)
	assert.InDelta(t, 4.81, eval.EdgePercent, 0.01)
	assert.InDelta(t, 1.8696, eval.DecimalOdds, 0.0001)
	assert.InDelta(t, 9.0, eval.ExpectedValue, 0.05)
	assert.Equal(t, models.ConfidenceMedium, eval.Confidence)
}

func TestEvaluateNegativeEdge(t *testing.T) {
	eval, err := Evaluate(0.40, quoteWithOdds(-150))
	require.NoError(t, err)
	assert.Less(t, eval.EdgePercent, 0.0)
	assert.Equal(t, models.ConfidenceLow, eval.Confidence)
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	_, err := Evaluate(0, quoteWithOdds(-115))
	assert.Error(t, err)

	_, err = Evaluate(1, quoteWithOdds(-115))
	assert.Error(t, err)

	_, err = Evaluate(0.55, quoteWithOdds(0))
	assert.ErrorIs(t, err, models.ErrInvalidOdds)

	_, err = Evaluate(0.55, quoteWithOdds(50))
	assert.ErrorIs(t, err, models.ErrInvalidOdds)
}

func TestEdgeAntisymmetry(t *testing.T) {
	pairs := [][2]float64{{0.3, 0.7}, {0.583, 0.5349}, {0.01, 0.99}, {0.5, 0.5}}
	for _, pair := range pairs {
		assert.InDelta(t, Edge(pair[0], pair[1]), -Edge(pair[1], pair[0]), 1e-12)
	}
}

func TestConfidenceTierBoundaries(t *testing.T) {
	tests := []struct {
		edge float64
		want models.ConfidenceTier
	}{
		{-5, models.ConfidenceLow},
		{0, models.ConfidenceLow},
		{2.99, models.ConfidenceLow},
		{3, models.ConfidenceMedium},
		{5.99, models.ConfidenceMedium},
		{6, models.ConfidenceHigh},
		{9.99, models.ConfidenceHigh},
		{10, models.ConfidenceVeryHigh},
		{25, models.ConfidenceVeryHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, models.ConfidenceForEdge(tt.edge), "edge %v", tt.edge)
	}
}

func TestConfidenceTierMonotonic(t *testing.T) {
	edges := []float64{-10, 0, 2.9, 3, 4, 6, 8, 10, 15}
	for i := 1; i < len(edges); i++ {
		lower := models.ConfidenceForEdge(edges[i-1])
		higher := models.ConfidenceForEdge(edges[i])
		assert.LessOrEqual(t, lower.Rank(), higher.Rank())
	}
}
