package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/hoopsedge/internal/models"
)

func oppWithEdge(id string, edge, ev float64) models.BettingOpportunity {
	return models.BettingOpportunity{GameID: id, EdgePercent: edge, ExpectedValue: ev}
}

func TestRankFiltersAndOrders(t *testing.T) {
	input := []models.BettingOpportunity{
		oppWithEdge("a", 1, 2),
		oppWithEdge("b", 4, 5),
		oppWithEdge("c", 7, 9),
		oppWithEdge("d", 12, 20),
	}

	ranked := Rank(input, 3)

	edges := make([]float64, len(ranked))
	for i, o := range ranked {
		edges[i] = o.EdgePercent
	}
	assert.Equal(t, []float64{12, 7, 4}, edges)
}

func TestRankTieBrokenByExpectedValue(t *testing.T) {
	input := []models.BettingOpportunity{
		oppWithEdge("a", 5, 4),
		oppWithEdge("b", 5, 9),
	}
	ranked := Rank(input, 3)
	assert.Equal(t, "b", ranked[0].GameID)
	assert.Equal(t, "a", ranked[1].GameID)
}

func TestRankStableForFullTies(t *testing.T) {
	input := []models.BettingOpportunity{
		oppWithEdge("first", 5, 6),
		oppWithEdge("second", 5, 6),
		oppWithEdge("third", 5, 6),
	}
	ranked := Rank(input, 0)
	assert.Equal(t, "first", ranked[0].GameID)
	assert.Equal(t, "second", ranked[1].GameID)
	assert.Equal(t, "third", ranked[2].GameID)
}

func TestRankThresholdIsClosed(t *testing.T) {
	input := []models.BettingOpportunity{oppWithEdge("a", 3, 1)}
	ranked := Rank(input, 3)
	assert.Len(t, ranked, 1)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 3))
}
