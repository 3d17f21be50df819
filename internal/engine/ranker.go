package engine

import (
	"sort"

	"github.com/yourusername/hoopsedge/internal/models"
)

// Rank filters candidate opportunities below the minimum edge threshold
// and orders the rest by edge descending, ties broken by expected value
// descending. The sort is stable so identical inputs produce identical
// output ordering.
func Rank(candidates []models.BettingOpportunity, minEdgePercent float64) []models.BettingOpportunity {
	ranked := make([]models.BettingOpportunity, 0, len(candidates))
	for _, c := range candidates {
		if c.EdgePercent >= minEdgePercent {
			ranked = append(ranked, c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].EdgePercent != ranked[j].EdgePercent {
			return ranked[i].EdgePercent > ranked[j].EdgePercent
		}
		return ranked[i].ExpectedValue > ranked[j].ExpectedValue
	})
	return ranked
}
