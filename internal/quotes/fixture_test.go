package quotes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hoopsedge/internal/models"
)

func TestFixtureQuotesAreValid(t *testing.T) {
	source := NewFixtureQuoteSource()
	assert.Equal(t, "fixture", source.Name())

	quotes, err := source.Latest(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, quotes)

	seen := map[string]bool{}
	for _, q := range quotes {
		assert.NoError(t, q.Validate())
		assert.Equal(t, models.MarketMoneyline, q.Market)
		assert.False(t, seen[q.GameID], "duplicate game %s", q.GameID)
		seen[q.GameID] = true
		assert.False(t, q.FetchedAt.IsZero())
	}
}
