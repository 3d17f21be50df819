package quotes

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourusername/hoopsedge/internal/models"
)

// LiveQuoteSource reads the scraper's relational store. Only already
// parsed quote rows are consumed; the scraper owns all network I/O.
type LiveQuoteSource struct {
	pool *pgxpool.Pool
}

// NewLiveQuoteSource creates a quote source backed by the odds database.
func NewLiveQuoteSource(pool *pgxpool.Pool) *LiveQuoteSource {
	return &LiveQuoteSource{pool: pool}
}

// Name returns the source name.
func (s *LiveQuoteSource) Name() string {
	return "live"
}

// Latest returns every quote from the most recent fetch batch. An empty
// batch is returned as an empty slice, not an error.
func (s *LiveQuoteSource) Latest(ctx context.Context) ([]models.OddsQuote, error) {
	query := `
		SELECT game_id, matchup, bookmaker, market, side, american_odds, fetched_at
		FROM odds_quotes
		WHERE fetched_at = (SELECT MAX(fetched_at) FROM odds_quotes)
		ORDER BY game_id, bookmaker
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.OddsQuote
	for rows.Next() {
		var q models.OddsQuote
		err := rows.Scan(&q.GameID, &q.Matchup, &q.Bookmaker, &q.Market, &q.Side, &q.AmericanOdds, &q.FetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
