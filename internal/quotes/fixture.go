package quotes

import (
	"context"
	"time"

	"github.com/yourusername/hoopsedge/internal/models"
)

// FixtureQuoteSource serves a small built-in slate of moneyline quotes so
// the engine can run end to end without the odds database.
type FixtureQuoteSource struct {
	now func() time.Time
}

// NewFixtureQuoteSource creates a fixture-backed quote source.
func NewFixtureQuoteSource() *FixtureQuoteSource {
	return &FixtureQuoteSource{now: time.Now}
}

// Name returns the source name.
func (s *FixtureQuoteSource) Name() string {
	return "fixture"
}

// Latest returns the built-in quote slate stamped with the current time.
func (s *FixtureQuoteSource) Latest(ctx context.Context) ([]models.OddsQuote, error) {
	_ = ctx
	fetched := s.now().UTC()
	slate := []struct {
		gameID    string
		matchup   string
		bookmaker string
		odds      int
	}{
		{"bos-mia", "Miami Heat @ Boston Celtics", "DraftKings", -140},
		{"lal-gsw", "Golden State Warriors @ Los Angeles Lakers", "FanDuel", -115},
		{"mil-phi", "Philadelphia 76ers @ Milwaukee Bucks", "BetMGM", -105},
		{"den-phx", "Phoenix Suns @ Denver Nuggets", "DraftKings", -180},
		{"dal-min", "Minnesota Timberwolves @ Dallas Mavericks", "FanDuel", -120},
	}

	quotes := make([]models.OddsQuote, 0, len(slate))
	for _, g := range slate {
		quotes = append(quotes, models.OddsQuote{
			GameID:       g.gameID,
			Matchup:      g.matchup,
			Bookmaker:    g.bookmaker,
			Market:       models.MarketMoneyline,
			Side:         "home",
			AmericanOdds: g.odds,
			FetchedAt:    fetched,
		})
	}
	return quotes, nil
}
