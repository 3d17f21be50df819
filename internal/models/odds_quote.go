package models

import (
	"fmt"
	"time"
)

// MarketType identifies the bet market a quote prices.
type MarketType string

const (
	MarketMoneyline MarketType = "moneyline"
	MarketSpread    MarketType = "spread"
	MarketTotal     MarketType = "total"
)

// OddsQuote is a single bookmaker's price for one side of one market on
// one game. Multiple quotes may exist per game, one per bookmaker; each is
// an independent candidate for evaluation.
type OddsQuote struct {
	GameID       string     `db:"game_id" json:"game_id"`
	Matchup      string     `db:"matchup" json:"matchup"`
	Bookmaker    string     `db:"bookmaker" json:"bookmaker"`
	Market       MarketType `db:"market" json:"market"`
	Side         string     `db:"side" json:"side"`
	AmericanOdds int        `db:"american_odds" json:"american_odds"`
	FetchedAt    time.Time  `db:"fetched_at" json:"fetched_at"`
}

// Validate checks the quote carries a price in valid American-odds
// notation: nonzero, magnitude at least 100.
func (q OddsQuote) Validate() error {
	if q.AmericanOdds == 0 {
		return fmt.Errorf("quote %s/%s: zero american odds: %w", q.GameID, q.Bookmaker, ErrInvalidOdds)
	}
	if q.AmericanOdds > -100 && q.AmericanOdds < 100 {
		return fmt.Errorf("quote %s/%s: american odds %d below magnitude 100: %w", q.GameID, q.Bookmaker, q.AmericanOdds, ErrInvalidOdds)
	}
	return nil
}
