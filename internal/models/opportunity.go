package models

import (
	"github.com/shopspring/decimal"
)

// ConfidenceTier buckets edge magnitude for presentation and filtering.
type ConfidenceTier string

const (
	ConfidenceLow      ConfidenceTier = "Low"
	ConfidenceMedium   ConfidenceTier = "Medium"
	ConfidenceHigh     ConfidenceTier = "High"
	ConfidenceVeryHigh ConfidenceTier = "Very High"
)

// ConfidenceForEdge maps an edge in percentage points to a tier. The
// thresholds {3, 6, 10} partition the real line; ties resolve upward.
func ConfidenceForEdge(edge float64) ConfidenceTier {
	switch {
	case edge >= 10:
		return ConfidenceVeryHigh
	case edge >= 6:
		return ConfidenceHigh
	case edge >= 3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Rank returns the tier's position for ordering comparisons, higher is
// more confident.
func (c ConfidenceTier) Rank() int {
	switch c {
	case ConfidenceVeryHigh:
		return 3
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// BettingOpportunity is a derived, ephemeral recommendation. It is created
// fresh on every evaluation pass and never persisted as authoritative
// state; the dashboard may snapshot it.
type BettingOpportunity struct {
	GameID            string          `json:"game_id"`
	Matchup           string          `json:"matchup"`
	OurProbability    float64         `json:"our_probability"`
	MarketProbability float64         `json:"market_probability"`
	EdgePercent       float64         `json:"edge_percent"`
	ExpectedValue     float64         `json:"expected_value"`
	Confidence        ConfidenceTier  `json:"confidence"`
	StakeFraction     float64         `json:"stake_fraction"`
	StakeAmount       decimal.Decimal `json:"stake_amount"`
	Quote             OddsQuote       `json:"quote"`
}
