package models

import (
	"fmt"
	"time"
)

// FeatureSchema is the ordered list of feature names a model is trained
// against. Training and inference must use identical name ordering.
type FeatureSchema []string

// DefaultFeatureSchema returns the fixed NBA game feature schema.
func DefaultFeatureSchema() FeatureSchema {
	return FeatureSchema{
		"home_ppg", "away_ppg",
		"home_def_rating", "away_def_rating",
		"home_form_l10", "away_form_l10",
		"home_rest_days", "away_rest_days",
		"home_injury_impact", "away_injury_impact",
		"pace",
		"home_3pt_pct", "away_3pt_pct",
		"is_home",
	}
}

// Equal reports whether two schemas have the same names in the same order.
func (s FeatureSchema) Equal(other FeatureSchema) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// GameFeatureRecord is one game's numeric feature vector in schema order.
// Historical records carry the realized outcome label; live records leave
// HomeWin unset.
type GameFeatureRecord struct {
	GameID   string    `json:"game_id"`
	Matchup  string    `json:"matchup,omitempty"`
	PlayedAt time.Time `json:"played_at"`
	Features []float64 `json:"features"`
	HomeWin  bool      `json:"home_win,omitempty"`
}

// Validate checks the feature vector length against the schema. A record
// with a missing or extra feature is invalid.
func (r GameFeatureRecord) Validate(schema FeatureSchema) error {
	if len(r.Features) != len(schema) {
		return fmt.Errorf("game %s: feature vector has %d values, schema expects %d", r.GameID, len(r.Features), len(schema))
	}
	return nil
}

// Label returns the outcome as a 0/1 target value.
func (r GameFeatureRecord) Label() float64 {
	if r.HomeWin {
		return 1
	}
	return 0
}
