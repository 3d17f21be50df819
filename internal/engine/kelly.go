package engine

import (
	"fmt"

	"github.com/yourusername/hoopsedge/internal/models"
)

// DefaultKellyFraction is the safety fraction applied to the raw Kelly
// stake when the caller does not supply one.
const DefaultKellyFraction = 0.25

// KellyStake returns the recommended bankroll fraction for a bet at the
// given decimal odds with estimated win probability prob, scaled by
// safetyFraction. A negative raw Kelly value means the price is
// unprofitable and degenerates to a zero stake, never a short position.
func KellyStake(prob, decimalOdds, safetyFraction float64) (float64, error) {
	if decimalOdds <= 1 {
		return 0, fmt.Errorf("decimal odds %v not greater than 1: %w", decimalOdds, models.ErrInvalidOdds)
	}
	if prob <= 0 || prob >= 1 {
		return 0, fmt.Errorf("probability %v outside (0,1)", prob)
	}
	if safetyFraction <= 0 {
		safetyFraction = DefaultKellyFraction
	}

	kelly := (prob*decimalOdds - 1.0) / (decimalOdds - 1.0)
	if kelly < 0 {
		kelly = 0
	}
	return kelly * safetyFraction, nil
}
