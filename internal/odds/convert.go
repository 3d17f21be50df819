// Package odds provides pure numeric conversions between American odds,
// decimal odds, and implied probability.
package odds

import (
	"fmt"

	"github.com/yourusername/hoopsedge/internal/models"
)

// AmericanToProbability converts American odds to the implied probability.
// Positive and negative odds use different formulas; zero is not a valid
// price in American notation.
func AmericanToProbability(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("american odds must be nonzero: %w", models.ErrInvalidOdds)
	}
	if american > 0 {
		return 100.0 / (float64(american) + 100.0), nil
	}
	abs := float64(-american)
	return abs / (abs + 100.0), nil
}

// AmericanToDecimal converts American odds to decimal (payout-inclusive)
// odds. Valid input always yields decimal odds strictly greater than 1.
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("american odds must be nonzero: %w", models.ErrInvalidOdds)
	}
	if american > 0 {
		return float64(american)/100.0 + 1.0, nil
	}
	return 100.0/float64(-american) + 1.0, nil
}
