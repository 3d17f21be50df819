// Package engine turns a probability estimate and a market price into a
// ranked, risk-scaled betting recommendation.
package engine

import (
	"fmt"

	"github.com/yourusername/hoopsedge/internal/models"
	"github.com/yourusername/hoopsedge/internal/odds"
)

// Evaluation is the result of comparing our probability estimate against
// one market quote.
type Evaluation struct {
	MarketProbability float64
	DecimalOdds       float64
	EdgePercent       float64
	ExpectedValue     float64
	Confidence        models.ConfidenceTier
}

// Edge returns the percentage-point gap between two probabilities. It is
// antisymmetric: Edge(p, q) == -Edge(q, p).
func Edge(ourProb, marketProb float64) float64 {
	return (ourProb - marketProb) * 100.0
}

// ExpectedValue returns the expected percentage return per unit staked at
// the given decimal odds and estimated probability.
func ExpectedValue(prob, decimalOdds float64) float64 {
	return (prob*(decimalOdds-1.0) - (1.0 - prob)) * 100.0
}

// Evaluate compares our estimated win probability against a bookmaker
// quote. A negative edge means no recommended bet; the caller filters.
func Evaluate(prob float64, quote models.OddsQuote) (Evaluation, error) {
	if prob <= 0 || prob >= 1 {
		return Evaluation{}, fmt.Errorf("estimated probability %v outside (0,1)", prob)
	}
	if err := quote.Validate(); err != nil {
		return Evaluation{}, err
	}

	marketProb, err := odds.AmericanToProbability(quote.AmericanOdds)
	if err != nil {
		return Evaluation{}, err
	}
	decimalOdds, err := odds.AmericanToDecimal(quote.AmericanOdds)
	if err != nil {
		return Evaluation{}, err
	}

	edge := Edge(prob, marketProb)
	return Evaluation{
		MarketProbability: marketProb,
		DecimalOdds:       decimalOdds,
		EdgePercent:       edge,
		ExpectedValue:     ExpectedValue(prob, decimalOdds),
		Confidence:        models.ConfidenceForEdge(edge),
	}, nil
}
