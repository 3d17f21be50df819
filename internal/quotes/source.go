// Package quotes supplies the most recent bookmaker odds quotes per game.
// Whether the live store or the fixture slate is used is an explicit
// caller choice, never a silent fallback.
package quotes

import (
	"context"

	"github.com/yourusername/hoopsedge/internal/models"
)

// QuoteSource exposes the most recent OddsQuote set per game.
type QuoteSource interface {
	// Latest returns the quotes from the most recent fetch batch.
	Latest(ctx context.Context) ([]models.OddsQuote, error)

	// Name identifies the source for logging.
	Name() string
}
