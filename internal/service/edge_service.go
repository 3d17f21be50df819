// Package service orchestrates edge detection: model predictions against
// live or fixture quotes, producing a ranked opportunity list.
package service

import (
	"context"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/hoopsedge/internal/artifact"
	"github.com/yourusername/hoopsedge/internal/engine"
	"github.com/yourusername/hoopsedge/internal/metrics"
	"github.com/yourusername/hoopsedge/internal/models"
	"github.com/yourusername/hoopsedge/internal/quotes"
)

// Estimator maps a feature vector in schema order to a probability.
type Estimator interface {
	Predict(features []float64) float64
}

// Config holds the engine parameters. They are passed explicitly so the
// service carries no process-wide mutable settings.
type Config struct {
	MinimumEdgePercent float64
	KellyFraction      float64
	Bankroll           decimal.Decimal
	CacheTTL           time.Duration
}

// EdgeService evaluates the latest quote set against the loaded model.
// The model is read-only shared data; a retrain supersedes it by handle
// swap through SetModel, never by in-place edit.
type EdgeService struct {
	cfg    Config
	source quotes.QuoteSource
	logger *logrus.Logger
	cache  *cache.Cache

	mu         sync.RWMutex
	estimator  Estimator
	schema     models.FeatureSchema
	artifactID string
}

// NewEdgeService creates an edge service over the given quote source.
func NewEdgeService(cfg Config, source quotes.QuoteSource, logger *logrus.Logger) *EdgeService {
	if cfg.MinimumEdgePercent == 0 {
		cfg.MinimumEdgePercent = 3.0
	}
	if cfg.KellyFraction <= 0 {
		cfg.KellyFraction = engine.DefaultKellyFraction
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &EdgeService{
		cfg:    cfg,
		source: source,
		logger: logger,
		cache:  cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// SetModel swaps in a newly loaded artifact and its estimator.
func (s *EdgeService) SetModel(art *artifact.Artifact, est Estimator) {
	s.mu.Lock()
	s.estimator = est
	s.schema = art.FeatureNames
	s.artifactID = art.ID.String()
	s.mu.Unlock()
}

func (s *EdgeService) currentModel() (Estimator, models.FeatureSchema, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estimator, s.schema, s.artifactID
}

// FindOpportunities fetches the latest quotes, predicts each game on the
// slate, and returns opportunities above the minimum edge threshold
// ranked by edge. A malformed quote is reported per item and skipped; it
// never aborts the rest of the batch.
func (s *EdgeService) FindOpportunities(ctx context.Context, slate []models.GameFeatureRecord) ([]models.BettingOpportunity, error) {
	est, schema, artifactID := s.currentModel()
	if est == nil {
		return nil, models.ErrModelUnavailable
	}

	quoteSet, err := s.source.Latest(ctx)
	if err != nil {
		return nil, err
	}

	byGame := make(map[string]models.GameFeatureRecord, len(slate))
	for _, record := range slate {
		if err := record.Validate(schema); err != nil {
			s.logger.WithError(err).Warn("Skipping slate record with invalid feature vector")
			continue
		}
		byGame[record.GameID] = record
	}

	candidates := make([]models.BettingOpportunity, 0, len(quoteSet))
	for _, quote := range quoteSet {
		record, ok := byGame[quote.GameID]
		if !ok {
			metrics.RecordQuoteEvaluation("skipped")
			s.logger.WithField("game_id", quote.GameID).Debug("No slate features for quoted game")
			continue
		}

		opp, err := s.evaluate(est, artifactID, record, quote)
		if err != nil {
			metrics.RecordQuoteEvaluation("invalid")
			s.logger.WithError(err).WithFields(logrus.Fields{
				"game_id":   quote.GameID,
				"bookmaker": quote.Bookmaker,
			}).Warn("Quote evaluation failed")
			continue
		}
		metrics.RecordQuoteEvaluation("evaluated")
		candidates = append(candidates, opp)
	}

	ranked := engine.Rank(candidates, s.cfg.MinimumEdgePercent)
	metrics.OpportunitiesFound.Set(float64(len(ranked)))
	s.logger.WithFields(logrus.Fields{
		"source":        s.source.Name(),
		"quotes":        len(quoteSet),
		"opportunities": len(ranked),
	}).Info("Evaluation pass complete")
	return ranked, nil
}

func (s *EdgeService) evaluate(est Estimator, artifactID string, record models.GameFeatureRecord, quote models.OddsQuote) (models.BettingOpportunity, error) {
	prob := s.predict(est, artifactID, record)

	eval, err := engine.Evaluate(prob, quote)
	if err != nil {
		return models.BettingOpportunity{}, err
	}
	stake, err := engine.KellyStake(prob, eval.DecimalOdds, s.cfg.KellyFraction)
	if err != nil {
		return models.BettingOpportunity{}, err
	}

	return models.BettingOpportunity{
		GameID:            record.GameID,
		Matchup:           record.Matchup,
		OurProbability:    prob,
		MarketProbability: eval.MarketProbability,
		EdgePercent:       eval.EdgePercent,
		ExpectedValue:     eval.ExpectedValue,
		Confidence:        eval.Confidence,
		StakeFraction:     stake,
		StakeAmount:       s.cfg.Bankroll.Mul(decimal.NewFromFloat(stake)).Round(2),
		Quote:             quote,
	}, nil
}

// predict caches probabilities per game and artifact version; a model
// swap naturally invalidates old entries through the key.
func (s *EdgeService) predict(est Estimator, artifactID string, record models.GameFeatureRecord) float64 {
	key := artifactID + ":" + record.GameID
	if cached, found := s.cache.Get(key); found {
		if prob, ok := cached.(float64); ok {
			metrics.RecordCacheLookup(true)
			return prob
		}
	}
	metrics.RecordCacheLookup(false)
	prob := est.Predict(record.Features)
	s.cache.Set(key, prob, cache.DefaultExpiration)
	return prob
}
