// Package training implements the time-series cross-validated pipeline
// that produces the persisted probability estimator.
package training

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/hoopsedge/internal/artifact"
	"github.com/yourusername/hoopsedge/internal/metrics"
	"github.com/yourusername/hoopsedge/internal/models"
)

// DefaultFolds is the walk-forward fold count used when the caller does
// not configure one.
const DefaultFolds = 5

// State tracks pipeline progress through a training invocation.
type State string

const (
	StateIdle            State = "idle"
	StateLoading         State = "loading"
	StateCrossValidating State = "cross_validating"
	StateRefitting       State = "refitting"
	StatePersisted       State = "persisted"
	StateFailed          State = "failed"
)

// Config holds the training parameters. They are passed explicitly, never
// read from global state.
type Config struct {
	Folds  int
	Schema models.FeatureSchema
	Fit    FitConfig
}

// Pipeline runs walk-forward cross-validation over a chronologically
// sorted record sequence, refits a final estimator on the full sequence,
// and persists it through the artifact store.
type Pipeline struct {
	cfg    Config
	store  *artifact.Store
	logger *logrus.Logger

	mu    sync.Mutex
	state State
}

// NewPipeline creates a training pipeline.
func NewPipeline(cfg Config, store *artifact.Store, logger *logrus.Logger) *Pipeline {
	if cfg.Folds <= 0 {
		cfg.Folds = DefaultFolds
	}
	if len(cfg.Schema) == 0 {
		cfg.Schema = models.DefaultFeatureSchema()
	}
	if cfg.Fit.Iterations <= 0 {
		cfg.Fit = DefaultFitConfig()
	}
	return &Pipeline{
		cfg:    cfg,
		store:  store,
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *Pipeline) fail(err error) error {
	p.setState(StateFailed)
	metrics.RecordTrainingRun("failure")
	return err
}

// Run executes the full pipeline on labeled records sorted by
// chronological occurrence. Fold models are discarded after their metrics
// are captured; the persisted estimator is always the final full-sequence
// refit.
func (p *Pipeline) Run(ctx context.Context, records []models.GameFeatureRecord) (*artifact.Artifact, ValidationReport, error) {
	start := time.Now()

	p.setState(StateLoading)
	features, labels, err := p.loadMatrix(records)
	if err != nil {
		return nil, ValidationReport{}, p.fail(err)
	}

	folds, err := WalkForwardFolds(len(records), p.cfg.Folds)
	if err != nil {
		return nil, ValidationReport{}, p.fail(err)
	}

	p.logger.WithFields(logrus.Fields{
		"records": len(records),
		"folds":   len(folds),
	}).Info("Starting walk-forward cross-validation")

	p.setState(StateCrossValidating)
	foldMetrics, err := p.runFolds(ctx, folds, features, labels)
	if err != nil {
		return nil, ValidationReport{}, p.fail(err)
	}
	report := aggregateFolds(foldMetrics)

	p.logger.WithFields(logrus.Fields{
		"mean_log_loss": report.MeanLogLoss,
		"mean_accuracy": report.MeanAccuracy,
		"mean_auc":      report.MeanAUC,
	}).Info("Cross-validation complete, refitting on full sequence")

	p.setState(StateRefitting)
	if err := ctx.Err(); err != nil {
		return nil, report, p.fail(err)
	}
	final, err := FitLogistic(features, labels, p.cfg.Fit)
	if err != nil {
		return nil, report, p.fail(fmt.Errorf("final refit failed: %w", err))
	}

	art, err := p.buildArtifact(final, report)
	if err != nil {
		return nil, report, p.fail(err)
	}
	if err := p.store.Save(art); err != nil {
		return nil, report, p.fail(fmt.Errorf("failed to persist artifact: %w", err))
	}

	p.setState(StatePersisted)
	metrics.RecordTrainingRun("success")
	p.logger.WithFields(logrus.Fields{
		"artifact_id": art.ID,
		"duration":    time.Since(start).String(),
	}).Info("Training pipeline persisted new artifact")

	return art, report, nil
}

func (p *Pipeline) loadMatrix(records []models.GameFeatureRecord) ([][]float64, []float64, error) {
	if len(records) < p.cfg.Folds+1 {
		return nil, nil, models.InsufficientDataError{Records: len(records), Folds: p.cfg.Folds}
	}

	features := make([][]float64, len(records))
	labels := make([]float64, len(records))
	for i, r := range records {
		if err := r.Validate(p.cfg.Schema); err != nil {
			return nil, nil, err
		}
		features[i] = r.Features
		labels[i] = r.Label()
	}
	return features, labels, nil
}

// runFolds fits and scores every fold concurrently. Folds share no
// mutable state; all results are joined before aggregation.
func (p *Pipeline) runFolds(ctx context.Context, folds []Fold, features [][]float64, labels []float64) ([]FoldMetrics, error) {
	results := make([]FoldMetrics, len(folds))
	errs := make([]error, len(folds))

	var wg sync.WaitGroup
	for _, fold := range folds {
		wg.Add(1)
		go func(f Fold) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[f.Index] = err
				return
			}
			fm, err := p.scoreFold(f, features, labels)
			results[f.Index] = fm
			errs[f.Index] = err
		}(fold)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for _, fm := range results {
		p.logger.WithFields(logrus.Fields{
			"fold":     fm.Fold + 1,
			"log_loss": fm.LogLoss,
			"accuracy": fm.Accuracy,
			"auc":      fm.AUC,
		}).Debug("Fold scored")
	}
	return results, nil
}

func (p *Pipeline) scoreFold(f Fold, features [][]float64, labels []float64) (FoldMetrics, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveFoldDuration(time.Since(start).Seconds())
	}()

	model, err := FitLogistic(features[:f.TrainEnd], labels[:f.TrainEnd], p.cfg.Fit)
	if err != nil {
		return FoldMetrics{}, fmt.Errorf("fold %d fit failed: %w", f.Index+1, err)
	}

	valLabels := labels[f.ValStart:f.ValEnd]
	probs := make([]float64, f.ValEnd-f.ValStart)
	for i, row := range features[f.ValStart:f.ValEnd] {
		probs[i] = model.Predict(row)
	}

	logLoss, err := LogLoss(probs, valLabels)
	if err != nil {
		return FoldMetrics{}, fmt.Errorf("fold %d: %w", f.Index+1, err)
	}
	accuracy, err := Accuracy(probs, valLabels)
	if err != nil {
		return FoldMetrics{}, fmt.Errorf("fold %d: %w", f.Index+1, err)
	}
	auc, err := AUC(probs, valLabels)
	if err != nil {
		return FoldMetrics{}, fmt.Errorf("fold %d: %w", f.Index+1, err)
	}

	return FoldMetrics{
		Fold:           f.Index,
		TrainSize:      f.TrainEnd,
		ValidationSize: f.ValEnd - f.ValStart,
		LogLoss:        logLoss,
		Accuracy:       accuracy,
		AUC:            auc,
	}, nil
}

func (p *Pipeline) buildArtifact(model *LogisticModel, report ValidationReport) (*artifact.Artifact, error) {
	blob, err := model.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode predictor: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode validation report: %w", err)
	}

	return &artifact.Artifact{
		ID:            uuid.New(),
		SchemaVersion: artifact.CurrentSchemaVersion,
		ModelType:     "logistic_regression",
		FeatureNames:  append(models.FeatureSchema{}, p.cfg.Schema...),
		Importance:    model.Importance(),
		Metrics:       reportJSON,
		TrainedAt:     time.Now().UTC(),
		Predictor:     blob,
	}, nil
}
