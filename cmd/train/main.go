// Package main provides the entry point for the model training CLI.
package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/hoopsedge/internal/artifact"
	"github.com/yourusername/hoopsedge/internal/config"
	"github.com/yourusername/hoopsedge/internal/features"
	"github.com/yourusername/hoopsedge/internal/logger"
	"github.com/yourusername/hoopsedge/internal/models"
	"github.com/yourusername/hoopsedge/internal/training"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		dataPath   = flag.String("data", "data/historical_games.csv", "Path to labeled historical games CSV")
		folds      = flag.Int("folds", 0, "Override walk-forward fold count")
		output     = flag.String("output", "", "Override artifact output path")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.App.LogLevel)
	ctx := context.Background()

	if *folds > 0 {
		cfg.Training.Folds = *folds
	}
	artifactPath := cfg.Artifact.Path
	if *output != "" {
		artifactPath = *output
	}

	source := features.NewCSVSource(*dataPath, models.DefaultFeatureSchema())
	records, err := source.LoadTraining()
	if err != nil {
		log.Fatalf("Failed to load training data: %v", err)
	}
	log.WithField("records", len(records)).Info("Training data loaded")

	store := artifact.NewStore(artifactPath, log)
	pipeline := training.NewPipeline(training.Config{
		Folds:  cfg.Training.Folds,
		Schema: models.DefaultFeatureSchema(),
		Fit: training.FitConfig{
			LearningRate: cfg.Training.LearningRate,
			Iterations:   cfg.Training.Iterations,
			L2Penalty:    cfg.Training.L2Penalty,
		},
	}, store, log)

	art, report, err := pipeline.Run(ctx, records)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	for _, fold := range report.Folds {
		log.WithFields(logrus.Fields{
			"fold":     fold.Fold + 1,
			"log_loss": fold.LogLoss,
			"accuracy": fold.Accuracy,
			"auc":      fold.AUC,
		}).Info("Fold result")
	}
	log.WithFields(logrus.Fields{
		"mean_log_loss": report.MeanLogLoss,
		"mean_accuracy": report.MeanAccuracy,
		"mean_auc":      report.MeanAUC,
	}).Info("Cross-validation summary")

	for _, entry := range art.RankedImportance() {
		log.WithFields(logrus.Fields{
			"feature":    entry.Feature,
			"importance": entry.Importance,
		}).Info("Feature importance")
	}
	log.WithField("path", artifactPath).Info("Training complete")
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}
