// Package main provides the edge-finder CLI: it loads the trained model,
// pulls the latest quote set, and prints ranked betting opportunities.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/hoopsedge/internal/artifact"
	"github.com/yourusername/hoopsedge/internal/config"
	"github.com/yourusername/hoopsedge/internal/features"
	"github.com/yourusername/hoopsedge/internal/logger"
	"github.com/yourusername/hoopsedge/internal/models"
	"github.com/yourusername/hoopsedge/internal/ops"
	"github.com/yourusername/hoopsedge/internal/quotes"
	"github.com/yourusername/hoopsedge/internal/service"
	"github.com/yourusername/hoopsedge/internal/training"
)

var (
	configFile string
	sourceName string
	slatePath  string
	bankroll   float64
	asJSON     bool
	watch      bool
	interval   time.Duration

	appLogger *logrus.Logger
	cfg       *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVar(&sourceName, "source", "fixture", "Quote source: live or fixture")
	rootCmd.Flags().StringVar(&slatePath, "slate", "", "Path to upcoming-games feature CSV (fixture slate when omitted)")
	rootCmd.Flags().Float64Var(&bankroll, "bankroll", 0, "Override configured bankroll")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Emit opportunities as JSON for the dashboard")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Keep running and re-evaluate on an interval")
	rootCmd.Flags().DurationVar(&interval, "interval", 5*time.Minute, "Re-evaluation interval in watch mode")
}

var rootCmd = &cobra.Command{
	Use:   "edges",
	Short: "Find betting opportunities with a positive edge",
	Long:  `Compares the trained model's win probabilities against the latest bookmaker quotes and prints opportunities above the minimum edge threshold, ranked by edge.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(loaded); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return findEdges(cmd.Context())
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func findEdges(ctx context.Context) error {
	schema := models.DefaultFeatureSchema()
	store := artifact.NewStore(cfg.Artifact.Path, appLogger)
	art, err := store.Load(schema)
	if err != nil {
		return fmt.Errorf("failed to load model artifact: %w", err)
	}
	model, err := training.DecodeModel(art.Predictor)
	if err != nil {
		return err
	}
	appLogger.WithFields(logrus.Fields{
		"artifact_id": art.ID,
		"trained_at":  art.TrainedAt,
	}).Info("Model artifact loaded")

	source, pool, cleanup, err := buildQuoteSource(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	slate, err := loadSlate(schema)
	if err != nil {
		return err
	}

	if bankroll <= 0 {
		bankroll = cfg.Engine.Bankroll
	}
	svc := service.NewEdgeService(service.Config{
		MinimumEdgePercent: cfg.Engine.MinimumEdgePercent,
		KellyFraction:      cfg.Engine.KellyFraction,
		Bankroll:           decimal.NewFromFloat(bankroll),
	}, source, appLogger)
	svc.SetModel(art, model)

	if watch {
		return watchEdges(ctx, svc, slate, pool)
	}

	runCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	return evaluateOnce(runCtx, svc, slate)
}

// watchEdges re-evaluates the slate on a fixed interval until interrupted,
// serving metrics and health endpoints for the duration.
func watchEdges(ctx context.Context, svc *service.EdgeService, slate []models.GameFeatureRecord, pool *pgxpool.Pool) error {
	if cfg.Metrics.Enabled {
		var pinger ops.Pinger
		if pool != nil {
			pinger = pool
		}
		server := ops.NewServer(ops.Config{
			ServiceName: cfg.App.Name,
			Port:        cfg.Metrics.Port,
			MetricsPath: cfg.Metrics.Path,
			Logger:      appLogger,
			Pinger:      pinger,
		})
		server.Start(ctx)
		server.SetReady(true)
	}

	if err := evaluateOnce(ctx, svc, slate); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			appLogger.Info("Watch mode stopping")
			return nil
		case <-ticker.C:
			if err := evaluateOnce(ctx, svc, slate); err != nil {
				appLogger.WithError(err).Error("Evaluation pass failed")
			}
		}
	}
}

func evaluateOnce(ctx context.Context, svc *service.EdgeService, slate []models.GameFeatureRecord) error {
	opportunities, err := svc.FindOpportunities(ctx, slate)
	if err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(opportunities)
	}
	printReport(opportunities)
	return nil
}

func buildQuoteSource(ctx context.Context) (quotes.QuoteSource, *pgxpool.Pool, func(), error) {
	switch sourceName {
	case "fixture":
		return quotes.NewFixtureQuoteSource(), nil, func() {}, nil
	case "live":
		if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
			region := os.Getenv("AWS_REGION")
			secretName := os.Getenv("AWS_SECRET_NAME")
			if region == "" || secretName == "" {
				return nil, nil, nil, fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
			}
			if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
				return nil, nil, nil, fmt.Errorf("failed to load secrets: %w", err)
			}
		}
		pool, err := pgxpool.New(ctx, cfg.GetQuoteDatabaseDSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to quote database: %w", err)
		}
		return quotes.NewLiveQuoteSource(pool), pool, pool.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown quote source %q, want live or fixture", sourceName)
	}
}

func loadSlate(schema models.FeatureSchema) ([]models.GameFeatureRecord, error) {
	if slatePath == "" {
		return features.FixtureSlate(), nil
	}
	return features.NewCSVSource(slatePath, schema).LoadSlate()
}

func printReport(opportunities []models.BettingOpportunity) {
	if len(opportunities) == 0 {
		fmt.Println("No opportunities found with sufficient edge")
		return
	}

	fmt.Printf("Found %d opportunities\n\n", len(opportunities))
	for _, opp := range opportunities {
		fmt.Printf("%s\n", opp.Matchup)
		fmt.Printf("  Confidence:         %s\n", opp.Confidence)
		fmt.Printf("  Our probability:    %.1f%%\n", opp.OurProbability*100)
		fmt.Printf("  Market probability: %.1f%%\n", opp.MarketProbability*100)
		fmt.Printf("  Edge:               %+.1f%%\n", opp.EdgePercent)
		fmt.Printf("  Odds:               %+d (%s)\n", opp.Quote.AmericanOdds, opp.Quote.Bookmaker)
		fmt.Printf("  Expected value:     %+.1f%%\n", opp.ExpectedValue)
		fmt.Printf("  Kelly stake:        %.2f%% of bankroll (%s)\n\n", opp.StakeFraction*100, opp.StakeAmount)
	}
}
