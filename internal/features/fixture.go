package features

import (
	"time"

	"github.com/yourusername/hoopsedge/internal/models"
)

// FixtureSlate returns feature records for the built-in demo slate. Game
// IDs line up with the fixture quote source so the engine can run without
// live data.
func FixtureSlate() []models.GameFeatureRecord {
	tipoff := time.Now().UTC().Truncate(24 * time.Hour)
	rows := []struct {
		gameID   string
		matchup  string
		features []float64
	}{
		{"bos-mia", "Miami Heat @ Boston Celtics",
			[]float64{118.2, 110.4, 108.9, 112.6, 0.72, 0.55, 2, 1, 0.95, 0.88, 99.4, 0.381, 0.356, 1}},
		{"lal-gsw", "Golden State Warriors @ Los Angeles Lakers",
			[]float64{114.8, 113.9, 112.3, 113.5, 0.61, 0.58, 1, 2, 0.90, 0.92, 101.8, 0.368, 0.371, 1}},
		{"mil-phi", "Philadelphia 76ers @ Milwaukee Bucks",
			[]float64{116.5, 114.2, 111.7, 111.2, 0.58, 0.60, 2, 0, 0.93, 0.85, 100.2, 0.372, 0.365, 1}},
		{"den-phx", "Phoenix Suns @ Denver Nuggets",
			[]float64{117.9, 112.8, 109.5, 114.1, 0.75, 0.50, 3, 1, 0.97, 0.82, 98.7, 0.379, 0.352, 1}},
		{"dal-min", "Minnesota Timberwolves @ Dallas Mavericks",
			[]float64{115.6, 111.9, 112.8, 108.4, 0.62, 0.64, 1, 1, 0.91, 0.94, 99.9, 0.374, 0.362, 1}},
	}

	records := make([]models.GameFeatureRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.GameFeatureRecord{
			GameID:   r.gameID,
			Matchup:  r.matchup,
			PlayedAt: tipoff,
			Features: r.features,
		})
	}
	return records
}
