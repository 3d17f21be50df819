// Package features loads game feature records from the historical data
// provider's CSV exports.
package features

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/yourusername/hoopsedge/internal/models"
)

const dateLayout = "2006-01-02"

// CSVSource reads feature records with the fixed schema from a CSV file.
// Metadata columns (game_id, game_date, matchup) may appear anywhere, but
// the feature columns must match the schema's names and order exactly.
type CSVSource struct {
	path   string
	schema models.FeatureSchema
}

// NewCSVSource creates a CSV-backed feature record source.
func NewCSVSource(path string, schema models.FeatureSchema) *CSVSource {
	if len(schema) == 0 {
		schema = models.DefaultFeatureSchema()
	}
	return &CSVSource{path: path, schema: schema}
}

// LoadTraining reads labeled historical records sorted by game date
// ascending. The home_win column is required.
func (s *CSVSource) LoadTraining() ([]models.GameFeatureRecord, error) {
	return s.load(true)
}

// LoadSlate reads unlabeled records for upcoming games.
func (s *CSVSource) LoadSlate() ([]models.GameFeatureRecord, error) {
	return s.load(false)
}

func (s *CSVSource) load(labeled bool) ([]models.GameFeatureRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feature file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols, err := s.mapColumns(header, labeled)
	if err != nil {
		return nil, err
	}

	var records []models.GameFeatureRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		record, err := cols.parse(row, s.schema, labeled)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PlayedAt.Before(records[j].PlayedAt)
	})
	return records, nil
}

type columnMap struct {
	gameID   int
	gameDate int
	matchup  int
	homeWin  int
	features []int
}

func (s *CSVSource) mapColumns(header []string, labeled bool) (columnMap, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	cols := columnMap{gameID: -1, gameDate: -1, matchup: -1, homeWin: -1}
	if i, ok := index["game_id"]; ok {
		cols.gameID = i
	}
	if i, ok := index["game_date"]; ok {
		cols.gameDate = i
	}
	if i, ok := index["matchup"]; ok {
		cols.matchup = i
	}
	if i, ok := index["home_win"]; ok {
		cols.homeWin = i
	}
	if labeled && cols.homeWin < 0 {
		return cols, fmt.Errorf("training csv is missing the home_win label column")
	}

	// The feature columns must be present and in schema order. Silently
	// reindexing a shuffled file would mask a schema versioning bug.
	actual := make(models.FeatureSchema, 0, len(s.schema))
	schemaNames := make(map[string]bool, len(s.schema))
	for _, name := range s.schema {
		schemaNames[name] = true
	}
	for _, name := range header {
		if schemaNames[name] {
			actual = append(actual, name)
		}
	}
	if !actual.Equal(s.schema) {
		return cols, models.SchemaMismatchError{Expected: s.schema, Actual: actual}
	}

	cols.features = make([]int, len(s.schema))
	for i, name := range s.schema {
		cols.features[i] = index[name]
	}
	return cols, nil
}

func (c columnMap) parse(row []string, schema models.FeatureSchema, labeled bool) (models.GameFeatureRecord, error) {
	record := models.GameFeatureRecord{
		Features: make([]float64, len(schema)),
	}

	if c.gameID >= 0 && c.gameID < len(row) {
		record.GameID = row[c.gameID]
	}
	if c.matchup >= 0 && c.matchup < len(row) {
		record.Matchup = row[c.matchup]
	}
	if c.gameDate >= 0 && c.gameDate < len(row) {
		t, err := time.Parse(dateLayout, row[c.gameDate])
		if err != nil {
			return record, fmt.Errorf("invalid game_date %q: %w", row[c.gameDate], err)
		}
		record.PlayedAt = t
	}

	for i, col := range c.features {
		if col >= len(row) {
			return record, fmt.Errorf("row has no value for feature %s", schema[i])
		}
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return record, fmt.Errorf("feature %s has non-numeric value %q", schema[i], row[col])
		}
		record.Features[i] = v
	}

	if labeled {
		v, err := strconv.ParseFloat(row[c.homeWin], 64)
		if err != nil {
			return record, fmt.Errorf("home_win has non-numeric value %q", row[c.homeWin])
		}
		record.HomeWin = v >= 0.5
	}
	return record, nil
}
