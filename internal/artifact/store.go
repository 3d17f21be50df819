// Package artifact persists the trained probability estimator as an
// immutable, versioned unit. The store is a pure persistence boundary
// with read-after-write consistency and no training logic.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/hoopsedge/internal/models"
)

// CurrentSchemaVersion is the artifact format version this store writes
// and accepts. Load fails fast on any other version before touching the
// predictor blob.
const CurrentSchemaVersion = 1

// Artifact bundles an opaque predictor blob with the ordered feature
// schema it was trained against and its feature-importance vector. A new
// training run produces a new artifact, never an in-place mutation.
type Artifact struct {
	ID            uuid.UUID            `json:"id"`
	SchemaVersion int                  `json:"schema_version"`
	ModelType     string               `json:"model_type"`
	FeatureNames  models.FeatureSchema `json:"feature_names"`
	Importance    []float64            `json:"importance"`
	Metrics       json.RawMessage      `json:"metrics,omitempty"`
	TrainedAt     time.Time            `json:"trained_at"`
	Predictor     json.RawMessage      `json:"predictor"`
}

// ImportanceEntry pairs a feature name with its importance weight.
type ImportanceEntry struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// RankedImportance returns the importance vector joined to feature names,
// sorted descending for reporting.
func (a *Artifact) RankedImportance() []ImportanceEntry {
	entries := make([]ImportanceEntry, 0, len(a.FeatureNames))
	for i, name := range a.FeatureNames {
		if i >= len(a.Importance) {
			break
		}
		entries = append(entries, ImportanceEntry{Feature: name, Importance: a.Importance[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Importance > entries[j].Importance
	})
	return entries
}

// Store reads and writes artifacts at a single named location.
type Store struct {
	path   string
	logger *logrus.Logger
}

// NewStore creates an artifact store backed by a file path.
func NewStore(path string, logger *logrus.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the artifact location.
func (s *Store) Path() string {
	return s.path
}

// Save atomically replaces the stored artifact: the new artifact is fully
// written to a temporary file and renamed into place, so a failed write
// leaves the previous artifact authoritative.
func (s *Store) Save(art *Artifact) error {
	if art == nil {
		return fmt.Errorf("artifact is required")
	}
	if len(art.FeatureNames) != len(art.Importance) {
		return fmt.Errorf("importance vector length %d does not match schema length %d", len(art.Importance), len(art.FeatureNames))
	}

	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".artifact-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close artifact file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace artifact: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"artifact_id": art.ID,
		"path":        s.path,
	}).Info("Artifact saved")
	return nil
}

// Load reads the stored artifact and verifies it against the schema the
// caller expects. The version tag is checked before the predictor blob is
// accepted; a schema disagreement fails with SchemaMismatchError.
func (s *Store) Load(expected models.FeatureSchema) (*Artifact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found at %s: %w", s.path, models.ErrModelUnavailable)
		}
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var version struct {
		SchemaVersion int `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &version); err != nil {
		return nil, fmt.Errorf("failed to parse artifact envelope: %w", err)
	}
	if version.SchemaVersion != CurrentSchemaVersion {
		return nil, fmt.Errorf("unsupported artifact schema version %d, expected %d", version.SchemaVersion, CurrentSchemaVersion)
	}

	art := &Artifact{}
	if err := json.Unmarshal(data, art); err != nil {
		return nil, fmt.Errorf("failed to parse artifact: %w", err)
	}

	if len(expected) > 0 && !art.FeatureNames.Equal(expected) {
		return nil, models.SchemaMismatchError{Expected: expected, Actual: art.FeatureNames}
	}
	return art, nil
}
