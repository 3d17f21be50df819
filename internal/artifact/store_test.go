package artifact_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hoopsedge/internal/artifact"
	"github.com/yourusername/hoopsedge/internal/logger"
	"github.com/yourusername/hoopsedge/internal/models"
	"github.com/yourusername/hoopsedge/internal/training"
)

var testSchema = models.FeatureSchema{"x", "y"}

func fittedModel(t *testing.T) *training.LogisticModel {
	t.Helper()
	features := make([][]float64, 60)
	labels := make([]float64, 60)
	for i := range features {
		x := float64(i%9) - 4
		features[i] = []float64{x, float64(i % 3)}
		if x > 0 {
			labels[i] = 1
		}
	}
	model, err := training.FitLogistic(features, labels, training.DefaultFitConfig())
	require.NoError(t, err)
	return model
}

func newArtifact(t *testing.T, model *training.LogisticModel) *artifact.Artifact {
	t.Helper()
	blob, err := model.Encode()
	require.NoError(t, err)
	return &artifact.Artifact{
		ID:            uuid.New(),
		SchemaVersion: artifact.CurrentSchemaVersion,
		ModelType:     "logistic_regression",
		FeatureNames:  testSchema,
		Importance:    model.Importance(),
		TrainedAt:     time.Now().UTC(),
		Predictor:     blob,
	}
}

func newStore(t *testing.T) *artifact.Store {
	t.Helper()
	return artifact.NewStore(filepath.Join(t.TempDir(), "model.json"), logger.NewLogger("error"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newStore(t)
	model := fittedModel(t)
	art := newArtifact(t, model)

	require.NoError(t, store.Save(art))

	loaded, err := store.Load(testSchema)
	require.NoError(t, err)
	assert.Equal(t, art.ID, loaded.ID)
	assert.True(t, loaded.FeatureNames.Equal(testSchema))

	restored, err := training.DecodeModel(loaded.Predictor)
	require.NoError(t, err)

	// a fixed test vector must predict bit-identically after the trip
	probe := []float64{2.5, 1.0}
	assert.Equal(t, model.Predict(probe), restored.Predict(probe))
}

func TestLoadMissingArtifact(t *testing.T) {
	store := newStore(t)
	_, err := store.Load(testSchema)
	assert.ErrorIs(t, err, models.ErrModelUnavailable)
}

func TestLoadSchemaMismatch(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Save(newArtifact(t, fittedModel(t))))

	var mismatchErr models.SchemaMismatchError

	_, err := store.Load(models.FeatureSchema{"y", "x"})
	require.ErrorAs(t, err, &mismatchErr)

	_, err = store.Load(models.FeatureSchema{"x", "y", "z"})
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	store := newStore(t)
	art := newArtifact(t, fittedModel(t))
	art.SchemaVersion = artifact.CurrentSchemaVersion + 1

	data, err := json.Marshal(art)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), data, 0o644))

	_, err = store.Load(testSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version")
}

func TestSaveRejectsMismatchedImportance(t *testing.T) {
	store := newStore(t)
	art := newArtifact(t, fittedModel(t))
	art.Importance = []float64{1}
	assert.Error(t, store.Save(art))
}

func TestSaveReplacesAtomically(t *testing.T) {
	store := newStore(t)
	first := newArtifact(t, fittedModel(t))
	require.NoError(t, store.Save(first))

	second := newArtifact(t, fittedModel(t))
	require.NoError(t, store.Save(second))

	loaded, err := store.Load(testSchema)
	require.NoError(t, err)
	assert.Equal(t, second.ID, loaded.ID)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRankedImportanceSortedDescending(t *testing.T) {
	art := newArtifact(t, fittedModel(t))
	ranked := art.RankedImportance()
	require.Len(t, ranked, len(testSchema))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Importance, ranked[i].Importance)
	}
}
