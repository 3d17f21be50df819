package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hoopsedge/internal/models"
)

func TestWalkForwardFoldsNoLeakage(t *testing.T) {
	folds, err := WalkForwardFolds(120, 5)
	require.NoError(t, err)
	require.Len(t, folds, 5)

	for _, f := range folds {
		// every training index strictly precedes every validation index
		assert.Equal(t, f.TrainEnd, f.ValStart, "fold %d", f.Index)
		assert.Greater(t, f.TrainEnd, 0, "fold %d has empty training slice", f.Index)
		assert.Greater(t, f.ValEnd, f.ValStart, "fold %d has empty validation slice", f.Index)
	}

	// validation blocks advance chronologically and the last ends at n
	for i := 1; i < len(folds); i++ {
		assert.Equal(t, folds[i-1].ValEnd, folds[i].ValStart)
	}
	assert.Equal(t, 120, folds[len(folds)-1].ValEnd)
}

func TestWalkForwardFoldsMinimumData(t *testing.T) {
	// n = k+1 is the smallest valid input: one validation record per fold
	folds, err := WalkForwardFolds(6, 5)
	require.NoError(t, err)
	require.Len(t, folds, 5)
	assert.Equal(t, 1, folds[0].TrainEnd)
	assert.Equal(t, 6, folds[4].ValEnd)
}

func TestWalkForwardFoldsInsufficientData(t *testing.T) {
	var insufficientErr models.InsufficientDataError

	_, err := WalkForwardFolds(5, 5)
	require.Error(t, err)
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 5, insufficientErr.Records)
	assert.Equal(t, 5, insufficientErr.Folds)

	_, err = WalkForwardFolds(0, 5)
	assert.ErrorAs(t, err, &insufficientErr)
}

func TestWalkForwardFoldsDefaultCount(t *testing.T) {
	folds, err := WalkForwardFolds(100, 0)
	require.NoError(t, err)
	assert.Len(t, folds, DefaultFolds)
}
