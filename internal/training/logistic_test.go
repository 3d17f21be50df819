package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableData builds a deterministic two-feature set where the label is
// decided by the sign of the first feature.
func separableData(n int) ([][]float64, []float64) {
	features := make([][]float64, n)
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i%7) - 3 // cycles through -3..3
		y := float64(i%5) / 5
		features[i] = []float64{x, y}
		if x > 0 {
			labels[i] = 1
		}
	}
	return features, labels
}

func TestFitLogisticLearnsSeparableData(t *testing.T) {
	features, labels := separableData(140)
	model, err := FitLogistic(features, labels, DefaultFitConfig())
	require.NoError(t, err)

	correct := 0
	for i, row := range features {
		p := model.Predict(row)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		if (p >= 0.5) == (labels[i] > 0.5) {
			correct++
		}
	}
	assert.Greater(t, float64(correct)/float64(len(features)), 0.95)
}

func TestFitLogisticDeterministic(t *testing.T) {
	features, labels := separableData(70)
	a, err := FitLogistic(features, labels, DefaultFitConfig())
	require.NoError(t, err)
	b, err := FitLogistic(features, labels, DefaultFitConfig())
	require.NoError(t, err)
	assert.Equal(t, a.Weights, b.Weights)
	assert.Equal(t, a.Bias, b.Bias)
}

func TestFitLogisticDegenerateLabels(t *testing.T) {
	features := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	labels := []float64{1, 1, 1}
	_, err := FitLogistic(features, labels, DefaultFitConfig())
	assert.ErrorIs(t, err, ErrDegenerateLabels)
}

func TestFitLogisticRejectsRaggedRows(t *testing.T) {
	features := [][]float64{{1, 2}, {3}}
	labels := []float64{1, 0}
	_, err := FitLogistic(features, labels, DefaultFitConfig())
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	features, labels := separableData(70)
	model, err := FitLogistic(features, labels, DefaultFitConfig())
	require.NoError(t, err)

	blob, err := model.Encode()
	require.NoError(t, err)
	decoded, err := DecodeModel(blob)
	require.NoError(t, err)

	// bit-identical predictions after the round trip
	for _, row := range features[:10] {
		assert.Equal(t, model.Predict(row), decoded.Predict(row))
	}
}

func TestDecodeModelRejectsInconsistentBlob(t *testing.T) {
	_, err := DecodeModel([]byte(`{"weights":[1,2],"means":[0],"stds":[1]}`))
	assert.Error(t, err)
	_, err = DecodeModel([]byte(`not json`))
	assert.Error(t, err)
}

func TestImportanceNonnegative(t *testing.T) {
	features, labels := separableData(70)
	model, err := FitLogistic(features, labels, DefaultFitConfig())
	require.NoError(t, err)
	for _, v := range model.Importance() {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	// the first feature decides the label, so it dominates
	imp := model.Importance()
	assert.Greater(t, imp[0], imp[1])
}
