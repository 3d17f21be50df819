package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateLabels indicates the label column contains a single class,
// which makes a probabilistic fit meaningless.
var ErrDegenerateLabels = errors.New("label column contains a single class")

// FitConfig holds the logistic regression hyperparameters.
type FitConfig struct {
	LearningRate float64
	Iterations   int
	L2Penalty    float64
}

// DefaultFitConfig returns the fit hyperparameters used when the caller
// does not override them.
func DefaultFitConfig() FitConfig {
	return FitConfig{
		LearningRate: 0.1,
		Iterations:   600,
		L2Penalty:    0.001,
	}
}

// LogisticModel is an L2-regularized logistic regression over
// standardized features. It maps a feature vector in schema order to a
// home-win probability in [0,1].
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Means   []float64 `json:"means"`
	Stds    []float64 `json:"stds"`
}

// FitLogistic fits a logistic regression by batch gradient descent.
// Features are standardized with the training slice's means and standard
// deviations, which are stored on the model so inference applies the same
// transform.
func FitLogistic(features [][]float64, labels []float64, cfg FitConfig) (*LogisticModel, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("no training rows")
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("feature rows %d do not match labels %d", len(features), len(labels))
	}
	if err := checkLabelVariance(labels); err != nil {
		return nil, err
	}
	if cfg.Iterations <= 0 {
		cfg = DefaultFitConfig()
	}

	dims := len(features[0])
	for i, row := range features {
		if len(row) != dims {
			return nil, fmt.Errorf("row %d has %d features, expected %d", i, len(row), dims)
		}
	}

	means, stds := standardization(features, dims)
	scaled := make([][]float64, len(features))
	for i, row := range features {
		s := make([]float64, dims)
		for j, v := range row {
			s[j] = (v - means[j]) / stds[j]
		}
		scaled[i] = s
	}

	model := &LogisticModel{
		Weights: make([]float64, dims),
		Means:   means,
		Stds:    stds,
	}

	n := float64(len(scaled))
	gradW := make([]float64, dims)
	for iter := 0; iter < cfg.Iterations; iter++ {
		for j := range gradW {
			gradW[j] = 0
		}
		gradB := 0.0
		for i, row := range scaled {
			err := sigmoid(dot(model.Weights, row)+model.Bias) - labels[i]
			for j, v := range row {
				gradW[j] += err * v
			}
			gradB += err
		}
		for j := range model.Weights {
			model.Weights[j] -= cfg.LearningRate * (gradW[j]/n + cfg.L2Penalty*model.Weights[j])
		}
		model.Bias -= cfg.LearningRate * gradB / n
	}

	return model, nil
}

// Predict returns the home-win probability for a feature vector in the
// model's schema order.
func (m *LogisticModel) Predict(features []float64) float64 {
	z := m.Bias
	for j, v := range features {
		z += m.Weights[j] * (v - m.Means[j]) / m.Stds[j]
	}
	return sigmoid(z)
}

// Importance returns a nonnegative weight per feature. Features are
// standardized before fitting, so the absolute weight magnitudes are
// directly comparable.
func (m *LogisticModel) Importance() []float64 {
	importance := make([]float64, len(m.Weights))
	for i, w := range m.Weights {
		importance[i] = math.Abs(w)
	}
	return importance
}

// Encode serializes the model as an opaque predictor blob for the
// artifact store.
func (m *LogisticModel) Encode() (json.RawMessage, error) {
	return json.Marshal(m)
}

// DecodeModel restores a model from an artifact's predictor blob.
func DecodeModel(blob json.RawMessage) (*LogisticModel, error) {
	var m LogisticModel
	if err := json.Unmarshal(blob, &m); err != nil {
		return nil, fmt.Errorf("failed to decode predictor blob: %w", err)
	}
	if len(m.Weights) == 0 || len(m.Weights) != len(m.Means) || len(m.Weights) != len(m.Stds) {
		return nil, fmt.Errorf("predictor blob has inconsistent dimensions")
	}
	return &m, nil
}

func checkLabelVariance(labels []float64) error {
	first := labels[0]
	for _, l := range labels[1:] {
		if l != first {
			return nil
		}
	}
	return ErrDegenerateLabels
}

func standardization(rows [][]float64, dims int) ([]float64, []float64) {
	means := make([]float64, dims)
	stds := make([]float64, dims)
	n := float64(len(rows))
	for _, row := range rows {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= n
	}
	for _, row := range rows {
		for j, v := range row {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / n)
		if stds[j] == 0 {
			stds[j] = 1
		}
	}
	return means, stds
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
