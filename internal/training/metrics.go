package training

import (
	"fmt"
	"math"
	"sort"
)

// FoldMetrics holds the validation scores for one walk-forward fold.
type FoldMetrics struct {
	Fold           int     `json:"fold"`
	TrainSize      int     `json:"train_size"`
	ValidationSize int     `json:"validation_size"`
	LogLoss        float64 `json:"log_loss"`
	Accuracy       float64 `json:"accuracy"`
	AUC            float64 `json:"auc"`
}

// ValidationReport aggregates per-fold metrics by arithmetic mean to
// estimate expected generalization quality.
type ValidationReport struct {
	Folds        []FoldMetrics `json:"folds"`
	MeanLogLoss  float64       `json:"mean_log_loss"`
	MeanAccuracy float64       `json:"mean_accuracy"`
	MeanAUC      float64       `json:"mean_auc"`
}

func aggregateFolds(folds []FoldMetrics) ValidationReport {
	report := ValidationReport{Folds: folds}
	if len(folds) == 0 {
		return report
	}
	for _, f := range folds {
		report.MeanLogLoss += f.LogLoss
		report.MeanAccuracy += f.Accuracy
		report.MeanAUC += f.AUC
	}
	n := float64(len(folds))
	report.MeanLogLoss /= n
	report.MeanAccuracy /= n
	report.MeanAUC /= n
	return report
}

const logLossEpsilon = 1e-15

// LogLoss computes the negative mean log-likelihood of the labels under
// the predicted probabilities. Probabilities are clipped away from 0 and
// 1 to keep the result finite.
func LogLoss(probs, labels []float64) (float64, error) {
	if len(probs) == 0 || len(probs) != len(labels) {
		return 0, fmt.Errorf("log loss requires matching non-empty slices, got %d probs and %d labels", len(probs), len(labels))
	}
	sum := 0.0
	for i, p := range probs {
		p = math.Min(math.Max(p, logLossEpsilon), 1-logLossEpsilon)
		if labels[i] > 0.5 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(len(probs)), nil
}

// Accuracy computes classification accuracy at the 0.5 threshold.
func Accuracy(probs, labels []float64) (float64, error) {
	if len(probs) == 0 || len(probs) != len(labels) {
		return 0, fmt.Errorf("accuracy requires matching non-empty slices, got %d probs and %d labels", len(probs), len(labels))
	}
	correct := 0
	for i, p := range probs {
		predicted := p >= 0.5
		actual := labels[i] > 0.5
		if predicted == actual {
			correct++
		}
	}
	return float64(correct) / float64(len(probs)), nil
}

// AUC computes the area under the ROC curve via the rank-sum
// (Mann-Whitney) statistic with midrank tie handling.
func AUC(probs, labels []float64) (float64, error) {
	if len(probs) == 0 || len(probs) != len(labels) {
		return 0, fmt.Errorf("auc requires matching non-empty slices, got %d probs and %d labels", len(probs), len(labels))
	}

	positives := 0
	for _, l := range labels {
		if l > 0.5 {
			positives++
		}
	}
	negatives := len(labels) - positives
	if positives == 0 || negatives == 0 {
		return 0, fmt.Errorf("auc undefined for single-class validation slice")
	}

	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return probs[order[a]] < probs[order[b]] })

	ranks := make([]float64, len(probs))
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && probs[order[j]] == probs[order[i]] {
			j++
		}
		midrank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[order[k]] = midrank
		}
		i = j
	}

	rankSum := 0.0
	for i, l := range labels {
		if l > 0.5 {
			rankSum += ranks[i]
		}
	}
	np := float64(positives)
	nn := float64(negatives)
	return (rankSum - np*(np+1)/2.0) / (np * nn), nil
}
