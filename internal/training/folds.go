package training

import (
	"github.com/yourusername/hoopsedge/internal/models"
)

// Fold describes one walk-forward split over a chronologically sorted
// sequence. The training slice is records[:TrainEnd] and the validation
// slice is records[ValStart:ValEnd]; TrainEnd == ValStart, so every
// training index is strictly earlier than every validation index.
type Fold struct {
	Index    int
	TrainEnd int
	ValStart int
	ValEnd   int
}

// WalkForwardFolds partitions n chronologically ordered records into k
// walk-forward folds. Each fold trains on a strict prefix and validates
// on the next contiguous block, so no fold ever sees future records.
func WalkForwardFolds(n, k int) ([]Fold, error) {
	if k <= 0 {
		k = DefaultFolds
	}
	valSize := n / (k + 1)
	if n == 0 || valSize == 0 {
		return nil, models.InsufficientDataError{Records: n, Folds: k}
	}

	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		valEnd := n - (k-1-i)*valSize
		folds[i] = Fold{
			Index:    i,
			TrainEnd: valEnd - valSize,
			ValStart: valEnd - valSize,
			ValEnd:   valEnd,
		}
	}
	return folds, nil
}
