// Package modelselection provides k-fold data splitting and cross-validated
// scoring for classifiers. It exists to reproduce the evaluation harness the
// missing-value demonstrations use: score a model on cleaned data, fold by
// fold, and summarize.
package modelselection

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/majisoubhik01/missingval/core/model"
	"github.com/majisoubhik01/missingval/pkg/errors"
)

// Splitter generates train/test index partitions of a dataset.
type Splitter interface {
	Split(X, y mat.Matrix) []Fold
	NSplits() int
}

// Fold is a single train/test partition.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold partitions samples into k consecutive folds, optionally shuffled
// with a deterministic seed.
type KFold struct {
	K          int
	Shuffle    bool
	RandomSeed int
}

// NewKFold creates a k-fold splitter. Fewer than two splits falls back to
// the default of five.
func NewKFold(k int, shuffle bool, randomSeed int) *KFold {
	if k < 2 {
		k = 5
	}
	return &KFold{K: k, Shuffle: shuffle, RandomSeed: randomSeed}
}

// NSplits returns the number of folds.
func (kf *KFold) NSplits() int {
	return kf.K
}

// Split generates train/test indices for each fold. Every sample lands in
// exactly one test fold; uneven remainders go to the earlier folds.
func (kf *KFold) Split(X, _ mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.RandomSeed), uint64(kf.RandomSeed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.K)
	foldSize := nSamples / kf.K
	remainder := nSamples % kf.K

	start := 0
	for f := 0; f < kf.K; f++ {
		testSize := foldSize
		if f < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[start:start+testSize])

		trainIndices := make([]int, 0, nSamples-testSize)
		trainIndices = append(trainIndices, indices[:start]...)
		trainIndices = append(trainIndices, indices[start+testSize:]...)

		folds[f] = Fold{TrainIndices: trainIndices, TestIndices: testIndices}
		start += testSize
	}

	return folds
}

// CVResult stores per-fold cross-validation scores.
type CVResult struct {
	TestScores []float64
}

// MeanScore returns the mean test score across folds.
func (cv *CVResult) MeanScore() float64 {
	if len(cv.TestScores) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range cv.TestScores {
		sum += s
	}
	return sum / float64(len(cv.TestScores))
}

// StdScore returns the sample standard deviation of the test scores.
func (cv *CVResult) StdScore() float64 {
	if len(cv.TestScores) <= 1 {
		return 0
	}

	mean := cv.MeanScore()
	sumSq := 0.0
	for _, s := range cv.TestScores {
		diff := s - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(cv.TestScores)-1))
}

// CrossValidateClassifier trains and scores a fresh classifier per fold.
// newClassifier must return an independent instance each call; folds run
// concurrently. The first fold error aborts the whole run.
func CrossValidateClassifier(newClassifier func() model.Classifier, X, y mat.Matrix, splitter Splitter) (*CVResult, error) {
	folds := splitter.Split(X, y)

	result := &CVResult{TestScores: make([]float64, len(folds))}
	foldErrs := make([]error, len(folds))

	var wg sync.WaitGroup
	for foldIdx := range folds {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			fold := folds[idx]
			trainX, trainY := subset(X, y, fold.TrainIndices)
			testX, testY := subset(X, y, fold.TestIndices)

			clf := newClassifier()
			if err := clf.Fit(trainX, trainY); err != nil {
				foldErrs[idx] = errors.Wrapf(err, "fold %d training failed", idx)
				return
			}

			score, err := clf.Score(testX, testY)
			if err != nil {
				foldErrs[idx] = errors.Wrapf(err, "fold %d scoring failed", idx)
				return
			}
			result.TestScores[idx] = score
		}(foldIdx)
	}
	wg.Wait()

	for _, err := range foldErrs {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// subset extracts the rows of X and y selected by indices, in ascending
// row order.
func subset(X, y mat.Matrix, indices []int) (mat.Matrix, mat.Matrix) {
	rows := len(indices)
	_, xCols := X.Dims()
	_, yCols := y.Dims()

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	xSub := mat.NewDense(rows, xCols, nil)
	ySub := mat.NewDense(rows, yCols, nil)

	for i, idx := range sorted {
		for j := 0; j < xCols; j++ {
			xSub.Set(i, j, X.At(idx, j))
		}
		for j := 0; j < yCols; j++ {
			ySub.Set(i, j, y.At(idx, j))
		}
	}

	return xSub, ySub
}
