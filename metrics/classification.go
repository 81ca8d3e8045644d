// Package metrics implements evaluation metrics for classification models.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/majisoubhik01/missingval/pkg/errors"
)

// Accuracy computes the fraction of predictions equal to the true labels.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// AccuracyMatrix computes accuracy for n×1 matrix inputs.
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}

	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}

	if cTrue != 1 {
		return 0, errors.NewValueError("AccuracyMatrix", "must be a column vector (n×1 matrix)")
	}

	correct := 0
	for i := 0; i < rTrue; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}

	return float64(correct) / float64(rTrue), nil
}
