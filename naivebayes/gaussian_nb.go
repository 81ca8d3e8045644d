// Package naivebayes implements the Gaussian naive Bayes classifier used
// as the downstream consumer in the missing-value demonstrations. It
// rejects input containing missing markers, which is exactly the failure
// the preprocessing pipeline exists to prevent.
package naivebayes

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/majisoubhik01/missingval/core/model"
	"github.com/majisoubhik01/missingval/metrics"
	"github.com/majisoubhik01/missingval/pkg/errors"
)

// GaussianNB is a Gaussian naive Bayes classifier: per-class feature
// likelihoods are modeled as independent normal distributions.
type GaussianNB struct {
	model.BaseEstimator

	// Classes holds the unique labels seen during Fit, sorted ascending.
	Classes []float64

	// Priors holds the empirical prior probability of each class.
	Priors []float64

	// Theta holds the per-class, per-feature means.
	Theta [][]float64

	// Sigma holds the per-class, per-feature variances after smoothing.
	Sigma [][]float64

	// NFeatures is the number of features seen during Fit.
	NFeatures int

	// VarSmoothing is added to every variance for numerical stability.
	VarSmoothing float64
}

// NewGaussianNB creates a GaussianNB with default smoothing.
func NewGaussianNB() *GaussianNB {
	return &GaussianNB{VarSmoothing: 1e-9}
}

// Fit estimates class priors and per-class feature distributions from the
// training data. y must be an n×1 matrix of class labels. Input containing
// missing markers is rejected with a ValueError.
func (g *GaussianNB) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("GaussianNB.Fit", "empty data", errors.ErrEmptyData)
	}

	yr, yc := y.Dims()
	if yc != 1 {
		return errors.NewValueError("GaussianNB.Fit", "y must be a column vector (n×1 matrix)")
	}
	if yr != r {
		return errors.NewDimensionError("GaussianNB.Fit", r, yr, 0)
	}

	if err := rejectMissing("GaussianNB.Fit", X); err != nil {
		return err
	}

	// Group sample indices by label.
	byClass := make(map[float64][]int)
	for i := 0; i < r; i++ {
		label := y.At(i, 0)
		byClass[label] = append(byClass[label], i)
	}

	classes := make([]float64, 0, len(byClass))
	for label := range byClass {
		classes = append(classes, label)
	}
	sort.Float64s(classes)

	g.Classes = classes
	g.NFeatures = c
	g.Priors = make([]float64, len(classes))
	g.Theta = make([][]float64, len(classes))
	g.Sigma = make([][]float64, len(classes))

	col := make([]float64, 0, r)
	for k, label := range classes {
		indices := byClass[label]
		g.Priors[k] = float64(len(indices)) / float64(r)
		g.Theta[k] = make([]float64, c)
		g.Sigma[k] = make([]float64, c)

		for j := 0; j < c; j++ {
			col = col[:0]
			for _, i := range indices {
				col = append(col, X.At(i, j))
			}
			mean, variance := stat.MeanVariance(col, nil)
			if len(col) < 2 {
				variance = 0
			}
			g.Theta[k][j] = mean
			g.Sigma[k][j] = variance + g.VarSmoothing
		}
	}

	g.SetFitted()
	return nil
}

// Predict returns the most probable class for each row of X as an n×1
// matrix. Input containing missing markers is rejected with a ValueError.
func (g *GaussianNB) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !g.IsFitted() {
		return nil, errors.NewNotFittedError("GaussianNB", "Predict")
	}

	r, c := X.Dims()
	if c != g.NFeatures {
		return nil, errors.NewDimensionError("GaussianNB.Predict", g.NFeatures, c, 1)
	}

	if err := rejectMissing("GaussianNB.Predict", X); err != nil {
		return nil, err
	}

	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		best := 0
		bestLL := math.Inf(-1)
		for k := range g.Classes {
			ll := math.Log(g.Priors[k])
			for j := 0; j < c; j++ {
				diff := X.At(i, j) - g.Theta[k][j]
				variance := g.Sigma[k][j]
				ll += -0.5*math.Log(2*math.Pi*variance) - diff*diff/(2*variance)
			}
			if ll > bestLL {
				bestLL = ll
				best = k
			}
		}
		out.Set(i, 0, g.Classes[best])
	}

	return out, nil
}

// Score returns the classification accuracy of the model on X against y.
func (g *GaussianNB) Score(X, y mat.Matrix) (float64, error) {
	pred, err := g.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// GetParams returns the classifier's parameters.
func (g *GaussianNB) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"var_smoothing": g.VarSmoothing,
	}
}

// String returns a string representation of the classifier.
func (g *GaussianNB) String() string {
	if !g.IsFitted() {
		return "GaussianNB()"
	}
	return fmt.Sprintf("GaussianNB(n_classes=%d, n_features=%d)", len(g.Classes), g.NFeatures)
}

// rejectMissing returns a ValueError when X contains a missing marker.
func rejectMissing(op string, X mat.Matrix) error {
	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsNaN(X.At(i, j)) {
				return errors.NewValueError(op, fmt.Sprintf("input contains a missing marker at row %d, column %d; drop or impute before fitting", i, j))
			}
		}
	}
	return nil
}
