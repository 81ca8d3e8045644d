package naivebayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/majisoubhik01/missingval/pkg/errors"
	"github.com/majisoubhik01/missingval/preprocessing"
)

// twoBlobs builds a tiny linearly separated dataset: class 0 clustered
// near the origin, class 1 clustered near (10, 10).
func twoBlobs() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(8, 2, []float64{
		0.0, 0.2,
		0.5, 0.1,
		0.2, 0.4,
		0.1, 0.3,
		10.0, 10.2,
		10.5, 9.8,
		9.8, 10.1,
		10.2, 9.9,
	})
	y := mat.NewDense(8, 1, []float64{0, 0, 0, 0, 1, 1, 1, 1})
	return X, y
}

func TestGaussianNBFitPredict(t *testing.T) {
	t.Run("separable classes are recovered", func(t *testing.T) {
		X, y := twoBlobs()

		clf := NewGaussianNB()
		require.NoError(t, clf.Fit(X, y))

		pred, err := clf.Predict(X)
		require.NoError(t, err)
		assert.True(t, mat.Equal(y, pred))

		acc, err := clf.Score(X, y)
		require.NoError(t, err)
		assert.Equal(t, 1.0, acc)
	})

	t.Run("new points classified by proximity", func(t *testing.T) {
		X, y := twoBlobs()

		clf := NewGaussianNB()
		require.NoError(t, clf.Fit(X, y))

		probe := mat.NewDense(2, 2, []float64{
			0.3, 0.3,
			9.9, 10.0,
		})
		pred, err := clf.Predict(probe)
		require.NoError(t, err)

		assert.Equal(t, 0.0, pred.At(0, 0))
		assert.Equal(t, 1.0, pred.At(1, 0))
	})

	t.Run("classes sorted and priors empirical", func(t *testing.T) {
		X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
		y := mat.NewDense(4, 1, []float64{1, 0, 1, 1})

		clf := NewGaussianNB()
		require.NoError(t, clf.Fit(X, y))

		assert.Equal(t, []float64{0, 1}, clf.Classes)
		assert.InDelta(t, 0.25, clf.Priors[0], 1e-12)
		assert.InDelta(t, 0.75, clf.Priors[1], 1e-12)
	})
}

func TestGaussianNBRejectsMissing(t *testing.T) {
	// The demonstration scenario: a classifier fed marked-but-uncleaned
	// data fails loudly instead of training on markers.
	X := preprocessing.MarkMissing(mat.NewDense(4, 2, []float64{
		1, 0,
		2, 3,
		4, 5,
		6, 7,
	}), []int{1}, 0)
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	clf := NewGaussianNB()
	err := clf.Fit(X, y)
	require.Error(t, err)

	var ve *errors.ValueError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), "missing marker")

	// After imputation the same data fits cleanly.
	cleaned, err := preprocessing.Impute(X, preprocessing.StrategyMean)
	require.NoError(t, err)
	assert.NoError(t, clf.Fit(cleaned, y))
}

func TestGaussianNBErrors(t *testing.T) {
	t.Run("predict before fit", func(t *testing.T) {
		clf := NewGaussianNB()
		_, err := clf.Predict(mat.NewDense(1, 2, []float64{1, 2}))

		var nfe *errors.NotFittedError
		require.True(t, errors.As(err, &nfe))
	})

	t.Run("label shape mismatch", func(t *testing.T) {
		clf := NewGaussianNB()
		X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
		y := mat.NewDense(2, 1, []float64{0, 1})

		var de *errors.DimensionError
		require.True(t, errors.As(clf.Fit(X, y), &de))
	})

	t.Run("feature count mismatch at predict", func(t *testing.T) {
		X, y := twoBlobs()
		clf := NewGaussianNB()
		require.NoError(t, clf.Fit(X, y))

		_, err := clf.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}))

		var de *errors.DimensionError
		require.True(t, errors.As(err, &de))
	})
}
