package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/majisoubhik01/missingval/pkg/errors"
)

func TestMarkMissing(t *testing.T) {
	t.Run("sentinel replaced only in nullable columns", func(t *testing.T) {
		X := mat.NewDense(3, 3, []float64{
			0, 0, 5,
			1, 0, 0,
			2, 3, 4,
		})

		marked := MarkMissing(X, []int{1, 2}, 0)

		// column 0 untouched, zeros remain true zeros
		assert.Equal(t, 0.0, marked.At(0, 0))
		assert.Equal(t, 1.0, marked.At(1, 0))

		assert.True(t, IsMissing(marked.At(0, 1)))
		assert.True(t, IsMissing(marked.At(1, 1)))
		assert.True(t, IsMissing(marked.At(1, 2)))
		assert.Equal(t, 5.0, marked.At(0, 2))
		assert.Equal(t, 3.0, marked.At(2, 1))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		X := mat.NewDense(2, 2, []float64{0, 1, 0, 2})
		_ = MarkMissing(X, []int{0}, 0)
		assert.Equal(t, 0.0, X.At(0, 0))
		assert.Equal(t, 0.0, X.At(1, 0))
	})

	t.Run("row count invariant", func(t *testing.T) {
		X := mat.NewDense(4, 2, []float64{0, 1, 2, 0, 0, 0, 3, 4})
		marked := MarkMissing(X, []int{0, 1}, 0)
		r, c := marked.Dims()
		assert.Equal(t, 4, r)
		assert.Equal(t, 2, c)
	})

	t.Run("out of range nullable columns are ignored", func(t *testing.T) {
		X := mat.NewDense(2, 2, []float64{0, 1, 2, 3})
		marked := MarkMissing(X, []int{-1, 5}, 0)
		assert.Equal(t, 0.0, marked.At(0, 0))
	})
}

func TestCountMissing(t *testing.T) {
	t.Run("counts equal sentinel occurrences in nullable columns", func(t *testing.T) {
		X := mat.NewDense(4, 3, []float64{
			0, 0, 0,
			1, 0, 2,
			3, 4, 0,
			0, 0, 5,
		})
		nullable := []int{1, 2}

		counts := CountMissing(MarkMissing(X, nullable, 0))

		assert.Equal(t, map[int]int{1: 3, 2: 2}, counts)
		// column 0 is not nullable, so its zeros do not count
		_, present := counts[0]
		assert.False(t, present)
	})

	t.Run("marker-free matrix yields empty map", func(t *testing.T) {
		X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		assert.Empty(t, CountMissing(X))
	})
}

func TestDropIncompleteRows(t *testing.T) {
	t.Run("removes rows with any marker, preserves order", func(t *testing.T) {
		X := MarkMissing(mat.NewDense(4, 3, []float64{
			1, 2, 3,
			4, 0, 6,
			7, 8, 9,
			0, 1, 2,
		}), []int{0, 1}, 0)

		dropped := DropIncompleteRows(X)
		require.NotNil(t, dropped)

		r, c := dropped.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		assert.Equal(t, 1.0, dropped.At(0, 0))
		assert.Equal(t, 7.0, dropped.At(1, 0))
		assert.False(t, HasMissing(dropped))
	})

	t.Run("idempotent", func(t *testing.T) {
		X := MarkMissing(mat.NewDense(3, 2, []float64{1, 0, 2, 3, 0, 4}), []int{0, 1}, 0)

		once := DropIncompleteRows(X)
		twice := DropIncompleteRows(once)

		require.NotNil(t, once)
		require.NotNil(t, twice)
		assert.True(t, mat.Equal(once, twice))
	})

	t.Run("all rows incomplete yields nil and a warning", func(t *testing.T) {
		var warned error
		errors.SetWarningHandler(func(w error) { warned = w })
		defer errors.SetWarningHandler(func(w error) {})

		X := MarkMissing(mat.NewDense(2, 2, []float64{0, 1, 2, 0}), []int{0, 1}, 0)

		dropped := DropIncompleteRows(X)
		assert.Nil(t, dropped)

		var dw *errors.DegenerateDataWarning
		require.True(t, errors.As(warned, &dw))
		assert.Equal(t, 2, dw.Rows)
		assert.Equal(t, 0, dw.Kept)
	})

	t.Run("marker-free input passes through unchanged", func(t *testing.T) {
		X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		dropped := DropIncompleteRows(X)
		require.NotNil(t, dropped)
		assert.True(t, mat.Equal(X, dropped))
	})
}

func TestHasMissing(t *testing.T) {
	clean := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.False(t, HasMissing(clean))

	dirty := MarkMissing(mat.NewDense(2, 2, []float64{1, 0, 3, 4}), []int{1}, 0)
	assert.True(t, HasMissing(dirty))
}
