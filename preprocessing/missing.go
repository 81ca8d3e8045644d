// Package preprocessing implements missing-value handling for tabular
// numeric data: reinterpreting sentinel values as missing, diagnosing
// per-column missing counts, deleting incomplete rows, and statistical
// imputation.
//
// A missing cell is represented as NaN, a value no valid measurement can
// take, so marked data never confuses "true zero" with "absent". All
// operations are pure: they read their input matrix and return a new one.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/majisoubhik01/missingval/pkg/errors"
)

// Missing is the marker substituted for sentinel values in nullable
// columns. NaN is outside the domain of every valid measurement.
var Missing = math.NaN()

// IsMissing reports whether v is the missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Rows kept below this fraction of the input triggers a
// DegenerateDataWarning from DropIncompleteRows.
const degenerateFraction = 0.1

// MarkMissing returns a copy of X in which every cell equal to sentinel in
// the listed nullable columns is replaced by the missing marker. All other
// columns are untouched, so a column where the sentinel is a legitimate
// value (a pregnancy count of zero, say) must simply be left out of
// nullable.
func MarkMissing(X mat.Matrix, nullable []int, sentinel float64) *mat.Dense {
	r, c := X.Dims()

	out := mat.NewDense(r, c, nil)
	out.Copy(X)

	for _, j := range nullable {
		if j < 0 || j >= c {
			continue
		}
		for i := 0; i < r; i++ {
			if out.At(i, j) == sentinel {
				out.Set(i, j, Missing)
			}
		}
	}

	return out
}

// CountMissing returns the number of missing markers per column index.
// Columns without markers are omitted from the result. Diagnostic only;
// X is not modified.
func CountMissing(X mat.Matrix) map[int]int {
	r, c := X.Dims()

	counts := make(map[int]int)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if IsMissing(X.At(i, j)) {
				counts[j]++
			}
		}
	}

	return counts
}

// HasMissing reports whether X contains any missing marker.
func HasMissing(X mat.Matrix) bool {
	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if IsMissing(X.At(i, j)) {
				return true
			}
		}
	}
	return false
}

// DropIncompleteRows returns a copy of X without any row that contains a
// missing marker. Row order among kept rows is preserved and the result is
// marker-free. The operation is idempotent.
//
// Deleting rows gives no minimum-size guarantee: when every row carries a
// marker the result is nil, and a DegenerateDataWarning is emitted when
// the kept fraction is zero or near zero. Callers should check the result
// size and decide whether to fall back to imputation.
func DropIncompleteRows(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()

	var kept []int
	for i := 0; i < r; i++ {
		complete := true
		for j := 0; j < c; j++ {
			if IsMissing(X.At(i, j)) {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, i)
		}
	}

	if r > 0 && float64(len(kept)) < degenerateFraction*float64(r) {
		errors.Warn(errors.NewDegenerateDataWarning("DropIncompleteRows", r, len(kept)))
	}

	if len(kept) == 0 {
		return nil
	}

	out := mat.NewDense(len(kept), c, nil)
	for i, src := range kept {
		for j := 0; j < c; j++ {
			out.Set(i, j, X.At(src, j))
		}
	}

	return out
}
