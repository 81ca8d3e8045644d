package preprocessing

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/majisoubhik01/missingval/core/model"
	"github.com/majisoubhik01/missingval/pkg/errors"
)

// Strategy selects the per-column statistic an imputer substitutes for
// missing markers.
type Strategy string

const (
	// StrategyMean substitutes the arithmetic mean of the observed values.
	StrategyMean Strategy = "mean"
	// StrategyMedian substitutes the median of the observed values.
	StrategyMedian Strategy = "median"
	// StrategyMostFrequent substitutes the most frequent observed value.
	// Ties break toward the smallest value, which keeps the result
	// deterministic.
	StrategyMostFrequent Strategy = "most_frequent"
)

// SimpleImputer replaces missing markers with a per-column statistic
// computed from that column's observed values only. Each column's
// statistic is independent of every other column.
type SimpleImputer struct {
	model.BaseEstimator

	// Strategy is the statistic to substitute.
	Strategy Strategy

	// Statistics holds the fitted per-column fill values.
	Statistics []float64

	// NFeatures is the number of features seen during Fit.
	NFeatures int
}

// NewSimpleImputer creates an imputer with the given strategy.
//
// Example:
//
//	imp := preprocessing.NewSimpleImputer(preprocessing.StrategyMean)
//	Xc, err := imp.FitTransform(X)
func NewSimpleImputer(strategy Strategy) *SimpleImputer {
	return &SimpleImputer{Strategy: strategy}
}

// Fit computes the fill statistic for every column from its observed
// (non-missing) values. It returns an EmptyColumnError when a column has
// no observed values at all, since the statistic is undefined and a
// silent default would mask the problem.
func (s *SimpleImputer) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("SimpleImputer.Fit", "empty data", errors.ErrEmptyData)
	}

	switch s.Strategy {
	case StrategyMean, StrategyMedian, StrategyMostFrequent:
	default:
		return errors.NewValueError("SimpleImputer.Fit", fmt.Sprintf("unknown strategy %q", s.Strategy))
	}

	s.NFeatures = c
	s.Statistics = make([]float64, c)

	for j := 0; j < c; j++ {
		observed := make([]float64, 0, r)
		for i := 0; i < r; i++ {
			if v := X.At(i, j); !IsMissing(v) {
				observed = append(observed, v)
			}
		}
		if len(observed) == 0 {
			return errors.NewEmptyColumnError("SimpleImputer.Fit", j)
		}

		fill, err := columnStatistic(observed, s.Strategy)
		if err != nil {
			return err
		}
		s.Statistics[j] = fill
	}

	s.SetFitted()
	return nil
}

// Transform substitutes the fitted statistic for every missing marker,
// column by column. The output is guaranteed marker-free and rectangular
// with the row count of the input. X itself is not modified.
func (s *SimpleImputer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SimpleImputer", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("SimpleImputer.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if IsMissing(v) {
				v = s.Statistics[j]
			}
			result.Set(i, j, v)
		}
	}

	return result, nil
}

// FitTransform fits on X and transforms the same data.
func (s *SimpleImputer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// GetParams returns the imputer's parameters.
func (s *SimpleImputer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy": string(s.Strategy),
	}
}

// String returns a string representation of the imputer.
func (s *SimpleImputer) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("SimpleImputer(strategy=%s)", s.Strategy)
	}
	return fmt.Sprintf("SimpleImputer(strategy=%s, n_features=%d)", s.Strategy, s.NFeatures)
}

// Impute fits an imputer with the given strategy on X and returns the
// transformed copy. Shorthand for NewSimpleImputer(strategy).FitTransform(X).
func Impute(X mat.Matrix, strategy Strategy) (*mat.Dense, error) {
	out, err := NewSimpleImputer(strategy).FitTransform(X)
	if err != nil {
		return nil, err
	}
	return out.(*mat.Dense), nil
}

// columnStatistic computes the fill value for one column's observed values.
// observed must be non-empty.
func columnStatistic(observed []float64, strategy Strategy) (float64, error) {
	switch strategy {
	case StrategyMean:
		return stat.Mean(observed, nil), nil

	case StrategyMedian:
		sorted := append([]float64(nil), observed...)
		sort.Float64s(sorted)
		n := len(sorted)
		if n%2 == 1 {
			return sorted[n/2], nil
		}
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil

	case StrategyMostFrequent:
		// Run-length scan over the sorted values. Strict comparison keeps
		// the first maximal run, so a tie resolves to the smallest value.
		sorted := append([]float64(nil), observed...)
		sort.Float64s(sorted)

		mode, best := sorted[0], 1
		run := 1
		for i := 1; i < len(sorted); i++ {
			if sorted[i] == sorted[i-1] {
				run++
			} else {
				run = 1
			}
			if run > best {
				best = run
				mode = sorted[i]
			}
		}
		return mode, nil

	default:
		return 0, errors.NewValueError("columnStatistic", fmt.Sprintf("unknown strategy %q", strategy))
	}
}
