// Package missingval provides missing-value handling for tabular numeric
// data: marking sentinel values as missing, reporting per-column missing
// counts, deleting incomplete rows, and statistical imputation.
//
// The API follows the scikit-learn estimator conventions (Fit, Transform,
// FitTransform) on gonum matrices, so a preprocessing step slots in ahead
// of any model that consumes a mat.Matrix.
//
// # Quick Start
//
// Mark zeros in domain-invalid columns as missing, then impute each column
// with its mean:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/majisoubhik01/missingval/dataset"
//	    "github.com/majisoubhik01/missingval/preprocessing"
//	)
//
//	func main() {
//	    data, err := dataset.LoadFile("pima-indians-diabetes.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    X, y := dataset.SplitXY(data)
//
//	    marked := preprocessing.MarkMissing(X, []int{1, 2, 3, 4, 5}, 0)
//	    fmt.Println(preprocessing.CountMissing(marked))
//
//	    imputed, err := preprocessing.Impute(marked, preprocessing.StrategyMean)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _, _ = imputed, y
//	}
//
// # Packages
//
//   - dataset: delimited numeric file loading and feature/label splitting
//   - preprocessing: missing-value marking, counting, row deletion, imputation
//   - metrics: evaluation metrics for the demonstration classifier
//   - naivebayes: Gaussian naive Bayes, the downstream consumer in examples
//   - modelselection: k-fold splitting and cross-validated scoring
//   - core/model: estimator interfaces and fitted-state tracking
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging setup
//
// Missing cells are represented as NaN, never as an in-band numeric
// sentinel, so "true zero" and "absent" stay distinguishable once a
// matrix has been marked.
package missingval
