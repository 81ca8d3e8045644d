// Package log defines standard attribute keys for preprocessing operations.
//
// Using these keys consistently keeps log output filterable: every mark,
// drop, impute, and score operation reports its data shape and outcome
// under the same names.

package log

// Operation context.
const (
	// OperationKey specifies the preprocessing or modeling operation.
	// Standard values: "load", "mark_missing", "drop_rows", "impute",
	// "fit", "predict", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "preprocessing", "modelselection"
	ComponentKey = "ml.component"

	// StrategyKey records the imputation strategy in use.
	// Values: "mean", "median", "most_frequent"
	StrategyKey = "impute.strategy"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// MissingTotalKey records the total number of missing markers.
	MissingTotalKey = "data.missing_total"

	// MissingByColumnKey records the per-column missing counts mapping.
	MissingByColumnKey = "data.missing_by_column"

	// RowsDroppedKey records how many rows deletion removed.
	RowsDroppedKey = "data.rows_dropped"
)

// Performance and evaluation.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy for scoring operations.
	AccuracyKey = "metrics.accuracy"

	// FoldKey records the cross-validation fold index.
	FoldKey = "cv.fold"
)

// Standard operation values.
const (
	OperationLoad        = "load"
	OperationMarkMissing = "mark_missing"
	OperationDropRows    = "drop_rows"
	OperationImpute      = "impute"
	OperationFit         = "fit"
	OperationPredict     = "predict"
	OperationScore       = "score"
)
