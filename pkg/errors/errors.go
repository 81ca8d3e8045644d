// Package errors provides structured error and warning handling for the
// missing-value preprocessing pipeline. It is inspired by scikit-learn's
// warning and exception system: fatal conditions are typed errors carrying
// stack traces, non-fatal conditions flow through a replaceable warning
// handler.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("missingval-warning: %v\n", w)
	}
	// zerolog sink, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler. Use this to
// control how non-fatal conditions such as DegenerateDataWarning are
// reported.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. The zerolog sink takes priority when installed,
// otherwise the plain handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateDataWarning signals that an operation produced a dataset too
// small to be useful, typically row deletion removing all or nearly all
// rows. It is non-fatal: callers decide whether to fall back to imputation.
type DegenerateDataWarning struct {
	Op   string
	Rows int // input row count
	Kept int // rows remaining after the operation
}

func (w *DegenerateDataWarning) Error() string {
	return fmt.Sprintf("%s kept %d of %d rows; consider imputation instead of deletion", w.Op, w.Kept, w.Rows)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DegenerateDataWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("rows", w.Rows).
		Int("kept", w.Kept).
		Str("type", "DegenerateDataWarning")
}

// NewDegenerateDataWarning creates a new DegenerateDataWarning.
func NewDegenerateDataWarning(op string, rows, kept int) *DegenerateDataWarning {
	return &DegenerateDataWarning{Op: op, Rows: rows, Kept: kept}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// FormatError reports malformed tabular input: a ragged row or a cell that
// failed numeric parsing. Loading aborts on the first occurrence.
type FormatError struct {
	Row      int    // 0-based row index in the input
	Expected int    // expected column count (0 when irrelevant)
	Got      int    // observed column count (0 when irrelevant)
	Cell     string // offending cell contents, empty for ragged rows
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("missingval: row %d: cannot parse %q as a number: %s", e.Row, e.Cell, e.Reason)
	}
	return fmt.Sprintf("missingval: row %d: %s (expected %d columns, got %d)", e.Row, e.Reason, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *FormatError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("row", e.Row).
		Int("expected_columns", e.Expected).
		Int("got_columns", e.Got).
		Str("cell", e.Cell).
		Str("reason", e.Reason).
		Str("type", "FormatError")
}

// NewFormatError creates a FormatError for a ragged row and attaches a stack trace.
func NewFormatError(row, expected, got int, reason string) error {
	err := &FormatError{Row: row, Expected: expected, Got: got, Reason: reason}
	return errors.WithStack(err)
}

// NewCellFormatError creates a FormatError for an unparsable cell and attaches a stack trace.
func NewCellFormatError(row int, cell, reason string) error {
	err := &FormatError{Row: row, Cell: cell, Reason: reason}
	return errors.WithStack(err)
}

// EmptyColumnError reports a column whose imputation statistic is undefined
// because it contains no observed (non-missing) values. The pipeline never
// substitutes an arbitrary default in this case.
type EmptyColumnError struct {
	Op     string
	Column int
}

func (e *EmptyColumnError) Error() string {
	return fmt.Sprintf("missingval: %s: column %d has no observed values, statistic undefined", e.Op, e.Column)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("column", e.Column).
		Str("type", "EmptyColumnError")
}

// NewEmptyColumnError creates a new EmptyColumnError and attaches a stack trace.
func NewEmptyColumnError(op string, column int) error {
	err := &EmptyColumnError{Op: op, Column: column}
	return errors.WithStack(err)
}

// NotFittedError is returned when Transform or Predict is called on an
// estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("missingval: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError and attaches a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports an input whose shape differs from what the
// operation expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("missingval: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError and attaches a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for the operation,
// for example a matrix still containing missing markers where none are
// allowed.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("missingval: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError and attaches a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general error raised by an estimator.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missingval: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("missingval: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a new ModelError and attaches a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")
)
