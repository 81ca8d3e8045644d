// Package dataset loads delimited numeric data into gonum matrices.
//
// The expected format is one row per line, comma-separated numeric cells,
// no header row, and a fixed column count. The last column is conventionally
// the label; SplitXY performs that split.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/majisoubhik01/missingval/pkg/errors"
)

// Load parses comma-separated numeric data from r into a dense matrix.
// It returns a FormatError when a row's column count differs from the
// first row or a cell is not numeric. Parsing stops at the first error.
func Load(r io.Reader) (*mat.Dense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column counts validated below with row context
	reader.TrimLeadingSpace = true

	var (
		cells []float64
		cols  int
		rows  int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "dataset.Load: read failed")
		}

		if rows == 0 {
			cols = len(record)
		} else if len(record) != cols {
			return nil, errors.NewFormatError(rows, cols, len(record), "inconsistent column count")
		}

		for _, cell := range record {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				reason := "invalid syntax"
				var numErr *strconv.NumError
				if errors.As(perr, &numErr) {
					reason = numErr.Err.Error()
				}
				return nil, errors.NewCellFormatError(rows, cell, reason)
			}
			cells = append(cells, v)
		}
		rows++
	}

	if rows == 0 || cols == 0 {
		return nil, errors.NewModelError("dataset.Load", "no rows in input", errors.ErrEmptyData)
	}

	return mat.NewDense(rows, cols, cells), nil
}

// LoadFile loads a delimited numeric file. The file handle is released on
// every exit path, success or parse failure.
func LoadFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadFile: open %s", path)
	}
	defer f.Close()

	return Load(f)
}

// SplitXY splits a matrix into features and label: every column but the
// last forms X, the last column becomes the n×1 label matrix y.
// m must have at least two columns.
func SplitXY(m mat.Matrix) (X, y *mat.Dense) {
	r, c := m.Dims()

	X = mat.NewDense(r, c-1, nil)
	y = mat.NewDense(r, 1, nil)

	for i := 0; i < r; i++ {
		for j := 0; j < c-1; j++ {
			X.Set(i, j, m.At(i, j))
		}
		y.Set(i, 0, m.At(i, c-1))
	}

	return X, y
}
