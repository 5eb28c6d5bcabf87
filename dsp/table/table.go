package table

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"gonum.org/v1/gonum/mat"
)

const delimiters = ",;\t"

// Matrix is an immutable rows x columns sample matrix. Row order is sample
// order; each column is one candidate channel.
type Matrix struct {
	data *mat.Dense

	// Dropped counts non-blank lines rejected while parsing.
	Dropped int
}

// NewMatrix copies rows into a Matrix. All rows must share the width of the
// first one.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, core.ErrEmptyOrInvalidInput
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: first row has no columns", core.ErrUnsupportedChannelCount)
	}

	flat := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), cols)
		}
		flat = append(flat, r...)
	}

	return &Matrix{data: mat.NewDense(len(rows), cols, flat)}, nil
}

// Parse converts raw delimited text into a Matrix.
//
// The column count is taken from the first surviving row; later rows with a
// different width are rejected and counted in Dropped.
func Parse(raw string) (*Matrix, error) {
	var (
		rows    [][]float64
		dropped int
		width   = -1
	)

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, ok := parseRow(line)
		if !ok {
			dropped++
			continue
		}

		if width < 0 {
			width = len(row)
			if width == 0 {
				return nil, fmt.Errorf("%w: first data row has no fields", core.ErrUnsupportedChannelCount)
			}
		}

		if len(row) != width {
			dropped++
			continue
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w (%d lines rejected)", core.ErrEmptyOrInvalidInput, dropped)
	}

	m, err := NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	m.Dropped = dropped

	return m, nil
}

// Read consumes r to completion and parses the result. No matrix is
// returned unless the whole input was read.
func Read(r io.Reader) (*Matrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return Parse(string(raw))
}

// ReadFile parses the delimited text file at path.
func ReadFile(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return Parse(string(raw))
}

// Dims returns the row and column count.
func (m *Matrix) Dims() (rows, cols int) {
	return m.data.Dims()
}

// Rows returns the number of samples per column.
func (m *Matrix) Rows() int {
	r, _ := m.data.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	_, c := m.data.Dims()
	return c
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

// Column returns a copy of column j in row order.
func (m *Matrix) Column(j int) []float64 {
	return mat.Col(nil, j, m.data)
}

func parseRow(line string) ([]float64, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})

	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, ok := parseSample(strings.TrimSpace(f))
		if !ok {
			return nil, false
		}
		row = append(row, v)
	}

	return row, true
}

// parseSample accepts finite plain decimal numbers only: no hex floats,
// digit separators or NaN/Inf spellings.
func parseSample(tok string) (float64, bool) {
	if tok == "" || strings.ContainsAny(tok, "xX_") {
		return 0, false
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
