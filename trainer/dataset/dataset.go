/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataset

import (
	"math"

	"github.com/sjwhitworth/golearn/base"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

const (
	// ClassColumn is the label column, 1 is fraud.
	ClassColumn = "Class"

	// TimeColumn is never used as a feature.
	TimeColumn = "Time"
)

// Frame is a numeric table, missing values are NaN.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

// NewFrame returns a frame after checking every row has one value per column.
func NewFrame(columns []string, rows [][]float64) (*Frame, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, dferrors.Newf(dfcodes.InvalidArgument, "row %d has %d values, expected %d", i, len(row), len(columns))
		}
	}

	return &Frame{Columns: columns, Rows: rows}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// ColumnIndex returns the index of the column, -1 if absent.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}

	return -1
}

// Column returns a copy of the column values.
func (f *Frame) Column(name string) ([]float64, bool) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}

	values := make([]float64, len(f.Rows))
	for i, row := range f.Rows {
		values[i] = row[idx]
	}

	return values, true
}

// Select returns a frame of the given columns in the given order.
func (f *Frame) Select(columns []string) (*Frame, error) {
	indices := make([]int, len(columns))
	for i, c := range columns {
		idx := f.ColumnIndex(c)
		if idx < 0 {
			return nil, dferrors.Newf(dfcodes.MissingColumn, "missing column %s", c)
		}
		indices[i] = idx
	}

	rows := make([][]float64, len(f.Rows))
	for i, row := range f.Rows {
		selected := make([]float64, len(indices))
		for j, idx := range indices {
			selected[j] = row[idx]
		}
		rows[i] = selected
	}

	return &Frame{Columns: append([]string(nil), columns...), Rows: rows}, nil
}

// Take returns a frame of the given rows, rows are shared with f.
func (f *Frame) Take(indices []int) *Frame {
	rows := make([][]float64, len(indices))
	for i, idx := range indices {
		rows[i] = f.Rows[idx]
	}

	return &Frame{Columns: f.Columns, Rows: rows}
}

// Head returns the first n rows.
func (f *Frame) Head(n int) *Frame {
	if n > len(f.Rows) {
		n = len(f.Rows)
	}

	return &Frame{Columns: f.Columns, Rows: f.Rows[:n]}
}

// HasNaN reports whether any value is missing.
func (f *Frame) HasNaN() bool {
	for _, row := range f.Rows {
		for _, v := range row {
			if math.IsNaN(v) {
				return true
			}
		}
	}

	return false
}

// Instances converts the frame into a golearn grid, labels become the class
// attribute when present.
func (f *Frame) Instances(labels []int) (*base.DenseInstances, error) {
	if labels != nil && len(labels) != len(f.Rows) {
		return nil, dferrors.Newf(dfcodes.InvalidArgument, "%d labels for %d rows", len(labels), len(f.Rows))
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(f.Columns))
	for i, c := range f.Columns {
		specs[i] = inst.AddAttribute(base.NewFloatAttribute(c))
	}

	var classSpec base.AttributeSpec
	if labels != nil {
		cls := base.NewFloatAttribute(ClassColumn)
		classSpec = inst.AddAttribute(cls)
		if err := inst.AddClassAttribute(cls); err != nil {
			return nil, err
		}
	}

	if err := inst.Extend(len(f.Rows)); err != nil {
		return nil, err
	}

	for i, row := range f.Rows {
		for j, v := range row {
			inst.Set(specs[j], i, base.PackFloatToBytes(v))
		}

		if labels != nil {
			inst.Set(classSpec, i, base.PackFloatToBytes(float64(labels[i])))
		}
	}

	return inst, nil
}
