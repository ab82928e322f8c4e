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
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"github.com/stretchr/testify/assert"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

var mockColumns = []string{"Time", "V1", "V2", "Amount", "Class"}

// newMockFrame returns n rows where the first positives rows are fraud.
func newMockFrame(n, positives int) *Frame {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		class := 0.0
		if i < positives {
			class = 1
		}
		rows[i] = []float64{float64(i), float64(i) * 0.1, -float64(i), float64(i % 7), class}
	}

	return &Frame{Columns: mockColumns, Rows: rows}
}

func TestNewFrame(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]float64
		expect func(t *testing.T, f *Frame, err error)
	}{
		{
			name: "new frame",
			rows: [][]float64{{1, 2, 3, 4, 0}},
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1, f.Len())
			},
		},
		{
			name: "row width mismatch",
			rows: [][]float64{{1, 2, 3, 4, 0}, {1, 2}},
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
				assert.Nil(f)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFrame(mockColumns, tc.rows)
			tc.expect(t, f, err)
		})
	}
}

func TestFrame_Select(t *testing.T) {
	assert := assert.New(t)
	f := newMockFrame(3, 1)

	selected, err := f.Select([]string{"Amount", "V1"})
	assert.NoError(err)
	assert.Equal([]string{"Amount", "V1"}, selected.Columns)
	assert.Equal([]float64{2, 0.2}, selected.Rows[2])

	_, err = f.Select([]string{"foo"})
	assert.True(dferrors.CheckError(err, dfcodes.MissingColumn))
}

func TestFrame_Column(t *testing.T) {
	assert := assert.New(t)
	f := newMockFrame(3, 1)

	values, ok := f.Column("Class")
	assert.True(ok)
	assert.Equal([]float64{1, 0, 0}, values)

	_, ok = f.Column("foo")
	assert.False(ok)
	assert.Equal(-1, f.ColumnIndex("foo"))
}

func TestFrame_TakeAndHead(t *testing.T) {
	assert := assert.New(t)
	f := newMockFrame(10, 2)

	taken := f.Take([]int{9, 0})
	assert.Equal(2, taken.Len())
	assert.Equal(float64(9), taken.Rows[0][0])
	assert.Equal(float64(0), taken.Rows[1][0])

	assert.Equal(5, f.Head(5).Len())
	assert.Equal(10, f.Head(20).Len())
}

func TestFrame_HasNaN(t *testing.T) {
	assert := assert.New(t)
	f := newMockFrame(3, 1)
	assert.False(f.HasNaN())

	f.Rows[1][2] = math.NaN()
	assert.True(f.HasNaN())
}

func TestFrame_Instances(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		expect func(t *testing.T, inst *base.DenseInstances, err error)
	}{
		{
			name:   "instances with class attribute",
			labels: []int{1, 0, 0},
			expect: func(t *testing.T, inst *base.DenseInstances, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				cols, rows := inst.Size()
				assert.Equal(5, cols)
				assert.Equal(3, rows)
				assert.Len(inst.AllClassAttributes(), 1)

				classSpecs := base.ResolveAttributes(inst, inst.AllClassAttributes())
				assert.Equal(float64(1), base.UnpackBytesToFloat(inst.Get(classSpecs[0], 0)))

				attrSpecs := base.ResolveAttributes(inst, base.NonClassAttributes(inst))
				assert.Equal(float64(-2), base.UnpackBytesToFloat(inst.Get(attrSpecs[2], 2)))
			},
		},
		{
			name: "instances without class attribute",
			expect: func(t *testing.T, inst *base.DenseInstances, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				cols, _ := inst.Size()
				assert.Equal(4, cols)
				assert.Len(inst.AllClassAttributes(), 0)
			},
		},
		{
			name:   "labels mismatch",
			labels: []int{1},
			expect: func(t *testing.T, inst *base.DenseInstances, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := newMockFrame(3, 1).Select([]string{"Time", "V1", "V2", "Amount"})
			if err != nil {
				t.Fatal(err)
			}

			inst, err := f.Instances(tc.labels)
			tc.expect(t, inst, err)
		})
	}
}
