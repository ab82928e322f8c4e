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

package models

import (
	"math"
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"github.com/stretchr/testify/assert"

	"d7y.io/fraudtrainer/trainer/dataset"
)

func newMockGridFrame() *dataset.Frame {
	return &dataset.Frame{
		Columns: []string{"V1", "V2"},
		Rows: [][]float64{
			{1, math.NaN()},
			{3, 4},
			{5, 8},
		},
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		mock   func(g *grid, s *scaler)
		expect func(t *testing.T, g *grid, s *scaler)
	}{
		{
			name:   "scaler fitted on grid",
			labels: []int{0, 1, 1},
			mock:   func(g *grid, s *scaler) {},
			expect: func(t *testing.T, g *grid, s *scaler) {
				assert := assert.New(t)
				assert.Equal(2, g.cols())
				assert.Equal(3, g.rows)
				assert.Equal([]float64{3, 6}, s.Means)
				assert.InDelta(math.Sqrt(8.0/3), s.Stds[0], 1e-9)
				assert.InDelta(2, s.Stds[1], 1e-9)
				assert.Equal([]float64{0, 1, 1}, []float64{g.label(0), g.label(1), g.label(2)})
			},
		},
		{
			name:   "standardize rewrites instances",
			labels: []int{0, 1, 1},
			mock: func(g *grid, s *scaler) {
				g.apply(s.standardize)
			},
			expect: func(t *testing.T, g *grid, s *scaler) {
				assert := assert.New(t)
				assert.Equal(float64(0), base.UnpackBytesToFloat(g.inst.Get(g.attrs[1], 0)))
				assert.InDelta(1, base.UnpackBytesToFloat(g.inst.Get(g.attrs[1], 2)), 1e-9)
				assert.InDelta(-2/math.Sqrt(8.0/3), g.value(0, 0), 1e-9)

				row := g.row(2, make([]float64, g.cols()))
				assert.InDelta(2/math.Sqrt(8.0/3), row[0], 1e-9)
				assert.InDelta(1, row[1], 1e-9)
			},
		},
		{
			name: "impute rewrites missing values without class attribute",
			mock: func(g *grid, s *scaler) {
				g.apply(s.impute)
			},
			expect: func(t *testing.T, g *grid, s *scaler) {
				assert := assert.New(t)
				assert.Nil(g.class)
				assert.Equal(float64(0), g.label(1))
				assert.Equal(float64(6), base.UnpackBytesToFloat(g.inst.Get(g.attrs[1], 0)))
				assert.Equal(float64(8), g.value(2, 1))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := newGrid(newMockGridFrame(), tc.labels)
			if err != nil {
				t.Fatal(err)
			}

			s, err := fitScaler(g)
			if err != nil {
				t.Fatal(err)
			}

			tc.mock(g, s)
			tc.expect(t, g, s)
		})
	}
}

func TestNewGrid_LabelsMismatch(t *testing.T) {
	assert := assert.New(t)
	_, err := newGrid(newMockGridFrame(), []int{0, 1})
	assert.Error(err)
}
