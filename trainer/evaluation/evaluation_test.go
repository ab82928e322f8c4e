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

package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		yTrue  []int
		yPred  []int
		proba  []float64
		expect func(t *testing.T, m *Metrics, err error)
	}{
		{
			name:  "perfect classifier",
			yTrue: []int{0, 0, 1, 1},
			yPred: []int{0, 0, 1, 1},
			proba: []float64{0.1, 0.2, 0.8, 0.9},
			expect: func(t *testing.T, m *Metrics, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1.0, m.ROCAUC)
				assert.Equal(1.0, m.PRAUC)
				assert.Equal(1.0, m.Accuracy)
				assert.Equal(1.0, m.PrecisionFraud)
				assert.Equal(1.0, m.RecallFraud)
				assert.Equal(1.0, m.F1Fraud)
			},
		},
		{
			name:  "partially ranked",
			yTrue: []int{0, 0, 1, 1},
			yPred: []int{0, 1, 1, 0},
			proba: []float64{0.1, 0.4, 0.35, 0.8},
			expect: func(t *testing.T, m *Metrics, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.75, m.ROCAUC, 1e-9)
				assert.InDelta(0.8333333, m.PRAUC, 1e-6)
				assert.Equal(0.5, m.Accuracy)
				assert.Equal(0.5, m.PrecisionFraud)
				assert.Equal(0.5, m.RecallFraud)
				assert.Equal(0.5, m.F1Fraud)
			},
		},
		{
			name: "constant probability",
			yTrue: func() []int {
				y := make([]int, 200)
				for i := 0; i < 10; i++ {
					y[i] = 1
				}
				return y
			}(),
			yPred: make([]int, 200),
			proba: func() []float64 {
				p := make([]float64, 200)
				for i := range p {
					p[i] = 0.05
				}
				return p
			}(),
			expect: func(t *testing.T, m *Metrics, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.5, m.ROCAUC, 1e-9)
				assert.InDelta(0.05, m.PRAUC, 1e-9)
				assert.InDelta(0.95, m.Accuracy, 1e-9)
				assert.Equal(0.0, m.PrecisionFraud)
				assert.Equal(0.0, m.RecallFraud)
				assert.Equal(0.0, m.F1Fraud)
			},
		},
		{
			name:  "single class",
			yTrue: []int{0, 0, 0},
			yPred: []int{0, 0, 0},
			proba: []float64{0.1, 0.2, 0.3},
			expect: func(t *testing.T, m *Metrics, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InsufficientClassSamples))
				assert.Nil(m)
			},
		},
		{
			name:  "length mismatch",
			yTrue: []int{0, 1},
			yPred: []int{0},
			proba: []float64{0.1, 0.2},
			expect: func(t *testing.T, m *Metrics, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
			},
		},
		{
			name: "empty",
			expect: func(t *testing.T, m *Metrics, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Evaluate(tc.yTrue, tc.yPred, tc.proba)
			tc.expect(t, m, err)
		})
	}
}

func TestMetrics_ToMap(t *testing.T) {
	assert := assert.New(t)
	m := &Metrics{ROCAUC: 0.9, FitTimeSec: 1.5}
	values := m.ToMap()
	assert.Len(values, len(MetricKeys))
	for _, key := range MetricKeys {
		assert.Contains(values, key)
	}
	assert.Equal(0.9, values[MetricROCAUC])
	assert.Equal(1.5, values[MetricFitTimeSec])
}

func TestROC(t *testing.T) {
	assert := assert.New(t)
	roc, err := ROC([]int{0, 0, 1, 1}, []float64{0.1, 0.4, 0.35, 0.8})
	assert.NoError(err)
	assert.Equal([]float64{0, 0, 0.5, 0.5, 1}, roc.X)
	assert.Equal([]float64{0, 0.5, 0.5, 1, 1}, roc.Y)
	assert.Len(roc.Thresholds, 5)

	pr, err := PrecisionRecall([]int{0, 0, 1, 1}, []float64{0.1, 0.4, 0.35, 0.8})
	assert.NoError(err)
	assert.Equal([]float64{0, 0.5, 0.5, 1, 1}, pr.X)
	assert.InDeltaSlice([]float64{1, 1, 0.5, 2.0 / 3.0, 0.5}, pr.Y, 1e-9)

	_, err = ROC([]int{1, 1}, []float64{0.1, 0.2})
	assert.True(dferrors.CheckError(err, dfcodes.InsufficientClassSamples))
}

func TestConfusionMatrix(t *testing.T) {
	assert := assert.New(t)
	cm := ConfusionMatrix([]int{0, 0, 0, 1, 1}, []int{0, 0, 1, 1, 0})
	assert.Equal(2, cm["0"]["0"])
	assert.Equal(1, cm["0"]["1"])
	assert.Equal(1, cm["1"]["0"])
	assert.Equal(1, cm["1"]["1"])

	normalized := NormalizeConfusionMatrix(cm)
	assert.InDeltaSlice([]float64{2.0 / 3.0, 1.0 / 3.0}, normalized[0], 1e-9)
	assert.InDeltaSlice([]float64{0.5, 0.5}, normalized[1], 1e-9)

	normalized = NormalizeConfusionMatrix(ConfusionMatrix([]int{0, 0}, []int{0, 1}))
	assert.Equal([]float64{0.5, 0.5}, normalized[0])
	assert.Equal([]float64{0, 0}, normalized[1])
}
