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
	"math"
	"strconv"

	"github.com/sjwhitworth/golearn/evaluation"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

const (
	// PositiveClass is the fraud class.
	PositiveClass = 1

	// NegativeClass is the legitimate class.
	NegativeClass = 0
)

// Metric keys logged to the tracking run.
const (
	MetricROCAUC         = "roc_auc"
	MetricPRAUC          = "pr_auc"
	MetricAccuracy       = "accuracy"
	MetricPrecisionFraud = "precision_fraud"
	MetricRecallFraud    = "recall_fraud"
	MetricF1Fraud        = "f1_fraud"
	MetricFitTimeSec     = "fit_time_sec"
)

// MetricKeys are the metric keys in logging order.
var MetricKeys = []string{
	MetricROCAUC,
	MetricPRAUC,
	MetricAccuracy,
	MetricPrecisionFraud,
	MetricRecallFraud,
	MetricF1Fraud,
	MetricFitTimeSec,
}

// Metrics is the validation scores of a fitted classifier.
type Metrics struct {
	ROCAUC         float64 `csv:"roc_auc" json:"roc_auc"`
	PRAUC          float64 `csv:"pr_auc" json:"pr_auc"`
	Accuracy       float64 `csv:"accuracy" json:"accuracy"`
	PrecisionFraud float64 `csv:"precision_fraud" json:"precision_fraud"`
	RecallFraud    float64 `csv:"recall_fraud" json:"recall_fraud"`
	F1Fraud        float64 `csv:"f1_fraud" json:"f1_fraud"`
	FitTimeSec     float64 `csv:"fit_time_sec" json:"fit_time_sec"`
}

// ToMap returns metrics by key.
func (m *Metrics) ToMap() map[string]float64 {
	return map[string]float64{
		MetricROCAUC:         m.ROCAUC,
		MetricPRAUC:          m.PRAUC,
		MetricAccuracy:       m.Accuracy,
		MetricPrecisionFraud: m.PrecisionFraud,
		MetricRecallFraud:    m.RecallFraud,
		MetricF1Fraud:        m.F1Fraud,
		MetricFitTimeSec:     m.FitTimeSec,
	}
}

// Evaluate scores hard labels and probabilities against the true labels,
// FitTimeSec is left to the caller.
func Evaluate(yTrue, yPred []int, proba []float64) (*Metrics, error) {
	if len(yTrue) == 0 {
		return nil, dferrors.New(dfcodes.InvalidArgument, "no validation rows")
	}

	if len(yPred) != len(yTrue) || len(proba) != len(yTrue) {
		return nil, dferrors.Newf(dfcodes.InvalidArgument, "%d labels, %d predictions and %d probabilities", len(yTrue), len(yPred), len(proba))
	}

	rocAUC, err := ROCAUC(yTrue, proba)
	if err != nil {
		return nil, err
	}

	prAUC, err := AveragePrecision(yTrue, proba)
	if err != nil {
		return nil, err
	}

	cm := ConfusionMatrix(yTrue, yPred)
	class := strconv.Itoa(PositiveClass)
	tp := evaluation.GetTruePositives(class, cm)
	fp := evaluation.GetFalsePositives(class, cm)
	fn := evaluation.GetFalseNegatives(class, cm)

	precision := safeDivide(tp, tp+fp)
	recall := safeDivide(tp, tp+fn)
	return &Metrics{
		ROCAUC:         rocAUC,
		PRAUC:          prAUC,
		Accuracy:       evaluation.GetAccuracy(cm),
		PrecisionFraud: precision,
		RecallFraud:    recall,
		F1Fraud:        safeDivide(2*precision*recall, precision+recall),
	}, nil
}

// ConfusionMatrix counts rows by actual then predicted class.
func ConfusionMatrix(yTrue, yPred []int) evaluation.ConfusionMatrix {
	cm := evaluation.ConfusionMatrix{}
	for _, actual := range []int{NegativeClass, PositiveClass} {
		cm[strconv.Itoa(actual)] = map[string]int{
			strconv.Itoa(NegativeClass): 0,
			strconv.Itoa(PositiveClass): 0,
		}
	}

	for i := range yTrue {
		actual, predicted := strconv.Itoa(yTrue[i]), strconv.Itoa(yPred[i])
		if _, ok := cm[actual]; !ok {
			cm[actual] = map[string]int{}
		}
		cm[actual][predicted]++
	}

	return cm
}

// NormalizeConfusionMatrix returns the binary matrix with each actual class row
// divided by its total, rows without samples are zero.
func NormalizeConfusionMatrix(cm evaluation.ConfusionMatrix) [][]float64 {
	classes := []int{NegativeClass, PositiveClass}
	normalized := make([][]float64, len(classes))
	for i, actual := range classes {
		row := cm[strconv.Itoa(actual)]
		var total int
		for _, predicted := range classes {
			total += row[strconv.Itoa(predicted)]
		}

		normalized[i] = make([]float64, len(classes))
		for j, predicted := range classes {
			normalized[i][j] = safeDivide(float64(row[strconv.Itoa(predicted)]), float64(total))
		}
	}

	return normalized
}

func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	v := a / b
	if math.IsNaN(v) {
		return 0
	}

	return v
}
