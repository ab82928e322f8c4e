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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

// Curve is a score curve ordered by decreasing threshold.
type Curve struct {
	X          []float64
	Y          []float64
	Thresholds []float64
}

// ROC returns false positive rate against true positive rate, it starts at
// the origin and ends at (1, 1).
func ROC(yTrue []int, proba []float64) (*Curve, error) {
	positives, negatives, err := countClasses(yTrue, proba)
	if err != nil {
		return nil, err
	}

	if positives == 0 || negatives == 0 {
		return nil, dferrors.New(dfcodes.InsufficientClassSamples, "roc needs samples of both classes")
	}

	y := make([]float64, len(proba))
	copy(y, proba)
	classes := make([]bool, len(yTrue))
	for i, l := range yTrue {
		classes[i] = l == PositiveClass
	}
	stat.SortWeightedLabeled(y, classes, nil)

	tpr, fpr, thresh := stat.ROC(nil, y, classes, nil)
	if len(fpr) > 1 && fpr[0] > fpr[len(fpr)-1] {
		floats.Reverse(tpr)
		floats.Reverse(fpr)
		floats.Reverse(thresh)
	}

	return &Curve{X: fpr, Y: tpr, Thresholds: thresh}, nil
}

// ROCAUC returns the area under the roc curve.
func ROCAUC(yTrue []int, proba []float64) (float64, error) {
	roc, err := ROC(yTrue, proba)
	if err != nil {
		return 0, err
	}

	return integrate.Trapezoidal(roc.X, roc.Y), nil
}

// PrecisionRecall returns recall against precision, thresholds decrease so
// recall grows. The first point has recall 0 and precision 1.
func PrecisionRecall(yTrue []int, proba []float64) (*Curve, error) {
	positives, negatives, err := countClasses(yTrue, proba)
	if err != nil {
		return nil, err
	}

	roc, err := ROC(yTrue, proba)
	if err != nil {
		return nil, err
	}

	curve := &Curve{
		X:          make([]float64, len(roc.X)),
		Y:          make([]float64, len(roc.X)),
		Thresholds: roc.Thresholds,
	}
	for i := range roc.X {
		tp := roc.Y[i] * positives
		fp := roc.X[i] * negatives
		curve.X[i] = roc.Y[i]
		curve.Y[i] = 1
		if tp+fp > 0 {
			curve.Y[i] = tp / (tp + fp)
		}
	}

	return curve, nil
}

// AveragePrecision returns the precision weighted by recall increments, the
// area under the step precision recall curve.
func AveragePrecision(yTrue []int, proba []float64) (float64, error) {
	pr, err := PrecisionRecall(yTrue, proba)
	if err != nil {
		return 0, err
	}

	var ap float64
	for i := 1; i < len(pr.X); i++ {
		ap += (pr.X[i] - pr.X[i-1]) * pr.Y[i]
	}

	return ap, nil
}

func countClasses(yTrue []int, proba []float64) (float64, float64, error) {
	if len(yTrue) != len(proba) {
		return 0, 0, dferrors.Newf(dfcodes.InvalidArgument, "%d labels for %d probabilities", len(yTrue), len(proba))
	}

	var positives, negatives float64
	for _, l := range yTrue {
		if l == PositiveClass {
			positives++
		} else {
			negatives++
		}
	}

	return positives, negatives, nil
}
