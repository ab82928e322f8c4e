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

//go:generate mockgen -destination mocks/models_mock.go -source models.go -package mocks

package models

import (
	"reflect"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/trainer/dataset"
)

const (
	// KindLogisticRegression is kind of logistic regression.
	KindLogisticRegression = "logistic_regression"

	// KindDecisionTree is kind of decision tree.
	KindDecisionTree = "decision_tree"

	// KindDummy is kind of dummy classifier.
	KindDummy = "dummy"
)

// Classifier is a binary classifier, class 1 is the positive class.
type Classifier interface {
	// Fit trains the classifier on features and labels.
	Fit(X *dataset.Frame, y []int) error

	// Predict returns hard labels of rows.
	Predict(X *dataset.Frame) ([]int, error)

	// PredictProba returns probabilities of the positive class.
	PredictProba(X *dataset.Frame) ([]float64, error)
}

// FeatureImportancer is implemented by classifiers exposing one importance
// per feature after fitting.
type FeatureImportancer interface {
	FeatureImportances() []float64
}

// Options is the hyper parameters of all classifiers, each kind reads
// its own fields.
type Options struct {
	LearningRate   float64
	Epochs         int
	MaxDepth       int
	MinSamplesLeaf int
	Strategy       string
	RandomState    int64
}

// New returns a classifier of kind.
func New(kind string, o Options) (Classifier, error) {
	switch kind {
	case KindLogisticRegression:
		return NewLogisticRegression(o.LearningRate, o.Epochs, o.RandomState), nil
	case KindDecisionTree:
		return NewDecisionTree(o.MaxDepth, o.MinSamplesLeaf), nil
	case KindDummy:
		return NewDummy(o.Strategy)
	default:
		return nil, dferrors.Newf(dfcodes.UnknownModel, "unknown model kind %s", kind)
	}
}

// TypeName returns the type name of classifier without package path.
func TypeName(c Classifier) string {
	t := reflect.TypeOf(c)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}

func checkLabels(X *dataset.Frame, y []int) error {
	if X.Len() == 0 {
		return dferrors.New(dfcodes.InvalidArgument, "no training rows")
	}

	if len(y) != X.Len() {
		return dferrors.Newf(dfcodes.InvalidArgument, "%d labels for %d rows", len(y), X.Len())
	}

	for i, l := range y {
		if l != 0 && l != 1 {
			return dferrors.Newf(dfcodes.InvalidArgument, "label %d of row %d is not binary", l, i)
		}
	}

	return nil
}

func threshold(proba []float64) []int {
	labels := make([]int, len(proba))
	for i, p := range proba {
		if p > 0.5 {
			labels[i] = 1
		}
	}

	return labels
}
