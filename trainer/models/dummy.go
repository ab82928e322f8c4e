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
	"github.com/montanaflynn/stats"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/trainer/dataset"
)

const (
	// StrategyPrior predicts the majority class with the class prior as probability.
	StrategyPrior = "prior"

	// StrategyMostFrequent predicts the majority class with probability 0 or 1.
	StrategyMostFrequent = "most_frequent"
)

// Dummy ignores features, it is the baseline of other classifiers.
type Dummy struct {
	Fitted   bool    `json:"fitted"`
	Strategy string  `json:"strategy"`
	Prior    float64 `json:"prior"`
}

// NewDummy return an instance of dummy classifier.
func NewDummy(strategy string) (*Dummy, error) {
	switch strategy {
	case "":
		strategy = StrategyPrior
	case StrategyPrior, StrategyMostFrequent:
	default:
		return nil, dferrors.Newf(dfcodes.InvalidArgument, "unknown dummy strategy %s", strategy)
	}

	return &Dummy{Strategy: strategy}, nil
}

// Fit records the positive class prior.
func (d *Dummy) Fit(X *dataset.Frame, y []int) error {
	if err := checkLabels(X, y); err != nil {
		return err
	}

	prior, err := stats.LoadRawData(y).Mean()
	if err != nil {
		return dferrors.Wrap(dfcodes.ModelFailure, err, "class prior")
	}

	d.Prior = prior
	d.Fitted = true
	return nil
}

// PredictProba returns the same probability for every row.
func (d *Dummy) PredictProba(X *dataset.Frame) ([]float64, error) {
	if !d.Fitted {
		return nil, dferrors.New(dfcodes.ModelFailure, "no fitted model")
	}

	p := d.Prior
	if d.Strategy == StrategyMostFrequent {
		p = float64(d.majority())
	}

	proba := make([]float64, X.Len())
	for i := range proba {
		proba[i] = p
	}

	return proba, nil
}

// Predict returns the majority class for every row.
func (d *Dummy) Predict(X *dataset.Frame) ([]int, error) {
	if !d.Fitted {
		return nil, dferrors.New(dfcodes.ModelFailure, "no fitted model")
	}

	labels := make([]int, X.Len())
	for i := range labels {
		labels[i] = d.majority()
	}

	return labels, nil
}

func (d *Dummy) majority() int {
	if d.Prior > 0.5 {
		return 1
	}

	return 0
}
