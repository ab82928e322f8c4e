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
	"encoding/json"
	"math"
	"math/rand"

	"github.com/mitchellh/mapstructure"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/trainer/dataset"
)

const (
	// DefaultLearningRate is the default initial learning rate of sgd.
	DefaultLearningRate = 0.1

	// DefaultEpochs is the default passes over training rows.
	DefaultEpochs = 100
)

// LogisticRegression logistic regression model struct, trained by sgd on
// standardized features.
type LogisticRegression struct {
	Fitted       bool      `mapstructure:"fitted"`
	LearningRate float64   `mapstructure:"learning_rate"`
	Epochs       int       `mapstructure:"epochs"`
	RandomState  int64     `mapstructure:"random_state"`
	Intercept    float64   `mapstructure:"intercept"`
	Coefficients []float64 `mapstructure:"coefficients"`
	Features     []string  `mapstructure:"features"`
	Scaler       *scaler   `mapstructure:"scaler"`
}

// NewLogisticRegression return an instance of logistic regression model.
func NewLogisticRegression(learningRate float64, epochs int, randomState int64) *LogisticRegression {
	if learningRate <= 0 {
		learningRate = DefaultLearningRate
	}

	if epochs <= 0 {
		epochs = DefaultEpochs
	}

	return &LogisticRegression{
		LearningRate: learningRate,
		Epochs:       epochs,
		RandomState:  randomState,
	}
}

// Fit train parameters of model to fit the data provided.
func (lr *LogisticRegression) Fit(X *dataset.Frame, y []int) error {
	if err := checkLabels(X, y); err != nil {
		return err
	}

	g, err := newGrid(X, y)
	if err != nil {
		return err
	}

	s, err := fitScaler(g)
	if err != nil {
		return dferrors.Wrap(dfcodes.ModelFailure, err, "fit scaler")
	}
	g.apply(s.standardize)

	weights := make([]float64, g.cols()+1)
	order := make([]int, g.rows)
	for i := range order {
		order[i] = i
	}

	row := make([]float64, g.cols())
	rng := rand.New(rand.NewSource(lr.RandomState))
	for epoch := 0; epoch < lr.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		rate := lr.LearningRate / math.Sqrt(float64(epoch+1))
		for _, i := range order {
			g.row(i, row)
			e := g.label(i) - sigmoid(weights[0]+dot(weights[1:], row))
			weights[0] += rate * e
			for j, v := range row {
				weights[j+1] += rate * e * v
			}
		}
	}

	lr.Intercept = weights[0]
	lr.Coefficients = weights[1:]
	lr.Features = append([]string(nil), X.Columns...)
	lr.Scaler = s
	lr.Fitted = true
	return nil
}

// PredictProba use parameters of model to predict fraud probabilities.
func (lr *LogisticRegression) PredictProba(X *dataset.Frame) ([]float64, error) {
	if !lr.Fitted {
		logger.Info("no fitted model")
		return nil, dferrors.New(dfcodes.ModelFailure, "no fitted model")
	}

	selected, err := X.Select(lr.Features)
	if err != nil {
		return nil, err
	}

	g, err := newGrid(selected, nil)
	if err != nil {
		logger.Infof("LogisticRegression error happens, error is %v", err)
		return nil, err
	}
	g.apply(lr.Scaler.standardize)

	row := make([]float64, g.cols())
	proba := make([]float64, g.rows)
	for i := range proba {
		proba[i] = sigmoid(lr.Intercept + dot(lr.Coefficients, g.row(i, row)))
	}

	return proba, nil
}

// Predict returns 1 for rows with probability above one half.
func (lr *LogisticRegression) Predict(X *dataset.Frame) ([]int, error) {
	proba, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	return threshold(proba), nil
}

func (lr *LogisticRegression) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"fitted":        lr.Fitted,
		"learning_rate": lr.LearningRate,
		"epochs":        lr.Epochs,
		"random_state":  lr.RandomState,
		"intercept":     lr.Intercept,
		"coefficients":  lr.Coefficients,
		"features":      lr.Features,
		"scaler":        lr.Scaler,
	})
}

func (lr *LogisticRegression) UnmarshalJSON(data []byte) error {
	var d map[string]any
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	return mapstructure.Decode(d, lr)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
