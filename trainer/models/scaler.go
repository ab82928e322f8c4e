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

	"github.com/montanaflynn/stats"
)

// scaler fills missing values with the column mean and standardizes columns.
type scaler struct {
	Means []float64 `json:"means" mapstructure:"means"`
	Stds  []float64 `json:"stds" mapstructure:"stds"`
}

func fitScaler(g *grid) (*scaler, error) {
	s := &scaler{
		Means: make([]float64, g.cols()),
		Stds:  make([]float64, g.cols()),
	}

	for j := 0; j < g.cols(); j++ {
		values := make(stats.Float64Data, 0, g.rows)
		for i := 0; i < g.rows; i++ {
			if v := g.value(i, j); !math.IsNaN(v) {
				values = append(values, v)
			}
		}

		s.Stds[j] = 1
		if len(values) == 0 {
			continue
		}

		mean, err := values.Mean()
		if err != nil {
			return nil, err
		}
		s.Means[j] = mean

		std, err := values.StandardDeviationPopulation()
		if err != nil {
			return nil, err
		}

		if std > 0 {
			s.Stds[j] = std
		}
	}

	return s, nil
}

// standardize returns v of column j scaled to zero mean and unit variance,
// missing values become 0.
func (s *scaler) standardize(j int, v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return (v - s.Means[j]) / s.Stds[j]
}

// impute returns v of column j with missing values replaced by the mean.
func (s *scaler) impute(j int, v float64) float64 {
	if math.IsNaN(v) {
		return s.Means[j]
	}

	return v
}
