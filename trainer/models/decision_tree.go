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
	"sort"

	"github.com/mitchellh/mapstructure"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/trainer/dataset"
)

const (
	// DefaultMaxDepth is the default depth limit of decision tree.
	DefaultMaxDepth = 8

	// DefaultMinSamplesLeaf is the default minimum rows of a leaf.
	DefaultMinSamplesLeaf = 5
)

// TreeNode is a node of decision tree, a node without children is a leaf.
type TreeNode struct {
	Feature   int       `json:"feature" mapstructure:"feature"`
	Threshold float64   `json:"threshold" mapstructure:"threshold"`
	Samples   int       `json:"samples" mapstructure:"samples"`
	Proba     float64   `json:"proba" mapstructure:"proba"`
	Left      *TreeNode `json:"left,omitempty" mapstructure:"left"`
	Right     *TreeNode `json:"right,omitempty" mapstructure:"right"`
}

// DecisionTree is a CART classifier split by gini impurity.
type DecisionTree struct {
	Fitted         bool      `mapstructure:"fitted"`
	MaxDepth       int       `mapstructure:"max_depth"`
	MinSamplesLeaf int       `mapstructure:"min_samples_leaf"`
	Root           *TreeNode `mapstructure:"root"`
	Importances    []float64 `mapstructure:"importances"`
	Features       []string  `mapstructure:"features"`
	Scaler         *scaler   `mapstructure:"scaler"`
}

// NewDecisionTree return an instance of decision tree model.
func NewDecisionTree(maxDepth, minSamplesLeaf int) *DecisionTree {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	if minSamplesLeaf <= 0 {
		minSamplesLeaf = DefaultMinSamplesLeaf
	}

	return &DecisionTree{
		MaxDepth:       maxDepth,
		MinSamplesLeaf: minSamplesLeaf,
	}
}

type treeBuilder struct {
	grid           *grid
	maxDepth       int
	minSamplesLeaf int
	importances    []float64

	// values is column j of the rows being split, indexed by row.
	values []float64
}

// Fit grows the tree on features with missing values filled by column means.
func (dt *DecisionTree) Fit(X *dataset.Frame, y []int) error {
	if err := checkLabels(X, y); err != nil {
		return err
	}

	g, err := newGrid(X, y)
	if err != nil {
		return err
	}

	s, err := fitScaler(g)
	if err != nil {
		return dferrors.Wrap(dfcodes.ModelFailure, err, "fit imputer")
	}
	g.apply(s.impute)

	b := &treeBuilder{
		grid:           g,
		maxDepth:       dt.MaxDepth,
		minSamplesLeaf: dt.MinSamplesLeaf,
		importances:    make([]float64, g.cols()),
		values:         make([]float64, g.rows),
	}

	indices := make([]int, g.rows)
	for i := range indices {
		indices[i] = i
	}

	dt.Root = b.grow(indices, 0)
	dt.Importances = normalize(b.importances)
	dt.Features = append([]string(nil), X.Columns...)
	dt.Scaler = s
	dt.Fitted = true
	return nil
}

func (b *treeBuilder) grow(indices []int, depth int) *TreeNode {
	var positives float64
	for _, i := range indices {
		positives += b.grid.label(i)
	}

	node := &TreeNode{
		Samples: len(indices),
		Proba:   positives / float64(len(indices)),
	}

	if depth >= b.maxDepth || len(indices) < 2*b.minSamplesLeaf || node.Proba == 0 || node.Proba == 1 {
		return node
	}

	feature, threshold, decrease, ok := b.bestSplit(indices, positives)
	if !ok {
		return node
	}

	var left, right []int
	for _, i := range indices {
		if b.grid.value(i, feature) <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	b.importances[feature] += decrease
	node.Feature = feature
	node.Threshold = threshold
	node.Left = b.grow(left, depth+1)
	node.Right = b.grow(right, depth+1)
	return node
}

// bestSplit returns the split with the largest weighted impurity decrease.
func (b *treeBuilder) bestSplit(indices []int, positives float64) (int, float64, float64, bool) {
	n := float64(len(indices))
	parent := n * gini(positives, n)

	var (
		bestFeature   int
		bestThreshold float64
		bestDecrease  float64
		found         bool
	)

	sorted := make([]int, len(indices))
	values := b.values
	for j := range b.importances {
		for _, i := range indices {
			values[i] = b.grid.value(i, j)
		}

		copy(sorted, indices)
		sort.SliceStable(sorted, func(x, y int) bool {
			return values[sorted[x]] < values[sorted[y]]
		})

		var leftPositives float64
		for k := 0; k < len(sorted)-1; k++ {
			leftPositives += b.grid.label(sorted[k])
			leftN := float64(k + 1)
			rightN := n - leftN
			if k+1 < b.minSamplesLeaf || len(sorted)-k-1 < b.minSamplesLeaf {
				continue
			}

			v, next := values[sorted[k]], values[sorted[k+1]]
			if v == next {
				continue
			}

			decrease := parent - leftN*gini(leftPositives, leftN) - rightN*gini(positives-leftPositives, rightN)
			if decrease > bestDecrease {
				bestFeature = j
				bestThreshold = v + (next-v)/2
				bestDecrease = decrease
				found = true
			}
		}
	}

	return bestFeature, bestThreshold, bestDecrease, found
}

// PredictProba returns the positive fraction of the leaf each row falls in.
func (dt *DecisionTree) PredictProba(X *dataset.Frame) ([]float64, error) {
	if !dt.Fitted {
		return nil, dferrors.New(dfcodes.ModelFailure, "no fitted model")
	}

	selected, err := X.Select(dt.Features)
	if err != nil {
		return nil, err
	}

	g, err := newGrid(selected, nil)
	if err != nil {
		return nil, err
	}
	g.apply(dt.Scaler.impute)

	proba := make([]float64, g.rows)
	for i := range proba {
		node := dt.Root
		for node.Left != nil {
			if g.value(i, node.Feature) <= node.Threshold {
				node = node.Left
			} else {
				node = node.Right
			}
		}

		proba[i] = node.Proba
	}

	return proba, nil
}

// Predict returns the majority class of the leaf each row falls in.
func (dt *DecisionTree) Predict(X *dataset.Frame) ([]int, error) {
	proba, err := dt.PredictProba(X)
	if err != nil {
		return nil, err
	}

	return threshold(proba), nil
}

// FeatureImportances returns the normalized total impurity decrease of each
// feature.
func (dt *DecisionTree) FeatureImportances() []float64 {
	return dt.Importances
}

func (dt *DecisionTree) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"fitted":           dt.Fitted,
		"max_depth":        dt.MaxDepth,
		"min_samples_leaf": dt.MinSamplesLeaf,
		"root":             dt.Root,
		"importances":      dt.Importances,
		"features":         dt.Features,
		"scaler":           dt.Scaler,
	})
}

func (dt *DecisionTree) UnmarshalJSON(data []byte) error {
	var d map[string]any
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	return mapstructure.Decode(d, dt)
}

func gini(positives, n float64) float64 {
	if n == 0 {
		return 0
	}

	p := positives / n
	return 2 * p * (1 - p)
}

func normalize(values []float64) []float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	normalized := make([]float64, len(values))
	if sum == 0 {
		return normalized
	}

	for i, v := range values {
		normalized[i] = v / sum
	}

	return normalized
}
