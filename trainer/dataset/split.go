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
	"math/rand"
	"sort"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/pkg/container/set"
)

const (
	// DefaultTestSize is the default fraction of rows held out for validation.
	DefaultTestSize = 0.2

	// DefaultRandomState is the default seed of the split.
	DefaultRandomState = 2018
)

// Partition is the stratified train and validation split of a frame.
type Partition struct {
	// Frame is the input without rows missing a label.
	Frame *Frame

	XTrain *Frame
	XVal   *Frame
	YTrain []int
	YVal   []int

	// Features are the columns used by the model, in input order.
	Features []string
}

type splitOptions struct {
	testSize    float64
	randomState int64
}

// SplitOption is a functional option for configuring the split.
type SplitOption func(o *splitOptions)

// WithTestSize sets the fraction of rows held out for validation.
func WithTestSize(testSize float64) SplitOption {
	return func(o *splitOptions) {
		o.testSize = testSize
	}
}

// WithRandomState sets the seed of the split.
func WithRandomState(randomState int64) SplitOption {
	return func(o *splitOptions) {
		o.randomState = randomState
	}
}

// Split drops rows without a label and splits the rest into train and
// validation partitions preserving label proportions.
func Split(df *Frame, options ...SplitOption) (*Partition, error) {
	o := &splitOptions{
		testSize:    DefaultTestSize,
		randomState: DefaultRandomState,
	}
	for _, opt := range options {
		opt(o)
	}

	if math.IsNaN(o.testSize) || o.testSize <= 0 || o.testSize >= 1 {
		return nil, dferrors.Newf(dfcodes.InvalidArgument, "test size %v is not in (0, 1)", o.testSize)
	}

	classIdx := df.ColumnIndex(ClassColumn)
	if classIdx < 0 {
		return nil, dferrors.Newf(dfcodes.MissingColumn, "missing column %s", ClassColumn)
	}

	// Drop rows without a label.
	filtered := &Frame{Columns: df.Columns}
	var labels []int
	for i, row := range df.Rows {
		v := row[classIdx]
		if math.IsNaN(v) {
			continue
		}

		if v != math.Trunc(v) {
			return nil, dferrors.Newf(dfcodes.InvalidArgument, "label %v of row %d is not a class", v, i)
		}

		filtered.Rows = append(filtered.Rows, row)
		labels = append(labels, int(v))
	}

	excluded := set.New(TimeColumn, ClassColumn)
	var features []string
	for _, c := range df.Columns {
		if !excluded.Contains(c) {
			features = append(features, c)
		}
	}

	X, err := filtered.Select(features)
	if err != nil {
		return nil, err
	}

	trainIdx, valIdx, err := stratify(labels, o.testSize, o.randomState)
	if err != nil {
		return nil, err
	}

	return &Partition{
		Frame:    filtered,
		XTrain:   X.Take(trainIdx),
		XVal:     X.Take(valIdx),
		YTrain:   pick(labels, trainIdx),
		YVal:     pick(labels, valIdx),
		Features: features,
	}, nil
}

// stratify returns shuffled train and test row indices, each class sends the
// floor of its share to the test partition and the leftover test rows go to
// the classes with the largest remainders.
func stratify(labels []int, testSize float64, randomState int64) ([]int, []int, error) {
	n := len(labels)
	byClass := map[int][]int{}
	for i, l := range labels {
		byClass[l] = append(byClass[l], i)
	}

	classes := make([]int, 0, len(byClass))
	for c, rows := range byClass {
		if len(rows) < 2 {
			return nil, nil, dferrors.Newf(dfcodes.InsufficientClassSamples, "class %d has %d samples, at least 2 are required", c, len(rows))
		}
		classes = append(classes, c)
	}
	sort.Ints(classes)
	if len(classes) == 0 {
		return nil, nil, dferrors.New(dfcodes.InsufficientClassSamples, "no labeled rows")
	}

	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest < len(classes) || nTrain < len(classes) {
		return nil, nil, dferrors.Newf(dfcodes.InsufficientClassSamples, "%d train and %d test rows for %d classes", nTrain, nTest, len(classes))
	}

	type share struct {
		class     int
		count     int
		remainder float64
	}

	shares := make([]share, len(classes))
	allocated := 0
	for i, c := range classes {
		exact := float64(len(byClass[c])) * float64(nTest) / float64(n)
		count := int(math.Floor(exact))
		shares[i] = share{class: c, count: count, remainder: exact - float64(count)}
		allocated += count
	}

	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return shares[order[i]].remainder > shares[order[j]].remainder
	})

	for k := 0; allocated < nTest; k++ {
		s := &shares[order[k%len(order)]]
		if s.count < len(byClass[s.class])-1 {
			s.count++
			allocated++
		}
	}

	rng := rand.New(rand.NewSource(randomState))
	var train, test []int
	for _, s := range shares {
		rows := append([]int(nil), byClass[s.class]...)
		rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		test = append(test, rows[:s.count]...)
		train = append(train, rows[s.count:]...)
	}

	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })
	return train, test, nil
}

func pick(labels []int, indices []int) []int {
	picked := make([]int, len(indices))
	for i, idx := range indices {
		picked[i] = labels[idx]
	}

	return picked
}
