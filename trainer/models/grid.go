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
	"github.com/sjwhitworth/golearn/base"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/trainer/dataset"
)

// grid holds model input as golearn instances, features are read and
// rewritten in place through the attribute specs.
type grid struct {
	inst  *base.DenseInstances
	attrs []base.AttributeSpec
	class *base.AttributeSpec
	rows  int
}

// newGrid packs X into golearn instances, labels become the class attribute
// when y is not nil.
func newGrid(X *dataset.Frame, y []int) (*grid, error) {
	inst, err := X.Instances(y)
	if err != nil {
		return nil, dferrors.Wrap(dfcodes.ModelFailure, err, "build instances")
	}

	g := &grid{
		inst:  inst,
		attrs: base.ResolveAttributes(inst, base.NonClassAttributes(inst)),
	}
	_, g.rows = inst.Size()

	classAttrs := inst.AllClassAttributes()
	switch len(classAttrs) {
	case 0:
	case 1:
		spec := base.ResolveAttributes(inst, classAttrs)[0]
		g.class = &spec
	default:
		return nil, dferrors.New(dfcodes.ModelFailure, "only 1 class variable is permitted")
	}

	return g, nil
}

func (g *grid) cols() int {
	return len(g.attrs)
}

func (g *grid) value(i, j int) float64 {
	return base.UnpackBytesToFloat(g.inst.Get(g.attrs[j], i))
}

// label returns class value of row i, 0 when the grid has no class attribute.
func (g *grid) label(i int) float64 {
	if g.class == nil {
		return 0
	}

	return base.UnpackBytesToFloat(g.inst.Get(*g.class, i))
}

// row reads features of row i into dst.
func (g *grid) row(i int, dst []float64) []float64 {
	for j := range g.attrs {
		dst[j] = g.value(i, j)
	}

	return dst
}

// apply rewrites every feature value v of column j with f(j, v).
func (g *grid) apply(f func(j int, v float64) float64) {
	for j, spec := range g.attrs {
		for i := 0; i < g.rows; i++ {
			g.inst.Set(spec, i, base.PackFloatToBytes(f(j, g.value(i, j))))
		}
	}
}
