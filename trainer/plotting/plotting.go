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

package plotting

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/trainer/evaluation"
)

const (
	// DefaultTopFeatures is the number of bars of feature importance plot.
	DefaultTopFeatures = 15

	defaultWidth  = 6 * vg.Inch
	defaultHeight = 5 * vg.Inch
)

// ROC saves the roc curve with the chance diagonal.
func ROC(path, name string, roc *evaluation.Curve, auc float64) error {
	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false
	p.Legend.Left = false

	if err := plotutil.AddLines(p, fmt.Sprintf("%s (AUC=%.3f)", name, auc), xys(roc.X, roc.Y)); err != nil {
		return dferrors.Wrap(dfcodes.IOFailure, err, "add roc line")
	}

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return dferrors.Wrap(dfcodes.IOFailure, err, "add diagonal")
	}
	diagonal.LineStyle.Color = color.Gray{Y: 128}
	diagonal.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diagonal)

	return save(p, path)
}

// PrecisionRecall saves precision against recall.
func PrecisionRecall(path, name string, pr *evaluation.Curve, ap float64) error {
	p := plot.New()
	p.Title.Text = "Precision-Recall Curve"
	p.X.Label.Text = "Recall"
	p.Y.Label.Text = "Precision"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false
	p.Legend.Left = true

	if err := plotutil.AddLines(p, fmt.Sprintf("%s (AP=%.3f)", name, ap), xys(pr.X, pr.Y)); err != nil {
		return dferrors.Wrap(dfcodes.IOFailure, err, "add precision recall line")
	}

	return save(p, path)
}

// ConfusionMatrix saves a heatmap of the row normalized binary confusion
// matrix, actual classes top down and predicted classes left to right.
func ConfusionMatrix(path string, normalized [][]float64) error {
	if len(normalized) == 0 || len(normalized[0]) == 0 {
		return dferrors.New(dfcodes.InvalidArgument, "empty confusion matrix")
	}

	p := plot.New()
	p.Title.Text = "Normalized Confusion Matrix"
	p.X.Label.Text = "Predicted"
	p.Y.Label.Text = "Actual"

	grid := matrixGrid(normalized)
	hm := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	hm.Min, hm.Max = 0, 1
	p.Add(hm)

	cols, rows := grid.Dims()
	var (
		points plotter.XYs
		texts  []string
		xTicks []plot.Tick
		yTicks []plot.Tick
	)
	for r := 0; r < rows; r++ {
		yTicks = append(yTicks, plot.Tick{Value: grid.Y(r), Label: fmt.Sprint(rows - 1 - r)})
		for c := 0; c < cols; c++ {
			points = append(points, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			texts = append(texts, fmt.Sprintf("%.2f", grid.Z(c, r)))
		}
	}
	for c := 0; c < cols; c++ {
		xTicks = append(xTicks, plot.Tick{Value: grid.X(c), Label: fmt.Sprint(c)})
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
	if err != nil {
		return dferrors.Wrap(dfcodes.IOFailure, err, "add cell labels")
	}
	p.Add(labels)

	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	return save(p, path)
}

// FeatureImportances saves horizontal bars of the top n features, the most
// important feature on top.
func FeatureImportances(path string, features []string, importances []float64, n int) error {
	if len(features) != len(importances) {
		return dferrors.Newf(dfcodes.InvalidArgument, "%d features for %d importances", len(features), len(importances))
	}

	names, values := TopFeatures(features, importances, n)
	if len(names) == 0 {
		return dferrors.New(dfcodes.InvalidArgument, "no feature importances")
	}

	p := plot.New()
	p.Title.Text = "Top Feature Importances"
	p.X.Label.Text = "Importance"

	// Bars are drawn bottom up.
	bars := make(plotter.Values, len(values))
	ticks := make([]string, len(names))
	for i := range values {
		bars[len(values)-1-i] = values[i]
		ticks[len(names)-1-i] = names[i]
	}

	chart, err := plotter.NewBarChart(bars, vg.Points(12))
	if err != nil {
		return dferrors.Wrap(dfcodes.IOFailure, err, "add bars")
	}
	chart.Horizontal = true
	chart.LineStyle.Width = 0
	chart.Color = plotutil.Color(0)
	p.Add(chart)
	p.NominalY(ticks...)

	return save(p, path)
}

// TopFeatures returns the n features of largest importance in descending
// order, ties keep input order.
func TopFeatures(features []string, importances []float64, n int) ([]string, []float64) {
	order := make([]int, len(importances))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return importances[order[i]] > importances[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}

	names := make([]string, n)
	values := make([]float64, n)
	for i, idx := range order[:n] {
		names[i] = features[idx]
		values[i] = importances[idx]
	}

	return names, values
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(defaultWidth, defaultHeight, path); err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "save plot %s", path)
	}

	return nil
}

func xys(x, y []float64) plotter.XYs {
	points := make(plotter.XYs, len(x))
	for i := range x {
		points[i].X = x[i]
		points[i].Y = y[i]
	}

	return points
}

// matrixGrid is a plotter.GridXYZ of a row major matrix, grid rows count
// bottom up so matrix row 0 is drawn on top.
type matrixGrid [][]float64

func (g matrixGrid) Dims() (int, int) {
	return len(g[0]), len(g)
}

func (g matrixGrid) Z(c, r int) float64 {
	return g[len(g)-1-r][c]
}

func (g matrixGrid) X(c int) float64 {
	return float64(c)
}

func (g matrixGrid) Y(r int) float64 {
	return float64(r)
}
