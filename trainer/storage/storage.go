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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/pkg/container/set"
	"d7y.io/fraudtrainer/trainer/evaluation"
)

const (
	// ParamsFileSuffix is suffix of params file name.
	ParamsFileSuffix = "params.yaml"

	// PredictionsFileSuffix is suffix of validation predictions file name.
	PredictionsFileSuffix = "val_predictions.csv"

	// MetricsFileSuffix is suffix of metrics file name.
	MetricsFileSuffix = "metrics.csv"
)

// Plot file suffixes.
const (
	ROCPlotSuffix               = "roc.png"
	PrecisionRecallPlotSuffix   = "pr.png"
	ConfusionMatrixPlotSuffix   = "cm.png"
	FeatureImportancePlotSuffix = "fi.png"
)

// Params is the run parameters written next to the plots, keys are sorted.
type Params struct {
	CleanFilename string   `yaml:"clean_filename"`
	Features      []string `yaml:"features"`
	ModelName     string   `yaml:"model_name"`
	NumFeatures   int      `yaml:"num_features"`
	NumRows       int      `yaml:"num_rows"`
}

// Prediction is the validation outcome of one row.
type Prediction struct {
	YTrue  int     `csv:"y_true"`
	YPred  int     `csv:"y_pred"`
	YProba float64 `csv:"y_proba"`
}

// Storage is the interface used for storage.
type Storage interface {
	// CreateDirs creates artifact and data directories.
	CreateDirs() error

	// CreateParams writes params yaml based on the given model slug, it returns the file path.
	CreateParams(string, *Params) (string, error)

	// CreatePredictions writes validation predictions csv based on the given model slug, it returns the file path.
	CreatePredictions(string, []Prediction) (string, error)

	// CreateMetrics writes a single row metrics csv based on the given model slug, it returns the file path.
	CreateMetrics(string, *evaluation.Metrics) (string, error)

	// PlotFilename returns path of plot based on the given model slug and plot suffix.
	PlotFilename(string, string) string

	// Clear removes all files written by storage.
	Clear() error
}

type storage struct {
	artifactDir string
	dataDir     string
	filenames   set.Set[string]
}

// New returns a new Storage instance, yaml and plots go to artifactDir and
// csv files go to dataDir.
func New(artifactDir, dataDir string) Storage {
	return &storage{
		artifactDir: artifactDir,
		dataDir:     dataDir,
		filenames:   set.New[string](),
	}
}

// CreateDirs creates artifact and data directories.
func (s *storage) CreateDirs() error {
	for _, dir := range []string{s.artifactDir, s.dataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "create directory %s", dir)
		}
	}

	return nil
}

// CreateParams writes params yaml based on the given model slug.
func (s *storage) CreateParams(slug string, params *Params) (string, error) {
	filename := s.paramsFilename(slug)
	data, err := yaml.Marshal(params)
	if err != nil {
		return "", dferrors.Wrap(dfcodes.IOFailure, err, "marshal params")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", dferrors.Wrapf(dfcodes.IOFailure, err, "write %s", filename)
	}

	s.filenames.Add(filename)
	return filename, nil
}

// CreatePredictions writes validation predictions csv based on the given model slug.
func (s *storage) CreatePredictions(slug string, predictions []Prediction) (string, error) {
	filename := s.predictionsFilename(slug)
	if err := s.writeCSV(filename, &predictions); err != nil {
		return "", err
	}

	return filename, nil
}

// CreateMetrics writes a single row metrics csv based on the given model slug.
func (s *storage) CreateMetrics(slug string, metrics *evaluation.Metrics) (string, error) {
	filename := s.metricsFilename(slug)
	rows := []*evaluation.Metrics{metrics}
	if err := s.writeCSV(filename, &rows); err != nil {
		return "", err
	}

	return filename, nil
}

// PlotFilename returns path of plot based on the given model slug and plot suffix.
func (s *storage) PlotFilename(slug, suffix string) string {
	filename := filepath.Join(s.artifactDir, fmt.Sprintf("%s_%s", slug, suffix))
	s.filenames.Add(filename)
	return filename
}

// Clear removes all files written by storage.
func (s *storage) Clear() error {
	for _, filename := range s.filenames.Values() {
		if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "remove %s", filename)
		}
	}

	s.filenames.Clear()
	return nil
}

func (s *storage) writeCSV(filename string, in any) error {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "open %s", filename)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(in, file); err != nil {
		if err := os.Remove(filename); err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "remove %s", filename)
		}

		return dferrors.Wrapf(dfcodes.IOFailure, err, "write %s", filename)
	}

	s.filenames.Add(filename)
	return nil
}

// paramsFilename generates params file name based on the given model slug.
func (s *storage) paramsFilename(slug string) string {
	return filepath.Join(s.artifactDir, fmt.Sprintf("%s_%s", slug, ParamsFileSuffix))
}

// predictionsFilename generates predictions file name based on the given model slug.
func (s *storage) predictionsFilename(slug string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s_%s", slug, PredictionsFileSuffix))
}

// metricsFilename generates metrics file name based on the given model slug.
func (s *storage) metricsFilename(slug string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s_%s", slug, MetricsFileSuffix))
}
