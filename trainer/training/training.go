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

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

package training

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/trainer/config"
	"d7y.io/fraudtrainer/trainer/dataset"
	"d7y.io/fraudtrainer/trainer/evaluation"
	"d7y.io/fraudtrainer/trainer/metrics"
	"d7y.io/fraudtrainer/trainer/models"
	"d7y.io/fraudtrainer/trainer/plotting"
	"d7y.io/fraudtrainer/trainer/storage"
	"d7y.io/fraudtrainer/trainer/tracking"
)

const (
	// PipelineTagKey is tag key of the training pipeline.
	PipelineTagKey = "pipeline"

	// PipelineTagValue is the pipeline of classifiers trained without pca.
	PipelineTagValue = "classifier_training_no_pca"

	// ModelTagKey is tag key of the model display name.
	ModelTagKey = "model"

	// ParamsArtifactPath is artifact path of the params file.
	ParamsArtifactPath = "params"

	// PlotsArtifactPath is artifact path of plots.
	PlotsArtifactPath = "plots"

	// InputExampleRows is number of validation rows kept as input example.
	InputExampleRows = 5
)

// Steps of training, reported to the step hook in order.
const (
	StepSplit    = "split data"
	StepParams   = "log params"
	StepFit      = "fit model"
	StepEvaluate = "evaluate model"
	StepLogModel = "log model"
	StepPlots    = "log plots"
)

// StepCount is number of steps of TrainFraud.
const StepCount = 6

// Result is the validation scores of a trained model.
type Result struct {
	// ModelName is the display name of model.
	ModelName string

	// Metrics are validation scores of model.
	Metrics *evaluation.Metrics

	// RunID is the tracked run of training.
	RunID string

	// ModelVersion is the registered version of model, nil if not registered.
	ModelVersion *tracking.ModelVersion
}

// ToMap returns model name and metrics, metric values are formatted.
func (r *Result) ToMap() map[string]string {
	m := map[string]string{"model_name": r.ModelName}
	for k, v := range r.Metrics.ToMap() {
		m[k] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return m
}

// Training defines the interface to train fraud classifiers.
type Training interface {
	// TrainAndLog fits model on the train partition, scores it on the
	// validation partition and logs everything to a tracked run.
	TrainAndLog(ctx context.Context, model models.Classifier, name string, split *dataset.Partition, cleanFilename string) (*Result, error)

	// TrainFraud activates experiment, splits df and trains model.
	TrainFraud(ctx context.Context, model models.Classifier, name string, df *dataset.Frame, experiment, cleanFilepath string) (*Result, error)
}

// Option is a functional option for configuring the training.
type Option func(t *training)

// WithStepHook sets hook called before each step.
func WithStepHook(hook func(step string)) Option {
	return func(t *training) {
		t.stepHook = hook
	}
}

// training implements Training interface.
type training struct {
	// Trainer config.
	config *config.Config

	// Storage interface.
	storage storage.Storage

	// Tracking interface.
	tracking tracking.Tracking

	stepHook func(step string)
}

// New returns a new Training.
func New(cfg *config.Config, storage storage.Storage, tracking tracking.Tracking, options ...Option) Training {
	t := &training{
		config:   cfg,
		storage:  storage,
		tracking: tracking,
		stepHook: func(string) {},
	}

	for _, opt := range options {
		opt(t)
	}

	return t
}

// TrainFraud activates experiment, splits df and trains model.
func (t *training) TrainFraud(ctx context.Context, model models.Classifier, name string, df *dataset.Frame, experiment, cleanFilepath string) (*Result, error) {
	e, err := t.tracking.SetExperiment(ctx, experiment)
	if err != nil {
		return nil, err
	}

	log := logger.WithModel(name, models.TypeName(model)).With("experimentID", e.ID)
	log.Infof("loading data clean path %s", cleanFilepath)

	t.stepHook(StepSplit)
	split, err := dataset.Split(df,
		dataset.WithTestSize(t.config.Training.TestSize),
		dataset.WithRandomState(t.config.Training.RandomState))
	if err != nil {
		log.Errorf("split data failed: %s", err.Error())
		return nil, err
	}
	logClassBalance(log, split)

	log.Infof("training model %s", name)
	return t.TrainAndLog(ctx, model, name, split, cleanFilepath)
}

// TrainAndLog fits model on the train partition, scores it on the validation
// partition and logs everything to a tracked run. The run ends with FAILED
// and the written files are removed when any step fails.
func (t *training) TrainAndLog(ctx context.Context, model models.Classifier, name string, split *dataset.Partition, cleanFilename string) (result *Result, err error) {
	slug := Slug(name)
	modelName := models.TypeName(model)
	log := logger.WithModel(name, modelName)
	metrics.TrainStartedCount.WithLabelValues(name).Inc()
	defer func() {
		if err != nil {
			metrics.ObserveFailure(name, err)
			return
		}

		metrics.TrainFinishedCount.WithLabelValues(name).Inc()
	}()

	if err := t.storage.CreateDirs(); err != nil {
		return nil, err
	}

	run, err := t.tracking.StartRun(ctx, name)
	if err != nil {
		return nil, err
	}
	log = log.With("runID", run.ID())
	defer func() {
		status := tracking.RunStatusFinished
		if err != nil {
			status = tracking.RunStatusFailed
		}

		if endErr := run.End(ctx, status); endErr != nil {
			log.Errorf("end run failed: %s", endErr.Error())
			if err == nil {
				result, err = nil, endErr
			}
		}

		// Partial files of a failed run are not kept.
		if status == tracking.RunStatusFailed {
			if clearErr := t.storage.Clear(); clearErr != nil {
				log.Errorf("clear files failed: %s", clearErr.Error())
			}
		}
	}()

	// Log params.
	t.stepHook(StepParams)
	params := &storage.Params{
		CleanFilename: cleanFilename,
		Features:      split.Features,
		ModelName:     modelName,
		NumFeatures:   len(split.Features),
		NumRows:       split.Frame.Len(),
	}
	if err := run.LogParams(ctx, map[string]string{
		"model_name":     params.ModelName,
		"clean_filename": params.CleanFilename,
		"num_features":   strconv.Itoa(params.NumFeatures),
		"num_rows":       strconv.Itoa(params.NumRows),
	}); err != nil {
		return nil, err
	}

	paramsPath, err := t.storage.CreateParams(slug, params)
	if err != nil {
		return nil, err
	}

	if err := run.LogArtifact(ctx, paramsPath, ParamsArtifactPath); err != nil {
		return nil, err
	}

	// Fit model.
	t.stepHook(StepFit)
	start := time.Now()
	if err := model.Fit(split.XTrain, split.YTrain); err != nil {
		log.Errorf("fit failed: %s", err.Error())
		return nil, err
	}
	fitTime := time.Since(start)
	metrics.FitDuration.WithLabelValues(name).Observe(fitTime.Seconds())
	log.Infof("fit %d rows in %s", split.XTrain.Len(), fitTime)

	// Evaluate model.
	t.stepHook(StepEvaluate)
	proba, err := model.PredictProba(split.XVal)
	if err != nil {
		return nil, err
	}

	pred, err := model.Predict(split.XVal)
	if err != nil {
		return nil, err
	}

	scores, err := evaluation.Evaluate(split.YVal, pred, proba)
	if err != nil {
		return nil, err
	}
	scores.FitTimeSec = fitTime.Seconds()

	if err := run.LogMetrics(ctx, scores.ToMap()); err != nil {
		return nil, err
	}

	predictions := make([]storage.Prediction, len(split.YVal))
	for i := range split.YVal {
		predictions[i] = storage.Prediction{YTrue: split.YVal[i], YPred: pred[i], YProba: proba[i]}
	}

	if _, err := t.storage.CreatePredictions(slug, predictions); err != nil {
		return nil, err
	}

	if _, err := t.storage.CreateMetrics(slug, scores); err != nil {
		return nil, err
	}

	// Log model.
	t.stepHook(StepLogModel)
	info, err := run.LogModel(ctx, model, slug+"_model",
		tracking.WithSignature(tracking.InferSignature(split.XVal, proba)),
		tracking.WithInputExample(split.XVal.Head(InputExampleRows)),
		tracking.WithRegisteredModelName(RegisteredModelName(name)))
	if err != nil {
		return nil, err
	}

	if info.RegisteredModel != nil {
		metrics.RegisterModelCount.Inc()
	}

	if err := run.SetTags(ctx, map[string]string{
		PipelineTagKey: PipelineTagValue,
		ModelTagKey:    name,
	}); err != nil {
		return nil, err
	}

	// Log plots.
	t.stepHook(StepPlots)
	if err := t.logPlots(ctx, run, model, name, slug, split, pred, proba, scores); err != nil {
		return nil, err
	}

	log.Infof("roc_auc %.4f pr_auc %.4f accuracy %.4f", scores.ROCAUC, scores.PRAUC, scores.Accuracy)
	return &Result{
		ModelName:    name,
		Metrics:      scores,
		RunID:        run.ID(),
		ModelVersion: info.RegisteredModel,
	}, nil
}

func (t *training) logPlots(ctx context.Context, run tracking.Run, model models.Classifier, name, slug string, split *dataset.Partition, pred []int, proba []float64, scores *evaluation.Metrics) error {
	roc, err := evaluation.ROC(split.YVal, proba)
	if err != nil {
		return err
	}

	pr, err := evaluation.PrecisionRecall(split.YVal, proba)
	if err != nil {
		return err
	}

	plots := []struct {
		suffix string
		render func(path string) error
	}{
		{
			suffix: storage.ROCPlotSuffix,
			render: func(path string) error {
				return plotting.ROC(path, name, roc, scores.ROCAUC)
			},
		},
		{
			suffix: storage.PrecisionRecallPlotSuffix,
			render: func(path string) error {
				return plotting.PrecisionRecall(path, name, pr, scores.PRAUC)
			},
		},
		{
			suffix: storage.ConfusionMatrixPlotSuffix,
			render: func(path string) error {
				return plotting.ConfusionMatrix(path, evaluation.NormalizeConfusionMatrix(evaluation.ConfusionMatrix(split.YVal, pred)))
			},
		},
	}

	// Only models exposing feature importances get the bar chart.
	if fi, ok := model.(models.FeatureImportancer); ok {
		plots = append(plots, struct {
			suffix string
			render func(path string) error
		}{
			suffix: storage.FeatureImportancePlotSuffix,
			render: func(path string) error {
				return plotting.FeatureImportances(path, split.Features, fi.FeatureImportances(), plotting.DefaultTopFeatures)
			},
		})
	}

	for _, p := range plots {
		path := t.storage.PlotFilename(slug, p.suffix)
		if err := p.render(path); err != nil {
			return err
		}

		if err := run.LogArtifact(ctx, path, PlotsArtifactPath); err != nil {
			return err
		}
		logger.Debugf("log plot %s", filepath.Base(path))
	}

	return nil
}

// Slug returns lower-cased name with spaces replaced by underscores.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// RegisteredModelName returns the registry name of model.
func RegisteredModelName(name string) string {
	return fmt.Sprintf("CC Fraud %s Classifier", name)
}

func logClassBalance(log *logger.SugaredLoggerOnWith, split *dataset.Partition) {
	for _, p := range []struct {
		name   string
		labels []int
	}{
		{name: "train", labels: split.YTrain},
		{name: "validation", labels: split.YVal},
	} {
		ratio, err := stats.LoadRawData(p.labels).Mean()
		if err != nil {
			log.Warnf("class balance of %s partition: %s", p.name, err.Error())
			continue
		}

		log.Infof("%s partition has %d rows, fraud ratio %.4f", p.name, len(p.labels), ratio)
	}
}
