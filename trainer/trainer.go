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

package trainer

import (
	"context"

	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/pkg/dfpath"
	"d7y.io/fraudtrainer/pkg/objectstorage"
	"d7y.io/fraudtrainer/trainer/config"
	"d7y.io/fraudtrainer/trainer/dataset"
	"d7y.io/fraudtrainer/trainer/metrics"
	"d7y.io/fraudtrainer/trainer/models"
	"d7y.io/fraudtrainer/trainer/storage"
	"d7y.io/fraudtrainer/trainer/tracking"
	"d7y.io/fraudtrainer/trainer/training"
)

type Trainer struct {
	// Trainer configuration.
	config *config.Config

	// Storage interface.
	storage storage.Storage

	// Tracking interface.
	tracking tracking.Tracking

	// Training interface.
	training training.Training
}

// New returns a trainer of config, files are laid out by d.
func New(ctx context.Context, cfg *config.Config, d dfpath.Dfpath, options ...training.Option) (*Trainer, error) {
	t := &Trainer{config: cfg}

	// Initialize object storage of artifacts.
	var objectStorage objectstorage.ObjectStorage
	if cfg.Tracking.ObjectStorage.Name != "" {
		var err error
		objectStorage, err = objectstorage.New(
			cfg.Tracking.ObjectStorage.Name,
			cfg.Tracking.ObjectStorage.Region,
			cfg.Tracking.ObjectStorage.Endpoint,
			cfg.Tracking.ObjectStorage.AccessKey,
			cfg.Tracking.ObjectStorage.SecretKey,
			objectstorage.WithS3ForcePathStyle(cfg.Tracking.ObjectStorage.S3ForcePathStyle),
		)
		if err != nil {
			return nil, err
		}
	}

	// Initialize tracking.
	storeOptions := []tracking.StoreOption{
		tracking.WithTimeout(cfg.Tracking.Timeout),
		tracking.WithRetry(cfg.Tracking.MaxAttempts, tracking.DefaultInitBackoff, tracking.DefaultMaxBackoff),
	}
	if cfg.Tracking.Token != "" {
		storeOptions = append(storeOptions, tracking.WithToken(cfg.Tracking.Token))
	} else if cfg.Tracking.Username != "" {
		storeOptions = append(storeOptions, tracking.WithBasicAuth(cfg.Tracking.Username, cfg.Tracking.Password))
	}

	uri := cfg.Tracking.URI
	if uri == "" {
		uri = d.TrackingDir()
	}

	var err error
	t.tracking, err = tracking.New(uri, objectStorage, storeOptions...)
	if err != nil {
		return nil, err
	}
	logger.Infof("tracking uri is %s", uri)

	// Initialize storage.
	t.storage = storage.New(d.ArtifactDir(), d.ProjectDataDir())

	// Initialize training.
	t.training = training.New(cfg, t.storage, t.tracking, options...)
	return t, nil
}

// Train loads the dataset and trains the configured model.
func (t *Trainer) Train(ctx context.Context) (*training.Result, error) {
	if t.config.Metrics.Enable {
		defer func() {
			if err := metrics.WriteTextfile(t.config.Metrics.TextfilePath); err != nil {
				logger.Errorf("write metrics failed: %s", err.Error())
			}
		}()
	}

	df, err := dataset.Load(t.config.Training.DatasetPath)
	if err != nil {
		return nil, err
	}
	logger.Infof("load %d rows and %d columns from %s", df.Len(), len(df.Columns), t.config.Training.DatasetPath)

	modelConfig := t.config.Training.Model
	model, err := models.New(modelConfig.Kind, models.Options{
		LearningRate:   modelConfig.LearningRate,
		Epochs:         modelConfig.Epochs,
		MaxDepth:       modelConfig.MaxDepth,
		MinSamplesLeaf: modelConfig.MinSamplesLeaf,
		Strategy:       modelConfig.Strategy,
		RandomState:    t.config.Training.RandomState,
	})
	if err != nil {
		return nil, err
	}

	return t.training.TrainFraud(ctx, model, modelConfig.Name, df, t.config.Tracking.ExperimentName, t.config.Training.DatasetPath)
}
