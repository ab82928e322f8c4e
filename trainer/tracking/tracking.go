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

//go:generate mockgen -destination mocks/tracking_mock.go -source tracking.go -package mocks

package tracking

import (
	"context"
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/pkg/objectstorage"
)

// DefaultExperimentName is the experiment of runs started without one.
const DefaultExperimentName = "Default"

const errorCodeResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"

// Tracking logs runs of experiments and registers their models.
type Tracking interface {
	// SetExperiment activates experiment of name, creating it when absent.
	SetExperiment(ctx context.Context, name string) (*Experiment, error)

	// ActiveExperiment returns the active experiment, nil if none is set.
	ActiveExperiment() *Experiment

	// StartRun starts a run in the active experiment.
	StartRun(ctx context.Context, runName string) (Run, error)

	// RegisterModel registers source as a new version of the model name.
	RegisterModel(ctx context.Context, source, runID, name string) (*ModelVersion, error)
}

type tracking struct {
	uri           string
	store         Store
	objectStorage objectstorage.ObjectStorage
	options       []StoreOption

	mu         sync.RWMutex
	experiment *Experiment
}

// New returns tracking of uri, objectStorage uploads s3 and oss artifacts and may be nil.
func New(uri string, objectStorage objectstorage.ObjectStorage, options ...StoreOption) (Tracking, error) {
	if uri == "" {
		uri = DefaultTrackingDir
	}

	store, err := NewStore(uri, options...)
	if err != nil {
		return nil, err
	}

	return NewWithStore(uri, store, objectStorage, options...), nil
}

// NewWithStore returns tracking backed by store.
func NewWithStore(uri string, store Store, objectStorage objectstorage.ObjectStorage, options ...StoreOption) Tracking {
	return &tracking{
		uri:           uri,
		store:         store,
		objectStorage: objectStorage,
		options:       options,
	}
}

func (t *tracking) SetExperiment(ctx context.Context, name string) (*Experiment, error) {
	if name == "" {
		return nil, dferrors.New(dfcodes.InvalidArgument, "experiment name is empty")
	}

	experiment, err := t.store.GetExperimentByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if experiment == nil {
		id, err := t.store.CreateExperiment(ctx, name)
		if err != nil {
			return nil, err
		}
		logger.WithExperiment(id, name).Info("experiment created")

		if experiment, err = t.store.GetExperimentByName(ctx, name); err != nil {
			return nil, err
		}

		if experiment == nil {
			experiment = &Experiment{ID: id, Name: name, LifecycleStage: LifecycleStageActive}
		}
	}

	t.mu.Lock()
	t.experiment = experiment
	t.mu.Unlock()
	return experiment, nil
}

func (t *tracking) ActiveExperiment() *Experiment {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.experiment
}

func (t *tracking) StartRun(ctx context.Context, runName string) (Run, error) {
	experiment := t.ActiveExperiment()
	if experiment == nil {
		var err error
		if experiment, err = t.SetExperiment(ctx, DefaultExperimentName); err != nil {
			return nil, err
		}
	}

	info, err := t.store.CreateRun(ctx, experiment.ID, runName, time.Now().UnixMilli(), sourceTags())
	if err != nil {
		return nil, err
	}

	artifacts, err := NewArtifactRepository(info.ArtifactURI, t.uri, t.objectStorage, t.options...)
	if err != nil {
		// The run can not log anything without artifacts.
		if err := t.store.UpdateRun(ctx, info.RunID, RunStatusFailed, time.Now().UnixMilli()); err != nil {
			logger.WithRun(info.ExperimentID, info.RunID).Errorf("end run failed: %s", err.Error())
		}

		return nil, err
	}

	logger.WithRun(info.ExperimentID, info.RunID).Infof("run %s started", info.RunName)
	return newRun(info, t.store, artifacts, t), nil
}

func (t *tracking) RegisterModel(ctx context.Context, source, runID, name string) (*ModelVersion, error) {
	if name == "" {
		return nil, dferrors.New(dfcodes.InvalidArgument, "registered model name is empty")
	}

	model, err := t.store.GetRegisteredModel(ctx, name)
	if err != nil {
		return nil, err
	}

	if model == nil {
		if _, err := t.store.CreateRegisteredModel(ctx, name); err != nil && !isResourceAlreadyExists(err) {
			return nil, err
		}
	}

	return t.store.CreateModelVersion(ctx, name, source, runID)
}

func sourceTags() []RunTag {
	tags := []RunTag{
		{Key: TagSourceName, Value: filepath.Base(os.Args[0])},
		{Key: TagSourceType, Value: SourceTypeLocal},
	}

	if u, err := user.Current(); err == nil {
		tags = append(tags, RunTag{Key: TagUser, Value: u.Username})
	}

	return tags
}

func isResourceAlreadyExists(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.ErrorCode == errorCodeResourceAlreadyExists
}
