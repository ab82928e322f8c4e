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

//go:generate mockgen -destination mocks/run_mock.go -source run.go -package mocks

package tracking

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/looplab/fsm"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	logger "d7y.io/fraudtrainer/internal/dflog"
)

const (
	// Run is logging params, metrics, tags and artifacts.
	RunStateRunning = "Running"

	// Run has ended successfully.
	RunStateFinished = "Finished"

	// Run has ended with error.
	RunStateFailed = "Failed"

	// Run has been interrupted.
	RunStateKilled = "Killed"
)

const (
	// Run ends successfully.
	RunEventFinish = "Finish"

	// Run ends with error.
	RunEventFail = "Fail"

	// Run is interrupted.
	RunEventKill = "Kill"
)

// Run is a tracked run.
type Run interface {
	// ID returns id of run.
	ID() string

	// Info returns metadata of run.
	Info() *RunInfo

	// LogParam logs a param.
	LogParam(ctx context.Context, key, value string) error

	// LogParams logs params in key order.
	LogParams(ctx context.Context, params map[string]string) error

	// LogMetric logs a metric at step 0.
	LogMetric(ctx context.Context, key string, value float64) error

	// LogMetrics logs metrics in key order.
	LogMetrics(ctx context.Context, metrics map[string]float64) error

	// SetTag sets a tag.
	SetTag(ctx context.Context, key, value string) error

	// SetTags sets tags in key order.
	SetTags(ctx context.Context, tags map[string]string) error

	// LogArtifact uploads the local file into artifactPath.
	LogArtifact(ctx context.Context, localPath, artifactPath string) error

	// LogModel serializes model into artifactPath and optionally registers it.
	LogModel(ctx context.Context, model any, artifactPath string, options ...LogModelOption) (*ModelInfo, error)

	// End ends run with status, ending an ended run does nothing.
	End(ctx context.Context, status RunStatus) error
}

type run struct {
	info      *RunInfo
	store     Store
	artifacts ArtifactRepository
	registry  registry
	history   []historyEntry
	fsm       *fsm.FSM
	log       *logger.SugaredLoggerOnWith
}

// registry registers logged models.
type registry interface {
	RegisterModel(ctx context.Context, modelURI, runID, name string) (*ModelVersion, error)
}

func newRun(info *RunInfo, store Store, artifacts ArtifactRepository, registry registry) *run {
	r := &run{
		info:      info,
		store:     store,
		artifacts: artifacts,
		registry:  registry,
		log:       logger.WithRun(info.ExperimentID, info.RunID),
	}

	r.fsm = fsm.NewFSM(
		RunStateRunning,
		fsm.Events{
			{Name: RunEventFinish, Src: []string{RunStateRunning}, Dst: RunStateFinished},
			{Name: RunEventFail, Src: []string{RunStateRunning}, Dst: RunStateFailed},
			{Name: RunEventKill, Src: []string{RunStateRunning}, Dst: RunStateKilled},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				r.log.Infof("run state is %s", e.FSM.Current())
			},
		},
	)

	return r
}

func (r *run) ID() string {
	return r.info.RunID
}

func (r *run) Info() *RunInfo {
	return r.info
}

func (r *run) LogParam(ctx context.Context, key, value string) error {
	if err := r.checkRunning(); err != nil {
		return err
	}

	return r.store.LogParam(ctx, r.info.RunID, key, value)
}

func (r *run) LogParams(ctx context.Context, params map[string]string) error {
	for _, key := range sortedKeys(params) {
		if err := r.LogParam(ctx, key, params[key]); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) LogMetric(ctx context.Context, key string, value float64) error {
	if err := r.checkRunning(); err != nil {
		return err
	}

	return r.store.LogMetric(ctx, r.info.RunID, Metric{
		Key:       key,
		Value:     value,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (r *run) LogMetrics(ctx context.Context, metrics map[string]float64) error {
	for _, key := range sortedKeys(metrics) {
		if err := r.LogMetric(ctx, key, metrics[key]); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) SetTag(ctx context.Context, key, value string) error {
	if err := r.checkRunning(); err != nil {
		return err
	}

	return r.store.SetTag(ctx, r.info.RunID, key, value)
}

func (r *run) SetTags(ctx context.Context, tags map[string]string) error {
	for _, key := range sortedKeys(tags) {
		if err := r.SetTag(ctx, key, tags[key]); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) LogArtifact(ctx context.Context, localPath, artifactPath string) error {
	if err := r.checkRunning(); err != nil {
		return err
	}

	r.log.Debugf("log artifact %s into %q", localPath, artifactPath)
	return r.artifacts.LogArtifact(ctx, localPath, artifactPath)
}

func (r *run) LogModel(ctx context.Context, model any, artifactPath string, options ...LogModelOption) (*ModelInfo, error) {
	if err := r.checkRunning(); err != nil {
		return nil, err
	}

	o := &logModelOptions{}
	for _, opt := range options {
		opt(o)
	}

	dir, err := os.MkdirTemp("", "model-")
	if err != nil {
		return nil, dferrors.Wrap(dfcodes.IOFailure, err, "create model directory")
	}
	defer os.RemoveAll(dir)

	info, err := writeModel(dir, model, r.info.RunID, artifactPath, o)
	if err != nil {
		return nil, err
	}

	if err := LogArtifacts(ctx, r.artifacts, dir, artifactPath); err != nil {
		return nil, err
	}

	r.history = append(r.history, historyEntry{
		RunID:          info.RunID,
		ArtifactPath:   info.ArtifactPath,
		UTCTimeCreated: info.UTCTimeCreated,
		Flavors:        info.Flavors,
		ModelUUID:      info.ModelUUID,
	})
	history, err := json.Marshal(r.history)
	if err != nil {
		return nil, dferrors.Wrap(dfcodes.InvalidArgument, err, "marshal model history")
	}

	if err := r.store.SetTag(ctx, r.info.RunID, TagLogModelHistory, string(history)); err != nil {
		return nil, err
	}

	if o.registeredModelName != "" {
		version, err := r.registry.RegisterModel(ctx, info.ModelURI, r.info.RunID, o.registeredModelName)
		if err != nil {
			return nil, err
		}

		info.RegisteredModel = version
		r.log.Infof("register model %s version %s", version.Name, version.Version)
	}

	return info, nil
}

// End ends run with status, ending an ended run does nothing.
func (r *run) End(ctx context.Context, status RunStatus) error {
	event, err := runEvent(status)
	if err != nil {
		return err
	}

	if !r.fsm.Is(RunStateRunning) {
		r.log.Debugf("run has already ended with state %s", r.fsm.Current())
		return nil
	}

	endTime := time.Now().UnixMilli()
	if err := r.store.UpdateRun(ctx, r.info.RunID, status, endTime); err != nil {
		return err
	}

	if err := r.fsm.Event(event); err != nil {
		return dferrors.Wrapf(dfcodes.UnknownError, err, "end run %s", r.info.RunID)
	}

	r.info.Status = status
	r.info.EndTime = endTime
	return nil
}

func (r *run) checkRunning() error {
	if !r.fsm.Is(RunStateRunning) {
		return dferrors.Newf(dfcodes.InvalidArgument, "run %s has ended with state %s", r.info.RunID, r.fsm.Current())
	}

	return nil
}

func runEvent(status RunStatus) (string, error) {
	switch status {
	case RunStatusFinished:
		return RunEventFinish, nil
	case RunStatusFailed:
		return RunEventFail, nil
	case RunStatusKilled:
		return RunEventKill, nil
	default:
		return "", dferrors.Newf(dfcodes.InvalidArgument, "run can not end with status %s", status)
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
