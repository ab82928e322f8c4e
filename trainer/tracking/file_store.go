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

package tracking

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	logger "d7y.io/fraudtrainer/internal/dflog"
)

// fileStore keeps tracking data in a local directory, one directory per
// experiment and run.
type fileStore struct {
	root string
	lock *flock.Flock
}

func newFileStore(root string) (Store, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "resolve tracking directory %s", root)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "create tracking directory %s", root)
	}

	return &fileStore{
		root: root,
		lock: flock.New(filepath.Join(root, lockFileName)),
	}, nil
}

// GetExperimentByName returns the active experiment of name, nil if absent.
func (s *fileStore) GetExperimentByName(ctx context.Context, name string) (*Experiment, error) {
	experiments, err := s.listExperiments()
	if err != nil {
		return nil, err
	}

	for _, e := range experiments {
		if e.Name == name && e.LifecycleStage == LifecycleStageActive {
			return e, nil
		}
	}

	return nil, nil
}

// CreateExperiment creates experiment and returns its id.
func (s *fileStore) CreateExperiment(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", dferrors.New(dfcodes.InvalidArgument, "experiment name is empty")
	}

	var id string
	if err := s.withLock(ctx, func() error {
		experiments, err := s.listExperiments()
		if err != nil {
			return err
		}

		next := 1
		for _, e := range experiments {
			if e.Name == name {
				return dferrors.Newf(dfcodes.InvalidArgument, "experiment %s already exists", name)
			}

			if n, err := strconv.Atoi(e.ID); err == nil && n >= next {
				next = n + 1
			}
		}

		id = strconv.Itoa(next)
		dir := filepath.Join(s.root, id)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "create experiment directory %s", dir)
		}

		now := time.Now().UnixMilli()
		return writeMeta(dir, &Experiment{
			ID:               id,
			Name:             name,
			ArtifactLocation: fileURI(dir),
			LifecycleStage:   LifecycleStageActive,
			CreationTime:     now,
			LastUpdateTime:   now,
		})
	}); err != nil {
		return "", err
	}

	logger.TrackingLogger.Infof("create experiment %s with id %s", name, id)
	return id, nil
}

// CreateRun creates a running run in experiment.
func (s *fileStore) CreateRun(ctx context.Context, experimentID, runName string, startTime int64, tags []RunTag) (*RunInfo, error) {
	expDir := filepath.Join(s.root, experimentID)
	experiment := &Experiment{}
	if err := readMeta(expDir, experiment); err != nil {
		return nil, dferrors.Wrapf(dfcodes.InvalidArgument, err, "experiment %s not found", experimentID)
	}

	info := &RunInfo{
		RunID:          strings.ReplaceAll(uuid.NewString(), "-", ""),
		RunName:        runName,
		ExperimentID:   experimentID,
		Status:         RunStatusRunning,
		StartTime:      startTime,
		LifecycleStage: LifecycleStageActive,
	}
	info.ArtifactURI = strings.TrimSuffix(experiment.ArtifactLocation, "/") + "/" + info.RunID + "/" + artifactsDirName

	runDir := filepath.Join(expDir, info.RunID)
	for _, sub := range []string{"params", "metrics", "tags", artifactsDirName} {
		if err := os.MkdirAll(filepath.Join(runDir, sub), 0755); err != nil {
			return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "create run directory %s", runDir)
		}
	}

	if err := writeMeta(runDir, info); err != nil {
		return nil, err
	}

	if runName != "" {
		tags = append(tags, RunTag{Key: TagRunName, Value: runName})
	}

	for _, tag := range tags {
		if err := s.SetTag(ctx, info.RunID, tag.Key, tag.Value); err != nil {
			return nil, err
		}
	}

	return info, nil
}

// UpdateRun sets status and end time of run.
func (s *fileStore) UpdateRun(ctx context.Context, runID string, status RunStatus, endTime int64) error {
	return s.withLock(ctx, func() error {
		dir, err := s.runDir(runID)
		if err != nil {
			return err
		}

		info := &RunInfo{}
		if err := readMeta(dir, info); err != nil {
			return err
		}

		info.Status = status
		info.EndTime = endTime
		return writeMeta(dir, info)
	})
}

// LogParam logs a param of run, params can not be changed once logged.
func (s *fileStore) LogParam(ctx context.Context, runID, key, value string) error {
	filename, err := s.runFile(runID, "params", key)
	if err != nil {
		return err
	}

	if data, err := os.ReadFile(filename); err == nil && string(data) != value {
		return dferrors.Newf(dfcodes.InvalidArgument, "param %s of run %s is already logged with value %s", key, runID, string(data))
	}

	return writeFile(filename, []byte(value), false)
}

// LogMetric appends a metric of run.
func (s *fileStore) LogMetric(ctx context.Context, runID string, metric Metric) error {
	filename, err := s.runFile(runID, "metrics", metric.Key)
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%d %s %d\n", metric.Timestamp, strconv.FormatFloat(metric.Value, 'g', -1, 64), metric.Step)
	return writeFile(filename, []byte(line), true)
}

// SetTag sets a tag of run.
func (s *fileStore) SetTag(ctx context.Context, runID, key, value string) error {
	filename, err := s.runFile(runID, "tags", key)
	if err != nil {
		return err
	}

	return writeFile(filename, []byte(value), false)
}

// GetRegisteredModel returns registered model of name, nil if absent.
func (s *fileStore) GetRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error) {
	dir, err := s.registeredModelDir(name)
	if err != nil {
		return nil, err
	}

	model := &RegisteredModel{}
	if err := readMeta(dir, model); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "read registered model %s", name)
	}

	return model, nil
}

// CreateRegisteredModel creates registered model of name.
func (s *fileStore) CreateRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error) {
	dir, err := s.registeredModelDir(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	model := &RegisteredModel{
		Name:                 name,
		CreationTimestamp:    now,
		LastUpdatedTimestamp: now,
	}
	if err := s.withLock(ctx, func() error {
		if _, err := os.Stat(filepath.Join(dir, metaFileName)); err == nil {
			return dferrors.Newf(dfcodes.InvalidArgument, "registered model %s already exists", name)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "create registered model directory %s", dir)
		}

		return writeMeta(dir, model)
	}); err != nil {
		return nil, err
	}

	return model, nil
}

// CreateModelVersion creates version n+1 of registered model.
func (s *fileStore) CreateModelVersion(ctx context.Context, name, source, runID string) (*ModelVersion, error) {
	dir, err := s.registeredModelDir(name)
	if err != nil {
		return nil, err
	}

	var version *ModelVersion
	if err := s.withLock(ctx, func() error {
		model := &RegisteredModel{}
		if err := readMeta(dir, model); err != nil {
			return dferrors.Wrapf(dfcodes.InvalidArgument, err, "registered model %s not found", name)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "read registered model directory %s", dir)
		}

		next := 1
		for _, entry := range entries {
			if n, err := strconv.Atoi(strings.TrimPrefix(entry.Name(), "version-")); err == nil && entry.IsDir() && n >= next {
				next = n + 1
			}
		}

		now := time.Now().UnixMilli()
		version = &ModelVersion{
			Name:              name,
			Version:           strconv.Itoa(next),
			Source:            source,
			RunID:             runID,
			Status:            ModelVersionStatusReady,
			CreationTimestamp: now,
		}

		versionDir := filepath.Join(dir, fmt.Sprintf("version-%d", next))
		if err := os.MkdirAll(versionDir, 0755); err != nil {
			return dferrors.Wrapf(dfcodes.IOFailure, err, "create model version directory %s", versionDir)
		}

		if err := writeMeta(versionDir, version); err != nil {
			return err
		}

		model.LastUpdatedTimestamp = now
		return writeMeta(dir, model)
	}); err != nil {
		return nil, err
	}

	return version, nil
}

func (s *fileStore) withLock(ctx context.Context, fn func() error) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "lock %s", s.lock.Path())
	}

	if !locked {
		return dferrors.Newf(dfcodes.IOFailure, "lock %s is held", s.lock.Path())
	}
	defer s.lock.Unlock()

	return fn()
}

func (s *fileStore) listExperiments() ([]*Experiment, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "read tracking directory %s", s.root)
	}

	var experiments []*Experiment
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == registryDirName || entry.Name() == trashDirName {
			continue
		}

		e := &Experiment{}
		if err := readMeta(filepath.Join(s.root, entry.Name()), e); err != nil {
			logger.TrackingLogger.Warnf("skip experiment directory %s: %s", entry.Name(), err.Error())
			continue
		}

		experiments = append(experiments, e)
	}

	sort.Slice(experiments, func(i, j int) bool {
		return experiments[i].ID < experiments[j].ID
	})

	return experiments, nil
}

func (s *fileStore) runDir(runID string) (string, error) {
	if err := validateName(runID); err != nil {
		return "", err
	}

	matches, err := filepath.Glob(filepath.Join(s.root, "*", runID))
	if err != nil || len(matches) == 0 {
		return "", dferrors.Newf(dfcodes.InvalidArgument, "run %s not found", runID)
	}

	return matches[0], nil
}

func (s *fileStore) runFile(runID, kind, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	dir, err := s.runDir(runID)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, kind, filepath.FromSlash(key)), nil
}

func (s *fileStore) registeredModelDir(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	return filepath.Join(s.root, registryDirName, name), nil
}

// validateKey rejects keys escaping the run directory, keys may hold slashes.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return dferrors.Newf(dfcodes.InvalidArgument, "invalid key %q", key)
	}

	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return dferrors.Newf(dfcodes.InvalidArgument, "invalid key %q", key)
		}
	}

	return nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return dferrors.Newf(dfcodes.InvalidArgument, "invalid name %q", name)
	}

	return nil
}

func readMeta(dir string, out any) error {
	data, err := os.ReadFile(filepath.Join(dir, metaFileName))
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, out)
}

func writeMeta(dir string, in any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return dferrors.Wrap(dfcodes.IOFailure, err, "marshal meta")
	}

	return writeFile(filepath.Join(dir, metaFileName), data, false)
}

func writeFile(filename string, data []byte, appendOnly bool) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "create directory of %s", filename)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendOnly {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	file, err := os.OpenFile(filename, flag, 0644)
	if err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "open %s", filename)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "write %s", filename)
	}

	return nil
}

func fileURI(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}
