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

// RunStatus is the status of run.
type RunStatus string

const (
	// RunStatusRunning is status of a run in progress.
	RunStatusRunning RunStatus = "RUNNING"

	// RunStatusFinished is status of a run ended successfully.
	RunStatusFinished RunStatus = "FINISHED"

	// RunStatusFailed is status of a run ended with error.
	RunStatusFailed RunStatus = "FAILED"

	// RunStatusKilled is status of a run interrupted.
	RunStatusKilled RunStatus = "KILLED"
)

// LifecycleStageActive is lifecycle stage of experiments and runs not deleted.
const LifecycleStageActive = "active"

// Experiment groups runs.
type Experiment struct {
	ID               string `json:"experiment_id" yaml:"experiment_id"`
	Name             string `json:"name" yaml:"name"`
	ArtifactLocation string `json:"artifact_location" yaml:"artifact_location"`
	LifecycleStage   string `json:"lifecycle_stage" yaml:"lifecycle_stage"`
	CreationTime     int64  `json:"creation_time,omitempty" yaml:"creation_time"`
	LastUpdateTime   int64  `json:"last_update_time,omitempty" yaml:"last_update_time"`
}

// RunInfo is the metadata of run, times are unix milliseconds.
type RunInfo struct {
	RunID          string    `json:"run_id" yaml:"run_id"`
	RunName        string    `json:"run_name" yaml:"run_name"`
	ExperimentID   string    `json:"experiment_id" yaml:"experiment_id"`
	Status         RunStatus `json:"status" yaml:"status"`
	StartTime      int64     `json:"start_time" yaml:"start_time"`
	EndTime        int64     `json:"end_time,omitempty" yaml:"end_time"`
	ArtifactURI    string    `json:"artifact_uri" yaml:"artifact_uri"`
	LifecycleStage string    `json:"lifecycle_stage" yaml:"lifecycle_stage"`
}

// Metric is a metric value at timestamp and step.
type Metric struct {
	Key       string  `json:"key"`
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
	Step      int64   `json:"step"`
}

// RunTag is a key value tag of run.
type RunTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RegisteredModel is a named model in the model registry.
type RegisteredModel struct {
	Name                 string `json:"name" yaml:"name"`
	CreationTimestamp    int64  `json:"creation_timestamp" yaml:"creation_timestamp"`
	LastUpdatedTimestamp int64  `json:"last_updated_timestamp" yaml:"last_updated_timestamp"`
}

// ModelVersionStatusReady is status of a model version ready to serve.
const ModelVersionStatusReady = "READY"

// ModelVersion is a version of registered model.
type ModelVersion struct {
	Name              string `json:"name" yaml:"name"`
	Version           string `json:"version" yaml:"version"`
	Source            string `json:"source" yaml:"source"`
	RunID             string `json:"run_id" yaml:"run_id"`
	Status            string `json:"status" yaml:"status"`
	CreationTimestamp int64  `json:"creation_timestamp" yaml:"creation_timestamp"`
}
