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

import "time"

const (
	// DefaultTimeout is the default timeout of requests to the tracking server.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts is the default number of calls of a request while the
	// tracking server is unavailable.
	DefaultMaxAttempts = 3

	// DefaultInitBackoff is the default wait before the first retry.
	DefaultInitBackoff = 500 * time.Millisecond

	// DefaultMaxBackoff is the default upper bound of waits between retries.
	DefaultMaxBackoff = 5 * time.Second

	// DefaultTrackingDir is the local tracking directory when no uri is set.
	DefaultTrackingDir = "mlruns"
)

// System tags of runs.
const (
	TagRunName         = "mlflow.runName"
	TagLogModelHistory = "mlflow.log-model.history"
	TagSourceName      = "mlflow.source.name"
	TagSourceType      = "mlflow.source.type"
	TagUser            = "mlflow.user"
)

// SourceTypeLocal is source type of runs started by a local job.
const SourceTypeLocal = "LOCAL"

const (
	// metaFileName is metadata file of experiments, runs and registered models.
	metaFileName = "meta.yaml"

	// lockFileName is lock file of the local store.
	lockFileName = ".lock"

	// lockRetryDelay is the delay between attempts of taking the store lock.
	lockRetryDelay = 50 * time.Millisecond

	// registryDirName is the directory of registered models.
	registryDirName = "models"

	// trashDirName is the directory of deleted experiments.
	trashDirName = ".trash"

	// artifactsDirName is the directory of run artifacts.
	artifactsDirName = "artifacts"
)
