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

package config

import (
	"time"
)

const (
	// DefaultWorkDir is default working directory, also the fallback of DOMINO_WORKING_DIR.
	DefaultWorkDir = "."

	// DefaultProjectName is default project name, also the fallback of DOMINO_PROJECT_NAME.
	DefaultProjectName = "my-local-project"
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultTrackingExperimentName is default experiment of training runs.
	DefaultTrackingExperimentName = "cc-fraud-classifiers"

	// DefaultTrackingTimeout is default timeout of requests to the tracking backend.
	DefaultTrackingTimeout = 30 * time.Second

	// DefaultTrackingMaxAttempts is default number of calls of a request while the tracking server is unavailable.
	DefaultTrackingMaxAttempts = 3
)

const (
	// DefaultTrainingTestSize is default fraction of rows held out for validation.
	DefaultTrainingTestSize = 0.2

	// DefaultTrainingRandomState is default seed of the split and the models.
	DefaultTrainingRandomState = 2018

	// DefaultTrainingModelKind is default kind of model.
	DefaultTrainingModelKind = "logistic_regression"

	// DefaultTrainingModelName is default display name of model.
	DefaultTrainingModelName = "Logistic Regression"
)

const (
	// DefaultModelLearningRate is default learning rate of logistic regression.
	DefaultModelLearningRate = 0.1

	// DefaultModelEpochs is default epochs of logistic regression.
	DefaultModelEpochs = 100

	// DefaultModelMaxDepth is default max depth of decision tree.
	DefaultModelMaxDepth = 8

	// DefaultModelMinSamplesLeaf is default min samples of a decision tree leaf.
	DefaultModelMinSamplesLeaf = 5

	// DefaultModelStrategy is default strategy of dummy classifier.
	DefaultModelStrategy = "prior"
)

const (
	// DefaultMetricsTextfilePath is default path of prometheus textfile.
	DefaultMetricsTextfilePath = "fraudtrainer.prom"
)
