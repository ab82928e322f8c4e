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
	"errors"
	"time"

	"d7y.io/fraudtrainer/cmd/dependency/base"
	"d7y.io/fraudtrainer/pkg/dfpath"
	"d7y.io/fraudtrainer/pkg/objectstorage"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Project configuration.
	Project ProjectConfig `yaml:"project" mapstructure:"project"`

	// Tracking configuration.
	Tracking TrackingConfig `yaml:"tracking" mapstructure:"tracking"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// WorkDir is the working directory, data and artifact directories are derived from it.
	WorkDir string `yaml:"workDir" mapstructure:"workDir"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// DataDir keeps prediction and metrics files, per project.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`

	// ArtifactDir keeps params files and plots before they are logged.
	ArtifactDir string `yaml:"artifactDir" mapstructure:"artifactDir"`
}

type ProjectConfig struct {
	// Name is the project name.
	Name string `yaml:"name" mapstructure:"name"`
}

type TrackingConfig struct {
	// URI is the tracking backend, http(s) for a tracking server,
	// file or plain path for a local store.
	URI string `yaml:"uri" mapstructure:"uri"`

	// ExperimentName is the experiment of training runs.
	ExperimentName string `yaml:"experimentName" mapstructure:"experimentName"`

	// Timeout is the timeout of requests to the tracking backend.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Token is the bearer token of the tracking server.
	Token string `yaml:"token" mapstructure:"token"`

	// Username and Password are basic auth of the tracking server,
	// ignored when token is set.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// MaxAttempts is the number of calls of a request while the tracking
	// server is unavailable.
	MaxAttempts int `yaml:"maxAttempts" mapstructure:"maxAttempts"`

	// ObjectStorage is used by s3:// and oss:// artifact locations.
	ObjectStorage ObjectStorageConfig `yaml:"objectStorage" mapstructure:"objectStorage"`
}

type ObjectStorageConfig struct {
	// Name is object storage name of type, it can be s3 or oss.
	Name string `yaml:"name" mapstructure:"name"`

	// Region is storage region.
	Region string `yaml:"region" mapstructure:"region"`

	// Endpoint is datacenter endpoint.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// AccessKey is access key ID.
	AccessKey string `yaml:"accessKey" mapstructure:"accessKey"`

	// SecretKey is access key secret.
	SecretKey string `yaml:"secretKey" mapstructure:"secretKey"`

	// S3ForcePathStyle sets force path style for s3.
	S3ForcePathStyle bool `yaml:"s3ForcePathStyle" mapstructure:"s3ForcePathStyle"`
}

type TrainingConfig struct {
	// DatasetPath is the cleaned csv file.
	DatasetPath string `yaml:"datasetPath" mapstructure:"datasetPath"`

	// TestSize is the fraction of rows held out for validation.
	TestSize float64 `yaml:"testSize" mapstructure:"testSize"`

	// RandomState seeds the split and the model.
	RandomState int64 `yaml:"randomState" mapstructure:"randomState"`

	// Model configuration.
	Model ModelConfig `yaml:"model" mapstructure:"model"`
}

type ModelConfig struct {
	// Kind is model kind, it can be logistic_regression, decision_tree or dummy.
	Kind string `yaml:"kind" mapstructure:"kind"`

	// Name is the display name of model.
	Name string `yaml:"name" mapstructure:"name"`

	// LearningRate of logistic regression.
	LearningRate float64 `yaml:"learningRate" mapstructure:"learningRate"`

	// Epochs of logistic regression.
	Epochs int `yaml:"epochs" mapstructure:"epochs"`

	// MaxDepth of decision tree.
	MaxDepth int `yaml:"maxDepth" mapstructure:"maxDepth"`

	// MinSamplesLeaf of decision tree.
	MinSamplesLeaf int `yaml:"minSamplesLeaf" mapstructure:"minSamplesLeaf"`

	// Strategy of dummy classifier, it can be prior or most_frequent.
	Strategy string `yaml:"strategy" mapstructure:"strategy"`
}

type MetricsConfig struct {
	// Enable writes job metrics when training completes.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// TextfilePath is the prometheus textfile of job metrics.
	TextfilePath string `yaml:"textfilePath" mapstructure:"textfilePath"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			WorkDir:       DefaultWorkDir,
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Project: ProjectConfig{
			Name: DefaultProjectName,
		},
		Tracking: TrackingConfig{
			ExperimentName: DefaultTrackingExperimentName,
			Timeout:        DefaultTrackingTimeout,
			MaxAttempts:    DefaultTrackingMaxAttempts,
			ObjectStorage: ObjectStorageConfig{
				S3ForcePathStyle: objectstorage.DefaultS3ForcePathStyle,
			},
		},
		Training: TrainingConfig{
			TestSize:    DefaultTrainingTestSize,
			RandomState: DefaultTrainingRandomState,
			Model: ModelConfig{
				Kind:           DefaultTrainingModelKind,
				Name:           DefaultTrainingModelName,
				LearningRate:   DefaultModelLearningRate,
				Epochs:         DefaultModelEpochs,
				MaxDepth:       DefaultModelMaxDepth,
				MinSamplesLeaf: DefaultModelMinSamplesLeaf,
				Strategy:       DefaultModelStrategy,
			},
		},
		Metrics: MetricsConfig{
			Enable:       false,
			TextfilePath: DefaultMetricsTextfilePath,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.WorkDir == "" {
		return errors.New("server requires parameter workDir")
	}

	if cfg.Project.Name == "" {
		return errors.New("project requires parameter name")
	}

	if cfg.Tracking.ExperimentName == "" {
		return errors.New("tracking requires parameter experimentName")
	}

	if cfg.Tracking.Timeout <= 0 {
		return errors.New("tracking requires parameter timeout")
	}

	if cfg.Tracking.MaxAttempts < 1 {
		return errors.New("tracking requires parameter maxAttempts")
	}

	if cfg.Tracking.Username != "" && cfg.Tracking.Password == "" {
		return errors.New("tracking requires parameter password")
	}

	if cfg.Tracking.ObjectStorage.Name != "" {
		if cfg.Tracking.ObjectStorage.Name != objectstorage.ServiceNameS3 &&
			cfg.Tracking.ObjectStorage.Name != objectstorage.ServiceNameOSS {
			return errors.New("objectStorage requires parameter name")
		}

		if cfg.Tracking.ObjectStorage.Endpoint == "" {
			return errors.New("objectStorage requires parameter endpoint")
		}

		if cfg.Tracking.ObjectStorage.AccessKey == "" {
			return errors.New("objectStorage requires parameter accessKey")
		}

		if cfg.Tracking.ObjectStorage.SecretKey == "" {
			return errors.New("objectStorage requires parameter secretKey")
		}
	}

	if cfg.Training.DatasetPath == "" {
		return errors.New("training requires parameter datasetPath")
	}

	if cfg.Training.TestSize <= 0 || cfg.Training.TestSize >= 1 {
		return errors.New("training requires parameter testSize")
	}

	if cfg.Training.Model.Kind == "" {
		return errors.New("model requires parameter kind")
	}

	if cfg.Training.Model.Name == "" {
		return errors.New("model requires parameter name")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.TextfilePath == "" {
			return errors.New("metrics requires parameter textfilePath")
		}
	}

	return nil
}

// Convert derives the directories from the working directory.
func (cfg *Config) Convert() error {
	if cfg.Server.WorkDir == "" {
		cfg.Server.WorkDir = DefaultWorkDir
	}

	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = dfpath.DataDirOf(cfg.Server.WorkDir)
	}

	if cfg.Server.ArtifactDir == "" {
		cfg.Server.ArtifactDir = dfpath.ArtifactDirOf(cfg.Server.WorkDir)
	}

	if cfg.Project.Name == "" {
		cfg.Project.Name = DefaultProjectName
	}

	return nil
}
