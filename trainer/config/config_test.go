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
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"d7y.io/fraudtrainer/cmd/dependency/base"
)

var (
	mockDatasetPath = "/mnt/data/fraud/creditcard_clean.csv"

	mockObjectStorageConfig = ObjectStorageConfig{
		Name:      "s3",
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "foo",
		SecretKey: "bar",
	}
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Options: base.Options{
			Console:   true,
			Verbose:   true,
			PProfPort: 18066,
		},
		Server: ServerConfig{
			WorkDir:       "/mnt/code",
			LogDir:        "/mnt/code/logs",
			LogMaxSize:    512,
			LogMaxAge:     5,
			LogMaxBackups: 3,
			DataDir:       "/mnt/data",
			ArtifactDir:   "/mnt/artifacts",
		},
		Project: ProjectConfig{
			Name: "fraud",
		},
		Tracking: TrackingConfig{
			URI:            "http://127.0.0.1:5000",
			ExperimentName: "cc-fraud",
			Timeout:        10 * time.Second,
			MaxAttempts:    5,
			Username:       "foo",
			Password:       "bar",
			ObjectStorage: ObjectStorageConfig{
				Name:             "s3",
				Region:           "us-east-1",
				Endpoint:         "http://127.0.0.1:9000",
				AccessKey:        "foo",
				SecretKey:        "bar",
				S3ForcePathStyle: true,
			},
		},
		Training: TrainingConfig{
			DatasetPath: "/mnt/data/fraud/creditcard_clean.csv",
			TestSize:    0.25,
			RandomState: 42,
			Model: ModelConfig{
				Kind:           "decision_tree",
				Name:           "Decision Tree",
				LearningRate:   0.05,
				Epochs:         50,
				MaxDepth:       6,
				MinSamplesLeaf: 10,
				Strategy:       "most_frequent",
			},
		},
		Metrics: MetricsConfig{
			Enable:       true,
			TextfilePath: "/mnt/artifacts/fraudtrainer.prom",
		},
	}

	trainerConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/trainer.yaml")
	if err := yaml.Unmarshal(contentYAML, &trainerConfigYAML); err != nil {
		t.Fatal(err)
	}
	assert := assert.New(t)
	assert.EqualValues(config, trainerConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "valid config with object storage",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.ObjectStorage = mockObjectStorageConfig
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "server requires parameter workDir",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Server.WorkDir = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "server requires parameter workDir")
			},
		},
		{
			name:   "project requires parameter name",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Project.Name = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "project requires parameter name")
			},
		},
		{
			name:   "tracking requires parameter experimentName",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.ExperimentName = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "tracking requires parameter experimentName")
			},
		},
		{
			name:   "tracking requires parameter timeout",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.Timeout = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "tracking requires parameter timeout")
			},
		},
		{
			name:   "tracking requires parameter maxAttempts",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.MaxAttempts = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "tracking requires parameter maxAttempts")
			},
		},
		{
			name:   "tracking requires parameter password",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.Username = "foo"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "tracking requires parameter password")
			},
		},
		{
			name:   "objectStorage requires parameter name",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.ObjectStorage = mockObjectStorageConfig
				cfg.Tracking.ObjectStorage.Name = "obs"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "objectStorage requires parameter name")
			},
		},
		{
			name:   "objectStorage requires parameter endpoint",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.ObjectStorage = mockObjectStorageConfig
				cfg.Tracking.ObjectStorage.Endpoint = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "objectStorage requires parameter endpoint")
			},
		},
		{
			name:   "objectStorage requires parameter accessKey",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.ObjectStorage = mockObjectStorageConfig
				cfg.Tracking.ObjectStorage.AccessKey = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "objectStorage requires parameter accessKey")
			},
		},
		{
			name:   "objectStorage requires parameter secretKey",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Tracking.ObjectStorage = mockObjectStorageConfig
				cfg.Tracking.ObjectStorage.SecretKey = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "objectStorage requires parameter secretKey")
			},
		},
		{
			name:   "training requires parameter datasetPath",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter datasetPath")
			},
		},
		{
			name:   "training requires parameter testSize",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Training.TestSize = 1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter testSize")
			},
		},
		{
			name:   "model requires parameter kind",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Training.Model.Kind = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model requires parameter kind")
			},
		},
		{
			name:   "model requires parameter name",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Training.Model.Name = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model requires parameter name")
			},
		},
		{
			name:   "metrics requires parameter textfilePath",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.DatasetPath = mockDatasetPath
				cfg.Metrics.Enable = true
				cfg.Metrics.TextfilePath = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "metrics requires parameter textfilePath")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestConfig_Convert(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:   "derive directories from working directory",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.WorkDir = "/mnt/code"
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("/mnt/data", cfg.Server.DataDir)
				assert.Equal("/mnt/artifacts", cfg.Server.ArtifactDir)
			},
		},
		{
			name:   "default working directory",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.WorkDir = ""
				cfg.Project.Name = ""
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(".", cfg.Server.WorkDir)
				assert.Equal(".", cfg.Server.DataDir)
				assert.Equal(".", cfg.Server.ArtifactDir)
				assert.Equal(DefaultProjectName, cfg.Project.Name)
			},
		},
		{
			name:   "keep configured directories",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.WorkDir = "/mnt/code"
				cfg.Server.DataDir = "/foo"
				cfg.Server.ArtifactDir = "/bar"
			},
			expect: func(t *testing.T, cfg *Config, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("/foo", cfg.Server.DataDir)
				assert.Equal("/bar", cfg.Server.ArtifactDir)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			err := tc.config.Convert()
			tc.expect(t, tc.config, err)
		})
	}
}
