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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

func TestFileStore_Experiment(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	root := t.TempDir()

	s, err := NewStore(root)
	assert.NoError(err)

	experiment, err := s.GetExperimentByName(ctx, "fraud")
	assert.NoError(err)
	assert.Nil(experiment)

	id, err := s.CreateExperiment(ctx, "fraud")
	assert.NoError(err)
	assert.Equal("1", id)

	_, err = s.CreateExperiment(ctx, "fraud")
	assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))

	id, err = s.CreateExperiment(ctx, "other")
	assert.NoError(err)
	assert.Equal("2", id)

	experiment, err = s.GetExperimentByName(ctx, "fraud")
	assert.NoError(err)
	assert.Equal("1", experiment.ID)
	assert.Equal(LifecycleStageActive, experiment.LifecycleStage)
	assert.Equal(fileURI(filepath.Join(root, "1")), experiment.ArtifactLocation)
	assert.True(strings.HasPrefix(experiment.ArtifactLocation, "file://"))

	data, err := os.ReadFile(filepath.Join(root, "1", metaFileName))
	assert.NoError(err)
	var meta map[string]any
	assert.NoError(yaml.Unmarshal(data, &meta))
	assert.Equal("fraud", meta["name"])
}

func TestFileStore_Run(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		expect func(t *testing.T, s Store, root string, info *RunInfo)
	}{
		{
			name: "create run",
			expect: func(t *testing.T, s Store, root string, info *RunInfo) {
				assert := assert.New(t)
				assert.Len(info.RunID, 32)
				assert.Equal(RunStatusRunning, info.Status)
				assert.Equal("1", info.ExperimentID)
				assert.True(strings.HasSuffix(info.ArtifactURI, "/"+info.RunID+"/artifacts"))

				for _, sub := range []string{"params", "metrics", "tags", "artifacts"} {
					assert.DirExists(filepath.Join(root, "1", info.RunID, sub))
				}

				data, err := os.ReadFile(filepath.Join(root, "1", info.RunID, "tags", TagRunName))
				assert.NoError(err)
				assert.Equal("Logistic Regression", string(data))

				data, err = os.ReadFile(filepath.Join(root, "1", info.RunID, "tags", TagSourceType))
				assert.NoError(err)
				assert.Equal(SourceTypeLocal, string(data))
			},
		},
		{
			name: "log params",
			expect: func(t *testing.T, s Store, root string, info *RunInfo) {
				assert := assert.New(t)
				assert.NoError(s.LogParam(ctx, info.RunID, "model_name", "Logistic Regression"))
				assert.NoError(s.LogParam(ctx, info.RunID, "model_name", "Logistic Regression"))

				err := s.LogParam(ctx, info.RunID, "model_name", "Decision Tree")
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))

				data, err := os.ReadFile(filepath.Join(root, "1", info.RunID, "params", "model_name"))
				assert.NoError(err)
				assert.Equal("Logistic Regression", string(data))
			},
		},
		{
			name: "log metrics",
			expect: func(t *testing.T, s Store, root string, info *RunInfo) {
				assert := assert.New(t)
				assert.NoError(s.LogMetric(ctx, info.RunID, Metric{Key: "roc_auc", Value: 0.5, Timestamp: 1000}))
				assert.NoError(s.LogMetric(ctx, info.RunID, Metric{Key: "roc_auc", Value: 0.75, Timestamp: 2000, Step: 1}))

				data, err := os.ReadFile(filepath.Join(root, "1", info.RunID, "metrics", "roc_auc"))
				assert.NoError(err)
				assert.Equal("1000 0.5 0\n2000 0.75 1\n", string(data))
			},
		},
		{
			name: "invalid key",
			expect: func(t *testing.T, s Store, root string, info *RunInfo) {
				assert := assert.New(t)
				err := s.SetTag(ctx, info.RunID, "../escape", "foo")
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
			},
		},
		{
			name: "unknown run",
			expect: func(t *testing.T, s Store, root string, info *RunInfo) {
				assert := assert.New(t)
				assert.Error(s.LogParam(ctx, "0123456789abcdef", "foo", "bar"))
			},
		},
		{
			name: "update run",
			expect: func(t *testing.T, s Store, root string, info *RunInfo) {
				assert := assert.New(t)
				assert.NoError(s.UpdateRun(ctx, info.RunID, RunStatusFinished, 3000))

				restored := &RunInfo{}
				assert.NoError(readMeta(filepath.Join(root, "1", info.RunID), restored))
				assert.Equal(RunStatusFinished, restored.Status)
				assert.Equal(int64(3000), restored.EndTime)
				assert.Equal(info.StartTime, restored.StartTime)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			s, err := NewStore("file://" + filepath.ToSlash(root))
			if err != nil {
				t.Fatal(err)
			}

			id, err := s.CreateExperiment(ctx, "fraud")
			if err != nil {
				t.Fatal(err)
			}

			info, err := s.CreateRun(ctx, id, "Logistic Regression", 1000, []RunTag{{Key: TagSourceType, Value: SourceTypeLocal}})
			if err != nil {
				t.Fatal(err)
			}

			tc.expect(t, s, root, info)
		})
	}
}

func TestFileStore_RegisteredModel(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	root := t.TempDir()

	s, err := NewStore(root)
	assert.NoError(err)

	model, err := s.GetRegisteredModel(ctx, "CC Fraud Dummy Classifier")
	assert.NoError(err)
	assert.Nil(model)

	_, err = s.CreateModelVersion(ctx, "CC Fraud Dummy Classifier", "runs:/foo/dummy_model", "foo")
	assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))

	model, err = s.CreateRegisteredModel(ctx, "CC Fraud Dummy Classifier")
	assert.NoError(err)
	assert.Equal("CC Fraud Dummy Classifier", model.Name)

	_, err = s.CreateRegisteredModel(ctx, "CC Fraud Dummy Classifier")
	assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))

	for i, expected := range []string{"1", "2"} {
		version, err := s.CreateModelVersion(ctx, "CC Fraud Dummy Classifier", "runs:/foo/dummy_model", "foo")
		assert.NoError(err, i)
		assert.Equal(expected, version.Version)
		assert.Equal(ModelVersionStatusReady, version.Status)
		assert.DirExists(filepath.Join(root, registryDirName, "CC Fraud Dummy Classifier", "version-"+expected))
	}

	_, err = s.GetRegisteredModel(ctx, "../foo")
	assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		expect func(t *testing.T, s Store, err error)
	}{
		{
			name: "http uri",
			uri:  "http://localhost:5000/",
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("http://localhost:5000", s.(*restStore).baseURL)
			},
		},
		{
			name: "https uri",
			uri:  "https://tracking.example.com",
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.IsType(&restStore{}, s)
			},
		},
		{
			name: "local path",
			uri:  filepath.Join(os.TempDir(), "fraudtrainer-store-test"),
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.IsType(&fileStore{}, s)
				os.RemoveAll(s.(*fileStore).root)
			},
		},
		{
			name: "unsupported scheme",
			uri:  "databricks://profile",
			expect: func(t *testing.T, s Store, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewStore(tc.uri)
			tc.expect(t, s, err)
		})
	}
}
