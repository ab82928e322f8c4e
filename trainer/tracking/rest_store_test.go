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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/pkg/types"
)

const mockTrackingURL = "http://tracking.example.com"

func newMockRESTStore(t *testing.T, options ...StoreOption) *restStore {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	options = append([]StoreOption{WithRetry(1, 0, 0)}, options...)
	s, err := NewStore(mockTrackingURL, append(options, WithHTTPClient(client))...)
	if err != nil {
		t.Fatal(err)
	}

	return s.(*restStore)
}

func TestRESTStore_Experiment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mock   func()
		expect func(t *testing.T, s *restStore)
	}{
		{
			name: "get experiment by name",
			mock: func() {
				httpmock.RegisterResponder(http.MethodGet, mockTrackingURL+apiPrefix+"experiments/get-by-name", func(req *http.Request) (*http.Response, error) {
					if req.URL.Query().Get("experiment_name") != "fraud" {
						return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
					}

					return httpmock.NewStringResponse(http.StatusOK, `{"experiment":{"experiment_id":"7","name":"fraud","artifact_location":"mlflow-artifacts:/7","lifecycle_stage":"active"}}`), nil
				})
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				experiment, err := s.GetExperimentByName(ctx, "fraud")
				assert.NoError(err)
				assert.Equal("7", experiment.ID)
				assert.Equal("mlflow-artifacts:/7", experiment.ArtifactLocation)
			},
		},
		{
			name: "experiment does not exist",
			mock: func() {
				httpmock.RegisterResponder(http.MethodGet, mockTrackingURL+apiPrefix+"experiments/get-by-name",
					httpmock.NewStringResponder(http.StatusNotFound, `{"error_code":"RESOURCE_DOES_NOT_EXIST","message":"Could not find experiment"}`))
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				experiment, err := s.GetExperimentByName(ctx, "fraud")
				assert.NoError(err)
				assert.Nil(experiment)
			},
		},
		{
			name: "deleted experiment",
			mock: func() {
				httpmock.RegisterResponder(http.MethodGet, mockTrackingURL+apiPrefix+"experiments/get-by-name",
					httpmock.NewStringResponder(http.StatusOK, `{"experiment":{"experiment_id":"7","name":"fraud","lifecycle_stage":"deleted"}}`))
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				experiment, err := s.GetExperimentByName(ctx, "fraud")
				assert.NoError(err)
				assert.Nil(experiment)
			},
		},
		{
			name: "create experiment",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+"experiments/create", func(req *http.Request) (*http.Response, error) {
					var body map[string]any
					if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body["name"] != "fraud" {
						return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
					}

					return httpmock.NewStringResponse(http.StatusOK, `{"experiment_id":"8"}`), nil
				})
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				id, err := s.CreateExperiment(ctx, "fraud")
				assert.NoError(err)
				assert.Equal("8", id)
			},
		},
		{
			name: "request failed",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+"experiments/create",
					httpmock.NewStringResponder(http.StatusBadRequest, `{"error_code":"RESOURCE_ALREADY_EXISTS","message":"Experiment 'fraud' already exists."}`))
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				_, err := s.CreateExperiment(ctx, "fraud")
				assert.True(dferrors.CheckError(err, dfcodes.TrackingRequestFailed))
				assert.True(isResourceAlreadyExists(err))

				var apiErr *APIError
				assert.True(errors.As(err, &apiErr))
				assert.Equal(http.StatusBadRequest, apiErr.StatusCode)
				assert.Equal("Experiment 'fraud' already exists.", apiErr.Message)
			},
		},
		{
			name: "server error",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+"experiments/create",
					httpmock.NewStringResponder(http.StatusBadGateway, "bad gateway"))
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				_, err := s.CreateExperiment(ctx, "fraud")
				assert.True(dferrors.CheckError(err, dfcodes.TrackingBackendUnavailable))

				var apiErr *APIError
				assert.True(errors.As(err, &apiErr))
				assert.Equal("bad gateway", apiErr.Message)
			},
		},
		{
			name: "backend unreachable",
			mock: func() {
				httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+"experiments/create",
					httpmock.NewErrorResponder(errors.New("connection refused")))
			},
			expect: func(t *testing.T, s *restStore) {
				assert := assert.New(t)
				_, err := s.CreateExperiment(ctx, "fraud")
				assert.True(dferrors.CheckError(err, dfcodes.TrackingBackendUnavailable))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newMockRESTStore(t)
			tc.mock()
			tc.expect(t, s)
		})
	}
}

func TestRESTStore_Run(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := newMockRESTStore(t, WithToken("foo"))

	requests := map[string]map[string]any{}
	record := func(endpoint, response string) {
		httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+endpoint, func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(headers.Authorization) != "Bearer foo" || req.Header.Get(headers.UserAgent) != types.TrainerName {
				return httpmock.NewStringResponse(http.StatusUnauthorized, ""), nil
			}

			data, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}

			body := map[string]any{}
			if err := json.Unmarshal(data, &body); err != nil {
				return nil, err
			}
			requests[endpoint] = body

			return httpmock.NewStringResponse(http.StatusOK, response), nil
		})
	}

	record("runs/create", `{"run":{"info":{"run_id":"abc","experiment_id":"7","status":"RUNNING","artifact_uri":"mlflow-artifacts:/7/abc/artifacts","lifecycle_stage":"active"}}}`)
	record("runs/update", `{}`)
	record("runs/log-parameter", `{}`)
	record("runs/log-metric", `{}`)
	record("runs/set-tag", `{}`)

	info, err := s.CreateRun(ctx, "7", "Dummy", 1000, []RunTag{{Key: TagSourceType, Value: SourceTypeLocal}})
	assert.NoError(err)
	assert.Equal("abc", info.RunID)
	assert.Equal(RunStatusRunning, info.Status)
	assert.Equal("Dummy", requests["runs/create"]["run_name"])
	assert.Len(requests["runs/create"]["tags"], 2)

	assert.NoError(s.LogParam(ctx, "abc", "model_name", "Dummy"))
	assert.Equal("model_name", requests["runs/log-parameter"]["key"])
	assert.Equal("Dummy", requests["runs/log-parameter"]["value"])

	assert.NoError(s.LogMetric(ctx, "abc", Metric{Key: "roc_auc", Value: 0.5, Timestamp: 2000}))
	assert.Equal(0.5, requests["runs/log-metric"]["value"])
	assert.Equal(float64(2000), requests["runs/log-metric"]["timestamp"])

	assert.NoError(s.SetTag(ctx, "abc", "model", "Dummy"))
	assert.Equal("abc", requests["runs/set-tag"]["run_id"])

	assert.NoError(s.UpdateRun(ctx, "abc", RunStatusFinished, 3000))
	assert.Equal("FINISHED", requests["runs/update"]["status"])
}

func TestRESTStore_RegisteredModel(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := newMockRESTStore(t, WithBasicAuth("foo", "bar"))

	httpmock.RegisterResponder(http.MethodGet, mockTrackingURL+apiPrefix+"registered-models/get", func(req *http.Request) (*http.Response, error) {
		if username, password, ok := req.BasicAuth(); !ok || username != "foo" || password != "bar" {
			return httpmock.NewStringResponse(http.StatusUnauthorized, ""), nil
		}

		return httpmock.NewStringResponse(http.StatusNotFound, `{"error_code":"RESOURCE_DOES_NOT_EXIST"}`), nil
	})
	httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+"registered-models/create",
		httpmock.NewStringResponder(http.StatusOK, `{"registered_model":{"name":"CC Fraud Dummy Classifier","creation_timestamp":1000}}`))
	httpmock.RegisterResponder(http.MethodPost, mockTrackingURL+apiPrefix+"model-versions/create",
		httpmock.NewStringResponder(http.StatusOK, `{"model_version":{"name":"CC Fraud Dummy Classifier","version":"3","source":"runs:/abc/dummy_model","run_id":"abc","status":"READY"}}`))

	model, err := s.GetRegisteredModel(ctx, "CC Fraud Dummy Classifier")
	assert.NoError(err)
	assert.Nil(model)

	model, err = s.CreateRegisteredModel(ctx, "CC Fraud Dummy Classifier")
	assert.NoError(err)
	assert.Equal(int64(1000), model.CreationTimestamp)

	version, err := s.CreateModelVersion(ctx, "CC Fraud Dummy Classifier", "runs:/abc/dummy_model", "abc")
	assert.NoError(err)
	assert.Equal("3", version.Version)
	assert.Equal(ModelVersionStatusReady, version.Status)
}

func TestRESTStore_Retry(t *testing.T) {
	ctx := context.Background()
	endpoint := mockTrackingURL + apiPrefix + "runs/log-parameter"

	tests := []struct {
		name   string
		codes  []int
		expect func(t *testing.T, err error)
	}{
		{
			name:  "recover after unavailable",
			codes: []int{http.StatusServiceUnavailable, http.StatusOK},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(2, httpmock.GetCallCountInfo()["POST "+endpoint])
			},
		},
		{
			name:  "attempts exhausted",
			codes: []int{http.StatusBadGateway, http.StatusBadGateway, http.StatusBadGateway},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.TrackingBackendUnavailable))
				assert.Equal(3, httpmock.GetCallCountInfo()["POST "+endpoint])
			},
		},
		{
			name:  "client error is not retried",
			codes: []int{http.StatusBadRequest, http.StatusOK},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.TrackingRequestFailed))
				assert.Equal(1, httpmock.GetCallCountInfo()["POST "+endpoint])
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newMockRESTStore(t, WithRetry(3, time.Millisecond, time.Millisecond))

			calls := 0
			httpmock.RegisterResponder(http.MethodPost, endpoint, func(req *http.Request) (*http.Response, error) {
				code := tc.codes[calls]
				calls++
				if code != http.StatusOK {
					return httpmock.NewStringResponse(code, `{"error_code":"TEMPORARILY_UNAVAILABLE","message":"foo"}`), nil
				}

				return httpmock.NewStringResponse(code, `{}`), nil
			})

			tc.expect(t, s.LogParam(ctx, "abc", "foo", "bar"))
		})
	}
}
