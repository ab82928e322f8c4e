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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-http-utils/headers"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	logger "d7y.io/fraudtrainer/internal/dflog"
	"d7y.io/fraudtrainer/pkg/retry"
	"d7y.io/fraudtrainer/pkg/types"
)

const (
	// apiPrefix is path prefix of the tracking rest api.
	apiPrefix = "/api/2.0/mlflow/"

	// mimeJSON is the content type of rest requests.
	mimeJSON = "application/json"

	// errorCodeResourceDoesNotExist is error code of missing experiments and models.
	errorCodeResourceDoesNotExist = "RESOURCE_DOES_NOT_EXIST"
)

// APIError is the error body of the tracking server.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// restStore talks to a tracking server over its rest api.
type restStore struct {
	baseURL string
	client  *http.Client
	options *storeOptions
}

func newRESTStore(baseURL string, o *storeOptions) *restStore {
	client := o.httpClient
	if client == nil {
		client = &http.Client{Timeout: o.timeout}
	}

	return &restStore{
		baseURL: baseURL,
		client:  client,
		options: o,
	}
}

// GetExperimentByName returns the active experiment of name, nil if absent.
func (s *restStore) GetExperimentByName(ctx context.Context, name string) (*Experiment, error) {
	var resp struct {
		Experiment *Experiment `json:"experiment"`
	}
	if err := s.do(ctx, http.MethodGet, "experiments/get-by-name", url.Values{"experiment_name": {name}}, nil, &resp); err != nil {
		if isResourceDoesNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	if resp.Experiment != nil && resp.Experiment.LifecycleStage != "" && resp.Experiment.LifecycleStage != LifecycleStageActive {
		return nil, nil
	}

	return resp.Experiment, nil
}

// CreateExperiment creates experiment and returns its id.
func (s *restStore) CreateExperiment(ctx context.Context, name string) (string, error) {
	var resp struct {
		ExperimentID string `json:"experiment_id"`
	}
	if err := s.do(ctx, http.MethodPost, "experiments/create", nil, map[string]any{"name": name}, &resp); err != nil {
		return "", err
	}

	return resp.ExperimentID, nil
}

// CreateRun creates a running run in experiment.
func (s *restStore) CreateRun(ctx context.Context, experimentID, runName string, startTime int64, tags []RunTag) (*RunInfo, error) {
	if runName != "" {
		tags = append(tags, RunTag{Key: TagRunName, Value: runName})
	}

	var resp struct {
		Run struct {
			Info *RunInfo `json:"info"`
		} `json:"run"`
	}
	if err := s.do(ctx, http.MethodPost, "runs/create", nil, map[string]any{
		"experiment_id": experimentID,
		"run_name":      runName,
		"start_time":    startTime,
		"tags":          tags,
	}, &resp); err != nil {
		return nil, err
	}

	if resp.Run.Info == nil {
		return nil, dferrors.New(dfcodes.TrackingRequestFailed, "runs/create returns no run info")
	}

	return resp.Run.Info, nil
}

// UpdateRun sets status and end time of run.
func (s *restStore) UpdateRun(ctx context.Context, runID string, status RunStatus, endTime int64) error {
	return s.do(ctx, http.MethodPost, "runs/update", nil, map[string]any{
		"run_id":   runID,
		"status":   status,
		"end_time": endTime,
	}, nil)
}

// LogParam logs a param of run.
func (s *restStore) LogParam(ctx context.Context, runID, key, value string) error {
	return s.do(ctx, http.MethodPost, "runs/log-parameter", nil, map[string]any{
		"run_id": runID,
		"key":    key,
		"value":  value,
	}, nil)
}

// LogMetric logs a metric of run.
func (s *restStore) LogMetric(ctx context.Context, runID string, metric Metric) error {
	return s.do(ctx, http.MethodPost, "runs/log-metric", nil, map[string]any{
		"run_id":    runID,
		"key":       metric.Key,
		"value":     metric.Value,
		"timestamp": metric.Timestamp,
		"step":      metric.Step,
	}, nil)
}

// SetTag sets a tag of run.
func (s *restStore) SetTag(ctx context.Context, runID, key, value string) error {
	return s.do(ctx, http.MethodPost, "runs/set-tag", nil, map[string]any{
		"run_id": runID,
		"key":    key,
		"value":  value,
	}, nil)
}

// GetRegisteredModel returns registered model of name, nil if absent.
func (s *restStore) GetRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error) {
	var resp struct {
		RegisteredModel *RegisteredModel `json:"registered_model"`
	}
	if err := s.do(ctx, http.MethodGet, "registered-models/get", url.Values{"name": {name}}, nil, &resp); err != nil {
		if isResourceDoesNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	return resp.RegisteredModel, nil
}

// CreateRegisteredModel creates registered model of name.
func (s *restStore) CreateRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error) {
	var resp struct {
		RegisteredModel *RegisteredModel `json:"registered_model"`
	}
	if err := s.do(ctx, http.MethodPost, "registered-models/create", nil, map[string]any{"name": name}, &resp); err != nil {
		return nil, err
	}

	return resp.RegisteredModel, nil
}

// CreateModelVersion creates a new version of registered model.
func (s *restStore) CreateModelVersion(ctx context.Context, name, source, runID string) (*ModelVersion, error) {
	var resp struct {
		ModelVersion *ModelVersion `json:"model_version"`
	}
	if err := s.do(ctx, http.MethodPost, "model-versions/create", nil, map[string]any{
		"name":   name,
		"source": source,
		"run_id": runID,
	}, &resp); err != nil {
		return nil, err
	}

	return resp.ModelVersion, nil
}

func (s *restStore) do(ctx context.Context, method, endpoint string, query url.Values, in, out any) error {
	u := s.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return dferrors.Wrapf(dfcodes.InvalidArgument, err, "marshal %s request", endpoint)
		}
	}

	var data []byte
	if err := retry.Run(ctx, s.options.initBackoff, s.options.maxBackoff, s.options.maxAttempts, func() (bool, error) {
		var err error
		data, err = s.roundTrip(ctx, method, u, endpoint, payload)
		if err != nil && dferrors.CheckError(err, dfcodes.TrackingBackendUnavailable) {
			logger.TrackingLogger.Warnf("%s %s failed: %s", method, u, err.Error())
			return false, err
		}

		return true, err
	}); err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return dferrors.Wrapf(dfcodes.TrackingRequestFailed, err, "unmarshal %s response", endpoint)
	}

	return nil
}

// roundTrip sends one request and returns the body of a successful response.
func (s *restStore) roundTrip(ctx context.Context, method, u, endpoint string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.InvalidArgument, err, "new %s request", endpoint)
	}
	s.setHeaders(req)

	logger.TrackingLogger.Debugf("%s %s", method, u)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.TrackingBackendUnavailable, err, "%s %s", method, endpoint)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.TrackingBackendUnavailable, err, "read %s response", endpoint)
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			apiErr.Message = string(data)
		}

		code := dfcodes.TrackingRequestFailed
		if resp.StatusCode >= http.StatusInternalServerError {
			code = dfcodes.TrackingBackendUnavailable
		}

		return nil, dferrors.Wrapf(code, apiErr, "%s %s", method, endpoint)
	}

	return data, nil
}

func (s *restStore) setHeaders(req *http.Request) {
	req.Header.Set(headers.ContentType, mimeJSON)
	req.Header.Set(headers.Accept, mimeJSON)
	req.Header.Set(headers.UserAgent, types.TrainerName)

	if s.options.token != "" {
		req.Header.Set(headers.Authorization, "Bearer "+s.options.token)
	} else if s.options.username != "" {
		req.SetBasicAuth(s.options.username, s.options.password)
	}
}

func isResourceDoesNotExist(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.ErrorCode == errorCodeResourceDoesNotExist || apiErr.StatusCode == http.StatusNotFound
}
