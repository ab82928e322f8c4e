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

//go:generate mockgen -destination mocks/store_mock.go -source store.go -package mocks

package tracking

import (
	"context"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

// Store is the tracking backend keeping experiments, runs and registered models.
type Store interface {
	// GetExperimentByName returns the active experiment of name, nil if absent.
	GetExperimentByName(ctx context.Context, name string) (*Experiment, error)

	// CreateExperiment creates experiment and returns its id.
	CreateExperiment(ctx context.Context, name string) (string, error)

	// CreateRun creates a running run in experiment.
	CreateRun(ctx context.Context, experimentID, runName string, startTime int64, tags []RunTag) (*RunInfo, error)

	// UpdateRun sets status and end time of run.
	UpdateRun(ctx context.Context, runID string, status RunStatus, endTime int64) error

	// LogParam logs a param of run.
	LogParam(ctx context.Context, runID, key, value string) error

	// LogMetric logs a metric of run.
	LogMetric(ctx context.Context, runID string, metric Metric) error

	// SetTag sets a tag of run.
	SetTag(ctx context.Context, runID, key, value string) error

	// GetRegisteredModel returns registered model of name, nil if absent.
	GetRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error)

	// CreateRegisteredModel creates registered model of name.
	CreateRegisteredModel(ctx context.Context, name string) (*RegisteredModel, error)

	// CreateModelVersion creates a new version of registered model.
	CreateModelVersion(ctx context.Context, name, source, runID string) (*ModelVersion, error)
}

// StoreOption is a functional option for configuring the store.
type StoreOption func(o *storeOptions)

type storeOptions struct {
	timeout     time.Duration
	httpClient  *http.Client
	token       string
	username    string
	password    string
	maxAttempts int
	initBackoff time.Duration
	maxBackoff  time.Duration
}

// WithTimeout sets timeout of requests to the tracking server.
func WithTimeout(timeout time.Duration) StoreOption {
	return func(o *storeOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets http client of the tracking server.
func WithHTTPClient(client *http.Client) StoreOption {
	return func(o *storeOptions) {
		o.httpClient = client
	}
}

// WithToken sets bearer token of the tracking server.
func WithToken(token string) StoreOption {
	return func(o *storeOptions) {
		o.token = token
	}
}

// WithBasicAuth sets basic auth of the tracking server.
func WithBasicAuth(username, password string) StoreOption {
	return func(o *storeOptions) {
		o.username = username
		o.password = password
	}
}

// WithRetry sets retries of requests while the tracking server is unavailable.
func WithRetry(maxAttempts int, initBackoff, maxBackoff time.Duration) StoreOption {
	return func(o *storeOptions) {
		o.maxAttempts = maxAttempts
		o.initBackoff = initBackoff
		o.maxBackoff = maxBackoff
	}
}

// NewStore returns the store of tracking uri, http and https uris use the
// rest api and other uris are local directories.
func NewStore(uri string, options ...StoreOption) (Store, error) {
	o := &storeOptions{
		timeout:     DefaultTimeout,
		maxAttempts: DefaultMaxAttempts,
		initBackoff: DefaultInitBackoff,
		maxBackoff:  DefaultMaxBackoff,
	}
	for _, opt := range options {
		opt(o)
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.InvalidArgument, err, "parse tracking uri %s", uri)
	}

	switch u.Scheme {
	case "http", "https":
		return newRESTStore(strings.TrimSuffix(uri, "/"), o), nil
	case "file":
		return newFileStore(u.Path)
	case "":
		return newFileStore(filepath.Clean(uri))
	default:
		return nil, dferrors.Newf(dfcodes.InvalidArgument, "unsupported tracking uri scheme %s", u.Scheme)
	}
}
