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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/pkg/types"
	"d7y.io/fraudtrainer/version"
)

// Variables declared for metrics.
var (
	TrainStartedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainingMetricsSubsystem,
		Name:      "started_total",
		Help:      "Counter of the number of the training started.",
	}, []string{"model"})

	TrainFinishedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainingMetricsSubsystem,
		Name:      "finished_total",
		Help:      "Counter of the number of the training finished.",
	}, []string{"model"})

	TrainFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainingMetricsSubsystem,
		Name:      "failure_total",
		Help:      "Counter of the number of failed of the training.",
	}, []string{"model", "code"})

	FitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrainingMetricsSubsystem,
		Name:      "fit_duration_seconds",
		Help:      "Histogram of the time of fitting the model.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
	}, []string{"model"})

	RegisterModelCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.TrackingMetricsSubsystem,
		Name:      "register_model_total",
		Help:      "Counter of the number of the registered model versions.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

// ObserveFailure counts a failed training of model by error code.
func ObserveFailure(model string, err error) {
	TrainFailureCount.WithLabelValues(model, dferrors.Code(err).String()).Inc()
}

// WriteTextfile writes all metrics to path in the prometheus text format,
// it is read by the node exporter textfile collector.
func WriteTextfile(path string) error {
	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return dferrors.Wrapf(dfcodes.IOFailure, err, "write metrics to %s", path)
	}

	return nil
}
