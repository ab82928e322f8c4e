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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitTrainer(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		console bool
		expect  func(t *testing.T, dir string, err error)
	}{
		{
			name:    "console logger",
			console: true,
			expect: func(t *testing.T, dir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.False(IsDebug())
				_, err = os.Stat(filepath.Join(dir, "trainer"))
				assert.True(os.IsNotExist(err))
			},
		},
		{
			name:    "verbose console logger",
			verbose: true,
			console: true,
			expect: func(t *testing.T, dir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.True(IsDebug())
			},
		},
		{
			name: "file logger",
			expect: func(t *testing.T, dir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				WithRun("1", "bar").Infof("run %s started", "bar")
				TrainingLogger.Info("foo")
				assert.FileExists(filepath.Join(dir, "trainer", CoreLogFileName))
				assert.FileExists(filepath.Join(dir, "trainer", TrainingLogFileName))

				SetLevel(zapcore.DebugLevel)
				assert.True(IsDebug())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			tc.expect(t, dir, InitTrainer(tc.verbose, tc.console, dir, LogRotateConfig{}))
		})
	}
}

func TestSugaredLoggerOnWith(t *testing.T) {
	tests := []struct {
		name   string
		log    func() *SugaredLoggerOnWith
		expect func(t *testing.T, core, training, tracking *observer.ObservedLogs)
	}{
		{
			name: "model entries go to training logger",
			log: func() *SugaredLoggerOnWith {
				return WithModel("dummy", "Dummy").With("runID", "abc")
			},
			expect: func(t *testing.T, core, training, tracking *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(0, core.Len())
				assert.Equal(0, tracking.Len())
				entries := training.All()
				assert.Len(entries, 1)
				assert.Equal("fit 10 rows", entries[0].Message)
				assert.Equal(map[string]any{"model": "dummy", "modelType": "Dummy", "runID": "abc"}, entries[0].ContextMap())
			},
		},
		{
			name: "run entries go to tracking logger",
			log: func() *SugaredLoggerOnWith {
				return WithRun("1", "abc")
			},
			expect: func(t *testing.T, core, training, tracking *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(0, training.Len())
				assert.Equal(1, tracking.Len())
			},
		},
		{
			name: "plain entries go to core logger",
			log: func() *SugaredLoggerOnWith {
				return With("pprof", "foo")
			},
			expect: func(t *testing.T, core, training, tracking *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, core.Len())
				assert.Equal(0, training.Len())
			},
		},
	}

	coreLogger, trainingLogger, trackingLogger := CoreLogger, TrainingLogger, TrackingLogger
	defer func() {
		SetCoreLogger(coreLogger)
		SetTrainingLogger(trainingLogger)
		SetTrackingLogger(trackingLogger)
	}()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coreCore, core := observer.New(zap.InfoLevel)
			trainingCore, training := observer.New(zap.InfoLevel)
			trackingCore, tracking := observer.New(zap.InfoLevel)
			SetCoreLogger(zap.New(coreCore).Sugar())
			SetTrainingLogger(zap.New(trainingCore).Sugar())
			SetTrackingLogger(zap.New(trackingCore).Sugar())

			log := tc.log()
			log.Debugf("skipped %d", 1)
			log.Infof("fit %d rows", 10)
			tc.expect(t, core, training, tracking)
		})
	}
}

func TestLogRotateConfig_withDefaults(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(LogRotateConfig{
		MaxSize:    defaultRotateMaxSize,
		MaxAge:     defaultRotateMaxAge,
		MaxBackups: defaultRotateMaxBackups,
	}, LogRotateConfig{}.withDefaults())
	assert.Equal(LogRotateConfig{MaxSize: 1, MaxAge: 2, MaxBackups: 3}, LogRotateConfig{MaxSize: 1, MaxAge: 2, MaxBackups: 3}.withDefaults())
}
