/*
 *     Copyright 2020 The Dragonfly Authors
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
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	CoreLogger     *zap.SugaredLogger
	TrainingLogger *zap.SugaredLogger
	TrackingLogger *zap.SugaredLogger

	coreLogLevelEnabler zapcore.LevelEnabler
	levels              []zap.AtomicLevel
)

func init() {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	log, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1))
	if err == nil {
		sugar := log.Sugar()
		SetCoreLogger(sugar)
		SetTrainingLogger(sugar)
		SetTrackingLogger(sugar)
	}
	levels = append(levels, config.Level)
}

// SetLevel updates all log level
func SetLevel(level zapcore.Level) {
	Infof("change log level to %s", level.String())
	for _, l := range levels {
		l.SetLevel(level)
	}
}

func SetCoreLogger(log *zap.SugaredLogger) {
	CoreLogger = log
	coreLogLevelEnabler = log.Desugar().Core()
}

func SetTrainingLogger(log *zap.SugaredLogger) {
	TrainingLogger = log
}

func SetTrackingLogger(log *zap.SugaredLogger) {
	TrackingLogger = log
}

// SugaredLoggerOnWith writes entries with its args to one of the loggers,
// the logger is resolved on every call so it follows SetXXXLogger.
type SugaredLoggerOnWith struct {
	logger   **zap.SugaredLogger
	withArgs []any
}

func With(args ...any) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		logger:   &CoreLogger,
		withArgs: args,
	}
}

func WithExperiment(experimentID, experimentName string) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		logger:   &TrackingLogger,
		withArgs: []any{"experimentID", experimentID, "experimentName", experimentName},
	}
}

func WithRun(experimentID, runID string) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		logger:   &TrackingLogger,
		withArgs: []any{"experimentID", experimentID, "runID", runID},
	}
}

// WithModel writes to the training logger.
func WithModel(name, modelType string) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		logger:   &TrainingLogger,
		withArgs: []any{"model", name, "modelType", modelType},
	}
}

func (log *SugaredLoggerOnWith) With(args ...any) *SugaredLoggerOnWith {
	args = append(args, log.withArgs...)
	return &SugaredLoggerOnWith{
		logger:   log.logger,
		withArgs: args,
	}
}

func (log *SugaredLoggerOnWith) enabled(level zapcore.Level) bool {
	return (*log.logger).Desugar().Core().Enabled(level)
}

func (log *SugaredLoggerOnWith) Infof(template string, args ...any) {
	if !log.enabled(zap.InfoLevel) {
		return
	}
	(*log.logger).Infow(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Info(args ...any) {
	if !log.enabled(zap.InfoLevel) {
		return
	}
	(*log.logger).Infow(fmt.Sprint(args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Warnf(template string, args ...any) {
	if !log.enabled(zap.WarnLevel) {
		return
	}
	(*log.logger).Warnw(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Warn(args ...any) {
	if !log.enabled(zap.WarnLevel) {
		return
	}
	(*log.logger).Warnw(fmt.Sprint(args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Errorf(template string, args ...any) {
	if !log.enabled(zap.ErrorLevel) {
		return
	}
	(*log.logger).Errorw(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Error(args ...any) {
	if !log.enabled(zap.ErrorLevel) {
		return
	}
	(*log.logger).Errorw(fmt.Sprint(args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Debugf(template string, args ...any) {
	if !log.enabled(zap.DebugLevel) {
		return
	}
	(*log.logger).Debugw(fmt.Sprintf(template, args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) Debug(args ...any) {
	if !log.enabled(zap.DebugLevel) {
		return
	}
	(*log.logger).Debugw(fmt.Sprint(args...), log.withArgs...)
}

func (log *SugaredLoggerOnWith) IsDebug() bool {
	return log.enabled(zap.DebugLevel)
}

func Infof(template string, args ...any) {
	CoreLogger.Infof(template, args...)
}

func Info(args ...any) {
	CoreLogger.Info(args...)
}

func Warnf(template string, args ...any) {
	CoreLogger.Warnf(template, args...)
}

func Warn(args ...any) {
	CoreLogger.Warn(args...)
}

func Errorf(template string, args ...any) {
	CoreLogger.Errorf(template, args...)
}

func Error(args ...any) {
	CoreLogger.Error(args...)
}

func Debugf(template string, args ...any) {
	CoreLogger.Debugf(template, args...)
}

func Debug(args ...any) {
	CoreLogger.Debug(args...)
}

func IsDebug() bool {
	return coreLogLevelEnabler.Enabled(zap.DebugLevel)
}

func Fatalf(template string, args ...any) {
	CoreLogger.Fatalf(template, args...)
}

func Fatal(args ...any) {
	CoreLogger.Fatal(args...)
}
