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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	CoreLogFileName     = "core.log"
	TrainingLogFileName = "training.log"
	TrackingLogFileName = "tracking.log"
)

const (
	defaultRotateMaxSize    = 40
	defaultRotateMaxBackups = 20
	defaultRotateMaxAge     = 7
)

const (
	encodeTimeFormat = "2006-01-02 15:04:05.000"
)

// LogRotateConfig is the rotation config of file logs, zero value fields fall
// back to defaults.
type LogRotateConfig struct {
	// MaxSize is the maximum size in megabytes of the log file before it gets rotated.
	MaxSize int `yaml:"maxSize" mapstructure:"maxSize"`

	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `yaml:"maxAge" mapstructure:"maxAge"`

	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `yaml:"maxBackups" mapstructure:"maxBackups"`
}

func (c LogRotateConfig) withDefaults() LogRotateConfig {
	if c.MaxSize <= 0 {
		c.MaxSize = defaultRotateMaxSize
	}

	if c.MaxAge <= 0 {
		c.MaxAge = defaultRotateMaxAge
	}

	if c.MaxBackups <= 0 {
		c.MaxBackups = defaultRotateMaxBackups
	}

	return c
}

// CreateLogger creates a json logger writing to filePath with rotation.
func CreateLogger(filePath string, compress, verbose bool, rotateConfig LogRotateConfig) (*zap.Logger, zap.AtomicLevel) {
	rotateConfig = rotateConfig.withDefaults()
	syncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    rotateConfig.MaxSize,
		MaxAge:     rotateConfig.MaxAge,
		MaxBackups: rotateConfig.MaxBackups,
		LocalTime:  true,
		Compress:   compress,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(encodeTimeFormat)

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		syncer,
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1)), level
}
