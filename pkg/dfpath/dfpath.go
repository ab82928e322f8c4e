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

package dfpath

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	DefaultWorkHome     = "."
	DefaultWorkHomeMode = os.FileMode(0755)
	DefaultDataDirMode  = os.FileMode(0755)
	DefaultProject      = "my-local-project"
)

// Dfpath is the interface used for init project path.
type Dfpath interface {
	WorkHome() string
	WorkHomeMode() fs.FileMode
	LogDir() string
	DataDir() string
	DataDirMode() fs.FileMode
	ArtifactDir() string
	Project() string
	ProjectDataDir() string
	TrackingDir() string
}

// Dfpath provides init project path function.
type dfpath struct {
	workHome     string
	workHomeMode fs.FileMode
	logDir       string
	dataDir      string
	dataDirMode  fs.FileMode
	artifactDir  string
	project      string
}

// Option is a functional option for configuring the dfpath.
type Option func(d *dfpath)

// WithWorkHome set the workhome directory.
func WithWorkHome(dir string) Option {
	return func(d *dfpath) {
		d.workHome = dir
	}
}

// WithWorkHomeMode sets the workHome directory mode
func WithWorkHomeMode(mode fs.FileMode) Option {
	return func(d *dfpath) {
		d.workHomeMode = mode
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(d *dfpath) {
		d.logDir = dir
	}
}

// WithDataDir set the data directory.
func WithDataDir(dir string) Option {
	return func(d *dfpath) {
		d.dataDir = dir
	}
}

// WithDataDirMode sets the dataDir mode
func WithDataDirMode(mode fs.FileMode) Option {
	return func(d *dfpath) {
		d.dataDirMode = mode
	}
}

// WithArtifactDir set the artifact directory.
func WithArtifactDir(dir string) Option {
	return func(d *dfpath) {
		d.artifactDir = dir
	}
}

// WithProject set the project name.
func WithProject(project string) Option {
	return func(d *dfpath) {
		d.project = project
	}
}

// DataDirOf returns the data directory of a working directory, every
// "code" in it becomes "data".
func DataDirOf(workHome string) string {
	return strings.ReplaceAll(workHome, "code", "data")
}

// ArtifactDirOf returns the artifact directory of a working directory, every
// "code" in it becomes "artifacts".
func ArtifactDirOf(workHome string) string {
	return strings.ReplaceAll(workHome, "code", "artifacts")
}

// New returns a new dfpath interface.
func New(options ...Option) (Dfpath, error) {
	d := &dfpath{
		workHome:     DefaultWorkHome,
		workHomeMode: DefaultWorkHomeMode,
		dataDirMode:  DefaultDataDirMode,
		project:      DefaultProject,
	}

	for _, opt := range options {
		opt(d)
	}

	if d.logDir == "" {
		d.logDir = filepath.Join(d.workHome, "logs")
	}

	if d.dataDir == "" {
		d.dataDir = DataDirOf(d.workHome)
	}

	if d.artifactDir == "" {
		d.artifactDir = ArtifactDirOf(d.workHome)
	}

	var errs *multierror.Error

	// Create workhome directory.
	if err := os.MkdirAll(d.workHome, d.workHomeMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	// Create log directory.
	if err := os.MkdirAll(d.logDir, fs.FileMode(0700)); err != nil {
		errs = multierror.Append(errs, err)
	}

	// Create project data directory.
	if err := os.MkdirAll(d.ProjectDataDir(), d.dataDirMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	// Create artifact directory.
	if err := os.MkdirAll(d.artifactDir, d.dataDirMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *dfpath) WorkHome() string {
	return d.workHome
}

func (d *dfpath) WorkHomeMode() fs.FileMode {
	return d.workHomeMode
}

func (d *dfpath) LogDir() string {
	return d.logDir
}

func (d *dfpath) DataDir() string {
	return d.dataDir
}

func (d *dfpath) DataDirMode() fs.FileMode {
	return d.dataDirMode
}

func (d *dfpath) ArtifactDir() string {
	return d.artifactDir
}

func (d *dfpath) Project() string {
	return d.project
}

// ProjectDataDir is where prediction and metrics files of the project are kept.
func (d *dfpath) ProjectDataDir() string {
	return filepath.Join(d.dataDir, d.project)
}

// TrackingDir is the default root of the local tracking store.
func (d *dfpath) TrackingDir() string {
	return filepath.Join(d.workHome, "mlruns")
}
