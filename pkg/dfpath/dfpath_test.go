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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		options func(dir string) []Option
		expect  func(t *testing.T, dir string, d Dfpath, err error)
	}{
		{
			name: "new dfpath failed",
			options: func(dir string) []Option {
				file := filepath.Join(dir, "foo")
				if err := os.WriteFile(file, []byte("bar"), 0600); err != nil {
					t.Fatal(err)
				}

				return []Option{WithWorkHome(dir), WithLogDir(filepath.Join(file, "logs"))}
			},
			expect: func(t *testing.T, dir string, d Dfpath, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Nil(d)
			},
		},
		{
			name: "new dfpath by workHome",
			options: func(dir string) []Option {
				return []Option{WithWorkHome(filepath.Join(dir, "mnt", "code"))}
			},
			expect: func(t *testing.T, dir string, d Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(filepath.Join(dir, "mnt", "code"), d.WorkHome())
				assert.Equal(DefaultWorkHomeMode, d.WorkHomeMode())
				assert.Equal(filepath.Join(dir, "mnt", "code", "logs"), d.LogDir())
				assert.Equal(filepath.Join(dir, "mnt", "data"), d.DataDir())
				assert.Equal(DefaultDataDirMode, d.DataDirMode())
				assert.Equal(filepath.Join(dir, "mnt", "artifacts"), d.ArtifactDir())
				assert.Equal(DefaultProject, d.Project())
				assert.Equal(filepath.Join(dir, "mnt", "data", DefaultProject), d.ProjectDataDir())
				assert.Equal(filepath.Join(dir, "mnt", "code", "mlruns"), d.TrackingDir())
				assert.DirExists(d.LogDir())
				assert.DirExists(d.ProjectDataDir())
				assert.DirExists(d.ArtifactDir())
			},
		},
		{
			name: "new dfpath by dataDir, artifactDir and project",
			options: func(dir string) []Option {
				return []Option{
					WithWorkHome(dir),
					WithLogDir(filepath.Join(dir, "log")),
					WithDataDir(filepath.Join(dir, "foo")),
					WithDataDirMode(os.FileMode(0700)),
					WithArtifactDir(filepath.Join(dir, "bar")),
					WithProject("baz"),
				}
			},
			expect: func(t *testing.T, dir string, d Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(filepath.Join(dir, "log"), d.LogDir())
				assert.Equal(filepath.Join(dir, "foo"), d.DataDir())
				assert.Equal(os.FileMode(0700), d.DataDirMode())
				assert.Equal(filepath.Join(dir, "bar"), d.ArtifactDir())
				assert.Equal("baz", d.Project())
				assert.Equal(filepath.Join(dir, "foo", "baz"), d.ProjectDataDir())
				assert.DirExists(d.ProjectDataDir())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			d, err := New(tc.options(dir)...)
			tc.expect(t, dir, d, err)
		})
	}
}

func TestDataDirOf(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("/mnt/data", DataDirOf("/mnt/code"))
	assert.Equal("/mnt/artifacts", ArtifactDirOf("/mnt/code"))
	assert.Equal(".", DataDirOf("."))
	assert.Equal("/data/foo/data", DataDirOf("/code/foo/code"))
}
