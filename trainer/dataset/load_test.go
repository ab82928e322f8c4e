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

package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		expect  func(t *testing.T, f *Frame, err error)
	}{
		{
			name:    "read csv",
			content: "Time,V1,Amount,Class\n0,-1.35,149.62,0\n1,1.19,2.69,1\n",
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{"Time", "V1", "Amount", "Class"}, f.Columns)
				assert.Equal([][]float64{{0, -1.35, 149.62, 0}, {1, 1.19, 2.69, 1}}, f.Rows)
			},
		},
		{
			name:    "read missing values",
			content: "Time, V1,Class\n0,,NA\n1,NaN,null\n2,3,1\n",
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{"Time", "V1", "Class"}, f.Columns)
				assert.True(math.IsNaN(f.Rows[0][1]))
				assert.True(math.IsNaN(f.Rows[0][2]))
				assert.True(math.IsNaN(f.Rows[1][1]))
				assert.True(math.IsNaN(f.Rows[1][2]))
				assert.Equal(float64(1), f.Rows[2][2])
			},
		},
		{
			name:    "read header only",
			content: "Time,V1,Class\n",
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(0, f.Len())
			},
		},
		{
			name:    "read empty content",
			content: "",
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
			},
		},
		{
			name:    "read invalid number",
			content: "Time,V1,Class\n0,foo,1\n",
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidArgument))
				assert.Contains(err.Error(), "parse column V1 at line 2")
			},
		},
		{
			name:    "read inconsistent fields",
			content: "Time,V1,Class\n0,1\n",
			expect: func(t *testing.T, f *Frame, err error) {
				assert := assert.New(t)
				assert.Error(err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Read(strings.NewReader(tc.content))
			tc.expect(t, f, err)
		})
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "creditcard_clean.csv")
	if err := os.WriteFile(path, []byte("Time,V1,Class\n0,1,0\n"), 0600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	assert.NoError(err)
	assert.Equal(1, f.Len())

	_, err = Load(filepath.Join(dir, "foo.csv"))
	assert.True(dferrors.CheckError(err, dfcodes.IOFailure))
	assert.ErrorIs(err, os.ErrNotExist)
}
