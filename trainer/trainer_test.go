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

package trainer

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/pkg/dfpath"
	"d7y.io/fraudtrainer/trainer/config"
)

func writeMockDataset(t *testing.T, path string, n int) {
	var b strings.Builder
	b.WriteString("Time,V1,V2,Amount,Class\n")
	for i := 0; i < n; i++ {
		class := 0
		if i%20 == 0 {
			class = 1
		}

		b.WriteString(strings.Join([]string{
			itoa(i), itoa(class*10 + i%3), itoa(-i), itoa(i % 100), itoa(class),
		}, ","))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func TestTrainer_Train(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *config.Config, dir string)
		expect func(t *testing.T, dir string, d dfpath.Dfpath, err error)
	}{
		{
			name: "train dummy model",
			mock: func(cfg *config.Config, dir string) {
				cfg.Training.Model.Kind = "dummy"
				cfg.Training.Model.Name = "Dummy"
			},
			expect: func(t *testing.T, dir string, d dfpath.Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.FileExists(filepath.Join(d.ProjectDataDir(), "dummy_metrics.csv"))
				assert.FileExists(filepath.Join(d.ArtifactDir(), "dummy_roc.png"))
				assert.DirExists(filepath.Join(d.TrackingDir(), "models", "CC Fraud Dummy Classifier"))
				assert.FileExists(filepath.Join(dir, "fraudtrainer.prom"))
			},
		},
		{
			name: "unknown model",
			mock: func(cfg *config.Config, dir string) {
				cfg.Training.Model.Kind = "random_forest"
			},
			expect: func(t *testing.T, dir string, d dfpath.Dfpath, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.UnknownModel))
			},
		},
		{
			name: "dataset does not exist",
			mock: func(cfg *config.Config, dir string) {
				cfg.Training.DatasetPath = filepath.Join(dir, "foo.csv")
			},
			expect: func(t *testing.T, dir string, d dfpath.Dfpath, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.IOFailure))
				assert.FileExists(filepath.Join(dir, "fraudtrainer.prom"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := config.New()
			cfg.Training.DatasetPath = filepath.Join(dir, "creditcard_clean.csv")
			cfg.Metrics.Enable = true
			cfg.Metrics.TextfilePath = filepath.Join(dir, "fraudtrainer.prom")
			writeMockDataset(t, cfg.Training.DatasetPath, 400)
			tc.mock(cfg, dir)

			d, err := dfpath.New(dfpath.WithWorkHome(filepath.Join(dir, "code")))
			if err != nil {
				t.Fatal(err)
			}

			trainer, err := New(context.Background(), cfg, d)
			if err != nil {
				t.Fatal(err)
			}

			_, err = trainer.Train(context.Background())
			tc.expect(t, dir, d, err)
		})
	}
}
