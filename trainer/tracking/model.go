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
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
	"d7y.io/fraudtrainer/trainer/dataset"
)

const (
	// MLmodelFileName is the model metadata file.
	MLmodelFileName = "MLmodel"

	// ModelDataFileName is the serialized model file.
	ModelDataFileName = "model.json"

	// InputExampleFileName is the input example file.
	InputExampleFileName = "input_example.json"

	// FlavorName is the flavor of models logged by trainer.
	FlavorName = "go_classifier"

	// utcTimeLayout is layout of model creation time.
	utcTimeLayout = "2006-01-02 15:04:05.000000"
)

// ColumnSpec is a named input column of signature.
type ColumnSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TensorSpec is an unnamed output tensor of signature.
type TensorSpec struct {
	Type       string     `json:"type"`
	TensorSpec TensorInfo `json:"tensor-spec"`
}

// TensorInfo is dtype and shape of tensor, -1 is a variable dimension.
type TensorInfo struct {
	Dtype string `json:"dtype"`
	Shape []int  `json:"shape"`
}

// Signature is the input and output schema of model.
type Signature struct {
	Inputs  []ColumnSpec `json:"inputs"`
	Outputs []TensorSpec `json:"outputs"`
}

// InferSignature returns a signature of double columns of X. The output is a
// variable length float64 vector when the model produced probabilities, and
// it is omitted when proba is empty.
func InferSignature(X *dataset.Frame, proba []float64) *Signature {
	inputs := make([]ColumnSpec, len(X.Columns))
	for i, c := range X.Columns {
		inputs[i] = ColumnSpec{Name: c, Type: "double"}
	}

	signature := &Signature{Inputs: inputs}
	if len(proba) > 0 {
		signature.Outputs = []TensorSpec{{
			Type:       "tensor",
			TensorSpec: TensorInfo{Dtype: "float64", Shape: []int{-1}},
		}}
	}

	return signature
}

// ModelInfo is the metadata of a logged model.
type ModelInfo struct {
	ArtifactPath    string
	ModelURI        string
	ModelUUID       string
	RunID           string
	UTCTimeCreated  string
	Flavors         map[string]map[string]any
	Signature       *Signature
	RegisteredModel *ModelVersion
}

type mlModel struct {
	ArtifactPath          string                    `yaml:"artifact_path"`
	Flavors               map[string]map[string]any `yaml:"flavors"`
	ModelUUID             string                    `yaml:"model_uuid"`
	RunID                 string                    `yaml:"run_id"`
	SavedInputExampleInfo map[string]any            `yaml:"saved_input_example_info,omitempty"`
	Signature             map[string]string         `yaml:"signature,omitempty"`
	UTCTimeCreated        string                    `yaml:"utc_time_created"`
}

type historyEntry struct {
	RunID          string                    `json:"run_id"`
	ArtifactPath   string                    `json:"artifact_path"`
	UTCTimeCreated string                    `json:"utc_time_created"`
	Flavors        map[string]map[string]any `json:"flavors"`
	ModelUUID      string                    `json:"model_uuid"`
}

// LogModelOption is a functional option for configuring the logged model.
type LogModelOption func(o *logModelOptions)

type logModelOptions struct {
	signature           *Signature
	inputExample        *dataset.Frame
	registeredModelName string
}

// WithSignature sets signature of the logged model.
func WithSignature(signature *Signature) LogModelOption {
	return func(o *logModelOptions) {
		o.signature = signature
	}
}

// WithInputExample sets input example rows of the logged model.
func WithInputExample(example *dataset.Frame) LogModelOption {
	return func(o *logModelOptions) {
		o.inputExample = example
	}
}

// WithRegisteredModelName registers the logged model as a new version of name.
func WithRegisteredModelName(name string) LogModelOption {
	return func(o *logModelOptions) {
		o.registeredModelName = name
	}
}

// ModelURI returns uri of model logged into artifactPath of run.
func ModelURI(runID, artifactPath string) string {
	return fmt.Sprintf("runs:/%s/%s", runID, strings.Trim(artifactPath, "/"))
}

// writeModel writes MLmodel, model data and input example of model into dir.
func writeModel(dir string, model any, runID, artifactPath string, o *logModelOptions) (*ModelInfo, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, dferrors.Wrap(dfcodes.ModelFailure, err, "marshal model")
	}

	if err := os.WriteFile(filepath.Join(dir, ModelDataFileName), data, 0644); err != nil {
		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "write %s", ModelDataFileName)
	}

	info := &ModelInfo{
		ArtifactPath:   artifactPath,
		ModelURI:       ModelURI(runID, artifactPath),
		ModelUUID:      strings.ReplaceAll(uuid.NewString(), "-", ""),
		RunID:          runID,
		UTCTimeCreated: time.Now().UTC().Format(utcTimeLayout),
		Flavors: map[string]map[string]any{
			FlavorName: {
				"model_type":           modelType(model),
				"data":                 ModelDataFileName,
				"serialization_format": "json",
				"go_version":           runtime.Version(),
			},
		},
		Signature: o.signature,
	}

	meta := &mlModel{
		ArtifactPath:   info.ArtifactPath,
		Flavors:        info.Flavors,
		ModelUUID:      info.ModelUUID,
		RunID:          runID,
		UTCTimeCreated: info.UTCTimeCreated,
	}

	if o.signature != nil {
		inputs, err := json.Marshal(o.signature.Inputs)
		if err != nil {
			return nil, dferrors.Wrap(dfcodes.InvalidArgument, err, "marshal signature inputs")
		}

		meta.Signature = map[string]string{"inputs": string(inputs)}
		if len(o.signature.Outputs) > 0 {
			outputs, err := json.Marshal(o.signature.Outputs)
			if err != nil {
				return nil, dferrors.Wrap(dfcodes.InvalidArgument, err, "marshal signature outputs")
			}

			meta.Signature["outputs"] = string(outputs)
		}
	}

	if o.inputExample != nil {
		example, err := json.Marshal(splitOrient(o.inputExample))
		if err != nil {
			return nil, dferrors.Wrap(dfcodes.InvalidArgument, err, "marshal input example")
		}

		if err := os.WriteFile(filepath.Join(dir, InputExampleFileName), example, 0644); err != nil {
			return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "write %s", InputExampleFileName)
		}

		meta.SavedInputExampleInfo = map[string]any{
			"artifact_path": InputExampleFileName,
			"type":          "dataframe",
			"pandas_orient": "split",
		}
	}

	out, err := yaml.Marshal(meta)
	if err != nil {
		return nil, dferrors.Wrap(dfcodes.InvalidArgument, err, "marshal MLmodel")
	}

	if err := os.WriteFile(filepath.Join(dir, MLmodelFileName), out, 0644); err != nil {
		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "write %s", MLmodelFileName)
	}

	return info, nil
}

// splitOrient returns the frame as columns and rows, missing values are null.
func splitOrient(f *dataset.Frame) map[string]any {
	data := make([][]any, len(f.Rows))
	for i, row := range f.Rows {
		data[i] = make([]any, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			data[i][j] = v
		}
	}

	return map[string]any{
		"columns": f.Columns,
		"data":    data,
	}
}

func modelType(model any) string {
	t := reflect.TypeOf(model)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}
