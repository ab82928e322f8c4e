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
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"d7y.io/fraudtrainer/internal/dfcodes"
	"d7y.io/fraudtrainer/internal/dferrors"
)

// missingValues are cells read as NaN.
var missingValues = map[string]struct{}{
	"":     {},
	"na":   {},
	"nan":  {},
	"null": {},
	"none": {},
}

// Load reads a cleaned csv file with a header line.
func Load(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "open dataset %s", path)
	}
	defer file.Close()

	return Read(file)
}

// Read reads csv records with a header line.
func Read(r io.Reader) (*Frame, error) {
	reader := gocsv.LazyCSVReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dferrors.New(dfcodes.InvalidArgument, "dataset has no header")
		}

		return nil, dferrors.Wrap(dfcodes.IOFailure, err, "read dataset header")
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var rows [][]float64
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, dferrors.Wrapf(dfcodes.IOFailure, err, "read dataset line %d", line)
		}

		row := make([]float64, len(record))
		for i, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				return nil, dferrors.Wrapf(dfcodes.InvalidArgument, err, "parse column %s at line %d", columns[i], line)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return NewFrame(columns, rows)
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if _, ok := missingValues[strings.ToLower(cell)]; ok {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(cell, 64)
}
