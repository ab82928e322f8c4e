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

package dfcodes

// Code is the error code of trainer.
type Code int32

// trainer error codes
const (
	// success code 200-299
	Success Code = 200

	// common error 1000-1999
	InvalidArgument Code = 1400
	UnknownError    Code = 1500

	// dataset error 2000-2999
	MissingColumn            Code = 2001
	InsufficientClassSamples Code = 2002

	// model error 3000-3999
	UnknownModel Code = 3001
	ModelFailure Code = 3002 // fit or predict of the classifier failed

	// io error 4000-4999
	IOFailure Code = 4000

	// tracking error 5000-5999
	TrackingBackendUnavailable Code = 5000
	TrackingRequestFailed      Code = 5001 // backend answered with an error body
)

var codeNames = map[Code]string{
	Success:                    "Success",
	InvalidArgument:            "InvalidArgument",
	UnknownError:               "UnknownError",
	MissingColumn:              "MissingColumn",
	InsufficientClassSamples:   "InsufficientClassSamples",
	UnknownModel:               "UnknownModel",
	ModelFailure:               "ModelFailure",
	IOFailure:                  "IOFailure",
	TrackingBackendUnavailable: "TrackingBackendUnavailable",
	TrackingRequestFailed:      "TrackingRequestFailed",
}

// String returns the name of code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return "Unknown"
}
