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

package dferrors

import (
	"errors"
	"fmt"

	"d7y.io/fraudtrainer/internal/dfcodes"
)

// common errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyValue      = errors.New("empty value")
	ErrDataNotFound    = errors.New("data not found")
)

type DfError struct {
	Code    dfcodes.Code
	Message string

	// cause is the underlying error, may be nil.
	cause error
}

func (s *DfError) Error() string {
	if s.cause != nil {
		return fmt.Sprintf("[%d]%s: %s", s.Code, s.Message, s.cause.Error())
	}

	return fmt.Sprintf("[%d]%s", s.Code, s.Message)
}

// Unwrap returns the underlying error.
func (s *DfError) Unwrap() error {
	return s.cause
}

// Is reports whether target is a DfError with the same code.
func (s *DfError) Is(target error) bool {
	t, ok := target.(*DfError)
	if !ok {
		return false
	}

	return t.Code == s.Code
}

func New(code dfcodes.Code, msg string) *DfError {
	return &DfError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code dfcodes.Code, format string, a ...any) *DfError {
	return &DfError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// Wrap attaches code and message to err, it returns nil if err is nil.
func Wrap(code dfcodes.Code, err error, msg string) error {
	if err == nil {
		return nil
	}

	return &DfError{
		Code:    code,
		Message: msg,
		cause:   err,
	}
}

// Wrapf is like Wrap with format.
func Wrapf(code dfcodes.Code, err error, format string, a ...any) error {
	if err == nil {
		return nil
	}

	return &DfError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
		cause:   err,
	}
}

// CheckError reports whether any error in err's chain is a DfError with code.
func CheckError(err error, code dfcodes.Code) bool {
	if err == nil {
		return false
	}

	var e *DfError
	if !errors.As(err, &e) {
		return false
	}

	return e.Code == code
}

// Code returns code of the first DfError in err's chain.
func Code(err error) dfcodes.Code {
	if err == nil {
		return dfcodes.Success
	}

	var e *DfError
	if errors.As(err, &e) {
		return e.Code
	}

	return dfcodes.UnknownError
}
