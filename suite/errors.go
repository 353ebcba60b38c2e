/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package suite

import (
	"fmt"
	"strings"

	"github.com/onflow/typematch/errors"
)

// SuiteError is returned when cases of a suite are invalid.
type SuiteError struct {
	Errors []error
}

var _ errors.UserError = &SuiteError{}
var _ errors.ParentError = &SuiteError{}

func (*SuiteError) IsUserError() {}

func (e *SuiteError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid suite:")
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *SuiteError) ChildErrors() []error {
	return e.Errors
}

// CaseError

type CaseError struct {
	Case string
	Err  error
}

var _ errors.UserError = &CaseError{}

func (*CaseError) IsUserError() {}

func (e *CaseError) Unwrap() error {
	return e.Err
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Case, e.Err.Error())
}

// DecodingError

type DecodingError struct {
	Format string
	Err    error
}

var _ errors.UserError = &DecodingError{}

func (*DecodingError) IsUserError() {}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s suite: %s", e.Format, e.Err.Error())
}
