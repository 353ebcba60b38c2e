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

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. an unreachable code path (UnreachableError),
// or a caller invoking an operation with arguments it does not accept (InvalidArgumentError).
// A program should never throw an InternalError in an ideal world.
//
// InternalErrors must always be thrown and not be caught (recovered),
// i.e. be propagated up the call stack.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by user-provided input, e.g. a malformed suite file.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError

// UnreachableError is an internal error which should have never occurred
// due to a programming error.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// InvalidArgumentError

// InvalidArgumentError is an internal error indicating that an operation
// was invoked with an argument outside of its contract.
// It signals caller misuse, e.g. selecting the wrong matching function.
type InvalidArgumentError struct {
	Err error
}

var _ InternalError = InvalidArgumentError{}

func NewInvalidArgumentError(message string, arg ...any) InvalidArgumentError {
	return InvalidArgumentError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Err.Error())
}

func (e InvalidArgumentError) IsInternalError() {}

// UnexpectedError is the default implementation of InternalError interface.
// It's a generic error that wraps an implementation error.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err: fmt.Errorf(message, arg...),
	}
}

func NewUnexpectedErrorFromCause(err error) UnexpectedError {
	return UnexpectedError{
		Err: err,
	}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e UnexpectedError) IsInternalError() {}

// DefaultUserError is the default implementation of UserError interface.
// It's a generic error that wraps a user error.
type DefaultUserError struct {
	Err error
}

var _ UserError = DefaultUserError{}

func NewDefaultUserError(message string, arg ...any) DefaultUserError {
	return DefaultUserError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (e DefaultUserError) IsUserError() {}

// SecondaryError is an interface for errors that provide a secondary error message
type SecondaryError interface {
	SecondaryError() string
}

// ParentError is an error that contains one or more child errors.
type ParentError interface {
	error
	ChildErrors() []error
}

// IsInternalError checks whether a given error was caused by an InternalError.
// An error is an internal error if it has at least one InternalError in the error chain.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
// An error is a user error if it has at least one UserError in the error chain.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}

// GetInvalidArgumentError returns the InvalidArgumentError in the error chain, if any
func GetInvalidArgumentError(err error) (InvalidArgumentError, bool) {
	switch err := err.(type) {
	case InvalidArgumentError:
		return err, true
	case *InvalidArgumentError:
		return *err, true
	case xerrors.Wrapper:
		return GetInvalidArgumentError(err.Unwrap())
	default:
		return InvalidArgumentError{}, false
	}
}
