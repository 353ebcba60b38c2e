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

package oracle

import (
	"fmt"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/typematch/errors"
)

// HierarchyError is returned when a static hierarchy
// cannot be built from its declarations.
type HierarchyError struct {
	Errors []error
}

var _ errors.UserError = &HierarchyError{}
var _ errors.ParentError = &HierarchyError{}

func (*HierarchyError) IsUserError() {}

func (e *HierarchyError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid type hierarchy:")
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
		if secondaryError, ok := err.(errors.SecondaryError); ok {
			sb.WriteString(". ")
			sb.WriteString(secondaryError.SecondaryError())
		}
	}
	return sb.String()
}

func (e *HierarchyError) ChildErrors() []error {
	return e.Errors
}

// MissingTypeNameError

type MissingTypeNameError struct{}

var _ errors.UserError = &MissingTypeNameError{}

func (*MissingTypeNameError) IsUserError() {}

func (*MissingTypeNameError) Error() string {
	return "type declaration without name"
}

// RedeclarationError

type RedeclarationError struct {
	Name string
}

var _ errors.UserError = &RedeclarationError{}

func (*RedeclarationError) IsUserError() {}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("cannot redeclare type: `%s` is already declared", e.Name)
}

// UnknownSupertypeError

type UnknownSupertypeError struct {
	TypeName      string
	SupertypeName string
	declaredNames []string
}

var _ errors.UserError = &UnknownSupertypeError{}
var _ errors.SecondaryError = &UnknownSupertypeError{}

func (*UnknownSupertypeError) IsUserError() {}

func (e *UnknownSupertypeError) Error() string {
	return fmt.Sprintf(
		"cannot find supertype `%s` of `%s`",
		e.SupertypeName,
		e.TypeName,
	)
}

func (e *UnknownSupertypeError) SecondaryError() string {
	closestName := e.findClosestName()
	if closestName == "" {
		return "not declared"
	}
	return fmt.Sprintf("did you mean `%s`?", closestName)
}

// findClosestName finds the declared name with the smallest edit distance
// from the unknown supertype name. In cases of typos, this provides a hint.
func (e *UnknownSupertypeError) findClosestName() (closestName string) {
	nameRunes := []rune(e.SupertypeName)

	closestDistance := len(nameRunes)

	// declared names are in declaration order, so ties go to the earliest declaration
	for _, declaredName := range e.declaredNames {
		declaredRunes := []rune(declaredName)
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			declaredRunes,
			levenshtein.DefaultOptions,
		)

		// Don't suggest names which would require a complete replacement
		if distance < closestDistance && distance < len(declaredRunes) {
			closestName = declaredName
			closestDistance = distance
		}
	}

	return
}
