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

package sema

import (
	"github.com/onflow/typematch/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Check

// Check selects one of the matching functions.
type Check uint8

const (
	CheckExact Check = iota
	CheckAny
	CheckDuck
)

var AllChecks = []Check{
	CheckExact,
	CheckAny,
	CheckDuck,
}

func (c Check) Identifier() string {
	switch c {
	case CheckExact:
		return "exact"
	case CheckAny:
		return "any"
	case CheckDuck:
		return "duck"
	}

	panic(errors.NewUnreachableError())
}

// CheckFromIdentifier returns the check with the given identifier.
// The empty identifier is the exact check.
func CheckFromIdentifier(identifier string) (Check, bool) {
	if identifier == "" {
		return CheckExact, true
	}
	for _, check := range AllChecks {
		if check.Identifier() == identifier {
			return check, true
		}
	}
	return 0, false
}

// Accepts returns true if the check can be applied to the expected union.
// Only the duck check restricts its input.
func (c Check) Accepts(expected *Union) bool {
	if c == CheckDuck {
		return expected.IsDuckType()
	}
	return true
}

// Matches applies the check.
func (c Check) Matches(oracle Oracle, expected, inferred *Union) bool {
	switch c {
	case CheckExact:
		return TypesMatch(oracle, expected, inferred)
	case CheckAny:
		return AnyTypesMatch(oracle, expected, inferred)
	case CheckDuck:
		return DuckTypesMatch(oracle, expected, inferred)
	}

	panic(errors.NewUnreachableError())
}
