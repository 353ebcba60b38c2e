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
	"github.com/bits-and-blooms/bitset"

	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/errors"
)

func termsRelated(oracle Oracle, expected, inferred Term) bool {
	return oracle.IsSuperOrSub(
		NormalizeTerm(expected),
		NormalizeTerm(inferred),
	)
}

// TypesMatch returns true if the inferred union is exactly as permissive as the expected union:
// every expected term is related to some inferred term,
// and every inferred term is related to some expected term.
//
// Unions with identical renderings match without consulting the oracle.
func TypesMatch(oracle Oracle, expected, inferred *Union) bool {
	if expected.String() == inferred.String() {
		return true
	}

	inferredTerms := inferred.terms()
	expectedTerms := expected.terms()

	// Inferred terms already covered by an expected term
	matched := bitset.New(uint(len(inferredTerms)))

	for _, expectedTerm := range expectedTerms {
		found := false
		for i, inferredTerm := range inferredTerms {
			if termsRelated(oracle, expectedTerm, inferredTerm) {
				found = true
				matched.Set(uint(i))
				break
			}
		}
		if !found {
			return false
		}
	}

	for i, inferredTerm := range inferredTerms {
		if matched.Test(uint(i)) {
			continue
		}
		found := false
		for _, expectedTerm := range expectedTerms {
			if termsRelated(oracle, expectedTerm, inferredTerm) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// AnyTypesMatch returns true if at least one expected term
// is compatible with at least one inferred term.
//
// A wholly duck-typed expected union is checked with DuckTypesMatch.
// Otherwise, duck-typed expected terms are ignored.
func AnyTypesMatch(oracle Oracle, expected, inferred *Union) bool {
	if expected.IsDuckType() {
		return DuckTypesMatch(oracle, expected, inferred)
	}

	for _, expectedTerm := range expected.terms() {
		if expectedTerm.IsDuckType() {
			continue
		}
		for _, inferredTerm := range inferred.terms() {
			if common.DeepEquals[Term](expectedTerm, inferredTerm) ||
				termsRelated(oracle, expectedTerm, inferredTerm) {

				return true
			}
		}
	}

	return false
}

// DuckTypesMatch returns true if every method required by the expected union
// exists in the namespace and scope of the inferred union.
//
// The expected union must consist of duck types only.
// Passing any other term is a programming error
// and panics with an errors.InvalidArgumentError.
func DuckTypesMatch(oracle Oracle, expected, inferred *Union) bool {
	if !expected.IsDuckType() {
		panic(errors.NewInvalidArgumentError(
			"expected type must be duck type, got `%s`",
			expected,
		))
	}

	namespace := inferred.Namespace()
	scope := inferred.Scope()

	for _, expectedTerm := range expected.terms() {
		quack := expectedTerm.Tag()[len(DuckTypeSigil):]
		if !oracle.MethodExists(namespace, quack, scope) {
			return false
		}
	}

	return true
}
