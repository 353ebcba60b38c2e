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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/onflow/typematch/common"
)

var propertyTypeNames = []string{"Object", "Numeric", "Integer", "Float", "String"}

var propertyMethodNames = []string{"to_s", "abs", "upcase", "each"}

func propertyOracle() *testOracle {
	return newTestOracle(
		[2]TypeKey{"Object", "Numeric"},
		[2]TypeKey{"Object", "Integer"},
		[2]TypeKey{"Object", "Float"},
		[2]TypeKey{"Object", "String"},
		[2]TypeKey{"Numeric", "Integer"},
		[2]TypeKey{"Numeric", "Float"},
	).
		withMethods("Integer", common.ScopeInstance, "to_s", "abs").
		withMethods("Float", common.ScopeInstance, "to_s", "abs").
		withMethods("String", common.ScopeInstance, "to_s", "upcase")
}

func genIndices(count int) gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, count-1))
}

func propertyNominals(indices []int) *Union {
	identifiers := make([]string, len(indices))
	for i, index := range indices {
		identifiers[i] = propertyTypeNames[index]
	}
	return nominals(identifiers...)
}

func propertyDucks(indices []int) *Union {
	methods := make([]string, len(indices))
	for i, index := range indices {
		methods[i] = propertyMethodNames[index]
	}
	return ducks(methods...)
}

func TestMatchProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("exact match is reflexive", prop.ForAll(
		func(indices []int) bool {
			union := propertyNominals(indices)
			return TypesMatch(hostileOracle{}, union, union)
		},
		genIndices(len(propertyTypeNames)),
	))

	properties.Property("exact match implies any match for non-empty unions", prop.ForAll(
		func(expectedIndices, inferredIndices []int) bool {
			if len(expectedIndices) == 0 || len(inferredIndices) == 0 {
				return true
			}
			oracle := propertyOracle()
			expected := propertyNominals(expectedIndices)
			inferred := propertyNominals(inferredIndices)
			return !TypesMatch(oracle, expected, inferred) ||
				AnyTypesMatch(oracle, expected, inferred)
		},
		genIndices(len(propertyTypeNames)),
		genIndices(len(propertyTypeNames)),
	))

	properties.Property("exact match is symmetric for a symmetric oracle", prop.ForAll(
		func(expectedIndices, inferredIndices []int) bool {
			oracle := propertyOracle()
			expected := propertyNominals(expectedIndices)
			inferred := propertyNominals(inferredIndices)
			return TypesMatch(oracle, expected, inferred) ==
				TypesMatch(oracle, inferred, expected)
		},
		genIndices(len(propertyTypeNames)),
		genIndices(len(propertyTypeNames)),
	))

	properties.Property("duck-typed any match equals duck match", prop.ForAll(
		func(expectedIndices []int, inferredIndex int) bool {
			oracle := propertyOracle()
			expected := propertyDucks(expectedIndices)
			inferred := NewUnion(NewNominalType(propertyTypeNames[inferredIndex]))
			return AnyTypesMatch(oracle, expected, inferred) ==
				DuckTypesMatch(oracle, expected, inferred)
		},
		genIndices(len(propertyMethodNames)),
		gen.IntRange(0, len(propertyTypeNames)-1),
	))

	properties.Property("any match ignores term order", prop.ForAll(
		func(expectedIndices, inferredIndices []int) bool {
			oracle := propertyOracle()
			expected := propertyNominals(expectedIndices)
			inferred := propertyNominals(inferredIndices)
			reversed := propertyNominals(reverseIndices(inferredIndices))
			return AnyTypesMatch(oracle, expected, inferred) ==
				AnyTypesMatch(oracle, expected, reversed)
		},
		genIndices(len(propertyTypeNames)),
		genIndices(len(propertyTypeNames)),
	))

	properties.TestingRun(t)
}

func reverseIndices(indices []int) []int {
	reversed := make([]int, len(indices))
	for i, index := range indices {
		reversed[len(indices)-1-i] = index
	}
	return reversed
}
