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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type methodQuery struct {
	namespace string
	method    string
	scope     common.Scope
}

// testOracle relates keys which are equal or listed as related pairs,
// in either direction, and records every query it answers.
type testOracle struct {
	related map[[2]TypeKey]struct{}
	methods map[methodQuery]struct{}

	mu            sync.Mutex
	hierarchyLog  [][2]TypeKey
	methodLog     []methodQuery
	failOnQueries *testing.T
}

var _ Oracle = &testOracle{}

func newTestOracle(pairs ...[2]TypeKey) *testOracle {
	related := map[[2]TypeKey]struct{}{}
	for _, pair := range pairs {
		related[pair] = struct{}{}
		related[[2]TypeKey{pair[1], pair[0]}] = struct{}{}
	}
	return &testOracle{
		related: related,
		methods: map[methodQuery]struct{}{},
	}
}

func (o *testOracle) withMethods(namespace string, scope common.Scope, methods ...string) *testOracle {
	for _, method := range methods {
		o.methods[methodQuery{namespace, method, scope}] = struct{}{}
	}
	return o
}

func (o *testOracle) IsSuperOrSub(a, b TypeKey) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.failOnQueries != nil {
		o.failOnQueries.Errorf("unexpected hierarchy query: %s, %s", a, b)
	}
	o.hierarchyLog = append(o.hierarchyLog, [2]TypeKey{a, b})

	if a == b {
		return true
	}
	_, ok := o.related[[2]TypeKey{a, b}]
	return ok
}

func (o *testOracle) MethodExists(namespace string, method string, scope common.Scope) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.failOnQueries != nil {
		o.failOnQueries.Errorf("unexpected method query: %s#%s", namespace, method)
	}
	query := methodQuery{namespace, method, scope}
	o.methodLog = append(o.methodLog, query)

	_, ok := o.methods[query]
	return ok
}

// hostileOracle denies every relation
type hostileOracle struct{}

var _ Oracle = hostileOracle{}

func (hostileOracle) IsSuperOrSub(_, _ TypeKey) bool {
	return false
}

func (hostileOracle) MethodExists(_ string, _ string, _ common.Scope) bool {
	return false
}

func nominals(identifiers ...string) *Union {
	terms := make([]Term, len(identifiers))
	for i, identifier := range identifiers {
		terms[i] = NewNominalType(identifier)
	}
	return NewUnion(terms...)
}

func ducks(methods ...string) *Union {
	terms := make([]Term, len(methods))
	for i, method := range methods {
		terms[i] = NewDuckType(method)
	}
	return NewUnion(terms...)
}

func requireInvalidArgumentPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected panic")

		err, ok := r.(error)
		require.True(t, ok, "expected error, got %T", r)

		require.True(t, errors.IsInternalError(err))
		_, ok = errors.GetInvalidArgumentError(err)
		require.True(t, ok, "expected invalid argument error, got %T", err)
	}()

	f()
}

func TestTypesMatch(t *testing.T) {

	t.Parallel()

	numericOracle := func() *testOracle {
		return newTestOracle(
			[2]TypeKey{"Numeric", "Integer"},
			[2]TypeKey{"Numeric", "Float"},
		)
	}

	t.Run("reflexive", func(t *testing.T) {

		t.Parallel()

		for _, union := range []*Union{
			nominals("String"),
			nominals("String", "Integer"),
			NewUnion(
				NewParameterizedType("Array", ParametersKindList, nominals("String")),
				&NominalType{Identifier: "Integer", Optional: true},
			),
			ducks("to_s"),
		} {
			assert.True(t, TypesMatch(hostileOracle{}, union, union), "%s", union)
		}
	})

	t.Run("textually equal unions bypass the oracle", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle()
		oracle.failOnQueries = t

		expected := nominals("Foo", "Bar")
		inferred := nominals("Foo", "Bar")

		assert.True(t, TypesMatch(oracle, expected, inferred))
		assert.Empty(t, oracle.hierarchyLog)
	})

	t.Run("subtype", func(t *testing.T) {

		t.Parallel()

		assert.True(t, TypesMatch(numericOracle(), nominals("Numeric"), nominals("Integer")))
	})

	t.Run("reordered union", func(t *testing.T) {

		t.Parallel()

		assert.True(t, TypesMatch(newTestOracle(), nominals("A", "B"), nominals("B", "A")))
	})

	t.Run("expected term not covered", func(t *testing.T) {

		t.Parallel()

		assert.False(t, TypesMatch(newTestOracle(), nominals("A", "B"), nominals("A")))
	})

	t.Run("inferred term not covered", func(t *testing.T) {

		t.Parallel()

		assert.False(t, TypesMatch(newTestOracle(), nominals("A"), nominals("A", "B")))
	})

	t.Run("inferred terms covered by a single expected term", func(t *testing.T) {

		t.Parallel()

		assert.True(t,
			TypesMatch(
				numericOracle(),
				nominals("Numeric"),
				nominals("Integer", "Float"),
			),
		)
	})

	t.Run("first match wins", func(t *testing.T) {

		t.Parallel()

		oracle := numericOracle()

		assert.True(t,
			TypesMatch(
				oracle,
				nominals("Numeric"),
				nominals("Integer", "Float"),
			),
		)

		// Forward pass stops at Integer, backward pass
		// only has to explain Float
		assert.Equal(t,
			[][2]TypeKey{
				{"Numeric", "Integer"},
				{"Numeric", "Float"},
			},
			oracle.hierarchyLog,
		)
	})

	t.Run("short-circuits on the first uncovered expected term", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle()

		assert.False(t, TypesMatch(oracle, nominals("A", "B"), nominals("C")))
		assert.Equal(t,
			[][2]TypeKey{{"A", "C"}},
			oracle.hierarchyLog,
		)
	})

	t.Run("generic arguments are erased", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle()

		expected := NewUnion(NewParameterizedType("Container", ParametersKindList, nominals("X")))
		inferred := NewUnion(NewParameterizedType("Container", ParametersKindList, nominals("Y")))

		assert.True(t, TypesMatch(oracle, expected, inferred))
		assert.Equal(t,
			[][2]TypeKey{{"Container", "Container"}},
			oracle.hierarchyLog,
		)
	})

	t.Run("optional modifier is preserved", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle()

		expected := NewUnion(&NominalType{Identifier: "String", Optional: true})
		inferred := nominals("String")

		assert.False(t, TypesMatch(oracle, expected, inferred))
		assert.Equal(t,
			[][2]TypeKey{{"String?", "String"}},
			oracle.hierarchyLog,
		)
	})

	t.Run("empty unions", func(t *testing.T) {

		t.Parallel()

		assert.True(t, TypesMatch(hostileOracle{}, NewUnion(), NewUnion()))
		assert.True(t, TypesMatch(hostileOracle{}, nil, nil))

		assert.False(t, TypesMatch(newTestOracle(), NewUnion(), nominals("A")))
		assert.False(t, TypesMatch(newTestOracle(), nominals("A"), NewUnion()))
	})
}

func TestAnyTypesMatch(t *testing.T) {

	t.Parallel()

	t.Run("partial overlap", func(t *testing.T) {

		t.Parallel()

		expected := nominals("A", "B")
		inferred := nominals("B", "C")

		assert.True(t, AnyTypesMatch(newTestOracle(), expected, inferred))
		assert.False(t, TypesMatch(newTestOracle(), expected, inferred))
	})

	t.Run("no overlap", func(t *testing.T) {

		t.Parallel()

		assert.False(t, AnyTypesMatch(newTestOracle(), nominals("A"), nominals("B", "C")))
	})

	t.Run("related through the oracle", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle([2]TypeKey{"Numeric", "Integer"})

		assert.True(t, AnyTypesMatch(oracle, nominals("Numeric", "String"), nominals("Integer")))
	})

	t.Run("identical terms match without a relation", func(t *testing.T) {

		t.Parallel()

		term := NewParameterizedType("Array", ParametersKindList, nominals("String"))

		assert.True(t, AnyTypesMatch(hostileOracle{}, NewUnion(term), NewUnion(term)))
	})

	t.Run("duck terms in a mixed union are skipped", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle().withMethods("String", common.ScopeInstance, "to_s")

		expected := NewUnion(NewDuckType("to_s"), NewNominalType("Integer"))
		inferred := nominals("String")

		assert.False(t, AnyTypesMatch(oracle, expected, inferred))
		assert.Empty(t, oracle.methodLog)
		assert.Equal(t,
			[][2]TypeKey{{"Integer", "String"}},
			oracle.hierarchyLog,
		)
	})

	t.Run("duck-typed expected union is delegated", func(t *testing.T) {

		t.Parallel()

		oracle := newTestOracle().withMethods("String", common.ScopeInstance, "to_s", "upcase")

		for _, expected := range []*Union{
			ducks("to_s"),
			ducks("to_s", "upcase"),
			ducks("to_s", "missing"),
		} {
			assert.Equal(t,
				DuckTypesMatch(oracle, expected, nominals("String")),
				AnyTypesMatch(oracle, expected, nominals("String")),
				"%s", expected,
			)
		}

		assert.Empty(t, oracle.hierarchyLog)
	})

	t.Run("empty unions", func(t *testing.T) {

		t.Parallel()

		assert.True(t, AnyTypesMatch(hostileOracle{}, NewUnion(), NewUnion()))
		assert.False(t, AnyTypesMatch(hostileOracle{}, nominals("A"), NewUnion()))
	})
}

func TestDuckTypesMatch(t *testing.T) {

	t.Parallel()

	oracle := func() *testOracle {
		return newTestOracle().
			withMethods("String", common.ScopeInstance, "to_s", "upcase").
			withMethods("String", common.ScopeClass, "new")
	}

	t.Run("all methods exist", func(t *testing.T) {

		t.Parallel()

		assert.True(t, DuckTypesMatch(oracle(), ducks("to_s", "upcase"), nominals("String")))
	})

	t.Run("missing method", func(t *testing.T) {

		t.Parallel()

		o := oracle()

		assert.False(t, DuckTypesMatch(o, ducks("missing", "to_s"), nominals("String")))

		// Short-circuits on the first missing method
		assert.Equal(t,
			[]methodQuery{{"String", "missing", common.ScopeInstance}},
			o.methodLog,
		)
	})

	t.Run("namespace and scope of the inferred union", func(t *testing.T) {

		t.Parallel()

		o := oracle()

		inferred := NewUnion(
			&NominalType{
				Identifier: "Class",
				Context: Context{
					Namespace: "String",
					Scope:     common.ScopeClass,
				},
			},
			NewNominalType("Integer"),
		)

		assert.True(t, DuckTypesMatch(o, ducks("new"), inferred))
		assert.False(t, DuckTypesMatch(o, ducks("upcase"), inferred))
	})

	t.Run("methods are queried without sigil", func(t *testing.T) {

		t.Parallel()

		o := oracle()

		DuckTypesMatch(o, ducks("to_s"), nominals("String"))

		require.Len(t, o.methodLog, 1)
		assert.Equal(t, "to_s", o.methodLog[0].method)
	})

	t.Run("empty expected union", func(t *testing.T) {

		t.Parallel()

		assert.True(t, DuckTypesMatch(hostileOracle{}, NewUnion(), NewUnion()))
		assert.True(t, DuckTypesMatch(hostileOracle{}, NewUnion(), nominals("String")))
	})

	t.Run("nominal expected union", func(t *testing.T) {

		t.Parallel()

		requireInvalidArgumentPanic(t, func() {
			DuckTypesMatch(oracle(), nominals("String"), nominals("String"))
		})
	})

	t.Run("mixed expected union", func(t *testing.T) {

		t.Parallel()

		o := oracle()

		requireInvalidArgumentPanic(t, func() {
			DuckTypesMatch(
				o,
				NewUnion(NewDuckType("to_s"), NewNominalType("String")),
				nominals("String"),
			)
		})

		assert.Empty(t, o.methodLog)
	})
}

func TestMatchConcurrently(t *testing.T) {

	t.Parallel()

	oracle := newTestOracle([2]TypeKey{"Numeric", "Integer"}).
		withMethods("Integer", common.ScopeInstance, "abs")

	const workers = 8

	var wg sync.WaitGroup
	wg.Add(workers)

	results := make([][3]bool, workers)

	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()

			inferred := nominals("Integer")
			results[i] = [3]bool{
				TypesMatch(oracle, nominals("Numeric"), inferred),
				AnyTypesMatch(oracle, nominals("String", "Numeric"), inferred),
				DuckTypesMatch(oracle, ducks("abs"), inferred),
			}
		}(i)
	}

	wg.Wait()

	for i, result := range results {
		assert.Equal(t, [3]bool{true, true, true}, result, fmt.Sprintf("worker %d", i))
	}
}

func TestCheck(t *testing.T) {

	t.Parallel()

	oracle := newTestOracle().withMethods("String", common.ScopeInstance, "to_s")

	for _, check := range AllChecks {
		identifier := check.Identifier()
		parsed, ok := CheckFromIdentifier(identifier)
		require.True(t, ok)
		assert.Equal(t, check, parsed)
	}

	_, ok := CheckFromIdentifier("fuzzy")
	assert.False(t, ok)

	assert.True(t, CheckExact.Matches(oracle, nominals("String"), nominals("String")))
	assert.True(t, CheckAny.Matches(oracle, nominals("A", "String"), nominals("String")))
	assert.True(t, CheckDuck.Matches(oracle, ducks("to_s"), nominals("String")))

	assert.True(t, CheckExact.Accepts(nominals("String")))
	assert.False(t, CheckDuck.Accepts(nominals("String")))
	assert.True(t, CheckDuck.Accepts(ducks("to_s")))
}
