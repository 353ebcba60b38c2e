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
	"strings"

	"github.com/samber/lo"
	"github.com/turbolent/prettier"

	"github.com/onflow/typematch/common"
)

// Union is a type expression: an ordered sequence of alternatives, "A or B or C".
//
// Term order is preserved for rendering and determines which pair
// is reported first when matching, but never the verdict.
type Union struct {
	Terms []Term
}

func NewUnion(terms ...Term) *Union {
	return &Union{
		Terms: terms,
	}
}

func (u *Union) terms() []Term {
	if u == nil {
		return nil
	}
	return u.Terms
}

func (u *Union) Len() int {
	return len(u.terms())
}

const unionSeparator = ", "

// String returns the canonical rendering of the union.
// Two unions with the same rendering are textually equal.
func (u *Union) String() string {
	var sb strings.Builder
	for i, term := range u.terms() {
		if i > 0 {
			sb.WriteString(unionSeparator)
		}
		sb.WriteString(term.Tag())
	}
	return sb.String()
}

// IsDuckType returns true if every term is a duck type.
// The empty union is vacuously a duck type.
func (u *Union) IsDuckType() bool {
	return lo.EveryBy(u.terms(), Term.IsDuckType)
}

// Namespace returns the namespace of the first term,
// or the empty string for an empty union.
func (u *Union) Namespace() string {
	terms := u.terms()
	if len(terms) == 0 {
		return ""
	}
	return terms[0].Namespace()
}

// Scope returns the scope of the first term,
// or the instance scope for an empty union.
func (u *Union) Scope() common.Scope {
	terms := u.terms()
	if len(terms) == 0 {
		return common.ScopeInstance
	}
	return terms[0].Scope()
}

func (u *Union) Equal(other *Union) bool {
	terms := u.terms()
	otherTerms := other.terms()

	if len(terms) != len(otherTerms) {
		return false
	}

	for i, term := range terms {
		if !common.DeepEquals[Term](term, otherTerms[i]) {
			return false
		}
	}

	return true
}

var unionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (u *Union) Doc() prettier.Doc {
	terms := u.terms()

	termDocs := make([]prettier.Doc, len(terms))
	for i, term := range terms {
		termDocs[i] = term.Doc()
	}

	return prettier.Group{
		Doc: prettier.Join(unionSeparatorDoc, termDocs...),
	}
}
