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

// TypeKey is the key a term is reduced to for hierarchy queries.
type TypeKey string

// NormalizeTerm reduces a term to the key used for hierarchy queries.
//
// Type arguments are erased, as hierarchies relate nominal types only:
// `Array<String>` and `Array<Integer>` both normalize to `Array`.
// Terms without parameters keep their full tag, so modifiers
// such as optionality are preserved: `String?` stays `String?`.
func NormalizeTerm(term Term) TypeKey {
	if term.HasParameters() {
		return TypeKey(term.Name())
	}
	return TypeKey(term.Tag())
}
