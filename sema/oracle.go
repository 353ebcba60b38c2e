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

import "github.com/onflow/typematch/common"

// Oracle answers queries about a type hierarchy.
//
// Implementations must be safe for concurrent reads
// if the matching functions are used concurrently.
type Oracle interface {
	// IsSuperOrSub returns true if a and b are identical,
	// or if either is a supertype of the other.
	IsSuperOrSub(a, b TypeKey) bool
	// MethodExists returns true if a method with the given name
	// is reachable from the namespace at the given scope.
	MethodExists(namespace string, method string, scope common.Scope) bool
}
