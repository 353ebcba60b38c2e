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
	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/sema"
)

// Funcs is an oracle implemented by functions.
// A nil function answers false.
type Funcs struct {
	IsSuperOrSubFunc func(a, b sema.TypeKey) bool
	MethodExistsFunc func(namespace string, method string, scope common.Scope) bool
}

var _ sema.Oracle = Funcs{}

func (f Funcs) IsSuperOrSub(a, b sema.TypeKey) bool {
	if f.IsSuperOrSubFunc == nil {
		return false
	}
	return f.IsSuperOrSubFunc(a, b)
}

func (f Funcs) MethodExists(namespace string, method string, scope common.Scope) bool {
	if f.MethodExistsFunc == nil {
		return false
	}
	return f.MethodExistsFunc(namespace, method, scope)
}
