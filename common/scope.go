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

package common

import (
	"encoding/json"

	"github.com/onflow/typematch/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Scope

// Scope is the level at which a member is looked up:
// on instances of a namespace, or on the namespace itself.
type Scope uint8

const (
	ScopeInstance Scope = iota
	ScopeClass
)

var AllScopes = []Scope{
	ScopeInstance,
	ScopeClass,
}

var AllScopesByIdentifier = map[string]Scope{}

func init() {
	for _, scope := range AllScopes {
		AllScopesByIdentifier[scope.Identifier()] = scope
	}
}

func (s Scope) Identifier() string {
	switch s {
	case ScopeInstance:
		return "instance"
	case ScopeClass:
		return "class"
	}

	panic(errors.NewUnreachableError())
}

func ScopeFromIdentifier(identifier string) (Scope, bool) {
	scope, ok := AllScopesByIdentifier[identifier]
	return scope, ok
}

func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.Identifier()), nil
}

func (s *Scope) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = ScopeInstance
		return nil
	}
	scope, ok := ScopeFromIdentifier(string(text))
	if !ok {
		return errors.NewDefaultUserError("unknown scope: %q", text)
	}
	*s = scope
	return nil
}

func (s Scope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Identifier())
}
