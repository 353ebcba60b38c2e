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
	"sort"

	"github.com/SaveTheRbtz/mph"
	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"

	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/sema"
)

// TypeDeclaration declares a type of a static hierarchy,
// its direct supertypes, and the methods it defines.
type TypeDeclaration struct {
	Name         string   `yaml:"name" json:"name"`
	Supertypes   []string `yaml:"supertypes,omitempty" json:"supertypes,omitempty"`
	Methods      []string `yaml:"methods,omitempty" json:"methods,omitempty"`
	ClassMethods []string `yaml:"classMethods,omitempty" json:"classMethods,omitempty"`
}

type declaredType struct {
	name       string
	supertypes []uint32
	methods    [2]map[string]struct{}
}

func (t *declaredType) hasMethod(method string, scope common.Scope) bool {
	if int(scope) >= len(t.methods) {
		return false
	}
	_, ok := t.methods[scope][method]
	return ok
}

// StaticHierarchy is an oracle over a fixed set of type declarations.
//
// It is immutable once built and safe for concurrent use.
// Keys which are not declared are only related to themselves.
type StaticHierarchy struct {
	types []*declaredType
	table *mph.Table
}

var _ sema.Oracle = &StaticHierarchy{}

func methodSet(methods []string) map[string]struct{} {
	set := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		set[method] = struct{}{}
	}
	return set
}

// NewStaticHierarchy builds a hierarchy from the given declarations.
//
// Every supertype must be declared, and every type must be declared once.
func NewStaticHierarchy(declarations []TypeDeclaration) (*StaticHierarchy, error) {

	var errs []error

	names := make([]string, 0, len(declarations))
	seen := map[string]struct{}{}

	for _, declaration := range declarations {
		name := declaration.Name
		if name == "" {
			errs = append(errs, &MissingTypeNameError{})
			continue
		}
		if _, ok := seen[name]; ok {
			errs = append(errs, &RedeclarationError{Name: name})
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	hierarchy := &StaticHierarchy{
		types: make([]*declaredType, len(names)),
	}
	if len(names) > 0 {
		hierarchy.table = mph.Build(names)
	}

	for _, declaration := range declarations {
		index, ok := hierarchy.lookup(declaration.Name)
		if !ok || hierarchy.types[index] != nil {
			continue
		}

		supertypes := make([]uint32, 0, len(declaration.Supertypes))
		for _, supertype := range declaration.Supertypes {
			supertypeIndex, ok := hierarchy.lookup(supertype)
			if !ok {
				errs = append(errs, &UnknownSupertypeError{
					TypeName:      declaration.Name,
					SupertypeName: supertype,
					declaredNames: names,
				})
				continue
			}
			supertypes = append(supertypes, supertypeIndex)
		}

		hierarchy.types[index] = &declaredType{
			name:       declaration.Name,
			supertypes: supertypes,
			methods: [2]map[string]struct{}{
				common.ScopeInstance: methodSet(declaration.Methods),
				common.ScopeClass:    methodSet(declaration.ClassMethods),
			},
		}
	}

	if len(errs) > 0 {
		return nil, &HierarchyError{Errors: errs}
	}

	return hierarchy, nil
}

func (h *StaticHierarchy) lookup(name string) (uint32, bool) {
	if h.table == nil {
		return 0, false
	}
	return h.table.Lookup(name)
}

// Names returns the names of all declared types, sorted.
func (h *StaticHierarchy) Names() []string {
	names := lo.Map(h.types, func(t *declaredType, _ int) string {
		return t.name
	})
	sort.Strings(names)
	return names
}

// walk visits the type at the given index and all its transitive supertypes,
// until visit returns true. Returns whether visit returned true.
func (h *StaticHierarchy) walk(index uint32, visit func(*declaredType) bool) bool {
	visited := bitset.New(uint(len(h.types)))
	stack := []uint32{index}

	for len(stack) > 0 {
		lastIndex := len(stack) - 1
		current := stack[lastIndex]
		stack = stack[:lastIndex]

		if visited.Test(uint(current)) {
			continue
		}
		visited.Set(uint(current))

		declared := h.types[current]
		if visit(declared) {
			return true
		}
		stack = append(stack, declared.supertypes...)
	}

	return false
}

func (h *StaticHierarchy) isSupertype(superIndex, subIndex uint32) bool {
	return h.walk(subIndex, func(t *declaredType) bool {
		return t == h.types[superIndex]
	})
}

func (h *StaticHierarchy) IsSuperOrSub(a, b sema.TypeKey) bool {
	if a == b {
		return true
	}

	aIndex, ok := h.lookup(string(a))
	if !ok {
		return false
	}
	bIndex, ok := h.lookup(string(b))
	if !ok {
		return false
	}

	return h.isSupertype(aIndex, bIndex) ||
		h.isSupertype(bIndex, aIndex)
}

// MethodExists returns true if the namespace or any of its supertypes
// defines the method at the given scope.
func (h *StaticHierarchy) MethodExists(namespace string, method string, scope common.Scope) bool {
	index, ok := h.lookup(namespace)
	if !ok {
		return false
	}

	return h.walk(index, func(t *declaredType) bool {
		return t.hasMethod(method, scope)
	})
}
