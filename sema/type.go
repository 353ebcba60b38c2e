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
	"strings"

	"github.com/turbolent/prettier"

	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/errors"
)

// Term is a single member of a type union.
//
// A term is either nominal (*NominalType), nominal with type arguments
// (*ParameterizedType), or a structural capability requirement (*DuckType).
type Term interface {
	fmt.Stringer
	isTerm()
	// Name returns the bare nominal name, without type arguments or modifiers.
	Name() string
	// Tag returns the canonical rendering, including type arguments and modifiers.
	Tag() string
	HasParameters() bool
	IsDuckType() bool
	// Namespace is the namespace in which members of the term are looked up
	// when the term is on the inferred side of a comparison.
	Namespace() string
	Scope() common.Scope
	Equal(other Term) bool
	Doc() prettier.Doc
}

// Context is the identity context of a nominal term.
// An empty namespace defaults to the identifier of the term.
type Context struct {
	Namespace string       `json:",omitempty"`
	Scope     common.Scope `json:",omitempty"`
}

func (c Context) namespace(identifier string) string {
	if c.Namespace == "" {
		return identifier
	}
	return c.Namespace
}

const optionalTypeSuffix = "?"

// NominalType

type NominalType struct {
	Identifier string
	// Optional marks the type as nilable
	Optional bool `json:",omitempty"`
	Context  Context
}

var _ Term = &NominalType{}

func NewNominalType(identifier string) *NominalType {
	return &NominalType{
		Identifier: identifier,
	}
}

func (*NominalType) isTerm() {}

func (t *NominalType) Name() string {
	return t.Identifier
}

func (t *NominalType) Tag() string {
	if t.Optional {
		return t.Identifier + optionalTypeSuffix
	}
	return t.Identifier
}

func (t *NominalType) String() string {
	return t.Tag()
}

func (*NominalType) HasParameters() bool {
	return false
}

func (*NominalType) IsDuckType() bool {
	return false
}

func (t *NominalType) Namespace() string {
	return t.Context.namespace(t.Identifier)
}

func (t *NominalType) Scope() common.Scope {
	return t.Context.Scope
}

func (t *NominalType) Equal(other Term) bool {
	otherType, ok := other.(*NominalType)
	if !ok {
		return false
	}
	return t.Identifier == otherType.Identifier &&
		t.Optional == otherType.Optional &&
		t.Context == otherType.Context
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.Tag())
}

// ParametersKind

//go:generate go run golang.org/x/tools/cmd/stringer -type=ParametersKind

type ParametersKind uint8

const (
	// ParametersKindList renders as `Array<String>`
	ParametersKindList ParametersKind = iota
	// ParametersKindHash renders as `Hash{String => Integer}`
	ParametersKindHash
	// ParametersKindFixed renders as `Array(String, Integer)`
	ParametersKindFixed
)

var AllParametersKinds = []ParametersKind{
	ParametersKindList,
	ParametersKindHash,
	ParametersKindFixed,
}

func (k ParametersKind) Identifier() string {
	switch k {
	case ParametersKindList:
		return "list"
	case ParametersKindHash:
		return "hash"
	case ParametersKindFixed:
		return "fixed"
	}

	panic(errors.NewUnreachableError())
}

func (k ParametersKind) delimiters() (open, separator, close string) {
	switch k {
	case ParametersKindList:
		return "<", ", ", ">"
	case ParametersKindHash:
		return "{", " => ", "}"
	case ParametersKindFixed:
		return "(", ", ", ")"
	}

	panic(errors.NewUnreachableError())
}

// ParametersKindFromIdentifier returns the kind with the given identifier.
// The empty identifier is the list kind.
func ParametersKindFromIdentifier(identifier string) (ParametersKind, bool) {
	if identifier == "" {
		return ParametersKindList, true
	}
	for _, kind := range AllParametersKinds {
		if kind.Identifier() == identifier {
			return kind, true
		}
	}
	return 0, false
}

// ParameterizedType is a nominal type with type arguments, e.g. `Array<String>`.
// Each argument is itself a union.
type ParameterizedType struct {
	Identifier string
	Kind       ParametersKind
	Arguments  []*Union
	Optional   bool `json:",omitempty"`
	Context    Context
}

var _ Term = &ParameterizedType{}

func NewParameterizedType(identifier string, kind ParametersKind, arguments ...*Union) *ParameterizedType {
	return &ParameterizedType{
		Identifier: identifier,
		Kind:       kind,
		Arguments:  arguments,
	}
}

func (*ParameterizedType) isTerm() {}

func (t *ParameterizedType) Name() string {
	return t.Identifier
}

func (t *ParameterizedType) Tag() string {
	open, separator, closing := t.Kind.delimiters()

	var sb strings.Builder
	sb.WriteString(t.Identifier)
	sb.WriteString(open)
	for i, argument := range t.Arguments {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(argument.String())
	}
	sb.WriteString(closing)
	if t.Optional {
		sb.WriteString(optionalTypeSuffix)
	}
	return sb.String()
}

func (t *ParameterizedType) String() string {
	return t.Tag()
}

func (*ParameterizedType) HasParameters() bool {
	return true
}

func (*ParameterizedType) IsDuckType() bool {
	return false
}

func (t *ParameterizedType) Namespace() string {
	return t.Context.namespace(t.Identifier)
}

func (t *ParameterizedType) Scope() common.Scope {
	return t.Context.Scope
}

func (t *ParameterizedType) Equal(other Term) bool {
	otherType, ok := other.(*ParameterizedType)
	if !ok {
		return false
	}

	if t.Identifier != otherType.Identifier ||
		t.Kind != otherType.Kind ||
		t.Optional != otherType.Optional ||
		t.Context != otherType.Context ||
		len(t.Arguments) != len(otherType.Arguments) {

		return false
	}

	for i, argument := range t.Arguments {
		if !argument.Equal(otherType.Arguments[i]) {
			return false
		}
	}

	return true
}

func (t *ParameterizedType) Doc() prettier.Doc {
	open, separator, closing := t.Kind.delimiters()

	argumentDocs := make([]prettier.Doc, len(t.Arguments))
	for i, argument := range t.Arguments {
		argumentDocs[i] = argument.Doc()
	}

	separatorDoc := prettier.Concat{
		prettier.Text(strings.TrimRight(separator, " ")),
		prettier.Line{},
	}

	doc := prettier.Concat{
		prettier.Text(t.Identifier),
		prettier.Wrap(
			prettier.Text(open),
			prettier.Join(separatorDoc, argumentDocs...),
			prettier.Text(closing),
			prettier.SoftLine{},
		),
	}

	if t.Optional {
		doc = append(doc, prettier.Text(optionalTypeSuffix))
	}

	return doc
}

// DuckType is a structural requirement: the inferred type must respond to Method.
type DuckType struct {
	Method string
}

var _ Term = &DuckType{}

// DuckTypeSigil prefixes the method name in the tag of a duck type
const DuckTypeSigil = "#"

func NewDuckType(method string) *DuckType {
	return &DuckType{
		Method: method,
	}
}

func (*DuckType) isTerm() {}

func (t *DuckType) Name() string {
	return t.Tag()
}

func (t *DuckType) Tag() string {
	return DuckTypeSigil + t.Method
}

func (t *DuckType) String() string {
	return t.Tag()
}

func (*DuckType) HasParameters() bool {
	return false
}

func (*DuckType) IsDuckType() bool {
	return true
}

func (*DuckType) Namespace() string {
	return ""
}

func (*DuckType) Scope() common.Scope {
	return common.ScopeInstance
}

func (t *DuckType) Equal(other Term) bool {
	otherType, ok := other.(*DuckType)
	if !ok {
		return false
	}
	return t.Method == otherType.Method
}

func (t *DuckType) Doc() prettier.Doc {
	return prettier.Text(t.Tag())
}
