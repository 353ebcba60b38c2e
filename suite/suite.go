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

package suite

import (
	"fmt"

	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/oracle"
	"github.com/onflow/typematch/sema"
)

// Suite is a type hierarchy together with cases to check against it.
type Suite struct {
	Types []oracle.TypeDeclaration `yaml:"types" json:"types"`
	Cases []Case                   `yaml:"cases" json:"cases"`
}

// Case compares an expected union with an inferred union using a check.
// Want, if set, is the expected verdict.
type Case struct {
	Name     string    `yaml:"name,omitempty" json:"name,omitempty"`
	Check    string    `yaml:"check,omitempty" json:"check,omitempty"`
	Expected UnionSpec `yaml:"expected" json:"expected"`
	Inferred UnionSpec `yaml:"inferred" json:"inferred"`
	Want     *bool     `yaml:"want,omitempty" json:"want,omitempty"`
}

type UnionSpec []TermSpec

// TermSpec describes a term.
//
// Exactly one of Name and Duck must be set.
// A named term with parameters is parameterized.
type TermSpec struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Duck       string      `yaml:"duck,omitempty" json:"duck,omitempty"`
	Optional   bool        `yaml:"optional,omitempty" json:"optional,omitempty"`
	Kind       string      `yaml:"kind,omitempty" json:"kind,omitempty"`
	Parameters []UnionSpec `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Namespace  string      `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Scope      string      `yaml:"scope,omitempty" json:"scope,omitempty"`
}

// PreparedCase is a case with its unions built.
type PreparedCase struct {
	Name     string
	Check    sema.Check
	Expected *sema.Union
	Inferred *sema.Union
	Want     *bool
}

// Prepare builds the hierarchy of the suite and the unions of all cases.
func (s *Suite) Prepare() (*oracle.StaticHierarchy, []PreparedCase, error) {
	hierarchy, err := oracle.NewStaticHierarchy(s.Types)
	if err != nil {
		return nil, nil, err
	}

	var errs []error
	cases := make([]PreparedCase, 0, len(s.Cases))

	for i, c := range s.Cases {
		prepared, err := c.prepare(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cases = append(cases, prepared)
	}

	if len(errs) > 0 {
		return nil, nil, &SuiteError{Errors: errs}
	}

	return hierarchy, cases, nil
}

func (c Case) displayName(index int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("case %d", index+1)
}

func (c Case) prepare(index int) (PreparedCase, error) {
	name := c.displayName(index)

	check, ok := sema.CheckFromIdentifier(c.Check)
	if !ok {
		return PreparedCase{}, &CaseError{
			Case: name,
			Err:  fmt.Errorf("unknown check `%s`", c.Check),
		}
	}

	expected, err := c.Expected.Union()
	if err != nil {
		return PreparedCase{}, &CaseError{
			Case: name,
			Err:  fmt.Errorf("expected: %w", err),
		}
	}

	inferred, err := c.Inferred.Union()
	if err != nil {
		return PreparedCase{}, &CaseError{
			Case: name,
			Err:  fmt.Errorf("inferred: %w", err),
		}
	}

	if !check.Accepts(expected) {
		return PreparedCase{}, &CaseError{
			Case: name,
			Err: fmt.Errorf(
				"check `%s` requires a duck-typed expected union, got `%s`",
				check.Identifier(),
				expected,
			),
		}
	}

	return PreparedCase{
		Name:     name,
		Check:    check,
		Expected: expected,
		Inferred: inferred,
		Want:     c.Want,
	}, nil
}

// Union builds the union described by the spec.
func (s UnionSpec) Union() (*sema.Union, error) {
	terms := make([]sema.Term, 0, len(s))
	for i, termSpec := range s {
		term, err := termSpec.Term()
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i+1, err)
		}
		terms = append(terms, term)
	}
	return sema.NewUnion(terms...), nil
}

// Term builds the term described by the spec.
func (s TermSpec) Term() (sema.Term, error) {
	switch {
	case s.Name != "" && s.Duck != "":
		return nil, fmt.Errorf("term cannot have both name `%s` and duck method `%s`", s.Name, s.Duck)

	case s.Duck != "":
		if len(s.Parameters) > 0 || s.Kind != "" {
			return nil, fmt.Errorf("duck type `%s` cannot have parameters", s.Duck)
		}
		if s.Optional || s.Namespace != "" || s.Scope != "" {
			return nil, fmt.Errorf("duck type `%s` cannot have modifiers", s.Duck)
		}
		return sema.NewDuckType(s.Duck), nil

	case s.Name == "":
		return nil, fmt.Errorf("term requires a name or a duck method")
	}

	scope := common.ScopeInstance
	if s.Scope != "" {
		var ok bool
		scope, ok = common.ScopeFromIdentifier(s.Scope)
		if !ok {
			return nil, fmt.Errorf("unknown scope `%s`", s.Scope)
		}
	}

	context := sema.Context{
		Namespace: s.Namespace,
		Scope:     scope,
	}

	if len(s.Parameters) == 0 {
		if s.Kind != "" {
			return nil, fmt.Errorf("type `%s` has kind `%s` but no parameters", s.Name, s.Kind)
		}
		return &sema.NominalType{
			Identifier: s.Name,
			Optional:   s.Optional,
			Context:    context,
		}, nil
	}

	kind, ok := sema.ParametersKindFromIdentifier(s.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown parameters kind `%s`", s.Kind)
	}

	arguments := make([]*sema.Union, 0, len(s.Parameters))
	for i, parameter := range s.Parameters {
		argument, err := parameter.Union()
		if err != nil {
			return nil, fmt.Errorf("parameter %d of `%s`: %w", i+1, s.Name, err)
		}
		arguments = append(arguments, argument)
	}

	return &sema.ParameterizedType{
		Identifier: s.Name,
		Kind:       kind,
		Arguments:  arguments,
		Optional:   s.Optional,
		Context:    context,
	}, nil
}
