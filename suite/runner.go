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
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/onflow/typematch/sema"
)

// Result is the verdict of a case.
type Result struct {
	Case     string `json:"case"`
	Check    string `json:"check"`
	Expected string `json:"expected"`
	Inferred string `json:"inferred"`
	Match    bool   `json:"match"`
	Want     *bool  `json:"want,omitempty"`
	// ExpectedType and InferredType are the checked unions, for rendering
	ExpectedType *sema.Union `json:"-"`
	InferredType *sema.Union `json:"-"`
}

// Failed returns true if the case declares a verdict and the verdict differs.
func (r Result) Failed() bool {
	return r.Want != nil && *r.Want != r.Match
}

// Report is the outcome of running a suite.
type Report struct {
	Results  []Result `json:"results"`
	Failures int      `json:"failures"`
}

// Runner checks prepared cases against an oracle.
type Runner struct {
	Oracle sema.Oracle
	Logger zerolog.Logger
	// OnResult, if set, is called after each case is checked
	OnResult func(Result)
}

func NewRunner(oracle sema.Oracle) *Runner {
	return &Runner{
		Oracle: oracle,
		Logger: zerolog.Nop(),
	}
}

func (r *Runner) runCase(c PreparedCase) Result {
	match := c.Check.Matches(r.Oracle, c.Expected, c.Inferred)

	result := Result{
		Case:     c.Name,
		Check:    c.Check.Identifier(),
		Expected: c.Expected.String(),
		Inferred: c.Inferred.String(),
		Match:    match,
		Want:     c.Want,

		ExpectedType: c.Expected,
		InferredType: c.Inferred,
	}

	r.Logger.Debug().
		Str("case", result.Case).
		Str("check", result.Check).
		Str("expected", result.Expected).
		Str("inferred", result.Inferred).
		Bool("match", match).
		Msg("checked case")

	if result.Failed() {
		r.Logger.Warn().
			Str("case", result.Case).
			Bool("want", *result.Want).
			Bool("match", match).
			Msg("unexpected verdict")
	}

	return result
}

// Run checks all cases in order.
func (r *Runner) Run(cases []PreparedCase) *Report {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		result := r.runCase(c)
		results = append(results, result)
		if r.OnResult != nil {
			r.OnResult(result)
		}
	}

	return &Report{
		Results:  results,
		Failures: lo.CountBy(results, Result.Failed),
	}
}
