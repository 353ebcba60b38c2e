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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/itchyny/gojq"
	"github.com/logrusorgru/aurora/v4"
	"github.com/tidwall/pretty"
	"github.com/turbolent/prettier"

	"github.com/onflow/typematch/sema"
	"github.com/onflow/typematch/suite"
)

// maxReportLineWidth is the width above which a result's unions are laid out on separate lines
const maxReportLineWidth = 80

func printReport(w io.Writer, report *suite.Report, colors bool) {
	au := aurora.New(aurora.WithColors(colors))
	plain := aurora.New(aurora.WithColors(false))

	for _, result := range report.Results {
		if utf8.RuneCountInString(resultLine(plain, result)) <= maxReportLineWidth {
			fmt.Fprintln(w, resultLine(au, result))
			continue
		}

		var b strings.Builder
		prettier.Prettier(&b, resultDoc(au, result), maxReportLineWidth, "    ")
		fmt.Fprintln(w, strings.TrimRight(b.String(), "\n"))
	}

	summary := fmt.Sprintf("%d cases, %d failures", len(report.Results), report.Failures)
	if report.Failures > 0 {
		fmt.Fprintln(w, au.Red(summary).Bold())
	} else {
		fmt.Fprintln(w, au.Green(summary))
	}
}

func resultStatus(au *aurora.Aurora, result suite.Result) aurora.Value {
	if result.Want == nil {
		return au.Faint("    ")
	}
	if result.Failed() {
		return au.Red("FAIL").Bold()
	}
	return au.Green("PASS")
}

func resultVerdict(au *aurora.Aurora, result suite.Result) aurora.Value {
	if result.Match {
		return au.Green("match")
	}
	return au.Yellow("mismatch")
}

func resultLine(au *aurora.Aurora, result suite.Result) string {
	return fmt.Sprintf(
		"%s %s [%s] expected %s, inferred %s: %s",
		resultStatus(au, result),
		result.Case,
		result.Check,
		au.Cyan(result.Expected),
		au.Cyan(result.Inferred),
		resultVerdict(au, result),
	)
}

func unionDoc(union *sema.Union, rendered string) prettier.Doc {
	if union == nil {
		return prettier.Text(rendered)
	}
	return union.Doc()
}

// resultDoc lays out a result whose unions do not fit on one line:
// the header, then each union indented below its label.
func resultDoc(au *aurora.Aurora, result suite.Result) prettier.Doc {
	return prettier.Concat{
		prettier.Text(fmt.Sprintf(
			"%s %s [%s]: %s",
			resultStatus(au, result),
			result.Case,
			result.Check,
			resultVerdict(au, result),
		)),
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				prettier.Text("expected:"),
				prettier.Indent{
					Doc: prettier.Concat{
						prettier.HardLine{},
						unionDoc(result.ExpectedType, result.Expected),
					},
				},
				prettier.HardLine{},
				prettier.Text("inferred:"),
				prettier.Indent{
					Doc: prettier.Concat{
						prettier.HardLine{},
						unionDoc(result.InferredType, result.Inferred),
					},
				},
			},
		},
	}
}

func writeJSON(w io.Writer, data []byte, colors bool) error {
	data = pretty.Pretty(data)
	if colors {
		data = pretty.Color(data, nil)
	}
	_, err := w.Write(data)
	return err
}

func printJSONReport(w io.Writer, report *suite.Report, colors bool) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return writeJSON(w, data, colors)
}

// printFilteredReport runs the jq query over the JSON report
// and prints each emitted value.
func printFilteredReport(w io.Writer, report *suite.Report, filter string, colors bool) error {
	query, err := gojq.Parse(filter)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}

	iter := query.Run(input)
	for {
		value, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := value.(error); ok {
			return fmt.Errorf("filter failed: %w", err)
		}

		output, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := writeJSON(w, output, colors); err != nil {
			return err
		}
	}
}
