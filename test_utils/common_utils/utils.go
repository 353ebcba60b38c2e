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

package common_utils

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
)

var printer = func() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer
}()

// AssertEqualWithDiff asserts that two objects are equal.
//
// If the objects are not equal, this function prints a human-readable diff.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)

	if len(diff) != 0 {
		s := strings.Builder{}

		for i, d := range diff {
			if i == 0 {
				s.WriteString("diff    : ")
			} else {
				s.WriteString("          ")
			}

			s.WriteString(d)
			s.WriteString("\n")
		}

		t.Errorf(
			"Not equal: \n"+
				"expected: %s\n"+
				"actual  : %s\n\n"+
				"%s",
			printer.Sprint(expected),
			printer.Sprint(actual),
			s.String(),
		)
	}
}

// BoolPtr returns a pointer to the given value.
func BoolPtr(value bool) *bool {
	return &value
}
