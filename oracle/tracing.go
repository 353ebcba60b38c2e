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
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/typematch/common"
	"github.com/onflow/typematch/sema"
)

const (
	tracingIsSuperOrSubOperation = "oracle.isSuperOrSub"
	tracingMethodExistsOperation = "oracle.methodExists"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

// TracingOracle reports every query answered by the wrapped oracle.
type TracingOracle struct {
	Oracle sema.Oracle
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
}

var _ sema.Oracle = &TracingOracle{}

func NewTracingOracle(oracle sema.Oracle, onRecordTrace OnRecordTraceFunc) *TracingOracle {
	return &TracingOracle{
		Oracle:        oracle,
		OnRecordTrace: onRecordTrace,
	}
}

func (o *TracingOracle) IsSuperOrSub(a, b sema.TypeKey) bool {
	startTime := time.Now()
	result := o.Oracle.IsSuperOrSub(a, b)

	if o.OnRecordTrace == nil {
		return result
	}

	o.OnRecordTrace(
		tracingIsSuperOrSubOperation,
		time.Since(startTime),
		[]attribute.KeyValue{
			attribute.String("a", string(a)),
			attribute.String("b", string(b)),
			attribute.Bool("result", result),
		},
	)

	return result
}

func (o *TracingOracle) MethodExists(namespace string, method string, scope common.Scope) bool {
	startTime := time.Now()
	result := o.Oracle.MethodExists(namespace, method, scope)

	if o.OnRecordTrace == nil {
		return result
	}

	o.OnRecordTrace(
		tracingMethodExistsOperation,
		time.Since(startTime),
		[]attribute.KeyValue{
			attribute.String("namespace", namespace),
			attribute.String("method", method),
			attribute.String("scope", scope.Identifier()),
			attribute.Bool("result", result),
		},
	)

	return result
}
