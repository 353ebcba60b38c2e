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
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/typematch/oracle"
	"github.com/onflow/typematch/sema"
	"github.com/onflow/typematch/suite"
)

var (
	flagSuite    = flag.String("suite", "", "path of the suite file (.yaml, .yml, or .cbor)")
	flagJSON     = flag.Bool("json", false, "print the report as JSON")
	flagFilter   = flag.String("filter", "", "jq expression applied to the JSON report")
	flagTrace    = flag.Bool("trace", false, "log every oracle query")
	flagProgress = flag.Bool("progress", false, "show a progress bar")
	flagNoColor  = flag.Bool("no-color", false, "disable colored output")
	flagVerbose  = flag.Bool("verbose", false, "log every checked case")
	flagDump     = flag.Bool("dump", false, "dump the decoded suite")
	flagConvert  = flag.String("convert", "", "write the suite to the given path (format by extension) and exit")
)

func main() {

	flag.Parse()

	if *flagSuite == "" {
		fmt.Fprintln(os.Stderr, "Usage: typematch -suite <file.yaml|file.cbor> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *flagVerbose {
		level = zerolog.DebugLevel
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    *flagNoColor,
	}).Level(level)

	s, err := suite.ReadFile(*flagSuite)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load suite")
	}

	if *flagDump {
		printer := pp.New()
		printer.SetColoringEnabled(!*flagNoColor)
		printer.SetOutput(os.Stderr)
		printer.Println(s)
	}

	if *flagConvert != "" {
		err := suite.WriteFile(*flagConvert, s)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to convert suite")
		}
		log.Info().Msgf("wrote %s", *flagConvert)
		return
	}

	hierarchy, cases, err := s.Prepare()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid suite")
	}

	log.Debug().Msgf(
		"loaded %d types and %d cases",
		len(hierarchy.Names()),
		len(cases),
	)

	var typeOracle sema.Oracle = hierarchy
	if *flagTrace {
		typeOracle = oracle.NewTracingOracle(typeOracle, logTrace)
	}

	runner := suite.NewRunner(typeOracle)
	runner.Logger = log.Logger

	var bar *progressbar.ProgressBar
	if *flagProgress {
		bar = progressbar.NewOptions(
			len(cases),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("checking"),
			progressbar.OptionEnableColorCodes(!*flagNoColor),
		)
		runner.OnResult = func(suite.Result) {
			_ = bar.Add(1)
		}
	}

	report := runner.Run(cases)

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	colors := !*flagNoColor

	switch {
	case *flagFilter != "":
		err = printFilteredReport(os.Stdout, report, *flagFilter, colors)
	case *flagJSON:
		err = printJSONReport(os.Stdout, report, colors)
	default:
		printReport(os.Stdout, report, colors)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to print report")
	}

	if report.Failures > 0 {
		os.Exit(1)
	}
}

func logTrace(operationName string, duration time.Duration, attrs []attribute.KeyValue) {
	event := log.Info().
		Str("operation", operationName).
		Dur("duration", duration)
	for _, attr := range attrs {
		event = event.Str(string(attr.Key), attr.Value.Emit())
	}
	event.Msg("oracle query")
}
