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
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/onflow/typematch/errors"
)

// Format is the encoding of a suite file.
type Format string

const (
	FormatYAML Format = "YAML"
	FormatCBOR Format = "CBOR"
)

// FormatFromPath determines the format of a suite file from its extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".cbor":
		return FormatCBOR, true
	default:
		return "", false
	}
}

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(errors.NewUnexpectedErrorFromCause(err))
	}
	return encMode
}()

// CBORDecMode limits the size and depth of decoded suites.
var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength:       cbor.IndefLengthForbidden,
		MaxArrayElements:  1_000_000,
		MaxMapPairs:       1_000_000,
		MaxNestedLevels:   256,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(errors.NewUnexpectedErrorFromCause(err))
	}
	return decMode
}()

// DecodeYAML decodes a YAML suite. Unknown fields are rejected.
func DecodeYAML(data []byte) (*Suite, error) {
	var suite Suite
	err := yaml.UnmarshalWithOptions(data, &suite, yaml.DisallowUnknownField())
	if err != nil {
		return nil, &DecodingError{
			Format: string(FormatYAML),
			Err:    fmt.Errorf("%s", yaml.FormatError(err, false, true)),
		}
	}
	return &suite, nil
}

// EncodeYAML encodes a suite as YAML.
func EncodeYAML(suite *Suite) ([]byte, error) {
	data, err := yaml.Marshal(suite)
	if err != nil {
		return nil, errors.NewUnexpectedErrorFromCause(err)
	}
	return data, nil
}

// DecodeCBOR decodes a CBOR suite. Unknown fields are rejected.
func DecodeCBOR(data []byte) (*Suite, error) {
	var suite Suite
	err := CBORDecMode.Unmarshal(data, &suite)
	if err != nil {
		return nil, &DecodingError{
			Format: string(FormatCBOR),
			Err:    err,
		}
	}
	return &suite, nil
}

// EncodeCBOR encodes a suite as deterministic CBOR.
func EncodeCBOR(suite *Suite) ([]byte, error) {
	data, err := CBOREncMode.Marshal(suite)
	if err != nil {
		return nil, errors.NewUnexpectedErrorFromCause(err)
	}
	return data, nil
}

// Decode decodes a suite in the given format.
func Decode(data []byte, format Format) (*Suite, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatCBOR:
		return DecodeCBOR(data)
	default:
		return nil, errors.NewUnexpectedError("unsupported suite format: %s", format)
	}
}

// Encode encodes a suite in the given format.
func Encode(suite *Suite, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return EncodeYAML(suite)
	case FormatCBOR:
		return EncodeCBOR(suite)
	default:
		return nil, errors.NewUnexpectedError("unsupported suite format: %s", format)
	}
}

// ReadFile reads and decodes the suite at the given path.
// The format is determined by the file extension.
func ReadFile(path string) (*Suite, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported suite file extension: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	return Decode(data, format)
}

// WriteFile encodes the suite and writes it to the given path.
// The format is determined by the file extension.
func WriteFile(path string, suite *Suite) error {
	format, ok := FormatFromPath(path)
	if !ok {
		return fmt.Errorf("unsupported suite file extension: %s", path)
	}

	data, err := Encode(suite, format)
	if err != nil {
		return fmt.Errorf("failed to encode suite: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
