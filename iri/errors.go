/*
Copyright 2026 Triton Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package iri

import (
	"errors"
	"fmt"
)

// ErrEmptyIRI is returned by validated construction when the input
// string has zero length. Empty input is a distinguished error case,
// not folded into the generic invalid case.
var ErrEmptyIRI = errors.New("empty IRI")

// InvalidIRIError reports that a string failed scheme, structure, or
// character validation.
type InvalidIRIError struct {
	IRI string
}

// Error returns the string representation of the validation failure.
func (e *InvalidIRIError) Error() string {
	return fmt.Sprintf("invalid IRI %q", e.IRI)
}

// InvalidURIError reports that a string failed URI-specific
// validation, such as the re-validation performed by FromURI after
// percent-decoding.
type InvalidURIError struct {
	URI string
}

// Error returns the string representation of the validation failure.
func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("invalid URI %q", e.URI)
}

// ConversionError reports that percent-encoding could not turn an IRI
// into a parseable URI. It is returned only by the strict URL adapter;
// ToURI degrades to returning its input instead.
type ConversionError struct {
	IRI string
}

// Error returns the string representation of the conversion failure.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert IRI %q to a URI", e.IRI)
}
