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

// Package iri provides a value type and algorithms for validating,
// normalizing, and converting Internationalized Resource Identifiers
// (IRIs) as defined by RFC 3987, interoperating with the ASCII-only
// URI form of RFC 3986.
//
// The central type is IRI, an immutable wrapper around the textual
// form of an identifier. An IRI is created either through validated
// construction (Parse, ParseNormalized), which fails on malformed
// input, or through Unchecked, an explicit escape hatch for input the
// caller already knows to be valid.
//
// Key features include:
//   - Validation in two modes: Lenient (scheme presence only) and
//     Strict (scheme syntax per RFC 3986 plus rejection of control
//     characters, unencoded spaces, and bidi formatting characters).
//   - Syntax-based normalization (Normalized): case folding of scheme
//     and host, removal of default ports, and dot-segment collapsing
//     per RFC 3986, Section 5.2.4.
//   - Conversion to and from the percent-encoded URI form (ToURI,
//     FromURI) and adapters for the standard library's *url.URL.
//   - Support for JSON and text marshalling and unmarshalling.
//
// Two IRI values are equal exactly when their stored strings are
// byte-for-byte equal. The type performs no semantic equivalence
// across different textual forms; apply Normalized before comparing
// for equivalence.
package iri

import (
	"encoding/json"
	"net/url"

	// TODO: At some point implement my own NFC module.
	"golang.org/x/text/unicode/norm"
)

// IRI is an immutable Internationalized Resource Identifier.
//
// The zero value is the empty IRI, which is not valid; obtain usable
// values through Parse, ParseNormalized, Unchecked, FromURL, or
// FromURI. IRI is comparable and may be used as a map key; equality
// is by the stored string.
type IRI struct {
	value string
}

// Parse validates s under the given mode and wraps it as an IRI.
// The string is stored exactly as provided, without any Unicode
// normalization; for canonical-equivalence use cases see
// ParseNormalized.
//
// An empty input returns ErrEmptyIRI. Any other validation failure
// returns an *InvalidIRIError carrying the offending string.
func Parse(s string, mode ValidationMode) (IRI, error) {
	if s == "" {
		return IRI{}, ErrEmptyIRI
	}
	if !IsValidIRI(s, mode) {
		return IRI{}, &InvalidIRIError{IRI: s}
	}
	return IRI{value: s}, nil
}

// ParseNormalized first normalizes s to Unicode Normalization Form C
// (NFC) and then validates it. In accordance with RFC 3987 sections
// 3.1 and 5.3.2.2, this should be used when the source of the string
// is not already a pre-normalized Unicode source (e.g. read from
// paper or converted from a legacy encoding).
func ParseNormalized(s string, mode ValidationMode) (IRI, error) {
	return Parse(norm.NFC.String(s), mode)
}

// Unchecked wraps s as an IRI without any validation. The caller
// asserts that s is a well-formed IRI; use it for trusted input such
// as string literals or values decomposed from an already-validated
// source. Parse is the default path; Unchecked is the deliberate
// bypass.
func Unchecked(s string) IRI {
	return IRI{value: s}
}

// FromURL adapts a trusted *url.URL into an IRI via unchecked
// construction. The URL's encoded string form is taken as-is, so a
// value that was originally Unicode and travelled through a *url.URL
// comes back percent-encoded; the round trip is lossy by contract.
func FromURL(u *url.URL) IRI {
	return IRI{value: u.String()}
}

// String returns the stored textual form of the IRI.
func (i IRI) String() string {
	return i.value
}

// IRIString implements the Representable capability.
func (i IRI) IRIString() string {
	return i.value
}

// IsEmpty reports whether the IRI holds no text, as the zero value does.
func (i IRI) IsEmpty() bool {
	return i.value == ""
}

// Representable is the capability of producing an IRI-formatted
// string. The IRI type satisfies it by identity; foreign URL-like
// types satisfy it by exposing their absolute string form (see
// URLRef). Validation predicates such as IsValidHTTPRef accept any
// Representable, allowing the core type and external URL values to
// be used interchangeably.
type Representable interface {
	IRIString() string
}

// URLRef adapts a *url.URL to the Representable capability using the
// URL's encoded string form.
type URLRef struct {
	URL *url.URL
}

// IRIString returns the URL's encoded string form.
func (r URLRef) IRIString() string {
	return r.URL.String()
}

// MarshalJSON implements the json.Marshaler interface, encoding the
// IRI as a JSON string.
func (i IRI) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes
// a JSON string into an IRI, validating it leniently in the process.
func (i *IRI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s, Lenient)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i IRI) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface,
// validating the text leniently.
func (i *IRI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), Lenient)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
