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

import "strings"

// ValidationMode selects how thoroughly IsValidIRI and the validated
// constructors examine their input. It is passed as a parameter and
// never stored.
type ValidationMode int

const (
	// Lenient accepts any non-empty string carrying a colon-delimited
	// non-empty scheme.
	Lenient ValidationMode = iota
	// Strict additionally enforces the RFC 3986 scheme syntax and
	// rejects control characters, unencoded spaces, bidi formatting
	// characters, and empty fragments.
	Strict
)

// String returns the lowercase name of the mode.
func (m ValidationMode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// IsValidIRI reports whether s is an acceptable IRI under the given
// mode. This predicate is the single source of truth consulted by the
// validated constructors.
//
// In both modes the string must be non-empty and must decompose into
// a non-empty scheme (see split for the scheme-delimiter boundary).
// Strict mode additionally requires the scheme to match the RFC 3986
// ABNF, the whole string to be free of C0/C1 control characters,
// literal spaces, and bidi formatting characters, and any present
// fragment to be non-empty. A percent-encoded space ("%20") is
// unaffected by the space rule, which concerns literal characters
// only.
func IsValidIRI(s string, mode ValidationMode) bool {
	if s == "" {
		return false
	}
	c, ok := split(s)
	if !ok || c.scheme == "" {
		return false
	}
	if mode == Lenient {
		return true
	}

	if !validSchemeFormat(c.scheme) {
		return false
	}
	for _, r := range s {
		if isControl(r) || r == ' ' || isForbiddenBidiFormatting(r) {
			return false
		}
	}
	if c.hasFragment && c.fragment == "" {
		return false
	}
	return true
}

// validSchemeFormat checks a scheme substring against the RFC 3986
// ABNF: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validSchemeFormat(scheme string) bool {
	if scheme == "" {
		return false
	}
	for i, r := range scheme {
		if i == 0 {
			if !isASCIILetter(r) {
				return false
			}
			continue
		}
		if !isASCIILetter(r) && !isASCIIDigit(r) && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// IsValidHTTP reports whether s is a valid IRI whose scheme,
// lowercased, is exactly "http" or "https". Structural validity is
// judged leniently; use IsValidIRI with Strict for character-level
// checks.
func IsValidHTTP(s string) bool {
	if !IsValidIRI(s, Lenient) {
		return false
	}
	c, _ := split(s)
	scheme := strings.ToLower(c.scheme)
	return scheme == "http" || scheme == "https"
}

// IsValidHTTPRef is IsValidHTTP over any Representable value, so the
// core IRI type and foreign URL-like values can be checked
// interchangeably.
func IsValidHTTPRef(r Representable) bool {
	return IsValidHTTP(r.IRIString())
}
