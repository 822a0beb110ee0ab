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

import "testing"

func TestNormalized(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Scheme and host case folding with default port",
			input:    "HTTPS://EXAMPLE.COM:443/path",
			expected: "https://example.com/path",
		},
		{
			name:     "Default HTTP port dropped",
			input:    "http://example.com:80/x",
			expected: "http://example.com/x",
		},
		{
			name:     "Non-default port retained",
			input:    "https://example.com:8080/x",
			expected: "https://example.com:8080/x",
		},
		{
			name:     "Default FTP port dropped",
			input:    "ftp://example.com:21/pub",
			expected: "ftp://example.com/pub",
		},
		{
			name:     "Default WSS port dropped",
			input:    "WSS://Example.com:443/socket",
			expected: "wss://example.com/socket",
		},
		{
			name:     "Empty path becomes root for HTTP",
			input:    "HTTP://EXAMPLE.COM",
			expected: "http://example.com/",
		},
		{
			name:     "Empty path kept for non-HTTP schemes",
			input:    "ftp://example.com",
			expected: "ftp://example.com",
		},
		{
			name:     "Dot segments collapsed",
			input:    "http://example.com/a/b/c/./../../g",
			expected: "http://example.com/a/g",
		},
		{
			name:     "Userinfo case preserved",
			input:    "https://User@Example.COM/Path",
			expected: "https://User@example.com/Path",
		},
		{
			name:     "Path case preserved",
			input:    "http://example.com/CaseSensitive",
			expected: "http://example.com/CaseSensitive",
		},
		{
			name:     "Query and fragment pass through",
			input:    "HTTP://example.com:80/a/./b?Q=UPPER#Frag",
			expected: "http://example.com/a/b?Q=UPPER#Frag",
		},
		{
			name:     "Unicode host lowercased, Unicode path untouched",
			input:    "https://ΕΧΑΜPLE.com/寿司",
			expected: "https://εχαμple.com/寿司",
		},
		{
			name:     "No authority, path normalized",
			input:    "urn:a/b/../c",
			expected: "urn:a/c",
		},
		{
			name:     "Default port for wrong scheme retained",
			input:    "https://example.com:80/x",
			expected: "https://example.com:80/x",
		},
		{
			name:     "Already normalized",
			input:    "https://example.com/a",
			expected: "https://example.com/a",
		},
		{
			name:     "Undecomposable input returned unchanged",
			input:    "not an iri",
			expected: "not an iri",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Unchecked(tc.input).Normalized().String(); got != tc.expected {
				t.Errorf("Normalized(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// Normalization must be idempotent and must preserve validity.
func TestNormalizedProperties(t *testing.T) {
	inputs := []string{
		"HTTPS://EXAMPLE.COM:443/path",
		"http://example.com:80/x",
		"https://example.com:8080/x",
		"HTTP://EXAMPLE.COM",
		"http://example.com/a/b/c/./../../g",
		"https://例え.jp/寿司",
		"urn:isbn:0451450523",
		"mailto:user@example.com",
		"ftp://example.com:21/pub/../file",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if !IsValidIRI(input, Lenient) {
				t.Fatalf("test input %q is not a valid IRI", input)
			}
			once := Unchecked(input).Normalized()
			if twice := once.Normalized(); twice != once {
				t.Errorf("not idempotent: %q then %q", once, twice)
			}
			if !IsValidIRI(once.String(), Lenient) {
				t.Errorf("normalization broke validity: %q -> %q", input, once)
			}
		})
	}
}

// An unnormalized IRI and its normalized form are distinct values;
// equality is byte-for-byte, not semantic.
func TestNormalizedEquality(t *testing.T) {
	raw := Unchecked("HTTP://example.com/a")
	normalized := raw.Normalized()
	if raw == normalized {
		t.Error("expected the raw and normalized values to differ")
	}
	if normalized != Unchecked("http://example.com/a") {
		t.Errorf("unexpected normalized form %q", normalized)
	}
}
