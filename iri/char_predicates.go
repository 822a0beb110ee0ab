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

import "unicode/utf8"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isUnreserved checks if a character is in the unreserved set as
// defined by RFC 3986.
func isUnreserved(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '-' || r == '.' || r == '_' || r == '~'
}

// isControl checks if a character falls in the C0 or C1 control
// ranges, [0x00,0x1F] and [0x7F,0x9F].
func isControl(r rune) bool {
	return r <= 0x1F || (0x7F <= r && r <= 0x9F)
}

// isForbiddenBidiFormatting checks for bidirectional formatting characters that are forbidden in IRIs.
func isForbiddenBidiFormatting(r rune) bool {
	// RFC 3987, Section 4.1: "IRIs MUST NOT contain bidirectional formatting characters"
	// These characters are LRM (U+200E), RLM (U+200F), and LRE, RLE, PDF, LRO, RLO (U+202A to U+202E).
	return (r >= '‪' && r <= '‮') || r == '‎' || r == '‏'
}

// isASCIIString checks if a string consists solely of ASCII bytes.
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
