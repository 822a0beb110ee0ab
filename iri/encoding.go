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
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ToURI returns the ASCII URI form of the IRI per RFC 3987, Section
// 3.1. When the stored string is already ASCII and parses as a
// generic URI it is returned unchanged. Otherwise the string is
// normalized to NFC and every non-ASCII rune is percent-encoded using
// its UTF-8 octets.
//
// Conversion is best-effort and never fails: when even the encoded
// form does not parse as a URI, the original string is returned
// unmodified. Use URL for the strict variant that surfaces an error.
func (i IRI) ToURI() string {
	if isASCIIString(i.value) {
		if _, err := url.Parse(i.value); err == nil {
			return i.value
		}
	}

	var b strings.Builder
	b.Grow(len(i.value))
	percentEncode(norm.NFC.String(i.value), &b)
	encoded := b.String()
	if _, err := url.Parse(encoded); err != nil {
		return i.value
	}
	return encoded
}

// URL converts the IRI to the platform URL type. Unlike ToURI it does
// not degrade: when percent-encoding cannot produce a parseable URI,
// it returns a *ConversionError carrying the IRI text.
func (i IRI) URL() (*url.URL, error) {
	u, err := url.Parse(i.ToURI())
	if err != nil {
		return nil, &ConversionError{IRI: i.value}
	}
	return u, nil
}

// FromURI converts a URI string into an IRI by decoding
// percent-encoded octets that form valid UTF-8 sequences, the reverse
// of ToURI per RFC 3987, Section 3.2. Octets that are not valid
// UTF-8, that decode to reserved ASCII characters, or that decode to
// forbidden bidi formatting characters keep their percent-encoded
// form so the IRI structure is unchanged. The decoded string is
// normalized to NFC and re-validated; a failure returns an
// *InvalidURIError carrying the original input.
func FromURI(s string) (IRI, error) {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}

		// Collect a contiguous block of percent-encoded octets so a
		// multi-byte UTF-8 sequence is decoded as a unit.
		start := i
		var decoded []byte
		for i+2 < len(s) && s[i] == '%' && isASCIIHexDigit(rune(s[i+1])) && isASCIIHexDigit(rune(s[i+2])) {
			octet, _ := hex.DecodeString(s[i+1 : i+3])
			decoded = append(decoded, octet[0])
			i += 3
		}
		if i == start {
			// Incomplete or invalid encoding; keep the literal '%'.
			b.WriteByte('%')
			i++
			continue
		}

		if decodable(decoded) {
			b.Write(decoded)
		} else {
			b.WriteString(s[start:i])
		}
	}

	parsed, err := ParseNormalized(b.String(), Lenient)
	if err != nil {
		return IRI{}, &InvalidURIError{URI: s}
	}
	return parsed, nil
}

// percentEncode writes s to b, replacing every non-ASCII rune with
// the percent-encoded form of its UTF-8 octets.
func percentEncode(s string, b *strings.Builder) {
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		for _, octet := range buf[:n] {
			fmt.Fprintf(b, "%%%02X", octet)
		}
	}
}

// decodable reports whether decoded octets may be written back in raw
// form: they must be valid UTF-8, contain no ASCII outside the
// unreserved set, and contain no forbidden bidi formatting
// characters.
func decodable(octets []byte) bool {
	if !utf8.Valid(octets) {
		return false
	}
	for _, r := range string(octets) {
		if r <= unicode.MaxASCII && !isUnreserved(r) {
			return false
		}
		if isForbiddenBidiFormatting(r) {
			return false
		}
	}
	return true
}
