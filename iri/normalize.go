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

// defaultPorts maps a scheme to its registered default port, used by
// Normalized to drop redundant port components.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
	"ws":    "80",
	"wss":   "443",
}

// Normalized returns a syntactically normalized copy of the IRI per
// RFC 3986, Section 6.2.2: the scheme and host are lowercased, a port
// equal to the scheme's registered default is removed, an empty path
// becomes "/" for http and https, and dot segments are collapsed.
// The query and fragment pass through unchanged.
//
// Normalization is best-effort and never fails: when the stored
// string does not decompose, the receiver is returned unchanged.
// Callers needing strict guarantees should validate first.
func (i IRI) Normalized() IRI {
	c, ok := split(i.value)
	if !ok {
		return i
	}

	c.scheme = strings.ToLower(c.scheme)
	c.host = strings.ToLower(c.host)
	if c.port != "" && c.port == defaultPorts[c.scheme] {
		c.port = ""
	}
	if c.path == "" && (c.scheme == "http" || c.scheme == "https") {
		c.path = "/"
	}
	if c.path != "" {
		c.path = removeDotSegments(c.path)
	}

	normalized := c.String()
	if normalized == i.value {
		return i
	}
	return IRI{value: normalized}
}
