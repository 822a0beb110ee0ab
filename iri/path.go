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
	"bytes"
	"strings"
)

// removeDotSegments implements the "Remove Dot Segments" algorithm
// from RFC 3986, Section 5.2.4. It normalizes a path by resolving "."
// and ".." segments, consuming the input buffer left-to-right while
// building the output buffer left-to-right. Every iteration strictly
// shrinks the input, so the loop terminates in linear time.
func removeDotSegments(path string) string {
	var out []byte
	in := path

	for in != "" {
		switch {
		// Rule 2A: a leading "../" or "./" is discarded.
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		// Rule 2B: a leading "/./" (or a final "/.") collapses to "/".
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		// Rule 2C: a leading "/../" (or a final "/..") collapses to "/"
		// and pops the last segment already written to the output.
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = popSegment(out)
		case in == "/..":
			in = "/"
			out = popSegment(out)
		// Rule 2D: a lone "." or ".." clears the input.
		case in == "." || in == "..":
			in = ""
		// Rule 2E: otherwise move the first segment to the output.
		default:
			segment := firstSegment(in)
			out = append(out, segment...)
			in = in[len(segment):]
		}
	}
	return string(out)
}

// popSegment removes the last path segment from the output buffer by
// truncating at the last '/'. When the buffer holds no '/', it
// becomes empty.
func popSegment(out []byte) []byte {
	if i := bytes.LastIndexByte(out, '/'); i >= 0 {
		return out[:i]
	}
	return out[:0]
}

// firstSegment returns the leading path segment of in: the initial
// "/" when present, plus the characters up to but not including the
// next "/", or all of in when no further "/" exists. in must be
// non-empty.
func firstSegment(in string) string {
	start := 0
	if in[0] == '/' {
		start = 1
	}
	if i := strings.IndexByte(in[start:], '/'); i >= 0 {
		return in[:start+i]
	}
	return in
}
