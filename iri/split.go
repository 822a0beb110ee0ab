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

// components holds the decomposed parts of an absolute IRI. The has*
// flags distinguish an absent component from a present-but-empty one,
// so that "http://h/p?" and "http://h/p" recompose differently.
type components struct {
	scheme       string
	userinfo     string
	host         string
	port         string
	path         string
	query        string
	fragment     string
	hasAuthority bool
	hasQuery     bool
	hasFragment  bool
}

// split decomposes s into scheme, authority, path, query, and
// fragment. It reports false when no scheme can be found: the scheme
// delimiter is the first ':' appearing before any '/', '?', or '#',
// and it must be preceded by at least one character. A colon that
// appears only inside the path, query, or fragment does not create a
// scheme.
func split(s string) (components, bool) {
	var c components

	i := strings.IndexAny(s, ":/?#")
	if i <= 0 || s[i] != ':' {
		return c, false
	}
	c.scheme = s[:i]
	rest := s[i+1:]

	if strings.HasPrefix(rest, "//") {
		c.hasAuthority = true
		rest = rest[2:]
		end := len(rest)
		for j, r := range rest {
			if r == '/' || r == '?' || r == '#' {
				end = j
				break
			}
		}
		c.userinfo, c.host, c.port = splitAuthority(rest[:end])
		rest = rest[end:]
	}

	j := strings.IndexAny(rest, "?#")
	if j == -1 {
		c.path = rest
		return c, true
	}
	c.path = rest[:j]
	if rest[j] == '#' {
		c.hasFragment = true
		c.fragment = rest[j+1:]
		return c, true
	}
	c.hasQuery = true
	c.query = rest[j+1:]
	if k := strings.IndexByte(c.query, '#'); k != -1 {
		c.hasFragment = true
		c.fragment = c.query[k+1:]
		c.query = c.query[:k]
	}
	return c, true
}

// splitAuthority breaks an authority string into its userinfo, host,
// and port parts. The userinfo delimiter is the last '@' so that an
// '@' inside userinfo is tolerated, and a bracketed IP literal keeps
// its brackets in the host.
func splitAuthority(authority string) (userinfo, host, port string) {
	hostport := authority
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		userinfo = authority[:at]
		hostport = authority[at+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		end := strings.LastIndexByte(hostport, ']')
		if end < 0 {
			// Unterminated IP literal; treat everything as host.
			return userinfo, hostport, ""
		}
		host = hostport[:end+1]
		if end+1 < len(hostport) && hostport[end+1] == ':' {
			port = hostport[end+2:]
		}
		return userinfo, host, port
	}

	if colon := strings.LastIndexByte(hostport, ':'); colon >= 0 {
		return userinfo, hostport[:colon], hostport[colon+1:]
	}
	return userinfo, hostport, ""
}

// String recomposes the components into a single IRI string. It is
// the inverse of split, except that a dangling '@' or ':' delimiting
// an empty userinfo or port is not reproduced.
func (c components) String() string {
	var b strings.Builder
	b.Grow(len(c.scheme) + len(c.host) + len(c.path) + len(c.query) + len(c.fragment) + 8)

	b.WriteString(c.scheme)
	b.WriteByte(':')
	if c.hasAuthority {
		b.WriteString("//")
		if c.userinfo != "" {
			b.WriteString(c.userinfo)
			b.WriteByte('@')
		}
		b.WriteString(c.host)
		if c.port != "" {
			b.WriteByte(':')
			b.WriteString(c.port)
		}
	}
	b.WriteString(c.path)
	if c.hasQuery {
		b.WriteByte('?')
		b.WriteString(c.query)
	}
	if c.hasFragment {
		b.WriteByte('#')
		b.WriteString(c.fragment)
	}
	return b.String()
}
