// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"regexp"
	"strings"
)

// compilePattern translates a shell glob into an anchored regular
// expression. Unlike path.Match, `*` and `?` also match the path
// separator, so `*/__init__.py` matches arbitrarily deep paths.
func compilePattern(pattern string) *regexp.Regexp {
	var expr strings.Builder
	expr.WriteString(`\A`)
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			expr.WriteString(`.*`)
		case '?':
			expr.WriteString(`.`)
		case '[':
			expr.WriteString(translateClass(pattern, &i))
		default:
			expr.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	expr.WriteString(`\z`)
	return regexp.MustCompile(expr.String())
}

// translateClass translates the [seq] character class starting at *i,
// advancing *i past the closing bracket. An unterminated class matches a
// literal bracket instead.
func translateClass(pattern string, i *int) string {
	start := *i + 1
	end := start
	if end < len(pattern) && pattern[end] == '!' {
		end++
	}
	if end < len(pattern) && pattern[end] == ']' {
		end++
	}
	for end < len(pattern) && pattern[end] != ']' {
		end++
	}
	if end >= len(pattern) {
		return `\[`
	}

	inner := pattern[start:end]
	*i = end

	var class strings.Builder
	class.WriteString("[")
	if strings.HasPrefix(inner, "!") {
		class.WriteString("^")
		inner = inner[1:]
	}
	for _, r := range inner {
		switch r {
		case '\\', ']', '^':
			class.WriteString(`\`)
			class.WriteRune(r)
		default:
			class.WriteRune(r)
		}
	}
	class.WriteString("]")
	return class.String()
}
