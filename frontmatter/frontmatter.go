/*
Package frontmatter reads and writes the metadata header at the top of a blog post source file.

A header is delimited by lines holding only three hyphens and contains simple "key: value"
lines:

	---
	title: "My glorious post"
	date: 2024-05-01
	---
	# This is my Heading

Only the first colon on a line separates the key from the value, so values such as times or
URLs survive intact. Values are trimmed, and one pair of surrounding double quotes is removed.
Lines without a colon are ignored. This is deliberately not YAML.
*/
package frontmatter

import (
	"sort"
	"strings"
)

// delimiter opens and closes a header block.
const delimiter = "---"

// Meta holds the key/value pairs of a header block.
type Meta map[string]string

// Get returns the value for key, or def when the key is absent.
func (m Meta) Get(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Parse splits doc into its metadata and body.
//
// ok is false when doc does not start with a delimiter line, when the block is never closed,
// or when the block holds no key/value pair. In that case meta is nil and body is doc.
func Parse(doc string) (meta Meta, body string, ok bool) {
	rest := strings.TrimPrefix(doc, "\ufeff")

	line, rest, more := nextLine(rest)
	if !isDelimiter(line) || !more {
		return nil, doc, false
	}

	meta = make(Meta)
	for {
		line, rest, more = nextLine(rest)
		if isDelimiter(line) {
			break
		}
		if !more {
			// ran off the end without a closing delimiter
			return nil, doc, false
		}
		k, v, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		meta[k] = unquote(strings.TrimSpace(v))
	}
	if len(meta) == 0 {
		return nil, doc, false
	}
	return meta, rest, true
}

// Format renders meta as a header block followed by body.
//
// Keys listed in order come first, in that order; the remaining keys follow sorted by name.
// Values that would not survive Parse unchanged are wrapped in double quotes.
func Format(meta Meta, order []string, body string) string {
	var sb strings.Builder
	sb.WriteString(delimiter + "\n")
	seen := make(map[string]bool, len(meta))
	write := func(k string) {
		if seen[k] {
			return
		}
		v, ok := meta[k]
		if !ok {
			return
		}
		seen[k] = true
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(quote(v))
		sb.WriteString("\n")
	}
	for _, k := range order {
		write(k)
	}
	rest := make([]string, 0, len(meta))
	for k := range meta {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		write(k)
	}
	sb.WriteString(delimiter + "\n")
	sb.WriteString(body)
	return sb.String()
}

// nextLine returns the first line of s without its line ending, the text after it,
// and whether a line ending was found.
func nextLine(s string) (line, rest string, more bool) {
	line, rest, more = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, more
}

func isDelimiter(line string) bool {
	return strings.TrimSpace(line) == delimiter
}

// unquote strips a single pair of surrounding double quotes.
func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// quote wraps v in double quotes when Parse would otherwise alter it.
func quote(v string) string {
	if v == "" || strings.TrimSpace(v) != v || strings.ContainsAny(v, ":\"") || strings.Contains(v, "\n") {
		return `"` + strings.ReplaceAll(v, "\n", " ") + `"`
	}
	return v
}
