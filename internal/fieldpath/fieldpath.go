// Package fieldpath builds and takes apart the dotted field paths used to
// address record fields, e.g. "criticalFields.subOutsourcing.subContractors.0.name".
package fieldpath

import (
	"strconv"
	"strings"
)

const (
	sep      = "."
	Wildcard = "*"
)

// Join joins non-empty segments with dots.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// Index addresses field of element i of the list at base.
// An empty field addresses the element itself.
func Index(base string, i int, field string) string {
	return Join(base, strconv.Itoa(i), field)
}

// Split returns the segments of path. The empty path has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, sep)
}

// Pattern replaces every numeric segment with Wildcard so indexed paths can be
// matched against a template.
func Pattern(path string) string {
	segs := Split(path)
	for i, s := range segs {
		if isIndex(s) {
			segs[i] = Wildcard
		}
	}
	return strings.Join(segs, sep)
}

// Indices returns the numeric segments of path in order.
func Indices(path string) []int {
	var out []int
	for _, s := range Split(path) {
		if isIndex(s) {
			n, _ := strconv.Atoi(s)
			out = append(out, n)
		}
	}
	return out
}

// HasPrefix reports whether path is prefix or lies beneath it.
func HasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+sep)
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
