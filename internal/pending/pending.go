// Package pending tracks the field paths a user has deferred ("complete
// later"). Pending paths suppress completeness failures for those paths.
package pending

import (
	"errors"
	"fmt"

	"github.com/dshills/outreg/internal/fieldmap"
)

// ErrUnknownPath is returned by ToggleKnown for a path the schema does not have.
var ErrUnknownPath = errors.New("unknown field path")

// Set is an insertion-ordered set of field paths. The zero value is empty and
// ready to use. Paths are opaque strings compared by equality.
type Set struct {
	paths []string
}

// New returns a set holding paths, de-duplicated, in first-seen order.
func New(paths []string) *Set {
	s := &Set{}
	for _, p := range paths {
		if !s.Has(p) {
			s.paths = append(s.paths, p)
		}
	}
	return s
}

// Has reports whether path is pending.
func (s *Set) Has(path string) bool {
	for _, p := range s.paths {
		if p == path {
			return true
		}
	}
	return false
}

// Toggle flips membership of path and reports whether it is now pending.
// Two toggles cancel out. The path is not checked against the schema.
func (s *Set) Toggle(path string) bool {
	for i, p := range s.paths {
		if p == path {
			s.paths = append(s.paths[:i:i], s.paths[i+1:]...)
			return false
		}
	}
	s.paths = append(s.paths, path)
	return true
}

// ToggleKnown is Toggle for paths that must exist in the schema.
// Removing an unknown path that is already pending is allowed.
func (s *Set) ToggleKnown(path string) (bool, error) {
	if !fieldmap.Known(path) && !s.Has(path) {
		return false, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return s.Toggle(path), nil
}

// Merge adds every path in incomplete that is not already pending and returns
// the updated paths. Used when saving as draft.
func (s *Set) Merge(incomplete []string) []string {
	for _, p := range incomplete {
		if !s.Has(p) {
			s.paths = append(s.paths, p)
		}
	}
	return s.Paths()
}

// Paths returns a copy of the pending paths in insertion order.
func (s *Set) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of pending paths.
func (s *Set) Len() int { return len(s.paths) }

// Unknown returns the pending paths that do not address a schema field.
func (s *Set) Unknown() []string {
	var out []string
	for _, p := range s.paths {
		if !fieldmap.Known(p) {
			out = append(out, p)
		}
	}
	return out
}
