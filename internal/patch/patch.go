// Package patch describes what changed between two revisions of a record.
package patch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

// Diff returns a diff-match-patch text patch that turns the JSON form of
// before into that of after. Equal revisions produce "". Bookkeeping
// timestamps are ignored.
func Diff(before, after *schema.Record) (string, error) {
	a, err := canonical(before)
	if err != nil {
		return "", err
	}
	b, err := canonical(after)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}

	dmp := diffmatchpatch.New()
	// Line-level diff keeps hunks aligned with JSON fields.
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	patches := dmp.PatchMake(a, diffs)
	return dmp.PatchToText(patches), nil
}

// ChangedFields returns the paths of mapped fields whose exported value
// differs between the revisions, in table order.
func ChangedFields(before, after *schema.Record) []string {
	var out []string
	for _, f := range fieldmap.All() {
		if fieldmap.Format(f.Value(before)) != fieldmap.Format(f.Value(after)) {
			out = append(out, f.Path)
		}
	}
	return out
}

// Summary renders ChangedFields as one line per field with its label.
func Summary(before, after *schema.Record) string {
	var sb strings.Builder
	for _, p := range ChangedFields(before, after) {
		sb.WriteString(fmt.Sprintf("~ %s: %s\n", p, fieldmap.LabelFor(p)))
	}
	return sb.String()
}

func canonical(r *schema.Record) (string, error) {
	c := *r
	c.CreatedAt, c.UpdatedAt = "", ""
	data, err := json.MarshalIndent(&c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}
	return string(data) + "\n", nil
}
