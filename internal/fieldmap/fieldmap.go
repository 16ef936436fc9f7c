// Package fieldmap is the field-mapping table shared by the completeness
// checks and the export renderers: every reachable field path with its label,
// regulatory citation, value type and accessor.
package fieldmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/outreg/internal/fieldpath"
	"github.com/dshills/outreg/internal/schema"
)

// Type is the value type of a field, used by exporters for formatting.
type Type string

const (
	TypeText   Type = "text"
	TypeDate   Type = "date"
	TypeBool   Type = "boolean"
	TypeEnum   Type = "enum"
	TypeList   Type = "list"
	TypeNumber Type = "number"
)

// Field maps one path to its presentation and accessor.
type Field struct {
	Path     string
	Label    string
	Citation string
	Type     Type
	Group    schema.Group
	// Optional fields are exported but never required.
	Optional bool
	// Value returns string, *bool, []string, []schema.SubContractor or *float64.
	// Accessors treat a nil sub-record as all fields absent.
	Value func(r *schema.Record) any
}

// ElementField maps one field of a list element.
type ElementField struct {
	Name     string
	Label    string
	Citation string
	Value    func(sc schema.SubContractor) string
}

const (
	// SubContractorsPath addresses the sub-contractor list.
	SubContractorsPath = "criticalFields.subOutsourcing.subContractors"
	// SubOutsourcingTogglePath addresses the sub-outsourcing boolean.
	SubOutsourcingTogglePath = "criticalFields.subOutsourcing.hasSubOutsourcing"
)

var (
	all    []Field
	byPath map[string]Field
)

func init() {
	all = append(all, mandatory()...)
	all = append(all, cloud()...)
	all = append(all, critical()...)
	byPath = make(map[string]Field, len(all)+len(SubContractorFields))
	for _, f := range all {
		byPath[f.Path] = f
	}
	for _, ef := range SubContractorFields {
		p := fieldpath.Join(SubContractorsPath, fieldpath.Wildcard, ef.Name)
		byPath[p] = Field{
			Path:     p,
			Label:    ef.Label,
			Citation: ef.Citation,
			Type:     TypeText,
			Group:    schema.GroupCritical,
		}
	}
}

// All returns every field in table order: point 54, then 54.h, then 55.
func All() []Field {
	out := make([]Field, len(all))
	copy(out, all)
	return out
}

// ByGroup returns the fields of g in table order.
func ByGroup(g schema.Group) []Field {
	var out []Field
	for _, f := range all {
		if f.Group == g {
			out = append(out, f)
		}
	}
	return out
}

// Lookup returns the field for path. Indexed sub-contractor paths resolve to
// their element template.
func Lookup(path string) (Field, bool) {
	f, ok := byPath[fieldpath.Pattern(path)]
	return f, ok
}

// Known reports whether path addresses a field reachable in the schema.
func Known(path string) bool {
	_, ok := Lookup(path)
	return ok
}

// LabelFor returns the human label with citation for path, qualified with the
// 1-based element number for indexed paths. Unknown paths return the path.
func LabelFor(path string) string {
	f, ok := Lookup(path)
	if !ok {
		return path
	}
	label := fmt.Sprintf("%s (%s)", f.Label, f.Citation)
	if idx := fieldpath.Indices(path); len(idx) > 0 {
		label = fmt.Sprintf("Sub-contractor %d: %s", idx[0]+1, label)
	}
	return label
}

// Format renders a Value result for exports.
func Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *bool:
		if x == nil {
			return ""
		}
		if *x {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(x, "; ")
	case *float64:
		if x == nil {
			return ""
		}
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case []schema.SubContractor:
		names := make([]string, 0, len(x))
		for _, sc := range x {
			names = append(names, sc.Name)
		}
		return strings.Join(names, "; ")
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// Present reports whether a Value result counts as filled in. Strings must be
// non-blank, lists non-empty, and booleans and numbers defined (false and zero
// are present).
func Present(v any) bool {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x) != ""
	case *bool:
		return x != nil
	case *float64:
		return x != nil
	case []string:
		return len(x) > 0
	case []schema.SubContractor:
		return len(x) > 0
	default:
		return false
	}
}

func cloudOf(r *schema.Record) *schema.CloudService {
	if r.CloudService == nil {
		return &schema.CloudService{}
	}
	return r.CloudService
}

func criticalOf(r *schema.Record) *schema.CriticalFields {
	if r.CriticalFields == nil {
		return &schema.CriticalFields{}
	}
	return r.CriticalFields
}

func subOutsourcingOf(r *schema.Record) *schema.SubOutsourcing {
	c := criticalOf(r)
	if c.SubOutsourcing == nil {
		return &schema.SubOutsourcing{}
	}
	return c.SubOutsourcing
}
