// Package completeness decides which mandatory fields of a record are unmet.
//
// Checks run in a fixed order: the fields required of every arrangement
// (point 54), the cloud fields when the category is Cloud (54.h), and the
// critical-function fields when the record is flagged critical (55). The
// order of the output follows the order of the checks.
package completeness

import (
	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/fieldpath"
	"github.com/dshills/outreg/internal/schema"
)

// Result is the outcome of Evaluate. IncompletePaths and Labels are parallel.
type Result struct {
	IncompletePaths []string         `json:"incompletePaths"`
	Labels          []string         `json:"labels"`
	Missing         []schema.Missing `json:"missing"`
	IsComplete      bool             `json:"isComplete"`
}

// check is one row of the check table.
type check struct {
	path    string
	label   string
	group   schema.Group
	present func(r *schema.Record) bool
}

// Evaluate runs the check table against r. A failing check whose path is in
// pending is suppressed. Missing sub-records are treated as all fields absent.
func Evaluate(r *schema.Record, pending []string) Result {
	skip := make(map[string]struct{}, len(pending))
	for _, p := range pending {
		skip[p] = struct{}{}
	}

	res := Result{
		IncompletePaths: []string{},
		Labels:          []string{},
		Missing:         []schema.Missing{},
	}
	for _, c := range checksFor(r) {
		if c.present(r) {
			continue
		}
		if _, ok := skip[c.path]; ok {
			continue
		}
		res.IncompletePaths = append(res.IncompletePaths, c.path)
		res.Labels = append(res.Labels, c.label)
		res.Missing = append(res.Missing, schema.Missing{Path: c.path, Label: c.label, Group: c.group})
	}
	res.IsComplete = len(res.IncompletePaths) == 0
	return res
}

// checksFor builds the check table that applies to r.
func checksFor(r *schema.Record) []check {
	checks := fieldChecks(schema.GroupMandatory)
	if r.IsCloud() {
		checks = append(checks, fieldChecks(schema.GroupCloud)...)
	}
	if r.IsCritical() && r.CriticalFields != nil {
		checks = append(checks, criticalChecks(r.CriticalFields)...)
	}
	return checks
}

// fieldChecks turns the required fields of g into checks.
func fieldChecks(g schema.Group) []check {
	var out []check
	for _, f := range fieldmap.ByGroup(g) {
		if f.Optional {
			continue
		}
		out = append(out, fieldCheck(f))
	}
	return out
}

func fieldCheck(f fieldmap.Field) check {
	value := f.Value
	return check{
		path:    f.Path,
		label:   fieldmap.LabelFor(f.Path),
		group:   f.Group,
		present: func(r *schema.Record) bool { return fieldmap.Present(value(r)) },
	}
}

// criticalChecks is the 55 table. The sub-contractor list is only checked
// when the sub-outsourcing toggle is true, and then every element is
// checked field by field right after the list itself.
func criticalChecks(cf *schema.CriticalFields) []check {
	var out []check
	for _, f := range fieldmap.ByGroup(schema.GroupCritical) {
		if f.Optional {
			continue
		}
		if f.Path == fieldmap.SubContractorsPath {
			if !cf.HasSubOutsourcing() {
				continue
			}
			out = append(out, fieldCheck(f))
			out = append(out, subContractorChecks(cf.SubOutsourcing.SubContractors)...)
			continue
		}
		out = append(out, fieldCheck(f))
	}
	return out
}

func subContractorChecks(subs []schema.SubContractor) []check {
	var out []check
	for i, sc := range subs {
		for _, ef := range fieldmap.SubContractorFields {
			v := ef.Value(sc)
			path := fieldpath.Index(fieldmap.SubContractorsPath, i, ef.Name)
			out = append(out, check{
				path:    path,
				label:   fieldmap.LabelFor(path),
				group:   schema.GroupCritical,
				present: func(*schema.Record) bool { return fieldmap.Present(v) },
			})
		}
	}
	return out
}
