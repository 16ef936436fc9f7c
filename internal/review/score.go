package review

import (
	"github.com/dshills/outreg/internal/completeness"
	"github.com/dshills/outreg/internal/schema"
)

// Verdict summarises a completeness result. A record whose only gaps are
// pending fields is COMPLETE_WITH_PENDING.
func Verdict(res completeness.Result, pending []string) schema.Verdict {
	if !res.IsComplete {
		return schema.VerdictIncomplete
	}
	if len(pending) > 0 {
		return schema.VerdictDeferred
	}
	return schema.VerdictComplete
}

// Counts returns the number of missing fields per regulatory group.
func Counts(missing []schema.Missing) (mandatory, cloud, critical int) {
	for _, m := range missing {
		switch m.Group {
		case schema.GroupMandatory:
			mandatory++
		case schema.GroupCloud:
			cloud++
		case schema.GroupCritical:
			critical++
		}
	}
	return
}

// FilterByGroup returns only the missing fields in one of groups, keeping order.
// No groups means no filtering.
func FilterByGroup(missing []schema.Missing, groups ...schema.Group) []schema.Missing {
	if len(groups) == 0 {
		return missing
	}
	out := make([]schema.Missing, 0, len(missing))
	for _, m := range missing {
		for _, g := range groups {
			if m.Group == g {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Summarize builds the report summary. Counts always reflect every missing
// field, before any group filtering of the output.
func Summarize(res completeness.Result, pending []string) schema.Summary {
	mandatory, cloud, critical := Counts(res.Missing)
	return schema.Summary{
		Verdict:        Verdict(res, pending),
		MandatoryCount: mandatory,
		CloudCount:     cloud,
		CriticalCount:  critical,
		PendingCount:   len(pending),
	}
}

// ParseGroup converts a flag value to a group. ok is false for unknown values.
func ParseGroup(s string) (schema.Group, bool) {
	switch s {
	case "mandatory", "54":
		return schema.GroupMandatory, true
	case "cloud", "54.h":
		return schema.GroupCloud, true
	case "critical", "55":
		return schema.GroupCritical, true
	}
	return "", false
}
