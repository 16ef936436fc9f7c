package review

import (
	"testing"

	"github.com/dshills/outreg/internal/completeness"
	"github.com/dshills/outreg/internal/schema"
)

func makeMissing(groups ...schema.Group) []schema.Missing {
	out := make([]schema.Missing, len(groups))
	for i, g := range groups {
		out[i] = schema.Missing{Path: string(g), Group: g}
	}
	return out
}

// --- Verdict tests ---

func TestVerdict_Complete(t *testing.T) {
	v := Verdict(completeness.Result{IsComplete: true}, nil)
	if v != schema.VerdictComplete {
		t.Errorf("Verdict = %q, want COMPLETE", v)
	}
}

func TestVerdict_CompleteWithPending(t *testing.T) {
	v := Verdict(completeness.Result{IsComplete: true}, []string{"status"})
	if v != schema.VerdictDeferred {
		t.Errorf("Verdict = %q, want COMPLETE_WITH_PENDING", v)
	}
}

func TestVerdict_Incomplete(t *testing.T) {
	res := completeness.Result{IncompletePaths: []string{"status"}, Missing: makeMissing(schema.GroupMandatory)}
	v := Verdict(res, []string{"category"})
	if v != schema.VerdictIncomplete {
		t.Errorf("Verdict = %q, want INCOMPLETE", v)
	}
}

// --- Counts / filter tests ---

func TestCounts_Mixed(t *testing.T) {
	m, c, cr := Counts(makeMissing(schema.GroupMandatory, schema.GroupCloud, schema.GroupCritical, schema.GroupCritical))
	if m != 1 || c != 1 || cr != 2 {
		t.Errorf("Counts = %d,%d,%d, want 1,1,2", m, c, cr)
	}
}

func TestFilterByGroup_Critical(t *testing.T) {
	filtered := FilterByGroup(makeMissing(schema.GroupMandatory, schema.GroupCritical, schema.GroupCloud), schema.GroupCritical)
	if len(filtered) != 1 || filtered[0].Group != schema.GroupCritical {
		t.Errorf("expected one critical entry, got %+v", filtered)
	}
}

func TestFilterByGroup_NoGroupsReturnsAll(t *testing.T) {
	all := makeMissing(schema.GroupMandatory, schema.GroupCloud)
	if got := FilterByGroup(all); len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
}

func TestSummarize_CountsIncludePending(t *testing.T) {
	res := completeness.Result{Missing: makeMissing(schema.GroupCloud)}
	s := Summarize(res, []string{"a", "b"})
	if s.CloudCount != 1 || s.PendingCount != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestParseGroup(t *testing.T) {
	for in, want := range map[string]schema.Group{"mandatory": schema.GroupMandatory, "54.h": schema.GroupCloud, "critical": schema.GroupCritical} {
		g, ok := ParseGroup(in)
		if !ok || g != want {
			t.Errorf("ParseGroup(%q) = %q,%v", in, g, ok)
		}
	}
	if _, ok := ParseGroup("nope"); ok {
		t.Error("expected unknown group to fail")
	}
}
