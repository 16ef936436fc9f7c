package register

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/outreg/internal/schema"
)

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Status       schema.Status
	Category     schema.Category
	CriticalOnly bool
	// WithIssues keeps records that were saved with incomplete fields.
	WithIssues bool
	// Search matches reference, function name, provider name and category,
	// ignoring case and accents.
	Search string
}

// List returns the stored records that match f, in storage order.
func (s *Service) List(ctx context.Context, f Filter) ([]schema.Record, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	needle := fold(strings.TrimSpace(f.Search))
	out := make([]schema.Record, 0, len(records))
	for i := range records {
		if f.matches(&records[i], needle) {
			out = append(out, records[i])
		}
	}
	return out, nil
}

func (f Filter) matches(r *schema.Record, needle string) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.CriticalOnly && !r.IsCritical() {
		return false
	}
	if f.WithIssues && len(r.IncompleteFields) == 0 {
		return false
	}
	if needle == "" {
		return true
	}
	for _, hay := range []string{
		r.ReferenceNumber,
		r.FunctionDescription.Name,
		r.ServiceProvider.Name,
		string(r.Category),
	} {
		if strings.Contains(fold(hay), needle) {
			return true
		}
	}
	return false
}

// fold strips combining marks and case-folds s.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
