package render

import (
	"fmt"

	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

// Renderer formats a snapshot of the register for export.
type Renderer interface {
	Render(records []schema.Record) ([]byte, error)
}

// Formats lists the supported export formats.
var Formats = []string{"json", "md", "xlsx", "pdf"}

// NewRenderer returns a Renderer for the given format string.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "xlsx":
		return &excelRenderer{}, nil
	case "pdf":
		return &pdfRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, md, xlsx, pdf", format)
	}
}

type row struct {
	Label    string
	Citation string
	Value    string
}

type section struct {
	Title string
	Rows  []row
}

type recordView struct {
	Reference      string
	Function       string
	Provider       string
	Category       string
	Critical       string
	Status         string
	Incomplete     []string
	Pending        []string
	Sections       []section
	SubContractors []schema.SubContractor
}

var groupTitles = map[schema.Group]string{
	schema.GroupMandatory: "General information (54)",
	schema.GroupCloud:     "Cloud services (54.h)",
	schema.GroupCritical:  "Critical or important functions (55)",
}

// applies reports whether the fields of g belong in r's snapshot.
func applies(r *schema.Record, g schema.Group) bool {
	switch g {
	case schema.GroupCloud:
		return r.CloudService != nil
	case schema.GroupCritical:
		return r.CriticalFields != nil
	}
	return true
}

func buildView(r *schema.Record) recordView {
	v := recordView{
		Reference:  r.ReferenceNumber,
		Function:   r.FunctionDescription.Name,
		Provider:   r.ServiceProvider.Name,
		Category:   string(r.Category),
		Critical:   fieldmap.Format(r.Criticality.IsCritical),
		Status:     string(r.Status),
		Incomplete: r.IncompleteFields,
		Pending:    r.PendingFields,
	}
	for _, g := range []schema.Group{schema.GroupMandatory, schema.GroupCloud, schema.GroupCritical} {
		if !applies(r, g) {
			continue
		}
		s := section{Title: groupTitles[g]}
		for _, f := range fieldmap.ByGroup(g) {
			if f.Path == fieldmap.SubContractorsPath {
				continue
			}
			s.Rows = append(s.Rows, row{Label: f.Label, Citation: f.Citation, Value: fieldmap.Format(f.Value(r))})
		}
		v.Sections = append(v.Sections, s)
	}
	if r.CriticalFields.HasSubOutsourcing() {
		v.SubContractors = r.CriticalFields.SubOutsourcing.SubContractors
	}
	return v
}

func buildViews(records []schema.Record) []recordView {
	out := make([]recordView, len(records))
	for i := range records {
		out[i] = buildView(&records[i])
	}
	return out
}
