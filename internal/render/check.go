package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

// ReportRenderer formats the result of a completeness check.
type ReportRenderer interface {
	Render(report *schema.CheckReport) ([]byte, error)
}

// NewReportRenderer returns a ReportRenderer for json or md.
func NewReportRenderer(format string) (ReportRenderer, error) {
	switch format {
	case "json":
		return &jsonReportRenderer{}, nil
	case "md":
		return &markdownReportRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, md", format)
	}
}

type jsonReportRenderer struct{}

func (r *jsonReportRenderer) Render(report *schema.CheckReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

type markdownReportRenderer struct{}

var checkTemplate = template.Must(template.New("check").Funcs(template.FuncMap{
	"label": fieldmap.LabelFor,
}).Parse(`# Completeness Check{{ if .ReferenceNumber }} · {{ .ReferenceNumber }}{{ end }}

**Verdict:** {{ .Summary.Verdict }}
**Missing (54):** {{ .Summary.MandatoryCount }} | **Missing (54.h):** {{ .Summary.CloudCount }} | **Missing (55):** {{ .Summary.CriticalCount }} | **Pending:** {{ .Summary.PendingCount }}
{{ if .Missing }}
## Missing fields
{{ range .Missing }}
- {{ .Label }} ` + "`{{ .Path }}`" + `{{ end }}
{{ end }}{{ if .Pending }}
## Pending fields
{{ range .Pending }}
- {{ label . }} ` + "`{{ . }}`" + `{{ end }}
{{ end }}`))

func (r *markdownReportRenderer) Render(report *schema.CheckReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := checkTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
