package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

type markdownRenderer struct{}

var mdFuncs = template.FuncMap{
	"cell": func(s string) string {
		s = strings.ReplaceAll(s, "|", `\|`)
		return strings.ReplaceAll(s, "\n", " ")
	},
	"inc":    func(i int) int { return i + 1 },
	"label":  fieldmap.LabelFor,
	"orDash": dash,
}

var mdTemplate = template.Must(template.New("register").Funcs(mdFuncs).Parse(`# Outsourcing Register

**Arrangements:** {{ len . }}

| Reference | Function | Provider | Category | Critical | Status | Open | Pending |
|---|---|---|---|---|---|---|---|
{{ range . }}| {{ cell .Reference }} | {{ cell .Function }} | {{ cell .Provider }} | {{ cell .Category }} | {{ orDash .Critical }} | {{ orDash .Status }} | {{ len .Incomplete }} | {{ len .Pending }} |
{{ end }}{{ range . }}
---

## {{ orDash .Reference }} · {{ orDash .Function }}
{{ range .Sections }}
### {{ .Title }}
{{ range .Rows }}
- **{{ .Label }}** ({{ .Citation }}): {{ orDash .Value }}{{ end }}
{{ end }}{{ if .SubContractors }}
### Sub-contractors
{{ range $i, $sc := .SubContractors }}
{{ inc $i }}. {{ orDash $sc.Name }} · {{ orDash $sc.ActivityDescription }} · registered {{ orDash $sc.RegistrationCountry }} · performed {{ orDash $sc.PerformanceCountry }} · data in {{ orDash $sc.DataStorageLocation }}{{ end }}
{{ end }}{{ if .Incomplete }}
### Incomplete
{{ range .Incomplete }}
- {{ label . }}{{ end }}
{{ end }}{{ if .Pending }}
### Pending
{{ range .Pending }}
- {{ label . }}{{ end }}
{{ end }}{{ end }}`))

func (r *markdownRenderer) Render(records []schema.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, buildViews(records)); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
