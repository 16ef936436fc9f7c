package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

type pdfRenderer struct{}

// Render writes a title page with the register overview followed by one
// section per record.
func (r *pdfRenderer) Render(records []schema.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Outsourcing Register", true)
	pdf.SetAutoPageBreak(true, 15)
	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	views := buildViews(records)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Outsourcing Register")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 6, fmt.Sprintf("Arrangements: %d", len(views)))
	pdf.Ln(10)

	widths := []float64{25, 55, 50, 35, 25}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range []string{"Reference", "Function", "Provider", "Category", "Status"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, v := range views {
		for i, s := range []string{v.Reference, v.Function, v.Provider, v.Category, v.Status} {
			pdf.CellFormat(widths[i], 6, tr(truncate(s, int(widths[i]/2))), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, v := range views {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(0, 8, tr(strings.TrimSpace(v.Reference+"  "+v.Function)), "", "L", false)
		pdf.Ln(2)
		for _, s := range v.Sections {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 7, tr(s.Title), "B", "L", false)
			for _, row := range s.Rows {
				pdf.SetFont("Arial", "B", 9)
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s (%s)", row.Label, row.Citation)), "", "L", false)
				pdf.SetFont("Arial", "", 9)
				pdf.MultiCell(0, 5, tr(dash(row.Value)), "", "L", false)
			}
			pdf.Ln(3)
		}
		if len(v.SubContractors) > 0 {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 7, "Sub-contractors (55.g)", "B", "L", false)
			pdf.SetFont("Arial", "", 9)
			for i, sc := range v.SubContractors {
				line := fmt.Sprintf("%d. %s, %s; registered %s; performed %s; data in %s",
					i+1, dash(sc.Name), dash(sc.ActivityDescription), dash(sc.RegistrationCountry),
					dash(sc.PerformanceCountry), dash(sc.DataStorageLocation))
				pdf.MultiCell(0, 5, tr(line), "", "L", false)
			}
			pdf.Ln(3)
		}
		if len(v.Incomplete) > 0 || len(v.Pending) > 0 {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 7, "Open items", "B", "L", false)
			pdf.SetFont("Arial", "", 9)
			for _, p := range v.Incomplete {
				pdf.MultiCell(0, 5, tr("Incomplete: "+fieldmap.LabelFor(p)), "", "L", false)
			}
			for _, p := range v.Pending {
				pdf.MultiCell(0, 5, tr("Pending: "+fieldmap.LabelFor(p)), "", "L", false)
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most n runes for fixed-width table cells.
func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n <= 1 {
		return string(rs[:n])
	}
	return string(rs[:n-1]) + "…"
}
