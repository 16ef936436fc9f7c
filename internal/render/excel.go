package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

const (
	registerSheet       = "Register"
	subContractorsSheet = "Sub-contractors"
)

type excelRenderer struct{}

// Render writes one row per record on the Register sheet, with a column per
// mapped field, and one row per sub-contractor on the Sub-contractors sheet.
// Fields of a group that does not apply to a record are left blank.
func (r *excelRenderer) Render(records []schema.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(subContractorsSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	fields := fieldmap.All()
	header := make([]interface{}, 0, len(fields)+2)
	for _, fd := range fields {
		header = append(header, fmt.Sprintf("%s (%s)", fd.Label, fd.Citation))
	}
	header = append(header, "Incomplete fields", "Pending fields")
	if err := writeRow(f, registerSheet, 1, header, bold); err != nil {
		return nil, err
	}

	for i := range records {
		rec := &records[i]
		row := make([]interface{}, 0, len(header))
		for _, fd := range fields {
			if !applies(rec, fd.Group) {
				row = append(row, "")
				continue
			}
			row = append(row, fieldmap.Format(fd.Value(rec)))
		}
		row = append(row, strings.Join(rec.IncompleteFields, "; "), strings.Join(rec.PendingFields, "; "))
		if err := writeRow(f, registerSheet, i+2, row, 0); err != nil {
			return nil, err
		}
	}

	scHeader := []interface{}{"Reference number", "Sub-contractor"}
	for _, ef := range fieldmap.SubContractorFields {
		scHeader = append(scHeader, fmt.Sprintf("%s (%s)", ef.Label, ef.Citation))
	}
	if err := writeRow(f, subContractorsSheet, 1, scHeader, bold); err != nil {
		return nil, err
	}
	next := 2
	for i := range records {
		rec := &records[i]
		if !rec.CriticalFields.HasSubOutsourcing() {
			continue
		}
		for j, sc := range rec.CriticalFields.SubOutsourcing.SubContractors {
			row := []interface{}{rec.ReferenceNumber, j + 1}
			for _, ef := range fieldmap.SubContractorFields {
				row = append(row, ef.Value(sc))
			}
			if err := writeRow(f, subContractorsSheet, next, row, 0); err != nil {
				return nil, err
			}
			next++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow writes values starting at column A of row. A non-zero style is
// applied across the written cells.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	if style == 0 || len(values) == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, style)
}
