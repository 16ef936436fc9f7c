package render

import (
	"encoding/json"

	"github.com/dshills/outreg/internal/schema"
)

type jsonRenderer struct{}

// Render writes the records as stored, so the output can be re-imported.
func (r *jsonRenderer) Render(records []schema.Record) ([]byte, error) {
	if records == nil {
		records = []schema.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}
