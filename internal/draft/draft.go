// Package draft reads and writes the working draft of a record on disk.
package draft

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/outreg/internal/schema"
	"github.com/dshills/outreg/internal/schema/validate"
)

// File holds a loaded draft with derived metadata.
type File struct {
	Path   string
	Hash   string // "sha256:<hex>"
	Raw    []byte
	Record *schema.Record
}

// Load reads a draft file, computes its hash and decodes the record.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draft file: %w", err)
	}

	rec, err := validate.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing draft %s: %w", path, err)
	}

	return &File{
		Path:   path,
		Hash:   Hash(data),
		Raw:    data,
		Record: rec,
	}, nil
}

// Write stores r as indented JSON at path. The file is replaced atomically.
func Write(path string, r *schema.Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".draft-*.json")
	if err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing draft: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// Hash returns the "sha256:<hex>" digest of data.
func Hash(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// LoadCollection reads a JSON array of records, the shape written by the json
// export. Every element is validated like a single draft.
func LoadCollection(path string) ([]schema.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	records := make([]schema.Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := validate.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, *rec)
	}
	return records, nil
}
