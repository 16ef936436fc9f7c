package draft

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/outreg/internal/schema"
	"github.com/dshills/outreg/internal/testutil"
)

func writeTempDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DecodesRecord(t *testing.T) {
	path := writeTempDraft(t, `{"referenceNumber": "2024-002", "category": "Legal"}`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Record.ReferenceNumber != "2024-002" {
		t.Errorf("ReferenceNumber = %q, want 2024-002", f.Record.ReferenceNumber)
	}
	if f.Record.Category != schema.CategoryLegal {
		t.Errorf("Category = %q, want Legal", f.Record.Category)
	}
}

func TestLoad_HashStable(t *testing.T) {
	path := writeTempDraft(t, `{}`)

	f1, err := Load(path)
	if err != nil {
		t.Fatalf("Load (first): %v", err)
	}
	f2, err := Load(path)
	if err != nil {
		t.Fatalf("Load (second): %v", err)
	}

	if f1.Hash != f2.Hash {
		t.Errorf("hash not stable: %q vs %q", f1.Hash, f2.Hash)
	}
	if !strings.HasPrefix(f1.Hash, "sha256:") {
		t.Errorf("hash missing sha256 prefix: %q", f1.Hash)
	}
}

func TestLoad_InvalidDraft(t *testing.T) {
	path := writeTempDraft(t, `{"status": "Unknown"}`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid status, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/draft.json")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	rec := testutil.CompleteCriticalRecord()

	if err := Write(path, &rec); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := f.Record.CriticalFields.SubOutsourcing.SubContractors[0].Name; got != "Host SE" {
		t.Errorf("sub-contractor name = %q, want Host SE", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the draft file, found %d entries", len(entries))
	}
}

func TestLoadCollection(t *testing.T) {
	path := writeTempDraft(t, `[{"referenceNumber": "2024-001"}, {"referenceNumber": "2024-002", "category": "Cloud"}]`)
	records, err := LoadCollection(path)
	if err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if len(records) != 2 || records[1].Category != schema.CategoryCloud {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestLoadCollection_ReportsBadElement(t *testing.T) {
	path := writeTempDraft(t, `[{"referenceNumber": "2024-001"}, {"status": "Archived"}]`)
	_, err := LoadCollection(path)
	if err == nil || !strings.Contains(err.Error(), "record 1") {
		t.Errorf("want error naming record 1, got %v", err)
	}
}
