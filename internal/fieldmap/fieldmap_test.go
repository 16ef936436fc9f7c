package fieldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/outreg/internal/schema"
)

func TestAll_PathsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range All() {
		require.False(t, seen[f.Path], "duplicate path %q", f.Path)
		seen[f.Path] = true
		assert.NotEmpty(t, f.Label, f.Path)
		assert.NotEmpty(t, f.Citation, f.Path)
		assert.NotNil(t, f.Value, f.Path)
	}
}

func TestAll_GroupOrder(t *testing.T) {
	fields := All()
	rank := map[schema.Group]int{schema.GroupMandatory: 0, schema.GroupCloud: 1, schema.GroupCritical: 2}
	for i := 1; i < len(fields); i++ {
		assert.LessOrEqual(t, rank[fields[i-1].Group], rank[fields[i].Group],
			"%s appears after %s", fields[i].Path, fields[i-1].Path)
	}
}

func TestKnown_IndexedSubContractorPath(t *testing.T) {
	assert.True(t, Known("criticalFields.subOutsourcing.subContractors.0.name"))
	assert.True(t, Known("criticalFields.subOutsourcing.subContractors.17.dataStorageLocation"))
	assert.False(t, Known("criticalFields.subOutsourcing.subContractors.0.colour"))
	assert.False(t, Known("nonsense"))
	assert.True(t, Known("cloudService.cloudOfficer"))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Reference number (54.a)", LabelFor("referenceNumber"))
	assert.Equal(t, "Sub-contractor 2: name (55.g)",
		LabelFor("criticalFields.subOutsourcing.subContractors.1.name"))
	assert.Equal(t, "no.such.path", LabelFor("no.such.path"))
}

func TestValue_NilSubRecordsAreAbsent(t *testing.T) {
	r := &schema.Record{Category: schema.CategoryCloud}
	for _, f := range All() {
		if f.Group == schema.GroupMandatory {
			continue
		}
		assert.False(t, Present(f.Value(r)), "%s should be absent on a nil sub-record", f.Path)
	}
}

func TestPresent(t *testing.T) {
	assert.False(t, Present("   "))
	assert.True(t, Present("x"))
	assert.False(t, Present((*bool)(nil)))
	assert.True(t, Present(schema.Bool(false)))
	assert.True(t, Present(schema.Float(0)))
	assert.False(t, Present([]string{}))
	assert.True(t, Present([]schema.SubContractor{{}}))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Yes", Format(schema.Bool(true)))
	assert.Equal(t, "No", Format(schema.Bool(false)))
	assert.Equal(t, "", Format((*bool)(nil)))
	assert.Equal(t, "DE; FR", Format([]string{"DE", "FR"}))
	assert.Equal(t, "1250.5", Format(schema.Float(1250.5)))
	assert.Equal(t, "A; B", Format([]schema.SubContractor{{Name: "A"}, {Name: "B"}}))
}
