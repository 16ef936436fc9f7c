package finalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/outreg/internal/completeness"
	"github.com/dshills/outreg/internal/normalize"
	"github.com/dshills/outreg/internal/pending"
	"github.com/dshills/outreg/internal/schema"
	"github.com/dshills/outreg/internal/testutil"
)

func TestFinalize_CloudOnlyForCloudCategory(t *testing.T) {
	d := testutil.CompleteCloudRecord()
	out := Finalize(d, nil, nil, false)
	require.NotNil(t, out.CloudService)
	assert.Equal(t, d.CloudService.DataNature, out.CloudService.DataNature)
	assert.NotSame(t, d.CloudService, out.CloudService)

	d = normalize.SetCategory(d, schema.CategoryFacilitiesManagement)
	out = Finalize(d, nil, nil, false)
	assert.Nil(t, out.CloudService)
}

func TestFinalize_CategorySwitchOmitsCloudKey(t *testing.T) {
	d := testutil.CompleteCloudRecord()
	// category edited without the listener; the populated sub-record is still there
	d.Category = schema.CategoryFacilitiesManagement
	out := Finalize(d, nil, nil, false)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	_, has := m["cloudService"]
	assert.False(t, has, "cloudService key must be omitted: %s", data)
}

func TestFinalize_CriticalOnlyWhenCritical(t *testing.T) {
	d := testutil.CompleteCriticalRecord()
	out := Finalize(d, nil, nil, false)
	require.NotNil(t, out.CriticalFields)
	require.NotNil(t, out.CriticalFields.SubOutsourcing)
	assert.Len(t, out.CriticalFields.SubOutsourcing.SubContractors, 1)

	d.Criticality.IsCritical = schema.Bool(false)
	out = Finalize(d, nil, nil, false)
	assert.Nil(t, out.CriticalFields)

	d.Criticality.IsCritical = nil
	out = Finalize(d, nil, nil, false)
	assert.Nil(t, out.CriticalFields)
}

func TestFinalize_SubOutsourcingOmittedUnlessToggledOn(t *testing.T) {
	d := testutil.CompleteCriticalRecord()
	d.CriticalFields.SubOutsourcing.HasSubOutsourcing = schema.Bool(false)
	out := Finalize(d, nil, nil, false)
	require.NotNil(t, out.CriticalFields)
	assert.Nil(t, out.CriticalFields.SubOutsourcing)

	d.CriticalFields.SubOutsourcing = nil
	out = Finalize(d, nil, nil, false)
	assert.Nil(t, out.CriticalFields.SubOutsourcing)
}

func TestFinalize_ConditionalInvariantHolds(t *testing.T) {
	drafts := []schema.Record{
		{},
		{Category: schema.CategoryCloud},
		{Category: schema.CategoryLegal, CloudService: &schema.CloudService{}},
		{Criticality: schema.Criticality{IsCritical: schema.Bool(true)}},
		{Criticality: schema.Criticality{IsCritical: schema.Bool(false)}, CriticalFields: &schema.CriticalFields{}},
		testutil.CompleteCloudRecord(),
		testutil.CompleteCriticalRecord(),
	}
	for _, d := range drafts {
		out := Finalize(normalize.Normalize(d), nil, nil, false)
		assert.Equal(t, out.Category == schema.CategoryCloud, out.CloudService != nil)
		assert.Equal(t, out.IsCritical(), out.CriticalFields != nil)
	}
}

func TestFinalize_DefaultsListsButNotEnumsOrDates(t *testing.T) {
	out := Finalize(schema.Record{}, nil, nil, false)
	assert.Equal(t, []string{}, out.Location.ServicePerformanceCountries)
	assert.Equal(t, schema.Status(""), out.Status)
	assert.Equal(t, schema.Category(""), out.Category)
	assert.Equal(t, "", out.Dates.StartDate)
	assert.Nil(t, out.FunctionDescription.PersonalDataInvolved)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"status"`)
	assert.NotContains(t, string(data), `"startDate"`)
	assert.Contains(t, string(data), `"servicePerformanceCountries":[]`)
}

func TestFinalize_BookkeepingOmittedWhenEmpty(t *testing.T) {
	out := Finalize(testutil.CompleteRecord(), []string{}, nil, false)
	assert.Nil(t, out.IncompleteFields)
	assert.Nil(t, out.PendingFields)

	out = Finalize(testutil.CompleteRecord(), []string{"status"}, []string{"dates.endDate"}, false)
	assert.Equal(t, []string{"status"}, out.IncompleteFields)
	assert.Equal(t, []string{"dates.endDate"}, out.PendingFields)
}

func TestFinalize_ForceDraft(t *testing.T) {
	d := testutil.CompleteRecord()
	assert.Equal(t, schema.StatusActive, Finalize(d, nil, nil, false).Status)
	assert.Equal(t, schema.StatusDraft, Finalize(d, nil, nil, true).Status)
}

func TestFinalize_SaveAsDraftFoldsMissingIntoPending(t *testing.T) {
	d := testutil.CompleteRecord()
	d.Status = schema.StatusActive
	d.Dates.EndDate = ""
	d.FunctionDescription.DataDescription = ""
	d.ServiceProvider.ContactDetails = ""
	d.Location.DataLocationCountry = ""
	d.CriticalityAssessmentDate = ""

	d = normalize.Normalize(d)
	res := completeness.Evaluate(&d, d.PendingFields)
	require.Len(t, res.IncompletePaths, 5)

	set := pending.New(d.PendingFields)
	out := Finalize(d, nil, set.Merge(res.IncompletePaths), true)

	assert.Equal(t, schema.StatusDraft, out.Status)
	assert.ElementsMatch(t, res.IncompletePaths, out.PendingFields)
	assert.Empty(t, out.IncompleteFields)
	assert.True(t, completeness.Evaluate(&out, out.PendingFields).IsComplete)
}

func TestFinalize_DoesNotAliasInput(t *testing.T) {
	d := testutil.CompleteCriticalRecord()
	out := Finalize(d, nil, nil, false)
	out.Location.ServicePerformanceCountries[0] = "XX"
	out.CriticalFields.SubOutsourcing.SubContractors[0].Name = "changed"
	*out.CriticalFields.IsTimeCritical = false
	assert.Equal(t, "DE", d.Location.ServicePerformanceCountries[0])
	assert.Equal(t, "Host SE", d.CriticalFields.SubOutsourcing.SubContractors[0].Name)
	assert.True(t, *d.CriticalFields.IsTimeCritical)
}

func TestReopen_RestoresFalseSubOutsourcing(t *testing.T) {
	d := testutil.CompleteCriticalRecord()
	d.CriticalFields.SubOutsourcing.HasSubOutsourcing = schema.Bool(false)
	stored := Finalize(d, nil, nil, false)
	require.Nil(t, stored.CriticalFields.SubOutsourcing)

	out := Reopen(stored)
	require.NotNil(t, out.CriticalFields.SubOutsourcing)
	assert.Equal(t, schema.Bool(false), out.CriticalFields.SubOutsourcing.HasSubOutsourcing)
	assert.Empty(t, out.CriticalFields.SubOutsourcing.SubContractors)
	assert.Nil(t, stored.CriticalFields.SubOutsourcing, "Reopen must not modify its argument")

	n := normalize.Normalize(out)
	assert.True(t, completeness.Evaluate(&n, nil).IsComplete)
}

func TestReopen_LeavesUnansweredToggleAlone(t *testing.T) {
	const toggle = "criticalFields.subOutsourcing.hasSubOutsourcing"
	tests := []struct {
		name string
		edit func(*schema.Record)
	}{
		{"pending", func(r *schema.Record) { r.PendingFields = []string{toggle} }},
		{"acknowledged", func(r *schema.Record) { r.IncompleteFields = []string{toggle} }},
		{"not critical", func(r *schema.Record) {
			r.Criticality.IsCritical = schema.Bool(false)
			r.CriticalFields = nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.CompleteCriticalRecord()
			r.CriticalFields.SubOutsourcing = nil
			tt.edit(&r)
			out := Reopen(r)
			if out.CriticalFields != nil {
				assert.Nil(t, out.CriticalFields.SubOutsourcing)
			}
		})
	}
}

func TestReopen_KeepsPresentSubOutsourcing(t *testing.T) {
	r := testutil.CompleteCriticalRecord()
	out := Reopen(r)
	assert.Same(t, r.CriticalFields, out.CriticalFields)
}
