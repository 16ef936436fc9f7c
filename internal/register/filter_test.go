package register

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/outreg/internal/schema"
	"github.com/dshills/outreg/internal/testutil"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	facilities := testutil.CompleteRecord()

	cloud := testutil.CompleteCloudRecord()
	cloud.ID = "cloud"
	cloud.ReferenceNumber = "2024-002"
	cloud.FunctionDescription.Name = "Core banking hosting"
	cloud.ServiceProvider.Name = "Société Générale Cloud"
	cloud.IncompleteFields = []string{"cloudService.cloudOfficer"}

	critical := testutil.CompleteCriticalRecord()
	critical.ID = "critical"
	critical.ReferenceNumber = "2024-003"
	critical.Status = schema.StatusNotYetActive

	return newTestService(t, &memStore{records: []schema.Record{facilities, cloud, critical}})
}

func refs(records []schema.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ReferenceNumber)
	}
	return out
}

func TestList_Filters(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"2024-001", "2024-002", "2024-003"}},
		{"status", Filter{Status: schema.StatusNotYetActive}, []string{"2024-003"}},
		{"category", Filter{Category: schema.CategoryCloud}, []string{"2024-002"}},
		{"critical only", Filter{CriticalOnly: true}, []string{"2024-003"}},
		{"with issues", Filter{WithIssues: true}, []string{"2024-002"}},
		{"search reference", Filter{Search: "2024-003"}, []string{"2024-003"}},
		{"search ignores accents and case", Filter{Search: "SOCIETE gen"}, []string{"2024-002"}},
		{"search category", Filter{Search: "facilities"}, []string{"2024-001", "2024-003"}},
		{"search no match", Filter{Search: "nothing like this"}, []string{}},
		{"combined", Filter{Category: schema.CategoryFacilitiesManagement, CriticalOnly: true}, []string{"2024-003"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, refs(got))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, fold("Müller Straße"), fold("MULLER STRASSE"))
	assert.Equal(t, "societe", fold("Société"))
}
