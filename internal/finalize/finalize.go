// Package finalize assembles the record that is persisted from an edited draft.
package finalize

import (
	"github.com/dshills/outreg/internal/fieldmap"
	"github.com/dshills/outreg/internal/schema"
)

// Finalize builds the persisted form of d. The result shares no slices or
// pointers with d.
//
// Nil lists become empty lists. Enums, dates, booleans and the annual cost are
// never defaulted: an unanswered value stays absent. Booleans in particular
// are not set to false, unlike the list defaults, because a defaulted false
// would pass the next completeness check as an answer nobody gave.
//
// cloudService is attached only for the Cloud category and criticalFields
// only when the record is critical; otherwise they are omitted, whatever d carries. subOutsourcing is
// attached only when its toggle is true. incompleteFields and pendingFields
// are set only when non-empty. forceDraft overrides the status with Draft.
func Finalize(d schema.Record, resolvedIncomplete, pending []string, forceDraft bool) schema.Record {
	out := schema.Record{
		ID:              d.ID,
		ReferenceNumber: d.ReferenceNumber,
		Status:          d.Status,
		Dates:           d.Dates,
		FunctionDescription: schema.FunctionDescription{
			Name:                    d.FunctionDescription.Name,
			Description:             d.FunctionDescription.Description,
			DataDescription:         d.FunctionDescription.DataDescription,
			PersonalDataInvolved:    copyBool(d.FunctionDescription.PersonalDataInvolved),
			PersonalDataTransferred: copyBool(d.FunctionDescription.PersonalDataTransferred),
		},
		Category:        d.Category,
		ServiceProvider: d.ServiceProvider,
		Location: schema.Location{
			ServicePerformanceCountries: copyStrings(d.Location.ServicePerformanceCountries),
			DataLocationCountry:         d.Location.DataLocationCountry,
			DataStorageLocation:         d.Location.DataStorageLocation,
		},
		Criticality: schema.Criticality{
			IsCritical: copyBool(d.Criticality.IsCritical),
			Reasons:    d.Criticality.Reasons,
		},
		CriticalityAssessmentDate: d.CriticalityAssessmentDate,
		CreatedAt:                 d.CreatedAt,
		UpdatedAt:                 d.UpdatedAt,
	}

	if d.IsCloud() {
		out.CloudService = cloudService(d.CloudService)
	}
	if d.IsCritical() {
		out.CriticalFields = criticalFields(d.CriticalFields)
	}

	if len(resolvedIncomplete) > 0 {
		out.IncompleteFields = copyStrings(resolvedIncomplete)
	}
	if len(pending) > 0 {
		out.PendingFields = copyStrings(pending)
	}

	if forceDraft {
		out.Status = schema.StatusDraft
	}
	return out
}

func cloudService(cs *schema.CloudService) *schema.CloudService {
	if cs == nil {
		cs = &schema.CloudService{}
	}
	c := *cs
	c.StorageLocations = copyStrings(cs.StorageLocations)
	return &c
}

func criticalFields(cf *schema.CriticalFields) *schema.CriticalFields {
	if cf == nil {
		cf = &schema.CriticalFields{}
	}
	c := *cf
	c.EntitiesUsing = copyStrings(cf.EntitiesUsing)
	c.GroupEntities = copyStrings(cf.GroupEntities)
	c.AlternativeProviders = copyStrings(cf.AlternativeProviders)
	c.IsPartOfGroup = copyBool(cf.IsPartOfGroup)
	c.IsOwnedByGroup = copyBool(cf.IsOwnedByGroup)
	c.IsTimeCritical = copyBool(cf.IsTimeCritical)
	if cf.EstimatedAnnualCost != nil {
		v := *cf.EstimatedAnnualCost
		c.EstimatedAnnualCost = &v
	}
	c.SubOutsourcing = nil
	if cf.HasSubOutsourcing() {
		subs := make([]schema.SubContractor, len(cf.SubOutsourcing.SubContractors))
		copy(subs, cf.SubOutsourcing.SubContractors)
		c.SubOutsourcing = &schema.SubOutsourcing{
			HasSubOutsourcing: schema.Bool(true),
			SubContractors:    subs,
		}
	}
	return &c
}

// copyStrings copies s, turning nil into an empty list.
func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// Reopen prepares a stored record for editing. Finalize drops a
// subOutsourcing block whose toggle is false, so a critical record stored
// without one had the toggle answered "No" unless the toggle path was left
// pending or acknowledged incomplete. Reopen restores that answer. Any other
// record is returned unchanged. r is not modified.
func Reopen(r schema.Record) schema.Record {
	if !r.IsCritical() || r.CriticalFields == nil || r.CriticalFields.SubOutsourcing != nil {
		return r
	}
	if contains(r.PendingFields, fieldmap.SubOutsourcingTogglePath) ||
		contains(r.IncompleteFields, fieldmap.SubOutsourcingTogglePath) {
		return r
	}
	cf := *r.CriticalFields
	cf.SubOutsourcing = &schema.SubOutsourcing{
		HasSubOutsourcing: schema.Bool(false),
		SubContractors:    []schema.SubContractor{},
	}
	r.CriticalFields = &cf
	return r
}

func contains(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}
