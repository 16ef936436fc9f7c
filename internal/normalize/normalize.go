// Package normalize keeps the conditional sub-records of a draft in a shape
// consistent with its classification fields.
package normalize

import "github.com/dshills/outreg/internal/schema"

// Normalize returns a copy of r in which the cloud sub-record exists whenever
// the category is Cloud and the critical sub-record exists whenever the record
// is flagged critical. Missing sub-records are filled with their empty shape.
// Populated sub-records are never altered and nothing is ever removed; see
// SetCategory and SetCritical for the reaction to a classification change.
func Normalize(r schema.Record) schema.Record {
	if r.IsCloud() && r.CloudService == nil {
		r.CloudService = EmptyCloudService()
	}
	if r.IsCritical() && r.CriticalFields == nil {
		r.CriticalFields = EmptyCriticalFields()
	}
	return r
}

// SetCategory applies a category change the way the form does: moving away
// from Cloud resets the cloud sub-record to its empty shape, then the record
// is normalized.
func SetCategory(r schema.Record, c schema.Category) schema.Record {
	if r.Category == schema.CategoryCloud && c != schema.CategoryCloud && r.CloudService != nil {
		r.CloudService = EmptyCloudService()
	}
	r.Category = c
	return Normalize(r)
}

// SetCritical applies a change of the critical flag: clearing it resets the
// critical sub-record to its empty shape, then the record is normalized.
func SetCritical(r schema.Record, critical bool) schema.Record {
	if !critical && r.CriticalFields != nil {
		r.CriticalFields = EmptyCriticalFields()
	}
	r.Criticality.IsCritical = schema.Bool(critical)
	return Normalize(r)
}

// EmptyCloudService is the canonical empty cloud sub-record: enums unset,
// text blank, lists empty.
func EmptyCloudService() *schema.CloudService {
	return &schema.CloudService{StorageLocations: []string{}}
}

// EmptyCriticalFields is the canonical empty critical sub-record. Booleans,
// the annual cost and the sub-outsourcing toggle stay undefined.
func EmptyCriticalFields() *schema.CriticalFields {
	return &schema.CriticalFields{
		EntitiesUsing: []string{},
		GroupEntities: []string{},
		SubOutsourcing: &schema.SubOutsourcing{
			SubContractors: []schema.SubContractor{},
		},
		AlternativeProviders: []string{},
	}
}
