// Package testutil builds fully populated records for tests.
package testutil

import "github.com/dshills/outreg/internal/schema"

// CompleteRecord returns a record with every field required of a
// non-critical, non-cloud arrangement filled in.
func CompleteRecord() schema.Record {
	return schema.Record{
		ID:              "0190f1e2-0000-7000-8000-000000000001",
		ReferenceNumber: "2024-001",
		Status:          schema.StatusActive,
		Dates: schema.Dates{
			StartDate:                   "2024-01-01",
			NextRenewalDate:             "2025-01-01",
			EndDate:                     "2027-12-31",
			ServiceProviderNoticePeriod: "6 months",
			EntityNoticePeriod:          "3 months",
		},
		FunctionDescription: schema.FunctionDescription{
			Name:                    "Building maintenance",
			Description:             "Maintenance of the head office",
			DataDescription:         "Badge access logs",
			PersonalDataInvolved:    schema.Bool(false),
			PersonalDataTransferred: schema.Bool(false),
		},
		Category: schema.CategoryFacilitiesManagement,
		ServiceProvider: schema.ServiceProvider{
			Name:                        "Facility GmbH",
			CorporateRegistrationNumber: "HRB 12345",
			RegisteredAddress:           "Hauptstrasse 1, Frankfurt",
			ContactDetails:              "ops@facility.example, +49 69 1234567",
		},
		Location: schema.Location{
			ServicePerformanceCountries: []string{"DE"},
			DataLocationCountry:         "DE",
			DataStorageLocation:         "Frankfurt data centre",
		},
		Criticality: schema.Criticality{
			IsCritical: schema.Bool(false),
			Reasons:    "No impact on regulated services",
		},
		CriticalityAssessmentDate: "2024-01-15",
	}
}

// CompleteCloudRecord is CompleteRecord classified as Cloud with a filled
// cloud sub-record.
func CompleteCloudRecord() schema.Record {
	r := CompleteRecord()
	r.Category = schema.CategoryCloud
	r.CloudService = &schema.CloudService{
		ServiceModel:     schema.ServiceModelSaaS,
		DeploymentModel:  schema.DeploymentPublic,
		DataNature:       "Customer master data",
		StorageLocations: []string{"eu-central-1"},
		CloudOfficer:     "J. Doe",
		ResourceOperator: "Cloud Ops team",
	}
	return r
}

// CompleteCriticalRecord is CompleteRecord flagged critical with a filled
// critical sub-record and one sub-contractor.
func CompleteCriticalRecord() schema.Record {
	r := CompleteRecord()
	r.Criticality = schema.Criticality{IsCritical: schema.Bool(true), Reasons: "Supports payment processing"}
	r.CriticalFields = &schema.CriticalFields{
		EntitiesUsing:  []string{"Bank AG"},
		GroupEntities:  []string{},
		IsPartOfGroup:  schema.Bool(false),
		IsOwnedByGroup: schema.Bool(false),
		RiskAssessment: schema.RiskAssessment{
			RiskLevel:      schema.RiskMedium,
			AssessmentDate: "2024-02-01",
			Summary:        "Concentration risk mitigated by exit plan",
		},
		Approval:     schema.Approval{ApproverName: "A. Board", ApproverRole: "Management board"},
		GoverningLaw: "German law",
		Audit:        schema.Audit{LastAuditDate: "2023-11-01", NextAuditDate: "2024-11-01"},
		SubOutsourcing: &schema.SubOutsourcing{
			HasSubOutsourcing: schema.Bool(true),
			SubContractors: []schema.SubContractor{{
				ActivityDescription: "Hosting",
				Name:                "Host SE",
				RegistrationCountry: "DE",
				PerformanceCountry:  "DE",
				DataStorageLocation: "Frankfurt",
			}},
		},
		Substitutability: schema.Substitutability{
			Outcome:                 schema.SubstitutabilityDifficult,
			ReintegrationAssessment: "Not feasible within 12 months",
			DiscontinuationImpact:   "Payments halted",
		},
		AlternativeProviders:       []string{"Other Payments Ltd"},
		IsTimeCritical:             schema.Bool(true),
		EstimatedAnnualCost:        schema.Float(0),
		CostComments:               "Covered by group agreement",
		RegulatoryNotificationDate: "2024-02-10",
	}
	return r
}
