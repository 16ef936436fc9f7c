package fieldmap

import "github.com/dshills/outreg/internal/schema"

func critical() []Field {
	g := schema.GroupCritical
	return []Field{
		{Path: "criticalFields.entitiesUsing", Label: "Entities in scope of the outsourcing", Citation: "55.a", Type: TypeList, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).EntitiesUsing }},
		{Path: "criticalFields.groupEntities", Label: "Group entities using the service", Citation: "55.a", Type: TypeList, Group: g, Optional: true,
			Value: func(r *schema.Record) any { return criticalOf(r).GroupEntities }},
		{Path: "criticalFields.isPartOfGroup", Label: "Provider is part of the group", Citation: "55.b", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).IsPartOfGroup }},
		{Path: "criticalFields.isOwnedByGroup", Label: "Provider is owned by group entities", Citation: "55.b", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).IsOwnedByGroup }},
		{Path: "criticalFields.riskAssessment.riskLevel", Label: "Risk level", Citation: "55.c", Type: TypeEnum, Group: g,
			Value: func(r *schema.Record) any { return string(criticalOf(r).RiskAssessment.RiskLevel) }},
		{Path: "criticalFields.riskAssessment.assessmentDate", Label: "Date of the latest risk assessment", Citation: "55.c", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).RiskAssessment.AssessmentDate }},
		{Path: "criticalFields.riskAssessment.summary", Label: "Summary of the risk assessment", Citation: "55.c", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).RiskAssessment.Summary }},
		{Path: "criticalFields.approval.approverName", Label: "Approved by (name)", Citation: "55.d", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).Approval.ApproverName }},
		{Path: "criticalFields.approval.approverRole", Label: "Approved by (body or role)", Citation: "55.d", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).Approval.ApproverRole }},
		{Path: "criticalFields.governingLaw", Label: "Governing law of the agreement", Citation: "55.e", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).GoverningLaw }},
		{Path: "criticalFields.audit.lastAuditDate", Label: "Date of the last audit", Citation: "55.f", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).Audit.LastAuditDate }},
		{Path: "criticalFields.audit.nextAuditDate", Label: "Date of the next scheduled audit", Citation: "55.f", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).Audit.NextAuditDate }},
		{Path: SubOutsourcingTogglePath, Label: "Sub-outsourcing of the function", Citation: "55.g", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return subOutsourcingOf(r).HasSubOutsourcing }},
		{Path: SubContractorsPath, Label: "Sub-contractors", Citation: "55.g", Type: TypeList, Group: g,
			Value: func(r *schema.Record) any { return subOutsourcingOf(r).SubContractors }},
		{Path: "criticalFields.substitutability.outcome", Label: "Outcome of the substitutability assessment", Citation: "55.h", Type: TypeEnum, Group: g,
			Value: func(r *schema.Record) any { return string(criticalOf(r).Substitutability.Outcome) }},
		{Path: "criticalFields.substitutability.reintegrationAssessment", Label: "Possibility of reintegration", Citation: "55.h", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).Substitutability.ReintegrationAssessment }},
		{Path: "criticalFields.substitutability.discontinuationImpact", Label: "Impact of discontinuing the function", Citation: "55.h", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).Substitutability.DiscontinuationImpact }},
		{Path: "criticalFields.alternativeProviders", Label: "Alternative service providers", Citation: "55.i", Type: TypeList, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).AlternativeProviders }},
		{Path: "criticalFields.isTimeCritical", Label: "Supports time-critical business operations", Citation: "55.j", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).IsTimeCritical }},
		{Path: "criticalFields.estimatedAnnualCost", Label: "Estimated annual budget cost", Citation: "55.k", Type: TypeNumber, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).EstimatedAnnualCost }},
		{Path: "criticalFields.costComments", Label: "Comments on the estimated cost", Citation: "55.k", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).CostComments }},
		{Path: "criticalFields.regulatoryNotificationDate", Label: "Date of notification to the competent authority", Citation: "55", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return criticalOf(r).RegulatoryNotificationDate }},
	}
}

// SubContractorFields are the per-element fields of a sub-contractor, in check order.
var SubContractorFields = []ElementField{
	{Name: "activityDescription", Label: "activity sub-outsourced", Citation: "55.g",
		Value: func(sc schema.SubContractor) string { return sc.ActivityDescription }},
	{Name: "name", Label: "name", Citation: "55.g",
		Value: func(sc schema.SubContractor) string { return sc.Name }},
	{Name: "registrationCountry", Label: "country of registration", Citation: "55.g",
		Value: func(sc schema.SubContractor) string { return sc.RegistrationCountry }},
	{Name: "performanceCountry", Label: "country where the service is performed", Citation: "55.g",
		Value: func(sc schema.SubContractor) string { return sc.PerformanceCountry }},
	{Name: "dataStorageLocation", Label: "data storage location", Citation: "55.g",
		Value: func(sc schema.SubContractor) string { return sc.DataStorageLocation }},
}
