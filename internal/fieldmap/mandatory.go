package fieldmap

import "github.com/dshills/outreg/internal/schema"

func mandatory() []Field {
	g := schema.GroupMandatory
	return []Field{
		{Path: "referenceNumber", Label: "Reference number", Citation: "54.a", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.ReferenceNumber }},
		{Path: "status", Label: "Status of the arrangement", Citation: "54", Type: TypeEnum, Group: g,
			Value: func(r *schema.Record) any { return string(r.Status) }},
		{Path: "dates.startDate", Label: "Start date", Citation: "54.b", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return r.Dates.StartDate }},
		{Path: "dates.nextRenewalDate", Label: "Next renewal date", Citation: "54.b", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return r.Dates.NextRenewalDate }},
		{Path: "dates.endDate", Label: "End date", Citation: "54.b", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return r.Dates.EndDate }},
		{Path: "dates.serviceProviderNoticePeriod", Label: "Notice period for the service provider", Citation: "54.b", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.Dates.ServiceProviderNoticePeriod }},
		{Path: "dates.entityNoticePeriod", Label: "Notice period for the institution", Citation: "54.b", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.Dates.EntityNoticePeriod }},
		{Path: "functionDescription.name", Label: "Name of the outsourced function", Citation: "54.c", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.FunctionDescription.Name }},
		{Path: "functionDescription.description", Label: "Description of the outsourced function", Citation: "54.c", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.FunctionDescription.Description }},
		{Path: "functionDescription.dataDescription", Label: "Description of the data outsourced", Citation: "54.c", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.FunctionDescription.DataDescription }},
		{Path: "functionDescription.personalDataInvolved", Label: "Personal data involved", Citation: "54.c", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return r.FunctionDescription.PersonalDataInvolved }},
		{Path: "functionDescription.personalDataTransferred", Label: "Personal data transferred to the provider", Citation: "54.c", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return r.FunctionDescription.PersonalDataTransferred }},
		{Path: "category", Label: "Category of the outsourced function", Citation: "54.d", Type: TypeEnum, Group: g,
			Value: func(r *schema.Record) any { return string(r.Category) }},
		{Path: "serviceProvider.name", Label: "Name of the service provider", Citation: "54.e", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.ServiceProvider.Name }},
		{Path: "serviceProvider.corporateRegistrationNumber", Label: "Corporate registration number", Citation: "54.e", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.ServiceProvider.CorporateRegistrationNumber }},
		{Path: "serviceProvider.legalEntityIdentifier", Label: "Legal entity identifier (LEI)", Citation: "54.e", Type: TypeText, Group: g, Optional: true,
			Value: func(r *schema.Record) any { return r.ServiceProvider.LegalEntityIdentifier }},
		{Path: "serviceProvider.registeredAddress", Label: "Registered address", Citation: "54.e", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.ServiceProvider.RegisteredAddress }},
		{Path: "serviceProvider.contactDetails", Label: "Contact details", Citation: "54.e", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.ServiceProvider.ContactDetails }},
		{Path: "serviceProvider.parentCompany", Label: "Parent company", Citation: "54.e", Type: TypeText, Group: g, Optional: true,
			Value: func(r *schema.Record) any { return r.ServiceProvider.ParentCompany }},
		{Path: "location.servicePerformanceCountries", Label: "Countries where the service is performed", Citation: "54.f", Type: TypeList, Group: g,
			Value: func(r *schema.Record) any { return r.Location.ServicePerformanceCountries }},
		{Path: "location.dataLocationCountry", Label: "Country where the data is stored", Citation: "54.f", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.Location.DataLocationCountry }},
		{Path: "location.dataStorageLocation", Label: "Location where the data is stored", Citation: "54.f", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.Location.DataStorageLocation }},
		{Path: "criticality.isCritical", Label: "Critical or important function", Citation: "54.g", Type: TypeBool, Group: g,
			Value: func(r *schema.Record) any { return r.Criticality.IsCritical }},
		{Path: "criticality.reasons", Label: "Reasons for the criticality assessment", Citation: "54.g", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return r.Criticality.Reasons }},
		{Path: "criticalityAssessmentDate", Label: "Date of the latest criticality assessment", Citation: "54.i", Type: TypeDate, Group: g,
			Value: func(r *schema.Record) any { return r.CriticalityAssessmentDate }},
	}
}
