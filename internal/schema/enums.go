package schema

// Status is the lifecycle status of an arrangement. The empty value means unset.
type Status string

const (
	StatusDraft        Status = "Draft"
	StatusActive       Status = "Active"
	StatusNotYetActive Status = "NotYetActive"
	StatusTerminated   Status = "Terminated"
)

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusNotYetActive, StatusTerminated:
		return true
	}
	return false
}

// Category classifies the outsourced function (54.d). Only CategoryCloud
// gates a sub-record.
type Category string

const (
	CategoryCloud                Category = "Cloud"
	CategoryITServices           Category = "IT Services"
	CategoryFacilitiesManagement Category = "Facilities Management"
	CategoryPaymentServices      Category = "Payment Services"
	CategoryRiskManagement       Category = "Risk Management"
	CategoryInternalAudit        Category = "Internal Audit"
	CategoryCompliance           Category = "Compliance"
	CategoryHumanResources       Category = "Human Resources"
	CategoryLegal                Category = "Legal"
	CategoryOther                Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCloud,
	CategoryITServices,
	CategoryFacilitiesManagement,
	CategoryPaymentServices,
	CategoryRiskManagement,
	CategoryInternalAudit,
	CategoryCompliance,
	CategoryHumanResources,
	CategoryLegal,
	CategoryOther,
}

// IsValid reports whether c is one of the defined categories.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ServiceModel is the cloud service model.
type ServiceModel string

const (
	ServiceModelIaaS ServiceModel = "IaaS"
	ServiceModelPaaS ServiceModel = "PaaS"
	ServiceModelSaaS ServiceModel = "SaaS"
)

func (m ServiceModel) IsValid() bool {
	switch m {
	case ServiceModelIaaS, ServiceModelPaaS, ServiceModelSaaS:
		return true
	}
	return false
}

// DeploymentModel is the cloud deployment model.
type DeploymentModel string

const (
	DeploymentPublic    DeploymentModel = "Public"
	DeploymentPrivate   DeploymentModel = "Private"
	DeploymentHybrid    DeploymentModel = "Hybrid"
	DeploymentCommunity DeploymentModel = "Community"
)

func (m DeploymentModel) IsValid() bool {
	switch m {
	case DeploymentPublic, DeploymentPrivate, DeploymentHybrid, DeploymentCommunity:
		return true
	}
	return false
}

// RiskLevel is the outcome of the risk assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// SubstitutabilityOutcome grades how hard the provider is to replace.
type SubstitutabilityOutcome string

const (
	SubstitutabilityEasy       SubstitutabilityOutcome = "Easy"
	SubstitutabilityDifficult  SubstitutabilityOutcome = "Difficult"
	SubstitutabilityImpossible SubstitutabilityOutcome = "Impossible"
)

func (o SubstitutabilityOutcome) IsValid() bool {
	switch o {
	case SubstitutabilityEasy, SubstitutabilityDifficult, SubstitutabilityImpossible:
		return true
	}
	return false
}
