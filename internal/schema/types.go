package schema

// Record is one outsourcing arrangement in the register. The JSON form is both
// the draft-file format and the element type of the stored collection.
type Record struct {
	ID                        string              `json:"id"`
	ReferenceNumber           string              `json:"referenceNumber"`
	Status                    Status              `json:"status,omitempty"`
	Dates                     Dates               `json:"dates"`
	FunctionDescription       FunctionDescription `json:"functionDescription"`
	Category                  Category            `json:"category,omitempty"`
	ServiceProvider           ServiceProvider     `json:"serviceProvider"`
	Location                  Location            `json:"location"`
	Criticality               Criticality         `json:"criticality"`
	CriticalityAssessmentDate string              `json:"criticalityAssessmentDate,omitempty"`

	// CloudService is present iff Category == CategoryCloud.
	CloudService *CloudService `json:"cloudService,omitempty"`
	// CriticalFields is present iff Criticality.IsCritical is true.
	CriticalFields *CriticalFields `json:"criticalFields,omitempty"`

	IncompleteFields []string `json:"incompleteFields,omitempty"`
	PendingFields    []string `json:"pendingFields,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Dates groups the contract dates and notice periods (54.b).
type Dates struct {
	StartDate                   string `json:"startDate,omitempty"`
	NextRenewalDate             string `json:"nextRenewalDate,omitempty"`
	EndDate                     string `json:"endDate,omitempty"`
	ServiceProviderNoticePeriod string `json:"serviceProviderNoticePeriod"`
	EntityNoticePeriod          string `json:"entityNoticePeriod"`
}

// FunctionDescription describes the outsourced function (54.c).
// The two booleans are nil until the user answers them.
type FunctionDescription struct {
	Name                    string `json:"name"`
	Description             string `json:"description"`
	DataDescription         string `json:"dataDescription"`
	PersonalDataInvolved    *bool  `json:"personalDataInvolved,omitempty"`
	PersonalDataTransferred *bool  `json:"personalDataTransferred,omitempty"`
}

// ServiceProvider identifies the provider (54.e).
type ServiceProvider struct {
	Name                        string `json:"name"`
	CorporateRegistrationNumber string `json:"corporateRegistrationNumber"`
	LegalEntityIdentifier       string `json:"legalEntityIdentifier"`
	RegisteredAddress           string `json:"registeredAddress"`
	ContactDetails              string `json:"contactDetails"`
	ParentCompany               string `json:"parentCompany"`
}

// Location lists where the service is performed and data is held (54.f).
type Location struct {
	ServicePerformanceCountries []string `json:"servicePerformanceCountries"`
	DataLocationCountry         string   `json:"dataLocationCountry"`
	DataStorageLocation         string   `json:"dataStorageLocation"`
}

// Criticality records the critical-or-important assessment (54.g).
type Criticality struct {
	IsCritical *bool  `json:"isCritical,omitempty"`
	Reasons    string `json:"reasons"`
}

// CloudService holds the cloud-only fields (54.h).
type CloudService struct {
	ServiceModel     ServiceModel    `json:"serviceModel,omitempty"`
	DeploymentModel  DeploymentModel `json:"deploymentModel,omitempty"`
	DataNature       string          `json:"dataNature"`
	StorageLocations []string        `json:"storageLocations"`
	CloudOfficer     string          `json:"cloudOfficer"`
	ResourceOperator string          `json:"resourceOperator"`
}

// CriticalFields holds the additional information for critical or important
// functions (55).
type CriticalFields struct {
	EntitiesUsing              []string         `json:"entitiesUsing"`
	GroupEntities              []string         `json:"groupEntities"`
	IsPartOfGroup              *bool            `json:"isPartOfGroup,omitempty"`
	IsOwnedByGroup             *bool            `json:"isOwnedByGroup,omitempty"`
	RiskAssessment             RiskAssessment   `json:"riskAssessment"`
	Approval                   Approval         `json:"approval"`
	GoverningLaw               string           `json:"governingLaw"`
	Audit                      Audit            `json:"audit"`
	SubOutsourcing             *SubOutsourcing  `json:"subOutsourcing,omitempty"`
	Substitutability           Substitutability `json:"substitutability"`
	AlternativeProviders       []string         `json:"alternativeProviders"`
	IsTimeCritical             *bool            `json:"isTimeCritical,omitempty"`
	EstimatedAnnualCost        *float64         `json:"estimatedAnnualCost,omitempty"`
	CostComments               string           `json:"costComments"`
	RegulatoryNotificationDate string           `json:"regulatoryNotificationDate,omitempty"`
}

// RiskAssessment is the latest risk assessment (55.c).
type RiskAssessment struct {
	RiskLevel      RiskLevel `json:"riskLevel,omitempty"`
	AssessmentDate string    `json:"assessmentDate,omitempty"`
	Summary        string    `json:"summary"`
}

// Approval names who approved the arrangement (55.d).
type Approval struct {
	ApproverName string `json:"approverName"`
	ApproverRole string `json:"approverRole"`
}

// Audit holds the last and next audit dates (55.f).
type Audit struct {
	LastAuditDate string `json:"lastAuditDate,omitempty"`
	NextAuditDate string `json:"nextAuditDate,omitempty"`
}

// SubOutsourcing is the sub-outsourcing block (55.g). SubContractors is only
// meaningful when HasSubOutsourcing is true.
type SubOutsourcing struct {
	HasSubOutsourcing *bool           `json:"hasSubOutsourcing,omitempty"`
	SubContractors    []SubContractor `json:"subContractors"`
}

// SubContractor is one entry of the sub-outsourcing chain.
type SubContractor struct {
	ActivityDescription string `json:"activityDescription"`
	Name                string `json:"name"`
	RegistrationCountry string `json:"registrationCountry"`
	PerformanceCountry  string `json:"performanceCountry"`
	DataStorageLocation string `json:"dataStorageLocation"`
}

// Substitutability is the substitutability assessment (55.h).
type Substitutability struct {
	Outcome                 SubstitutabilityOutcome `json:"outcome,omitempty"`
	ReintegrationAssessment string                  `json:"reintegrationAssessment"`
	DiscontinuationImpact   string                  `json:"discontinuationImpact"`
}

// Bool returns a pointer to v, for building records in code.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// IsCritical reports whether the record is flagged critical or important.
// An unanswered flag counts as not critical.
func (r *Record) IsCritical() bool {
	return r.Criticality.IsCritical != nil && *r.Criticality.IsCritical
}

// IsCloud reports whether the record's category gates the cloud sub-record.
func (r *Record) IsCloud() bool {
	return r.Category == CategoryCloud
}

// HasSubOutsourcing reports whether the sub-outsourcing toggle is set to true.
func (c *CriticalFields) HasSubOutsourcing() bool {
	return c != nil && c.SubOutsourcing != nil &&
		c.SubOutsourcing.HasSubOutsourcing != nil && *c.SubOutsourcing.HasSubOutsourcing
}
