package validate

import (
	"strings"
	"testing"
)

const validJSON = `{
  "id": "0190f1e2-0000-7000-8000-000000000001",
  "referenceNumber": "2024-001",
  "status": "Active",
  "dates": {"startDate": "2024-01-01", "serviceProviderNoticePeriod": "", "entityNoticePeriod": ""},
  "functionDescription": {"name": "Hosting", "description": "", "dataDescription": "", "personalDataInvolved": false},
  "category": "Cloud",
  "serviceProvider": {"name": "Host SE", "corporateRegistrationNumber": "", "legalEntityIdentifier": "", "registeredAddress": "", "contactDetails": "", "parentCompany": ""},
  "location": {"servicePerformanceCountries": ["DE"], "dataLocationCountry": "DE", "dataStorageLocation": ""},
  "criticality": {"isCritical": true, "reasons": ""},
  "cloudService": {"serviceModel": "SaaS", "dataNature": "", "storageLocations": [], "cloudOfficer": "", "resourceOperator": ""},
  "criticalFields": {"riskAssessment": {"riskLevel": "High", "summary": ""}, "estimatedAnnualCost": 0},
  "pendingFields": ["dates.endDate"]
}`

func TestParse_ValidRecord(t *testing.T) {
	r, err := Parse([]byte(validJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.ReferenceNumber != "2024-001" {
		t.Errorf("referenceNumber = %q", r.ReferenceNumber)
	}
	if r.FunctionDescription.PersonalDataInvolved == nil || *r.FunctionDescription.PersonalDataInvolved {
		t.Errorf("personalDataInvolved should decode as defined false")
	}
	if r.FunctionDescription.PersonalDataTransferred != nil {
		t.Errorf("personalDataTransferred should stay undefined")
	}
	if r.CriticalFields.EstimatedAnnualCost == nil {
		t.Errorf("zero cost should decode as defined")
	}
}

func TestParse_EmptyDraft(t *testing.T) {
	if _, err := Parse([]byte(`{}`)); err != nil {
		t.Fatalf("empty draft should parse: %v", err)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not valid json}"))
	if err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`{"colour": "red"}`))
	if err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

func TestParse_InvalidCategory(t *testing.T) {
	bad := strings.Replace(validJSON, `"category": "Cloud"`, `"category": "cloud"`, 1)
	_, err := Parse([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Errorf("expected unknown category error, got %v", err)
	}
}

func TestParse_InvalidStatus(t *testing.T) {
	bad := strings.Replace(validJSON, `"status": "Active"`, `"status": "Live"`, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestParse_InvalidReferenceNumber(t *testing.T) {
	bad := strings.Replace(validJSON, `"2024-001"`, `"24-1"`, 1)
	_, err := Parse([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "YYYY-NNN") {
		t.Errorf("expected reference format error, got %v", err)
	}
}

func TestParse_InvalidRiskLevel(t *testing.T) {
	bad := strings.Replace(validJSON, `"riskLevel": "High"`, `"riskLevel": "Severe"`, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for invalid risk level")
	}
}

func TestParse_NegativeCost(t *testing.T) {
	bad := strings.Replace(validJSON, `"estimatedAnnualCost": 0`, `"estimatedAnnualCost": -5`, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for negative cost")
	}
}
