package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/dshills/outreg/internal/refnum"
	"github.com/dshills/outreg/internal/schema"
)

// Parse decodes a draft record and checks its structure: enum values must be
// members of their closed sets, the reference number (when given) must have
// the "<yyyy>-<nnn>" shape, and the annual cost must be a finite, non-negative
// number. Missing values are not errors here; completeness is decided elsewhere.
func Parse(raw []byte) (*schema.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var r schema.Record
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	if err := Record(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Record validates the structure of an already decoded record.
func Record(r *schema.Record) error {
	if r.ReferenceNumber != "" && !refnum.Valid(r.ReferenceNumber) {
		return fmt.Errorf("referenceNumber: %q does not match YYYY-NNN format", r.ReferenceNumber)
	}
	if r.Status != "" && !r.Status.IsValid() {
		return fmt.Errorf("status: invalid value %q", r.Status)
	}
	if r.Category != "" && !r.Category.IsValid() {
		return fmt.Errorf("category: unknown category %q", r.Category)
	}
	if cs := r.CloudService; cs != nil {
		if cs.ServiceModel != "" && !cs.ServiceModel.IsValid() {
			return fmt.Errorf("cloudService.serviceModel: invalid value %q (must be IaaS, PaaS, or SaaS)", cs.ServiceModel)
		}
		if cs.DeploymentModel != "" && !cs.DeploymentModel.IsValid() {
			return fmt.Errorf("cloudService.deploymentModel: invalid value %q", cs.DeploymentModel)
		}
	}
	if cf := r.CriticalFields; cf != nil {
		if err := validateCritical(cf); err != nil {
			return err
		}
	}
	return nil
}

func validateCritical(cf *schema.CriticalFields) error {
	if l := cf.RiskAssessment.RiskLevel; l != "" && !l.IsValid() {
		return fmt.Errorf("criticalFields.riskAssessment.riskLevel: invalid value %q (must be Low, Medium, or High)", l)
	}
	if o := cf.Substitutability.Outcome; o != "" && !o.IsValid() {
		return fmt.Errorf("criticalFields.substitutability.outcome: invalid value %q", o)
	}
	if c := cf.EstimatedAnnualCost; c != nil {
		if math.IsNaN(*c) || math.IsInf(*c, 0) || *c < 0 {
			return fmt.Errorf("criticalFields.estimatedAnnualCost: %v must be a non-negative number", *c)
		}
	}
	return nil
}
