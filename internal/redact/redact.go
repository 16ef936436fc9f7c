// Package redact masks personal contact data in records before they leave the
// register in an export.
package redact

import (
	"regexp"

	"github.com/dshills/outreg/internal/schema"
)

const redacted = "[REDACTED]"

// patterns holds contact-detail regexes in priority order.
var patterns = []*regexp.Regexp{
	// e-mail addresses
	regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
	// international phone numbers: +CC followed by at least 6 digits, spaces or dashes allowed
	regexp.MustCompile(`\+\d{1,3}[\s\-]?(?:\(?\d+\)?[\s\-]?){2,}\d`),
	// IBANs
	regexp.MustCompile(`\b[A-Z]{2}\d{2}(?:\s?[A-Z0-9]{4}){3,7}(?:\s?[A-Z0-9]{1,4})?\b`),
}

// Redact replaces contact details in input with [REDACTED].
func Redact(input string) string {
	for _, re := range patterns {
		input = re.ReplaceAllString(input, redacted)
	}
	return input
}

// Record returns a copy of r with the free-text contact fields redacted:
// provider contact details, the cloud officer and resource operator, and the
// approver name. r is not modified.
func Record(r schema.Record) schema.Record {
	r.ServiceProvider.ContactDetails = Redact(r.ServiceProvider.ContactDetails)
	if r.CloudService != nil {
		cs := *r.CloudService
		cs.CloudOfficer = Redact(cs.CloudOfficer)
		cs.ResourceOperator = Redact(cs.ResourceOperator)
		r.CloudService = &cs
	}
	if r.CriticalFields != nil {
		cf := *r.CriticalFields
		cf.Approval.ApproverName = Redact(cf.Approval.ApproverName)
		r.CriticalFields = &cf
	}
	return r
}

// Records applies Record to every element.
func Records(records []schema.Record) []schema.Record {
	out := make([]schema.Record, len(records))
	for i, r := range records {
		out[i] = Record(r)
	}
	return out
}
