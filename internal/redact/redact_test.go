package redact

import (
	"strings"
	"testing"

	"github.com/dshills/outreg/internal/schema"
	"github.com/dshills/outreg/internal/testutil"
)

func TestRedact_Email(t *testing.T) {
	out := Redact("Contact: ops.team@facility.example")
	if strings.Contains(out, "facility.example") {
		t.Errorf("email not redacted: %q", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("expected [REDACTED] in output: %q", out)
	}
}

func TestRedact_Phone(t *testing.T) {
	out := Redact("Hotline +49 69 1234567")
	if strings.Contains(out, "1234567") {
		t.Errorf("phone number not redacted: %q", out)
	}
}

func TestRedact_IBAN(t *testing.T) {
	out := Redact("Pay to DE89 3704 0044 0532 0130 00")
	if strings.Contains(out, "3704") {
		t.Errorf("IBAN not redacted: %q", out)
	}
}

func TestRedact_NonContactUnchanged(t *testing.T) {
	input := "Hauptstrasse 1, 60311 Frankfurt"
	if out := Redact(input); out != input {
		t.Errorf("non-contact text was modified:\ngot:  %q\nwant: %q", out, input)
	}
}

func TestRecord_DoesNotModifyInput(t *testing.T) {
	in := testutil.CompleteCloudRecord()
	in.CloudService.CloudOfficer = "jane.doe@bank.example"
	out := Record(in)

	if strings.Contains(out.ServiceProvider.ContactDetails, "@") {
		t.Errorf("contact details not redacted: %q", out.ServiceProvider.ContactDetails)
	}
	if out.CloudService.CloudOfficer != "[REDACTED]" {
		t.Errorf("cloud officer = %q", out.CloudService.CloudOfficer)
	}
	if in.CloudService.CloudOfficer != "jane.doe@bank.example" {
		t.Errorf("input was modified: %q", in.CloudService.CloudOfficer)
	}
}

func TestRecords_Length(t *testing.T) {
	out := Records([]schema.Record{testutil.CompleteRecord(), testutil.CompleteCriticalRecord()})
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
}
