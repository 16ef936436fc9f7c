package schema

// Group is the regulatory point a field belongs to.
type Group string

const (
	GroupMandatory Group = "54"
	GroupCloud     Group = "54.h"
	GroupCritical  Group = "55"
)

// Missing is one unmet mandatory field.
type Missing struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Group Group  `json:"group"`
}

// Verdict summarises the completeness of a record.
type Verdict string

const (
	VerdictComplete   Verdict = "COMPLETE"
	VerdictDeferred   Verdict = "COMPLETE_WITH_PENDING"
	VerdictIncomplete Verdict = "INCOMPLETE"
)

// VerdictOrdinal returns the numeric ordering for a verdict.
// COMPLETE(0) < COMPLETE_WITH_PENDING(1) < INCOMPLETE(2).
// Returns -1 for an unrecognised verdict.
func VerdictOrdinal(v Verdict) int {
	switch v {
	case VerdictComplete:
		return 0
	case VerdictDeferred:
		return 1
	case VerdictIncomplete:
		return 2
	default:
		return -1
	}
}

// CheckReport is the output of the check command.
type CheckReport struct {
	Tool            string    `json:"tool"`
	Version         string    `json:"version"`
	File            string    `json:"file,omitempty"`
	FileHash        string    `json:"file_hash,omitempty"`
	ReferenceNumber string    `json:"reference_number"`
	Summary         Summary   `json:"summary"`
	Missing         []Missing `json:"missing"`
	Pending         []string  `json:"pending"`
}

// Summary holds the verdict and per-group counts of missing fields.
type Summary struct {
	Verdict        Verdict `json:"verdict"`
	MandatoryCount int     `json:"mandatory_count"`
	CloudCount     int     `json:"cloud_count"`
	CriticalCount  int     `json:"critical_count"`
	PendingCount   int     `json:"pending_count"`
}
