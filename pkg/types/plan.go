package types

import "github.com/google/uuid"

// FileOpType tags a FileOperation variant
type FileOpType string

const (
	// OpCreate writes a file that does not exist yet
	OpCreate FileOpType = "create"
	// OpModify overwrites an existing file with new content
	OpModify FileOpType = "modify"
	// OpDelete removes an existing file
	OpDelete FileOpType = "delete"
)

// FileOperation is one planned mutation. Path is always relative to the
// project root and pre-validated to lie under it; the executor re-validates
// anyway. Diff is a unified line diff for display only, the executor writes
// NewContent verbatim.
type FileOperation struct {
	Type       FileOpType `json:"type"`
	Path       string     `json:"path"`
	NewContent []byte     `json:"new_content,omitempty"`
	Diff       string     `json:"diff,omitempty"`
}

// WarningSeverity grades advisory warnings attached to a plan
type WarningSeverity string

const (
	SeverityInfo    WarningSeverity = "info"
	SeverityWarning WarningSeverity = "warning"
	SeverityError   WarningSeverity = "error"
)

// Warning is advisory; it never blocks application unless the caller chooses
// to gate on error severity.
type Warning struct {
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
}

// DiffPlan is the ordered set of file operations needed to align a project
// with a profile, plus any advisory warnings gathered while planning.
// Invariant: at most one operation per path.
type DiffPlan struct {
	ProjectID  uuid.UUID       `json:"project_id"`
	ProfileID  uuid.UUID       `json:"profile_id"`
	Operations []FileOperation `json:"operations"`
	Warnings   []Warning       `json:"warnings,omitempty"`
}

// IsEmpty reports whether the plan contains no operations
func (p *DiffPlan) IsEmpty() bool {
	return len(p.Operations) == 0
}

// HasErrors reports whether any warning carries error severity
func (p *DiffPlan) HasErrors() bool {
	for _, w := range p.Warnings {
		if w.Severity == SeverityError {
			return true
		}
	}
	return false
}
