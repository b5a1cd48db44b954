package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/types"
)

// DiffSummary counts a plan's operations and warnings by kind
type DiffSummary struct {
	Creates  int
	Modifies int
	Deletes  int
	Warnings int
	Errors   int
}

// Summarize tallies the plan
func Summarize(plan *types.DiffPlan) DiffSummary {
	var s DiffSummary
	for _, op := range plan.Operations {
		switch op.Type {
		case types.OpCreate:
			s.Creates++
		case types.OpModify:
			s.Modifies++
		case types.OpDelete:
			s.Deletes++
		}
	}
	for _, w := range plan.Warnings {
		if w.Severity == types.SeverityError {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
	return s
}

// Total returns the number of operations in the summary
func (s DiffSummary) Total() int {
	return s.Creates + s.Modifies + s.Deletes
}

// String renders the summary as a single line
func (s DiffSummary) String() string {
	if s.Total() == 0 {
		return "nothing to do"
	}

	parts := make([]string, 0, 3)
	if s.Creates > 0 {
		parts = append(parts, fmt.Sprintf("%d to create", s.Creates))
	}
	if s.Modifies > 0 {
		parts = append(parts, fmt.Sprintf("%d to modify", s.Modifies))
	}
	if s.Deletes > 0 {
		parts = append(parts, fmt.Sprintf("%d to delete", s.Deletes))
	}
	return strings.Join(parts, ", ")
}
