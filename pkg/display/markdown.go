package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/types"
)

// FormatPlanMarkdown renders the plan as a markdown document, suitable for
// pasting into a review or rendering with glamour.
func FormatPlanMarkdown(plan *types.DiffPlan) string {
	var out strings.Builder

	out.WriteString("# Diff plan\n\n")
	out.WriteString(fmt.Sprintf("Profile `%s` against project `%s`.\n\n",
		plan.ProfileID, plan.ProjectID))

	if plan.IsEmpty() {
		out.WriteString("Project already matches the profile, nothing to do.\n")
	} else {
		out.WriteString("## Operations\n\n")
		for _, op := range plan.Operations {
			switch op.Type {
			case types.OpCreate:
				out.WriteString(fmt.Sprintf("- **create** `%s`\n", op.Path))
			case types.OpModify:
				out.WriteString(fmt.Sprintf("- **modify** `%s`\n", op.Path))
			case types.OpDelete:
				out.WriteString(fmt.Sprintf("- **delete** `%s`\n", op.Path))
			}
		}

		for _, op := range plan.Operations {
			if op.Type == types.OpModify && op.Diff != "" {
				out.WriteString(fmt.Sprintf("\n### `%s`\n\n```diff\n%s```\n",
					op.Path, op.Diff))
			}
		}
	}

	if len(plan.Warnings) > 0 {
		out.WriteString("\n## Warnings\n\n")
		for _, w := range plan.Warnings {
			out.WriteString(fmt.Sprintf("- **%s**: %s\n", w.Severity, w.Message))
		}
	}

	out.WriteString(fmt.Sprintf("\nSummary: %s.\n", Summarize(plan)))
	return out.String()
}
