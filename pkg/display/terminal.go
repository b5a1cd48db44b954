package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/types"
)

// FormatPlanTerminal renders the plan for terminal output. When color is
// false every style is skipped, which is what the CLI passes for non-tty
// output.
func FormatPlanTerminal(plan *types.DiffPlan, color bool) string {
	paint := func(s string, style interface{ Render(...string) string }) string {
		if !color {
			return s
		}
		return style.Render(s)
	}

	var out strings.Builder

	if plan.IsEmpty() {
		out.WriteString(paint("Project already matches the profile, nothing to do.", mutedStyle))
	} else {
		out.WriteString(paint("Planned operations", titleStyle) + "\n\n")
		for _, op := range plan.Operations {
			switch op.Type {
			case types.OpCreate:
				out.WriteString(fmt.Sprintf("  %s %s\n", paint("+ create", createStyle), op.Path))
			case types.OpModify:
				out.WriteString(fmt.Sprintf("  %s %s\n", paint("~ modify", modifyStyle), op.Path))
				if op.Diff != "" {
					out.WriteString(indent(paint(strings.TrimRight(op.Diff, "\n"), mutedStyle), 4) + "\n")
				}
			case types.OpDelete:
				out.WriteString(fmt.Sprintf("  %s %s\n", paint("- delete", deleteStyle), op.Path))
			}
		}
	}

	if len(plan.Warnings) > 0 {
		out.WriteString("\n" + paint("Warnings", titleStyle) + "\n\n")
		for _, w := range plan.Warnings {
			style := warnStyle
			if w.Severity == types.SeverityError {
				style = errorStyle
			}
			out.WriteString(fmt.Sprintf("  %s %s\n",
				paint(fmt.Sprintf("[%s]", w.Severity), style), w.Message))
		}
	}

	out.WriteString("\n" + Summarize(plan).String() + "\n")
	return out.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
