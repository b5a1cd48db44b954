package planner

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/types"
)

// gitDirtyWarning returns an advisory warning when the project's git working
// tree has uncommitted changes. It never blocks planning: projects without a
// .git directory, missing git binaries and git failures all yield nil.
func gitDirtyWarning(projectPath string) *types.Warning {
	if _, err := os.Stat(filepath.Join(projectPath, ".git")); err != nil {
		return nil
	}

	cmd := exec.Command("git", "-C", projectPath, "status", "--porcelain")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	if strings.TrimSpace(string(out)) == "" {
		return nil
	}

	return &types.Warning{
		Severity: types.SeverityWarning,
		Message:  "project git working tree has uncommitted changes; commit or stash before applying to keep the diff reviewable",
	}
}
