package planner

import (
	"bytes"
	stderrors "errors"
	"io/fs"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/logging"
	"github.com/arthur-debert/dotclaude/pkg/paths"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// GeneratePlan computes the file operations needed to bring projectPath in
// line with the profile. Re-planning an already-applied profile against an
// unchanged project yields an empty plan.
//
// A name validation failure aborts the whole generation; no partial plan is
// ever returned alongside an error.
func GeneratePlan(fsys types.FS, projectID uuid.UUID, projectPath string, profile *types.Profile) (*types.DiffPlan, error) {
	logger := logging.GetLogger("planner")

	plan := &types.DiffPlan{
		ProjectID:  projectID,
		ProfileID:  profile.ID,
		Operations: []types.FileOperation{},
	}

	if overlay := profile.Overlays.ClaudeMd; overlay != nil {
		if err := planClaudeMd(fsys, projectPath, overlay, plan); err != nil {
			return nil, err
		}
	}

	kinds := []struct {
		kind     types.OverlayKind
		overlays []types.FileOverlay
		target   func(name string) string
	}{
		{types.OverlayKindSkill, profile.Overlays.Skills, paths.SkillPath},
		{types.OverlayKindCommand, profile.Overlays.Commands, paths.CommandPath},
		{types.OverlayKindAgent, profile.Overlays.Agents, paths.AgentPath},
	}

	for _, k := range kinds {
		seen := make(map[string]bool, len(k.overlays))
		for _, overlay := range k.overlays {
			if err := paths.ValidateName(overlay.Name); err != nil {
				return nil, errors.Wrapf(err, errors.ErrProfileInvalid,
					"invalid %s name %q", k.kind, overlay.Name)
			}
			if seen[overlay.Name] {
				return nil, errors.Newf(errors.ErrDuplicateOverlay,
					"profile contains more than one %s named %q", k.kind, overlay.Name)
			}
			seen[overlay.Name] = true

			if err := planFile(fsys, projectPath, k.target(overlay.Name), []byte(overlay.Content), plan); err != nil {
				return nil, err
			}
		}
	}

	if w := gitDirtyWarning(projectPath); w != nil {
		plan.Warnings = append(plan.Warnings, *w)
	}

	logger.Debug().
		Str("profile", profile.Name).
		Int("operations", len(plan.Operations)).
		Int("warnings", len(plan.Warnings)).
		Msg("Plan generated")

	return plan, nil
}

// planClaudeMd computes the CLAUDE.md candidate content from the overlay mode
// and emits at most one operation for it.
func planClaudeMd(fsys types.FS, projectPath string, overlay *types.ClaudeMdOverlay, plan *types.DiffPlan) error {
	existing, exists, err := readIfExists(fsys, projectPath, paths.ClaudeMdFile)
	if err != nil {
		return err
	}

	var candidate []byte
	switch {
	case !exists, overlay.Mode == types.ModeReplace:
		candidate = []byte(overlay.Content)
	case overlay.Mode == types.ModePrepend:
		candidate = []byte(overlay.Content + "\n\n" + string(existing))
	case overlay.Mode == types.ModeAppend:
		candidate = []byte(string(existing) + "\n\n" + overlay.Content)
	default:
		return errors.Newf(errors.ErrProfileInvalid,
			"unknown overlay mode %q", overlay.Mode)
	}

	emit(plan, paths.ClaudeMdFile, existing, exists, candidate)
	return nil
}

// planFile applies the shared create/modify/no-op logic for a named overlay
// whose candidate content is always the full file body.
func planFile(fsys types.FS, projectPath, rel string, candidate []byte, plan *types.DiffPlan) error {
	existing, exists, err := readIfExists(fsys, projectPath, rel)
	if err != nil {
		return err
	}
	emit(plan, rel, existing, exists, candidate)
	return nil
}

func emit(plan *types.DiffPlan, rel string, existing []byte, exists bool, candidate []byte) {
	switch {
	case !exists:
		plan.Operations = append(plan.Operations, types.FileOperation{
			Type:       types.OpCreate,
			Path:       rel,
			NewContent: candidate,
		})
	case !bytes.Equal(existing, candidate):
		plan.Operations = append(plan.Operations, types.FileOperation{
			Type:       types.OpModify,
			Path:       rel,
			NewContent: candidate,
			Diff:       unifiedDiff(rel, existing, candidate),
		})
	}
	// Identical content: nothing to do.
}

// readIfExists resolves rel under projectPath through SafeJoin and reads it.
// A missing file is not an error; it reports exists=false.
func readIfExists(fsys types.FS, projectPath, rel string) ([]byte, bool, error) {
	abs, err := paths.SafeJoin(fsys, projectPath, rel)
	if err != nil {
		return nil, false, err
	}

	content, err := fsys.ReadFile(abs)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", rel)
	}
	return content, true, nil
}

// unifiedDiff renders a display-only unified line diff. Application always
// uses the raw new content, never this string.
func unifiedDiff(rel string, old, new []byte) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(new)),
		FromFile: "a/" + rel,
		ToFile:   "b/" + rel,
		Context:  3,
	})
	if err != nil {
		// Writes to a strings.Builder cannot fail; keep the plan usable.
		return ""
	}
	return text
}
