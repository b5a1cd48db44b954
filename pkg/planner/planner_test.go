package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/filesystem"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

func newProfile() *types.Profile {
	return &types.Profile{ID: uuid.New(), Name: "base"}
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestGeneratePlanCreatesMissingClaudeMd(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	p := newProfile()
	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{Mode: types.ModeReplace, Content: "# Hello"}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.NoError(t, err)

	require.Len(t, plan.Operations, 1)
	op := plan.Operations[0]
	assert.Equal(t, types.OpCreate, op.Type)
	assert.Equal(t, "CLAUDE.md", op.Path)
	assert.Equal(t, []byte("# Hello"), op.NewContent)
}

func TestGeneratePlanAppendMode(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	writeProjectFile(t, root, "CLAUDE.md", "Original")

	p := newProfile()
	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{Mode: types.ModeAppend, Content: "Extra"}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.NoError(t, err)

	require.Len(t, plan.Operations, 1)
	op := plan.Operations[0]
	assert.Equal(t, types.OpModify, op.Type)
	assert.Equal(t, "CLAUDE.md", op.Path)
	assert.Equal(t, "Original\n\nExtra", string(op.NewContent))
	assert.NotEmpty(t, op.Diff)
}

func TestGeneratePlanPrependMode(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	writeProjectFile(t, root, "CLAUDE.md", "Original")

	p := newProfile()
	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{Mode: types.ModePrepend, Content: "Extra"}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.NoError(t, err)

	require.Len(t, plan.Operations, 1)
	assert.Equal(t, "Extra\n\nOriginal", string(plan.Operations[0].NewContent))
}

func TestGeneratePlanIdenticalSkillIsNoOp(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	writeProjectFile(t, root, ".claude/skills/existing-skill/SKILL.md", "skill body")

	p := newProfile()
	p.Overlays.Skills = []types.FileOverlay{
		{Name: "existing-skill", Content: "skill body"},
	}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestGeneratePlanIsIdempotent(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	// Project already matching the profile exactly
	writeProjectFile(t, root, "CLAUDE.md", "# Base")
	writeProjectFile(t, root, ".claude/commands/deploy.md", "deploy body")
	writeProjectFile(t, root, ".claude/agents/tester.md", "tester body")

	p := newProfile()
	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{Mode: types.ModeReplace, Content: "# Base"}
	p.Overlays.Commands = []types.FileOverlay{{Name: "deploy", Content: "deploy body"}}
	p.Overlays.Agents = []types.FileOverlay{{Name: "tester", Content: "tester body"}}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestGeneratePlanOrderAndUniquePaths(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	p := newProfile()
	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{Mode: types.ModeReplace, Content: "# Base"}
	p.Overlays.Skills = []types.FileOverlay{{Name: "review", Content: "r"}}
	p.Overlays.Commands = []types.FileOverlay{{Name: "deploy", Content: "d"}}
	p.Overlays.Agents = []types.FileOverlay{{Name: "tester", Content: "t"}}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.NoError(t, err)

	var got []string
	seen := make(map[string]bool)
	for _, op := range plan.Operations {
		got = append(got, op.Path)
		assert.False(t, seen[op.Path], "duplicate operation for %s", op.Path)
		seen[op.Path] = true
	}
	assert.Equal(t, []string{
		"CLAUDE.md",
		".claude/skills/review/SKILL.md",
		".claude/commands/deploy.md",
		".claude/agents/tester.md",
	}, got)
}

func TestGeneratePlanRejectsBadName(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	p := newProfile()
	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{Mode: types.ModeReplace, Content: "# Base"}
	p.Overlays.Skills = []types.FileOverlay{{Name: "../escape", Content: "x"}}

	plan, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.Error(t, err)
	assert.Nil(t, plan, "no partial plan on validation failure")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileInvalid))
}

func TestGeneratePlanRejectsDuplicateOverlayNames(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	p := newProfile()
	p.Overlays.Commands = []types.FileOverlay{
		{Name: "deploy", Content: "first"},
		{Name: "deploy", Content: "second"},
	}

	_, err := GeneratePlan(fsys, uuid.New(), root, p)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateOverlay))
}

func TestGeneratePlanEmptyProfile(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	plan, err := GeneratePlan(fsys, uuid.New(), root, newProfile())
	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
	assert.False(t, plan.HasErrors())
}
