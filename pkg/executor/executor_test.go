package executor

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

func newBackup(t *testing.T) *types.Backup {
	t.Helper()
	return types.NewBackup(uuid.New(), nil, "test", filepath.Join(t.TempDir(), "backup.json"))
}

func TestApplyExecutesAllOperationKinds(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "CLAUDE.md"), []byte("Original"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".claude", "commands"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".claude", "commands", "old.md"), []byte("old"), 0o644))

	plan := &types.DiffPlan{
		ProjectID: uuid.New(),
		ProfileID: uuid.New(),
		Operations: []types.FileOperation{
			{Type: types.OpCreate, Path: ".claude/agents/tester.md", NewContent: []byte("agent body")},
			{Type: types.OpModify, Path: "CLAUDE.md", NewContent: []byte("Original\n\nExtra")},
			{Type: types.OpDelete, Path: ".claude/commands/old.md"},
		},
	}

	b := newBackup(t)
	require.NoError(t, Apply(fsys, plan, root, b))

	created, err := os.ReadFile(filepath.Join(root, ".claude", "agents", "tester.md"))
	require.NoError(t, err)
	assert.Equal(t, "agent body", string(created))

	modified, err := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "Original\n\nExtra", string(modified))

	assert.NoFileExists(t, filepath.Join(root, ".claude", "commands", "old.md"))

	// Backup entries mirror plan order and capture pre-mutation state
	require.Len(t, b.Files, 3)

	assert.Equal(t, ".claude/agents/tester.md", b.Files[0].Path)
	assert.False(t, b.Files[0].Existed())
	assert.Empty(t, b.Files[0].SHA256)

	assert.Equal(t, "CLAUDE.md", b.Files[1].Path)
	require.True(t, b.Files[1].Existed())
	assert.Equal(t, "Original", string(b.Files[1].OriginalContent))
	assert.NotEmpty(t, b.Files[1].SHA256)

	assert.Equal(t, ".claude/commands/old.md", b.Files[2].Path)
	require.True(t, b.Files[2].Existed())
	assert.Equal(t, "old", string(b.Files[2].OriginalContent))
}

func TestApplyEmptyPlanIsNoOp(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	b := newBackup(t)
	plan := &types.DiffPlan{ProjectID: uuid.New(), ProfileID: uuid.New()}
	require.NoError(t, Apply(fsys, plan, root, b))
	assert.Empty(t, b.Files)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApplyRejectsUnsafePath(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	plan := &types.DiffPlan{
		Operations: []types.FileOperation{
			{Type: types.OpCreate, Path: "../outside.md", NewContent: []byte("x")},
		},
	}

	err := Apply(fsys, plan, root, newBackup(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTraversalAttempt))
}

func TestApplyRejectsUnknownOperation(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	plan := &types.DiffPlan{
		Operations: []types.FileOperation{
			{Type: types.FileOpType("rename"), Path: "CLAUDE.md"},
		},
	}

	err := Apply(fsys, plan, root, newBackup(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlanInvalid))
}

func TestApplyAbortsMidPlanKeepingPartialBackup(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	plan := &types.DiffPlan{
		Operations: []types.FileOperation{
			{Type: types.OpCreate, Path: "CLAUDE.md", NewContent: []byte("# Hello")},
			// Fails: the file to delete does not exist
			{Type: types.OpDelete, Path: ".claude/commands/missing.md"},
		},
	}

	b := newBackup(t)
	err := Apply(fsys, plan, root, b)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))

	// The first operation executed and is recorded; recovery is the
	// restore path's job.
	assert.FileExists(t, filepath.Join(root, "CLAUDE.md"))
	require.Len(t, b.Files, 1)
	assert.Equal(t, "CLAUDE.md", b.Files[0].Path)
	assert.False(t, b.Files[0].Existed())
}
