package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotclaude/pkg/filesystem"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

func TestRestoreDeletesFilesThatWereNew(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	abs := filepath.Join(root, ".claude", "agents", "tester.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte("agent body"), 0o644))

	b := types.NewBackup(uuid.New(), nil, "", "unused")
	b.RecordNewFile(".claude/agents/tester.md")

	require.NoError(t, Restore(fsys, root, b))

	assert.NoFileExists(t, abs)
	// Now-empty parents are pruned up to, but excluding, the project root
	assert.NoDirExists(t, filepath.Join(root, ".claude"))
	assert.DirExists(t, root)
}

func TestRestoreKeepsNonEmptyParents(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	agentsDir := filepath.Join(root, ".claude", "agents")
	require.NoError(t, os.MkdirAll(agentsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(agentsDir, "tester.md"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(agentsDir, "keeper.md"), []byte("b"), 0o644))

	b := types.NewBackup(uuid.New(), nil, "", "unused")
	b.RecordNewFile(".claude/agents/tester.md")

	require.NoError(t, Restore(fsys, root, b))

	assert.NoFileExists(t, filepath.Join(agentsDir, "tester.md"))
	assert.FileExists(t, filepath.Join(agentsDir, "keeper.md"))
}

func TestRestoreNewFileEntryToleratesMissingFile(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	b := types.NewBackup(uuid.New(), nil, "", "unused")
	b.RecordNewFile("CLAUDE.md")

	// The file was already removed by hand; restore still succeeds.
	require.NoError(t, Restore(fsys, root, b))
}

func TestRestoreRewritesOriginalBytes(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	b := types.NewBackup(uuid.New(), nil, "", "unused")
	b.RecordExistingFile("CLAUDE.md", []byte("Original"))
	b.RecordExistingFile(".claude/commands/deploy.md", []byte("deploy body"))

	// Neither file exists anymore; restore recreates parents and bytes.
	require.NoError(t, Restore(fsys, root, b))

	got, err := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "Original", string(got))

	got, err = os.ReadFile(filepath.Join(root, ".claude", "commands", "deploy.md"))
	require.NoError(t, err)
	assert.Equal(t, "deploy body", string(got))
}

func TestRestoreEmptyFileStaysEmptyFile(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()

	b := types.NewBackup(uuid.New(), nil, "", "unused")
	b.RecordExistingFile("CLAUDE.md", []byte{})

	require.NoError(t, Restore(fsys, root, b))

	info, err := os.Stat(filepath.Join(root, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
