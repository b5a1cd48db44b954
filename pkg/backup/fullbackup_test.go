package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotclaude/pkg/filesystem"
)

func TestCreateFullBackup(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	archive := filepath.Join(t.TempDir(), "full.json")

	write := func(rel, content string) {
		abs := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	write("CLAUDE.md", "# Base")
	write(".claude/skills/review/SKILL.md", "review body")
	write(".claude/commands/deploy.md", "deploy body")
	write("src/main.go", "package main") // outside the managed tree

	b, err := CreateFullBackup(fsys, uuid.New(), root, archive, "weekly snapshot")
	require.NoError(t, err)

	var got []string
	for _, f := range b.Files {
		assert.True(t, f.Existed(), "full backups only record existing files")
		got = append(got, f.Path)
	}
	assert.Equal(t, []string{
		"CLAUDE.md",
		".claude/commands/deploy.md",
		".claude/skills/review/SKILL.md",
	}, got)

	assert.Nil(t, b.ProfileID)
	require.NoError(t, VerifyIntegrity(b))

	// CreateFullBackup persists immediately
	loaded, err := Load(fsys, archive)
	require.NoError(t, err)
	assert.Equal(t, b.ID, loaded.ID)
	require.NoError(t, VerifyIntegrity(loaded))
}

func TestCreateFullBackupEmptyProject(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	archive := filepath.Join(t.TempDir(), "full.json")

	b, err := CreateFullBackup(fsys, uuid.New(), root, archive, "")
	require.NoError(t, err)
	assert.Empty(t, b.Files)
}
