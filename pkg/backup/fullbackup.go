package backup

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/paths"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// CreateFullBackup snapshots CLAUDE.md and the entire .claude tree of a
// project into a persisted backup, independent of any plan. Restoring it
// writes every captured file back byte for byte.
func CreateFullBackup(fsys types.FS, projectID uuid.UUID, projectPath, archivePath, description string) (*types.Backup, error) {
	b := types.NewBackup(projectID, nil, description, archivePath)

	if err := recordFile(fsys, projectPath, paths.ClaudeMdFile, b); err != nil {
		return nil, err
	}
	if err := recordTree(fsys, projectPath, paths.ClaudeDir, b); err != nil {
		return nil, err
	}

	if err := Save(fsys, b); err != nil {
		return nil, err
	}
	return b, nil
}

// recordFile captures rel into the backup if it exists; missing files are
// simply skipped (a full backup only records what is there).
func recordFile(fsys types.FS, projectPath, rel string, b *types.Backup) error {
	abs, err := paths.SafeJoin(fsys, projectPath, rel)
	if err != nil {
		return err
	}

	content, err := fsys.ReadFile(abs)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", rel)
	}

	b.RecordExistingFile(rel, content)
	return nil
}

// recordTree walks relDir depth first in directory order, recording every
// regular file. Symlinks are skipped; SafeJoin would reject them anyway.
func recordTree(fsys types.FS, projectPath, relDir string, b *types.Backup) error {
	abs, err := paths.SafeJoin(fsys, projectPath, relDir)
	if err != nil {
		return err
	}

	entries, err := fsys.ReadDir(abs)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", relDir)
	}

	for _, entry := range entries {
		rel := filepath.Join(relDir, entry.Name())
		switch {
		case entry.IsDir():
			if err := recordTree(fsys, projectPath, rel, b); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := recordFile(fsys, projectPath, rel, b); err != nil {
				return err
			}
		}
	}
	return nil
}
