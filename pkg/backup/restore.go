package backup

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/logging"
	"github.com/arthur-debert/dotclaude/pkg/paths"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// Restore replays the backup's entries in stored order, undoing an apply
// exactly: files that did not exist before are deleted, files that did get
// their original bytes written back. The first I/O error aborts; entries
// already restored stay restored.
//
// Callers should run VerifyIntegrity first; Restore itself trusts the
// entries' bytes but still re-validates their paths against projectPath.
func Restore(fsys types.FS, projectPath string, b *types.Backup) error {
	logger := logging.GetLogger("backup")

	for _, f := range b.Files {
		abs, err := paths.SafeJoin(fsys, projectPath, f.Path)
		if err != nil {
			return err
		}

		if !f.Existed() {
			if err := fsys.Remove(abs); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
				return errors.Wrapf(err, errors.ErrFileDelete,
					"cannot remove %s during restore", f.Path)
			}
			pruneEmptyDirs(fsys, filepath.Dir(abs), projectPath)
			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(abs), dirMode); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"cannot recreate parent directories for %s", f.Path)
		}
		if err := fsys.WriteFile(abs, f.OriginalContent, archiveMode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"cannot restore %s", f.Path)
		}
	}

	logger.Info().
		Str("id", b.ID.String()).
		Int("files", len(b.Files)).
		Msg("Backup restored")

	return nil
}

// pruneEmptyDirs removes now-empty directories from dir up to, but excluding,
// projectPath. Purely cosmetic; all errors are ignored and any non-empty
// directory stops the walk.
func pruneEmptyDirs(fsys types.FS, dir, projectPath string) {
	root := filepath.Clean(projectPath)
	for dir != root && strings.HasPrefix(dir, root+string(filepath.Separator)) {
		entries, err := fsys.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := fsys.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
