package backup

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/logging"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

const (
	archiveMode = 0o644
	dirMode     = 0o755
)

// Save writes the backup as a JSON document to its ArchivePath. Once saved a
// backup is immutable; callers must not append further entries.
func Save(fsys types.FS, b *types.Backup) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrBackupWrite, "cannot serialize backup")
	}

	if err := fsys.MkdirAll(filepath.Dir(b.ArchivePath), dirMode); err != nil {
		return errors.Wrapf(err, errors.ErrBackupWrite,
			"cannot create backup directory for %s", b.ArchivePath)
	}

	if err := fsys.WriteFile(b.ArchivePath, data, archiveMode); err != nil {
		return errors.Wrapf(err, errors.ErrBackupWrite,
			"cannot write backup archive %s", b.ArchivePath)
	}

	logger := logging.GetLogger("backup")
	logger.Info().
		Str("id", b.ID.String()).
		Str("archive", b.ArchivePath).
		Int("files", len(b.Files)).
		Msg("Backup persisted")

	return nil
}

// Load reads a persisted backup, distinguishing a missing archive from an
// unparsable one.
func Load(fsys types.FS, path string) (*types.Backup, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrBackupNotFound,
				"backup archive %s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"cannot read backup archive %s", path)
	}

	var b types.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupInvalid,
			"backup archive %s is not parsable", path)
	}

	// Structural invariant: a hash is present exactly when content is.
	for _, f := range b.Files {
		if f.Existed() != (f.SHA256 != "") {
			return nil, errors.Newf(errors.ErrBackupInvalid,
				"backup entry for %s has mismatched content and hash presence", f.Path)
		}
	}

	return &b, nil
}
