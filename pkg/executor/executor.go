package executor

import (
	"path/filepath"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/logging"
	"github.com/arthur-debert/dotclaude/pkg/paths"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Apply executes the plan's operations against projectRoot, recording each
// file's prior state into backup before mutating it. The first I/O error
// aborts the call; operations already executed stay executed and the backup
// holds everything needed to undo them.
func Apply(fsys types.FS, plan *types.DiffPlan, projectRoot string, backup *types.Backup) error {
	logger := logging.GetLogger("executor")

	for _, op := range plan.Operations {
		// The plan may have been generated earlier or on another machine,
		// so its paths are re-validated here.
		abs, err := paths.SafeJoin(fsys, projectRoot, op.Path)
		if err != nil {
			return err
		}

		logger.Debug().
			Str("type", string(op.Type)).
			Str("path", op.Path).
			Msg("Executing operation")

		switch op.Type {
		case types.OpCreate:
			backup.RecordNewFile(op.Path)
			if err := fsys.MkdirAll(filepath.Dir(abs), dirMode); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate,
					"cannot create parent directories for %s", op.Path)
			}
			if err := fsys.WriteFile(abs, op.NewContent, fileMode); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", op.Path)
			}

		case types.OpModify:
			existing, err := fsys.ReadFile(abs)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead,
					"cannot read %s before modifying it", op.Path)
			}
			backup.RecordExistingFile(op.Path, existing)
			if err := fsys.WriteFile(abs, op.NewContent, fileMode); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot modify %s", op.Path)
			}

		case types.OpDelete:
			existing, err := fsys.ReadFile(abs)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead,
					"cannot read %s before deleting it", op.Path)
			}
			backup.RecordExistingFile(op.Path, existing)
			if err := fsys.Remove(abs); err != nil {
				return errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", op.Path)
			}

		default:
			return errors.Newf(errors.ErrPlanInvalid,
				"unknown operation type %q for %s", op.Type, op.Path)
		}
	}

	logger.Info().
		Int("operations", len(plan.Operations)).
		Str("backup", backup.ID.String()).
		Msg("Plan applied")

	return nil
}
