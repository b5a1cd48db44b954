package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/dotclaude/pkg/internal/hashutil"
)

// BackupFile records the pre-mutation state of a single path.
//
// OriginalContent is nil when the path did not exist before the apply; an
// existing empty file is a non-nil empty slice, so the two cases survive a
// JSON round trip distinctly (null vs ""). SHA256 is the lowercase hex digest
// of OriginalContent and is present exactly when OriginalContent is.
type BackupFile struct {
	Path            string `json:"path"`
	OriginalContent []byte `json:"original_content"`
	SHA256          string `json:"sha256,omitempty"`
}

// Existed reports whether the path existed before the apply
func (f *BackupFile) Existed() bool {
	return f.OriginalContent != nil
}

// Backup is a self-contained record of every touched file's prior state,
// sufficient to undo an apply exactly. Append-only while being populated,
// immutable once persisted to ArchivePath.
type Backup struct {
	ID          uuid.UUID    `json:"id"`
	ProjectID   uuid.UUID    `json:"project_id"`
	ProfileID   *uuid.UUID   `json:"profile_id,omitempty"`
	Description string       `json:"description,omitempty"`
	ArchivePath string       `json:"archive_path"`
	Files       []BackupFile `json:"files"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewBackup creates an empty backup record. profileID may be nil for backups
// not tied to a profile (full .claude snapshots).
func NewBackup(projectID uuid.UUID, profileID *uuid.UUID, description, archivePath string) *Backup {
	return &Backup{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ProfileID:   profileID,
		Description: description,
		ArchivePath: archivePath,
		Files:       []BackupFile{},
		CreatedAt:   time.Now().UTC(),
	}
}

// RecordNewFile appends a "path did not exist" entry
func (b *Backup) RecordNewFile(path string) {
	b.Files = append(b.Files, BackupFile{Path: path})
}

// RecordExistingFile appends an entry holding the file's prior bytes and
// their SHA256. A nil content is normalized to an empty slice so the entry
// still reads as "existed".
func (b *Backup) RecordExistingFile(path string, content []byte) {
	if content == nil {
		content = []byte{}
	}
	b.Files = append(b.Files, BackupFile{
		Path:            path,
		OriginalContent: content,
		SHA256:          hashutil.HashBytes(content),
	})
}
