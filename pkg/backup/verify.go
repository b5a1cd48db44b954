package backup

import (
	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/internal/hashutil"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// VerifyIntegrity recomputes the SHA256 of every stored original content and
// compares it against the stored hash. Any mismatch is a hard error naming
// the path and both hash values; a backup must pass this check before being
// trusted for restore.
func VerifyIntegrity(b *types.Backup) error {
	for _, f := range b.Files {
		if !f.Existed() {
			continue
		}
		actual := hashutil.HashBytes(f.OriginalContent)
		if actual != f.SHA256 {
			return errors.Newf(errors.ErrHashMismatch,
				"backup content for %s does not match its hash: stored %s, computed %s",
				f.Path, f.SHA256, actual).
				WithDetail("path", f.Path).
				WithDetail("stored", f.SHA256).
				WithDetail("computed", actual)
		}
	}
	return nil
}
