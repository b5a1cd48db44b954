package paths

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// SafeJoin joins an untrusted relative path to root, walking it component by
// component:
//   - "." components are dropped
//   - ".." pops a virtual depth counter and fails the moment it would escape
//     above root
//   - absolute paths and null bytes are rejected
//
// The joined result is re-verified to lie under root, and every component of
// it that already exists on disk is Lstat'd: any symlink is rejected, which
// both prevents time-of-check/time-of-use substitution and makes the logical
// prefix check sufficient (no link can redirect a verified prefix elsewhere).
// Targets that do not exist yet, such as files a Create will write, verify
// logically.
func SafeJoin(fsys types.FS, root, rel string) (string, error) {
	if strings.Contains(rel, "\x00") {
		return "", errors.New(errors.ErrInvalidComponent, "path contains null bytes")
	}

	if filepath.IsAbs(rel) {
		return "", errors.Newf(errors.ErrInvalidComponent,
			"path %q must be relative", rel)
	}

	components := strings.Split(filepath.ToSlash(rel), "/")
	kept := make([]string, 0, len(components))
	depth := 0
	for _, c := range components {
		switch c {
		case "", ".":
			continue
		case "..":
			depth--
			if depth < 0 {
				return "", errors.Newf(errors.ErrTraversalAttempt,
					"path %q escapes above the project root", rel)
			}
			kept = kept[:len(kept)-1]
		default:
			depth++
			kept = append(kept, c)
		}
	}

	joined := filepath.Join(append([]string{root}, kept...)...)

	// The joined path must still lie under root even after the component
	// walk; both checks have to hold.
	cleanRoot := filepath.Clean(root)
	if joined != cleanRoot && !strings.HasPrefix(joined, cleanRoot+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrEscapesRoot,
			"path %q resolves outside the project root", rel)
	}

	// Walk each existing component below root; reject symlinks.
	current := cleanRoot
	for _, c := range kept {
		current = filepath.Join(current, c)
		info, err := fsys.Lstat(current)
		if err != nil {
			// Not existing yet is fine (Create targets); stop walking.
			break
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return "", errors.Newf(errors.ErrSymlinkNotAllowed,
				"path component %q is a symlink", current)
		}
	}

	return joined, nil
}
