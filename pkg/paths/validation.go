package paths

import (
	"strings"

	"github.com/arthur-debert/dotclaude/pkg/errors"
)

// ValidateName ensures a user-supplied overlay name is safe to use as a path
// component. Names must:
// - Not be empty
// - Not contain path separators or null bytes
// - Not be "." or ".."
// - Not start with a dot (".claude" is the one allowed exception)
// - Not contain control characters
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidComponent, "name cannot be empty")
	}

	if strings.Contains(name, "\x00") {
		return errors.New(errors.ErrInvalidComponent, "name contains null bytes")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidComponent,
			"name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.Newf(errors.ErrTraversalAttempt,
			"name cannot be %q", name)
	}

	if strings.HasPrefix(name, ".") && name != ClaudeDir {
		return errors.Newf(errors.ErrInvalidComponent,
			"name %q cannot start with a dot", name)
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrInvalidComponent,
				"name contains control characters")
		}
	}

	return nil
}
