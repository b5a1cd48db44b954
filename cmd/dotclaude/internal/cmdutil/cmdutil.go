// Package cmdutil holds small helpers shared by the dotclaude subcommands.
package cmdutil

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/arthur-debert/dotclaude/pkg/errors"
)

// projectNamespace scopes derived project IDs to dotclaude
var projectNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dotclaude://project"))

// ResolveProject turns the optional positional project argument into an
// absolute path and a stable project ID derived from it. The same project
// path always yields the same ID, so plans and backups line up across runs
// without a registry.
func ResolveProject(args []string) (string, uuid.UUID, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", uuid.Nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot resolve project path %q", path)
	}

	return abs, uuid.NewSHA1(projectNamespace, []byte(abs)), nil
}
