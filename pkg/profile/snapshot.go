package profile

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotclaude/pkg/errors"
	"github.com/arthur-debert/dotclaude/pkg/logging"
	"github.com/arthur-debert/dotclaude/pkg/paths"
	"github.com/arthur-debert/dotclaude/pkg/types"
)

// ManifestFile is the required manifest inside a profile bundle
const ManifestFile = "profile.toml"

type manifest struct {
	Name     string `toml:"name"`
	ID       string `toml:"id"`
	ClaudeMd struct {
		Mode string `toml:"mode"`
	} `toml:"claude_md"`
}

// LoadFromDir reads a profile bundle directory into an immutable Profile
// snapshot.
func LoadFromDir(fsys types.FS, dir string) (*types.Profile, error) {
	logger := logging.GetLogger("profile")

	m, err := loadManifest(fsys, dir)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	if m.ID != "" {
		id, err = uuid.Parse(m.ID)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrProfileInvalid,
				"manifest id %q is not a valid UUID", m.ID)
		}
	}

	p := &types.Profile{ID: id, Name: m.Name}

	if err := loadClaudeMd(fsys, dir, m.ClaudeMd.Mode, p); err != nil {
		return nil, err
	}

	if p.Overlays.Skills, err = loadSkills(fsys, dir); err != nil {
		return nil, err
	}
	if p.Overlays.Commands, err = loadFlat(fsys, filepath.Join(dir, "commands")); err != nil {
		return nil, err
	}
	if p.Overlays.Agents, err = loadFlat(fsys, filepath.Join(dir, "agents")); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("profile", p.Name).
		Int("skills", len(p.Overlays.Skills)).
		Int("commands", len(p.Overlays.Commands)).
		Int("agents", len(p.Overlays.Agents)).
		Msg("Profile loaded")

	return p, nil
}

func loadManifest(fsys types.FS, dir string) (*manifest, error) {
	data, err := fsys.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrProfileNotFound,
				"%s does not contain a %s manifest", dir, ManifestFile)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", ManifestFile)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileInvalid,
			"cannot parse %s", ManifestFile)
	}
	if m.Name == "" {
		return nil, errors.Newf(errors.ErrProfileInvalid,
			"%s must set a profile name", ManifestFile)
	}
	return &m, nil
}

func loadClaudeMd(fsys types.FS, dir, mode string, p *types.Profile) error {
	content, err := fsys.ReadFile(filepath.Join(dir, paths.ClaudeMdFile))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", paths.ClaudeMdFile)
	}

	if mode == "" {
		mode = string(types.ModeReplace)
	}
	switch types.OverlayMode(mode) {
	case types.ModeReplace, types.ModePrepend, types.ModeAppend:
	default:
		return errors.Newf(errors.ErrProfileInvalid,
			"claude_md mode must be replace, prepend or append, got %q", mode)
	}

	p.Overlays.ClaudeMd = &types.ClaudeMdOverlay{
		Mode:    types.OverlayMode(mode),
		Content: string(content),
	}
	return nil
}

// loadSkills reads skills/<name>/SKILL.md entries
func loadSkills(fsys types.FS, dir string) ([]types.FileOverlay, error) {
	skillsDir := filepath.Join(dir, "skills")
	entries, err := fsys.ReadDir(skillsDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileRead, "cannot list skills")
	}

	var overlays []types.FileOverlay
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		content, err := fsys.ReadFile(filepath.Join(skillsDir, entry.Name(), paths.SkillFileName))
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrFileRead,
				"cannot read skill %s", entry.Name())
		}

		overlay, err := newOverlay(entry.Name(), content)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, overlay)
	}
	return overlays, nil
}

// loadFlat reads <name>.md entries from a commands or agents directory
func loadFlat(fsys types.FS, dir string) ([]types.FileOverlay, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", dir)
	}

	var overlays []types.FileOverlay
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		content, err := fsys.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead,
				"cannot read %s", entry.Name())
		}

		overlay, err := newOverlay(strings.TrimSuffix(entry.Name(), ".md"), content)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, overlay)
	}
	return overlays, nil
}

// newOverlay builds a FileOverlay, letting frontmatter override the name
// taken from the path. Either way the final name must validate.
func newOverlay(name string, content []byte) (types.FileOverlay, error) {
	overlay := types.FileOverlay{Name: name, Content: string(content)}

	if fm, ok := parseFrontmatter(content); ok {
		if fm.Name != "" {
			overlay.Name = fm.Name
		}
		overlay.Description = fm.Description
	}

	if err := paths.ValidateName(overlay.Name); err != nil {
		return types.FileOverlay{}, errors.Wrapf(err, errors.ErrProfileInvalid,
			"overlay name %q is not usable", overlay.Name)
	}
	return overlay, nil
}
