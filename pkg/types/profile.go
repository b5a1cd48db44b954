package types

import "github.com/google/uuid"

// OverlayMode defines how a CLAUDE.md overlay composes with existing content
type OverlayMode string

const (
	// ModeReplace discards the existing file content
	ModeReplace OverlayMode = "replace"
	// ModePrepend puts the overlay content before the existing content
	ModePrepend OverlayMode = "prepend"
	// ModeAppend puts the overlay content after the existing content
	ModeAppend OverlayMode = "append"
)

// OverlayKind identifies which named-overlay family an overlay belongs to
type OverlayKind string

const (
	OverlayKindSkill   OverlayKind = "skill"
	OverlayKindCommand OverlayKind = "command"
	OverlayKindAgent   OverlayKind = "agent"
)

// ClaudeMdOverlay is the CLAUDE.md portion of a profile
type ClaudeMdOverlay struct {
	Mode    OverlayMode `json:"mode"`
	Content string      `json:"content"`
}

// FileOverlay is a named skill, command or agent body carried by a profile.
// Name becomes a path component and must pass paths.ValidateName before use.
type FileOverlay struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
}

// RepoOverlays holds everything a profile pushes into a project
type RepoOverlays struct {
	ClaudeMd *ClaudeMdOverlay `json:"claude_md,omitempty"`
	Skills   []FileOverlay    `json:"skills,omitempty"`
	Commands []FileOverlay    `json:"commands,omitempty"`
	Agents   []FileOverlay    `json:"agents,omitempty"`
}

// Profile is a named, reusable bundle of configuration overlays. It is an
// immutable snapshot during planning; the planner never mutates it.
type Profile struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Overlays RepoOverlays `json:"repo_overlays"`
}

// IsEmpty reports whether the profile carries no overlays at all
func (p *Profile) IsEmpty() bool {
	return p.Overlays.ClaudeMd == nil &&
		len(p.Overlays.Skills) == 0 &&
		len(p.Overlays.Commands) == 0 &&
		len(p.Overlays.Agents) == 0
}
