package profile

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var frontmatterDelim = []byte("---\n")

type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// parseFrontmatter extracts the leading YAML block of an overlay file, if
// any. Malformed frontmatter is treated as absent; the file body is pushed
// verbatim either way, so nothing is lost.
func parseFrontmatter(content []byte) (frontmatter, bool) {
	var fm frontmatter

	if !bytes.HasPrefix(content, frontmatterDelim) {
		return fm, false
	}

	rest := content[len(frontmatterDelim):]
	end := bytes.Index(rest, frontmatterDelim)
	if end < 0 {
		return fm, false
	}

	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return frontmatter{}, false
	}
	return fm, true
}
