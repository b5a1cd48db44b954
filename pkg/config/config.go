// Package config loads dotclaude's layered configuration: embedded defaults,
// then the user's XDG config file, then DOTCLAUDE_* environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotclaude/pkg/errors"
)

//go:embed dotclaude.toml
var defaultConfig []byte

// Config is the resolved application configuration
type Config struct {
	// BackupsDir is where backup archives are written
	BackupsDir string

	// GateOnErrors refuses to apply plans carrying error-severity warnings
	GateOnErrors bool

	// GitCheck enables the advisory dirty-working-tree warning while planning
	GitCheck bool
}

// Load resolves configuration in precedence order: defaults, user config
// file, environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse built-in defaults")
	}

	userConfig := filepath.Join(xdg.ConfigHome, "dotclaude", "config.toml")
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"cannot load %s", userConfig)
		}
	}

	// DOTCLAUDE_APPLY_GATE_ON_ERRORS=false -> apply.gate_on_errors
	if err := k.Load(env.Provider("DOTCLAUDE_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "DOTCLAUDE_"))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load environment overrides")
	}

	cfg := &Config{
		BackupsDir:   k.String("backups.dir"),
		GateOnErrors: k.Bool("apply.gate_on_errors"),
		GitCheck:     k.Bool("plan.git_check"),
	}
	if cfg.BackupsDir == "" {
		cfg.BackupsDir = filepath.Join(xdg.DataHome, "dotclaude", "backups")
	}
	return cfg, nil
}

// rawBytesProvider feeds embedded bytes to koanf
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider only supports ReadBytes")
}
