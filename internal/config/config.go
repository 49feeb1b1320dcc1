// Package config resolves the small set of knobs a trashcan
// deployment needs beyond the core's pure function: whether to force
// home-trash placement, an optional override of the home trash root,
// and a NAME_MAX override for filesystems that document a smaller
// limit than this module's built-in default. Ported from the
// teacher's yaml+validator config loader, trimmed to this domain.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/trashcan/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

// Config holds user-tunable behaviour for the CLI layer. None of
// these fields are consulted by internal/xdgcore directly; the CLI
// applies them (e.g. via xdgcore.SetNameMax) before calling
// SoftDelete.
type Config struct {
	// ForceHomeTrash skips top-dir discovery and always targets
	// $XDG_DATA_HOME/Trash, even for sources on other devices (which
	// then fail RenameFailed instead of landing on-device).
	ForceHomeTrash bool `yaml:"force_home_trash"`

	// HomeTrashDir overrides the home trash root directory. Empty
	// means the default ($XDG_DATA_HOME/Trash or
	// $HOME/.local/share/Trash).
	HomeTrashDir string `yaml:"home_trash_dir" validate:"validDirPath"`

	// NameMax overrides the NAME_MAX used for candidate-name length
	// checks; 0 means "use the built-in default". This exists because
	// Go has no cgo-free pathconf(3) binding to query the real value.
	NameMax int `yaml:"name_max" validate:"gte=0"`

	Debug bool `yaml:"debug"`
}

type parser struct{}

func (p parser) getDefaultConfig() Config {
	return Config{
		ForceHomeTrash: false,
		HomeTrashDir:   "",
		NameMax:        0,
		Debug:          false,
	}
}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(p.getDefaultConfig())
	return string(content)
}

type configError struct {
	configPath string
	parser     parser
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.TRASHCAN_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		return os.MkdirAll(dirPath, os.ModePerm)
	}
	return nil
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.WriteString(p.getDefaultConfigContents())
		return err
	}
	return nil
}

func (p parser) ensureConfigFile(explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = env.TRASHCAN_CONFIG_PATH
	}

	if err := p.createConfigFile(path); err != nil {
		return "", configError{parser: p, configPath: path, err: err}
	}
	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (p parser) readConfigFile(path string) (Config, error) {
	cfg := p.getDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{parser: p, configPath: path, err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return cfg, fmt.Errorf("field %s is invalid: %q", verrs[0].Field(), verrs[0].Value())
		}
		return cfg, err
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("validDirPath", validateDirPath)
	return parser{}
}

// Load resolves the config file (explicit path, else the default XDG
// location), creating a starter file if none exists, and returns the
// parsed, validated Config. HomeTrashDir, if set, is expanded
// ("~", env vars) before being returned.
func Load(explicitPath string) (Config, error) {
	p := initParser()

	path, err := p.ensureConfigFile(explicitPath)
	if err != nil {
		return Config{}, parsingError{err: err}
	}
	slog.Debug("config file found", "config-file", path)

	cfg, err := p.readConfigFile(path)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	if cfg.HomeTrashDir != "" {
		expanded, err := expandPath(cfg.HomeTrashDir)
		if err != nil {
			return cfg, fmt.Errorf("expand home_trash_dir: %w", err)
		}
		cfg.HomeTrashDir = expanded
	}

	return cfg, nil
}
