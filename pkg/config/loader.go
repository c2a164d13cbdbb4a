package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileNames are the config files looked up in the base directory, in order
var FileNames = []string{"fxconv.toml", ".fxconv.toml", "fxconv.yaml"}

// LoadOptions selects the layers to load
type LoadOptions struct {
	// BaseDir is searched for a config file when File is empty
	BaseDir string

	// File is an explicit config file; it must exist
	File string

	// Overrides are dotted keys such as "options.keep_original"
	Overrides map[string]interface{}
}

// Default returns the embedded defaults only
func Default() (*Config, error) {
	return Load(LoadOptions{})
}

// Load builds the layered configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	source, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		parser, err := parserFor(source)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(source), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail(errors.DetailPath, source)
		}
		logger.Debug().Str("file", source).Msg("Loaded config file")
	}

	// 3. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// The mode is checked on its raw value so a typo reads as invalid
	// config rather than a decode failure
	if raw := k.String("options.classification_mode"); raw != "" {
		if _, err := types.ParseClassificationMode(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid options.classification_mode").
				WithDetail(errors.DetailPath, source)
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Interface("options", cfg.Options).
		Int("userRules", len(cfg.DataFiles)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// findConfigFile returns the config file to load, or "" when there is none
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.File).
				WithDetail(errors.DetailPath, opts.File)
		}
		return opts.File, nil
	}

	if opts.BaseDir == "" {
		return "", nil
	}

	for _, name := range FileNames {
		path := filepath.Join(opts.BaseDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail(errors.DetailPath, path)
	}
}
