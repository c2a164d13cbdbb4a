package config

import (
	"time"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/types"
)

// Config is the effective fxconv configuration
type Config struct {
	Options   OptionsConfig  `koanf:"options"`
	DataFiles []RuleConfig   `koanf:"data_files"`
	Download  DownloadConfig `koanf:"download"`

	// Source is the config file that was loaded, empty when only defaults
	// and overrides were used
	Source string `koanf:"-"`
}

// OptionsConfig mirrors types.PlacementOptions
type OptionsConfig struct {
	ClassifyFiles      bool                     `koanf:"classify_files"`
	ClassificationMode types.ClassificationMode `koanf:"classification_mode"`
	ClassifyToFolders  bool                     `koanf:"classify_to_folders"`
	SingleVehicle      bool                     `koanf:"single_vehicle"`
	KeepOriginal       bool                     `koanf:"keep_original"`
}

// RuleConfig is one [[data_files]] entry
type RuleConfig struct {
	Pattern string `koanf:"pattern"`
	Type    string `koanf:"type"`
}

// DownloadConfig controls remote archive fetching
type DownloadConfig struct {
	Dir     string        `koanf:"dir"`
	Timeout time.Duration `koanf:"timeout"`
}

// PlacementOptions returns the options for a conversion run
func (c *Config) PlacementOptions() types.PlacementOptions {
	return types.PlacementOptions{
		ClassifyFiles:      c.Options.ClassifyFiles,
		ClassificationMode: c.Options.ClassificationMode,
		ClassifyToFolders:  c.Options.ClassifyToFolders,
		SingleVehicle:      c.Options.SingleVehicle,
		KeepOriginal:       c.Options.KeepOriginal,
	}
}

// UserRules returns only the rules from the config file
func (c *Config) UserRules() []rules.Rule {
	out := make([]rules.Rule, 0, len(c.DataFiles))
	for _, rc := range c.DataFiles {
		out = append(out, rules.Rule{Pattern: rc.Pattern, DataType: rc.Type})
	}
	return out
}

// Rules returns the effective rule table: config rules first, then the
// built-in ones
func (c *Config) Rules() []rules.Rule {
	return rules.MergeRules(rules.DefaultRules(), c.UserRules())
}

// Registry compiles the effective rule table
func (c *Config) Registry() (*rules.Registry, error) {
	return rules.NewRegistry(c.Rules())
}

// Validate checks values that decoding alone does not catch
func (c *Config) Validate() error {
	switch c.Options.ClassificationMode {
	case types.ByDlcName, types.ByResourceType:
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid classification mode %d", int(c.Options.ClassificationMode))
	}

	for i, rc := range c.DataFiles {
		if rc.Pattern == "" {
			return errors.Newf(errors.ErrConfigValid, "data_files[%d]: pattern is required", i).
				WithDetail("index", i)
		}
		if rc.Type == "" {
			return errors.Newf(errors.ErrConfigValid, "data_files[%d] (%s): type is required", i, rc.Pattern).
				WithDetail("index", i)
		}
	}

	if c.Download.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "download.timeout must be positive, got %s", c.Download.Timeout)
	}

	return nil
}
