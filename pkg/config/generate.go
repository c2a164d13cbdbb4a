package config

import (
	"strings"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk shape written by GenerateConfigContent
type fileConfig struct {
	Options   fileOptions  `toml:"options"`
	Download  fileDownload `toml:"download"`
	DataFiles []fileRule   `toml:"data_files,omitempty"`
}

type fileOptions struct {
	ClassifyFiles      bool                     `toml:"classify_files"`
	ClassificationMode types.ClassificationMode `toml:"classification_mode"`
	ClassifyToFolders  bool                     `toml:"classify_to_folders"`
	SingleVehicle      bool                     `toml:"single_vehicle"`
	KeepOriginal       bool                     `toml:"keep_original"`
}

type fileDownload struct {
	Dir     string `toml:"dir"`
	Timeout string `toml:"timeout"`
}

type fileRule struct {
	Pattern string `toml:"pattern"`
	Type    string `toml:"type"`
}

const generatedHeader = `# fxconv configuration
#
# Uncomment and edit the values you want to change. Extra rules go in
# [[data_files]] tables and are checked before the built-in ones:
#
# [[data_files]]
# pattern = "*.ymt"
# type = "MY_DATA_TYPE"

`

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	out := fileConfig{
		Options: fileOptions{
			ClassifyFiles:      cfg.Options.ClassifyFiles,
			ClassificationMode: cfg.Options.ClassificationMode,
			ClassifyToFolders:  cfg.Options.ClassifyToFolders,
			SingleVehicle:      cfg.Options.SingleVehicle,
			KeepOriginal:       cfg.Options.KeepOriginal,
		},
		Download: fileDownload{
			Dir:     cfg.Download.Dir,
			Timeout: cfg.Download.Timeout.String(),
		},
	}
	for _, rc := range cfg.DataFiles {
		out.DataFiles = append(out.DataFiles, fileRule{Pattern: rc.Pattern, Type: rc.Type})
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode configuration")
	}
	return data, nil
}

// GenerateConfigContent returns a starter fxconv.toml with every default
// value commented out
func GenerateConfigContent() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out every assignment, keeping blank lines,
// comments and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
