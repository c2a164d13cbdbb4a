package fxconv

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate keeps the log file out of the real state directory
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestConvertCommand(t *testing.T) {
	t.Run("converts_local_archives", func(t *testing.T) {
		base := t.TempDir()
		bikes := filepath.Join(base, "mod_bikes.zip")
		cars := filepath.Join(base, "mod_cars.zip")
		writeZip(t, bikes, map[string]string{"model.rpf": "b", "vehicles.meta": "b"})
		writeZip(t, cars, map[string]string{"model.rpf": "c", "vehicles.meta": "c"})

		out, err := run(t, "convert", "--base-dir", base, "--classify", "--format", "text", bikes, cars)
		require.NoError(t, err)

		output := filepath.Join(base, "converted_mods.zip")
		assert.Contains(t, out, output)
		assert.ElementsMatch(t, []string{
			"bikes/mods/model.rpf",
			"bikes/vehicles.meta",
			"cars/mods/model.rpf",
			"cars/vehicles.meta",
			"fxmanifest.lua",
		}, zipNames(t, output))

		_, err = os.Stat(filepath.Join(base, "temp_extracted"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(bikes)
		assert.NoError(t, err, "originals are kept by default")
	})

	t.Run("keep_original_false_removes_inputs", func(t *testing.T) {
		base := t.TempDir()
		a := filepath.Join(base, "mod_a.zip")
		writeZip(t, a, map[string]string{"handling.meta": "h"})

		_, err := run(t, "convert", "--base-dir", base, "--keep-original=false", "--format", "yaml", a)
		require.NoError(t, err)

		_, err = os.Stat(a)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("config_file_options_apply", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "fxconv.toml"),
			[]byte("[options]\nclassify_to_folders = true\n"), 0644))
		a := filepath.Join(base, "mod_a.zip")
		writeZip(t, a, map[string]string{"data/carcols.meta": "c"})

		_, err := run(t, "convert", "--base-dir", base, "--format", "text", a)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"data/carcols.meta", "fxmanifest.lua"},
			zipNames(t, filepath.Join(base, "converted_mods.zip")))
	})

	t.Run("no_archives", func(t *testing.T) {
		_, err := run(t, "convert", "--base-dir", t.TempDir())
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("bad_mode", func(t *testing.T) {
		_, err := run(t, "convert", "--base-dir", t.TempDir(), "--mode", "sideways", "x.zip")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("bad_archive", func(t *testing.T) {
		base := t.TempDir()
		bad := filepath.Join(base, "bad.zip")
		require.NoError(t, os.WriteFile(bad, []byte("nope"), 0644))

		_, err := run(t, "convert", "--base-dir", base, bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExtract))
		_, statErr := os.Stat(filepath.Join(base, "converted_mods.zip"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestRulesCommand(t *testing.T) {
	t.Run("yaml_lists_effective_rules", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "fxconv.toml"),
			[]byte("[[data_files]]\npattern = \"*.xml\"\ntype = \"CUSTOM\"\n"), 0644))

		out, err := run(t, "rules", "--base-dir", base, "--format", "yaml")
		require.NoError(t, err)

		var decoded map[string][]rules.Rule
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		list := decoded["data_files"]
		require.Len(t, list, len(rules.DefaultRules())+1)
		assert.Equal(t, rules.Rule{Pattern: "*.xml", DataType: "CUSTOM"}, list[0])
	})

	t.Run("bad_format", func(t *testing.T) {
		_, err := run(t, "rules", "--base-dir", t.TempDir(), "--format", "xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestGenConfigCommand(t *testing.T) {
	t.Run("prints_to_stdout", func(t *testing.T) {
		out, err := run(t, "gen-config")
		require.NoError(t, err)
		assert.Contains(t, out, "[options]")
		assert.Contains(t, out, "# keep_original = true")
	})

	t.Run("writes_once", func(t *testing.T) {
		base := t.TempDir()

		out, err := run(t, "gen-config", "-w", "--base-dir", base)
		require.NoError(t, err)
		target := filepath.Join(base, "fxconv.toml")
		assert.Contains(t, out, target)
		_, err = os.Stat(target)
		require.NoError(t, err)

		_, err = run(t, "gen-config", "-w", "--base-dir", base)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestMiscCommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out, err := run(t, "version")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "fxconv version "))
	})

	t.Run("completion", func(t *testing.T) {
		out, err := run(t, "completion", "bash")
		require.NoError(t, err)
		assert.Contains(t, out, "fxconv")
	})

	t.Run("man", func(t *testing.T) {
		out, err := run(t, "man")
		require.NoError(t, err)
		assert.Contains(t, out, "FXCONV")
	})

	t.Run("no_command", func(t *testing.T) {
		_, err := run(t)
		assert.Error(t, err)
	})
}
