package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/fxconv/pkg/convert"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/manifest"
	"github.com/arthur-debert/fxconv/pkg/paths"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/testutil"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/arthur-debert/fxconv/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sampleResult() *convert.Result {
	return &convert.Result{
		OutputPath: "/srv/converted_mods.zip",
		Size:       2048,
		Manifest: &manifest.Document{
			DataFiles: []manifest.DataFile{
				{DataType: "VEHICLE_METADATA_FILE", Path: "bikes/vehicles.meta"},
				{DataType: "VEHICLE_METADATA_FILE", Path: "cars/vehicles.meta"},
				{DataType: "HANDLING_FILE", Path: "cars/handling.meta"},
			},
			Files: []string{
				"data/**/bikes/vehicles.meta",
				"data/**/cars/handling.meta",
				"data/**/cars/readme.txt",
				"data/**/cars/vehicles.meta",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"table", ui.FormatTerminal, false},
		{"TEXT", ui.FormatText, false},
		{"yml", ui.FormatYAML, false},
		{"json", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}

	assert.Equal(t, "table", ui.FormatTerminal.String())
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.NewRenderer(ui.FormatAuto, &buf).Format(),
		"non-file writers get plain text")
	assert.Equal(t, ui.FormatYAML, ui.NewRenderer(ui.FormatYAML, &buf).Format())
}

func TestRenderSummary(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.NewRenderer(ui.FormatText, &buf).RenderSummary(sampleResult(), 2))

		out := buf.String()
		assert.Contains(t, out, "Conversion complete")
		assert.Contains(t, out, "/srv/converted_mods.zip")
		assert.Contains(t, out, "2.0 kB")
		assert.Contains(t, out, "VEHICLE_METADATA_FILE 2")
		assert.Contains(t, out, "HANDLING_FILE 1")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.NewRenderer(ui.FormatYAML, &buf).RenderSummary(sampleResult(), 2))

		var view ui.SummaryView
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
		assert.Equal(t, ui.NewSummaryView(sampleResult(), 2), view)
		assert.Equal(t, 4, view.Files)
		assert.Equal(t, map[string]int{"VEHICLE_METADATA_FILE": 2, "HANDLING_FILE": 1}, view.Types)
	})
}

func TestNewSummaryView(t *testing.T) {
	t.Run("counts_manifest_declarations_not_moves", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		mod := func(name string) map[string]string {
			return map[string]string{
				"stream/model.rpf":   "rpf " + name,
				"data/vehicles.meta": "<vehicles/>",
			}
		}
		bikes := env.Zip("mod_bikes.zip", mod("bikes"))
		cars := env.Zip("mod_cars.zip", mod("cars"))

		result, err := convert.New(env.FS, paths.New(env.Base), nil).Convert(
			types.NewInputArchives([]string{bikes, cars}),
			types.PlacementOptions{ClassifyFiles: true, ClassificationMode: types.ByDlcName, KeepOriginal: true},
		)
		require.NoError(t, err)
		require.Len(t, result.Manifest.DataFiles, 2)

		view := ui.NewSummaryView(result, 2)
		assert.Equal(t, map[string]int{"VEHICLE_METADATA_FILE": 2}, view.Types)
		assert.Equal(t, 4, view.Files)
	})

	t.Run("overwritten_files_count_once", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		first := env.Zip("a.zip", map[string]string{"handling.meta": "first"})
		second := env.Zip("b.zip", map[string]string{"handling.meta": "second"})

		result, err := convert.New(env.FS, paths.New(env.Base), nil).Convert(
			types.NewInputArchives([]string{first, second}),
			types.PlacementOptions{KeepOriginal: true},
		)
		require.NoError(t, err)
		require.Len(t, result.Moves, 2)

		view := ui.NewSummaryView(result, 2)
		assert.Equal(t, map[string]int{"HANDLING_FILE": 1}, view.Types)
		assert.Equal(t, 1, view.Files)
	})

	t.Run("missing_manifest_reports_nothing", func(t *testing.T) {
		view := ui.NewSummaryView(&convert.Result{OutputPath: "out.zip"}, 0)
		assert.Zero(t, view.Files)
		assert.Empty(t, view.Types)
	})
}

func TestRenderRules(t *testing.T) {
	list := []rules.Rule{
		{Pattern: "*.xml", DataType: "CUSTOM"},
		{Pattern: "*.rpf", DataType: "VEHICLE_METADATA_FILE"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.NewRenderer(ui.FormatText, &buf).RenderRules(list))
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		assert.Contains(t, string(lines[0]), "*.xml")
		assert.Contains(t, string(lines[1]), "VEHICLE_METADATA_FILE")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.NewRenderer(ui.FormatTerminal, &buf).RenderRules(list))
		assert.Contains(t, buf.String(), "Pattern")
		assert.Contains(t, buf.String(), "*.rpf")
	})

	t.Run("yaml_round_trips", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.NewRenderer(ui.FormatYAML, &buf).RenderRules(list))

		var decoded map[string][]rules.Rule
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, list, decoded["data_files"])
	})
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrExtract, "not a valid zip archive").
		WithDetail(errors.DetailStage, "extract")
	require.NoError(t, ui.NewRenderer(ui.FormatText, &buf).RenderError(err))
	assert.Equal(t, "Error: extract failed: [EXTRACT] not a valid zip archive\n", buf.String())
}

func TestProgress(t *testing.T) {
	t.Run("disabled_is_a_no_op", func(t *testing.T) {
		var buf bytes.Buffer
		p := ui.NewProgress(&buf, 3, false)
		p.OnArchive(0, 3, types.InputArchive{Path: "a.zip"})
		p.Stop()
		assert.Empty(t, buf.String())
	})
}
