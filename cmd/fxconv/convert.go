package fxconv

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/arthur-debert/fxconv/pkg/convert"
	"github.com/arthur-debert/fxconv/pkg/download"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/filesystem"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/paths"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/arthur-debert/fxconv/pkg/ui"
	"github.com/arthur-debert/fxconv/pkg/ui/output/styles"
	"github.com/spf13/cobra"
)

type convertFlags struct {
	classify          bool
	mode              string
	classifyToFolders bool
	singleVehicle     bool
	keepOriginal      bool
	downloadDir       string
	format            string
}

// overrides maps explicitly set flags onto config keys
func (f *convertFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	set := func(flag, key string, value interface{}) {
		if cmd.Flags().Changed(flag) {
			out[key] = value
		}
	}
	set("classify", "options.classify_files", f.classify)
	set("mode", "options.classification_mode", f.mode)
	set("classify-to-folders", "options.classify_to_folders", f.classifyToFolders)
	set("single-vehicle", "options.single_vehicle", f.singleVehicle)
	set("keep-original", "options.keep_original", f.keepOriginal)
	set("download-dir", "download.dir", f.downloadDir)
	return out
}

func newConvertCmd(opts *globalOptions) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:     "convert [archives-or-urls...]",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand("convert", args)
			return runConvert(cmd, opts, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.classify, "classify", false, MsgFlagClassify)
	cmd.Flags().StringVar(&flags.mode, "mode", types.ByDlcName.String(), MsgFlagMode)
	cmd.Flags().BoolVar(&flags.classifyToFolders, "classify-to-folders", false, MsgFlagClassifyToFolders)
	cmd.Flags().BoolVar(&flags.singleVehicle, "single-vehicle", false, MsgFlagSingleVehicle)
	cmd.Flags().BoolVar(&flags.keepOriginal, "keep-original", true, MsgFlagKeepOriginal)
	cmd.Flags().StringVar(&flags.downloadDir, "download-dir", "", MsgFlagDownloadDir)
	cmd.Flags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)

	_ = cmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return types.ClassificationModes(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runConvert(cmd *cobra.Command, opts *globalOptions, flags *convertFlags, args []string) error {
	logger := logging.GetLogger("cmd.convert")

	if len(args) == 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrNoArchives)
	}

	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}

	cfg, err := opts.loadConfig(flags.overrides(cmd))
	if err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()

	downloadDir := cfg.Download.Dir
	if !filepath.IsAbs(downloadDir) {
		downloadDir = filepath.Join(opts.baseDir, downloadDir)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Download.Timeout)
	defer cancel()

	downloader := download.New(fsys, downloadDir, &http.Client{Timeout: cfg.Download.Timeout})
	inputs, err := downloader.Resolve(ctx, args)
	if err != nil {
		return err
	}

	logger.Info().
		Strs("archives", inputs).
		Interface("options", cfg.PlacementOptions()).
		Msg("Starting conversion")

	converter := convert.New(fsys, paths.New(opts.baseDir), registry)
	progress := ui.NewProgress(os.Stderr, len(inputs), styles.IsTerminal(os.Stderr))
	converter.OnArchive = progress.OnArchive

	result, err := converter.Convert(types.NewInputArchives(inputs), cfg.PlacementOptions())
	progress.Stop()
	if err != nil {
		return err
	}

	return ui.NewRenderer(format, cmd.OutOrStdout()).RenderSummary(result, len(inputs))
}
