package fxconv

import (
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/ui"
	"github.com/spf13/cobra"
)

func newRulesCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			cfg, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			return ui.NewRenderer(f, cmd.OutOrStdout()).RenderRules(cfg.Rules())
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	return cmd
}
