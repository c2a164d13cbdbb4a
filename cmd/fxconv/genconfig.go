package fxconv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/fxconv/pkg/config"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			target := filepath.Join(opts.baseDir, config.FileNames[0])
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, target).
					WithDetail(errors.DetailPath, target)
			}
			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot write config").
					WithDetail(errors.DetailPath, target)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", target)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
