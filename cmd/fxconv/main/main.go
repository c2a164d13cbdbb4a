package main

import (
	"os"

	"github.com/arthur-debert/fxconv/cmd/fxconv"
	"github.com/arthur-debert/fxconv/pkg/ui"
	"github.com/arthur-debert/fxconv/pkg/ui/output/styles"
)

func main() {
	styles.ConfigureColor(os.Stdout)

	rootCmd := fxconv.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = ui.NewRenderer(ui.FormatText, os.Stderr).RenderError(err)
		os.Exit(1)
	}
}
