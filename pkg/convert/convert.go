// Package convert runs a whole conversion: reorganize the input archives,
// write the manifest, package the stream tree and clean up.
package convert

import (
	"github.com/arthur-debert/fxconv/pkg/archive"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/manifest"
	"github.com/arthur-debert/fxconv/pkg/paths"
	"github.com/arthur-debert/fxconv/pkg/reorganize"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/rs/zerolog"
)

// Result describes a finished conversion
type Result struct {
	// OutputPath is the written package
	OutputPath string
	// Size is the package size in bytes
	Size     int64
	Moves    []reorganize.Move
	Manifest *manifest.Document
}

// Converter owns the workspace under one base directory
type Converter struct {
	fs       types.FS
	layout   paths.Layout
	registry *rules.Registry
	logger   zerolog.Logger

	// OnArchive is passed to the reorganize engine
	OnArchive reorganize.ArchiveFunc
}

// New creates a converter. A nil registry means the built-in rules.
func New(fsys types.FS, layout paths.Layout, registry *rules.Registry) *Converter {
	if registry == nil {
		registry = rules.NewDefaultRegistry()
	}
	return &Converter{
		fs:       fsys,
		layout:   layout,
		registry: registry,
		logger:   logging.GetLogger("convert"),
	}
}

// Layout returns the paths the converter works with
func (c *Converter) Layout() paths.Layout {
	return c.layout
}

// Convert turns archives into a single package at the layout's output
// path. The workspace is discarded whether or not the run succeeds, and a
// failed run leaves any previous package in place.
func (c *Converter) Convert(archives []types.InputArchive, opts types.PlacementOptions) (*Result, error) {
	done := logging.LogOperationStart(c.logger, "convert")
	defer done()

	workspace := c.layout.WorkspaceRoot()
	if err := c.fs.RemoveAll(workspace); err != nil {
		return nil, errors.Wrap(err, errors.ErrConversion, "cannot clear stale workspace").
			WithDetail(errors.DetailStage, "prepare").
			WithDetail(errors.DetailPath, workspace)
	}
	defer func() {
		if err := c.fs.RemoveAll(workspace); err != nil {
			c.logger.Warn().Err(err).Str("dir", workspace).Msg("Failed to remove workspace")
		}
	}()

	if opts.SingleVehicle {
		c.logger.Debug().Msg("single vehicle mode has no effect on placement")
	}

	engine := reorganize.NewEngine(c.fs, c.layout, c.registry)
	engine.OnArchive = c.OnArchive
	reorganized, err := engine.Run(archives, opts)
	if err != nil {
		return nil, err
	}

	doc, err := manifest.Generate(c.fs, reorganized.StreamDir, c.registry, opts)
	if err != nil {
		return nil, err
	}
	if err := manifest.Write(c.fs, reorganized.StreamDir, doc); err != nil {
		return nil, err
	}

	output := c.layout.OutputArchive()
	if err := archive.Pack(c.fs, reorganized.StreamDir, output); err != nil {
		return nil, err
	}

	result := &Result{
		OutputPath: output,
		Moves:      reorganized.Moves,
		Manifest:   doc,
	}
	if info, err := c.fs.Stat(output); err == nil {
		result.Size = info.Size()
	}

	c.logger.Info().
		Str("output", output).
		Int("archives", len(archives)).
		Int("files", len(result.Moves)).
		Int("declarations", len(doc.DataFiles)).
		Msg("Conversion complete")

	return result, nil
}
