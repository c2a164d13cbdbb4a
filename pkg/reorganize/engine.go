package reorganize

import (
	stderrors "errors"
	"os"
	"path"
	"path/filepath"

	"github.com/arthur-debert/fxconv/pkg/archive"
	"github.com/arthur-debert/fxconv/pkg/classifier"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/paths"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/rs/zerolog"
)

// Move records one file relocated into the stream tree
type Move struct {
	// Archive is the input archive the file came from
	Archive string
	// Source is the slash path inside the archive
	Source string
	// Destination is the slash path relative to the stream root
	Destination string
	// DataType is the manifest tag for the file, empty when untyped, for
	// vehicle containers, or when the engine has no registry
	DataType string
}

// Result is what a successful Run produced
type Result struct {
	StreamDir string
	Moves     []Move
}

// ArchiveFunc is called before each archive is processed
type ArchiveFunc func(index, total int, archive types.InputArchive)

// Engine extracts and reorganizes archives on a filesystem
type Engine struct {
	fs       types.FS
	layout   paths.Layout
	registry *rules.Registry
	logger   zerolog.Logger

	// OnArchive, when set, reports progress
	OnArchive ArchiveFunc
}

// NewEngine creates an engine working under layout. registry may be nil, in
// which case moves carry no data type.
func NewEngine(fsys types.FS, layout paths.Layout, registry *rules.Registry) *Engine {
	return &Engine{
		fs:       fsys,
		layout:   layout,
		registry: registry,
		logger:   logging.GetLogger("reorganize.engine"),
	}
}

// Run processes archives in order and builds the stream tree. Any failure
// aborts the run. The extraction workspace is removed before returning.
func (e *Engine) Run(archives []types.InputArchive, opts types.PlacementOptions) (result *Result, err error) {
	done := logging.LogOperationStart(e.logger, "reorganize")
	defer done()

	if len(archives) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no archives to convert").
			WithDetail(errors.DetailStage, "reorganize")
	}

	workDir := e.layout.ExtractDir()
	defer e.cleanup(workDir)

	streamDir := e.layout.StreamDir()
	if err := e.fs.MkdirAll(streamDir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrConversion, "cannot create stream directory").
			WithDetail(errors.DetailStage, "reorganize").
			WithDetail(errors.DetailPath, streamDir)
	}

	cls := classifier.New(opts)
	result = &Result{StreamDir: streamDir}

	for i, a := range archives {
		if e.OnArchive != nil {
			e.OnArchive(i, len(archives), a)
		}

		moves, err := e.processArchive(i, a, cls, opts)
		if err != nil {
			return nil, err
		}
		result.Moves = append(result.Moves, moves...)
	}

	e.logger.Info().
		Int("archives", len(archives)).
		Int("files", len(result.Moves)).
		Str("stream", streamDir).
		Msg("Reorganization complete")

	return result, nil
}

// processArchive extracts one archive and moves its files into the stream
func (e *Engine) processArchive(index int, a types.InputArchive, cls *classifier.Classifier, opts types.PlacementOptions) ([]Move, error) {
	extractDir := e.layout.ArchiveExtractDir(index, a.Name())

	e.logger.Debug().
		Str("archive", a.Path).
		Str("dir", extractDir).
		Str("streamRoot", cls.StreamRoot(a)).
		Msg("Processing archive")

	if err := archive.Extract(e.fs, a.Path, extractDir); err != nil {
		return nil, err
	}

	var moves []Move
	walkErr := e.fs.Walk(extractDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(extractDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		dest := cls.Destination(a, rel)
		if err := e.place(p, dest); err != nil {
			return errors.Wrapf(err, errors.ErrConversion, "cannot move %s", rel).
				WithDetail(errors.DetailPath, rel)
		}

		m := Move{Archive: a.Path, Source: rel, Destination: dest}
		if name := path.Base(dest); e.registry != nil && !rules.IsVehicleContainer(name) {
			m.DataType, _ = e.registry.Classify(name)
		}
		moves = append(moves, m)

		e.logger.Trace().
			Str("source", rel).
			Str("destination", dest).
			Str("type", m.DataType).
			Msg("Moved file")
		return nil
	})
	if walkErr != nil {
		return nil, conversionError(walkErr, a.Path, "cannot reorganize archive")
	}

	if !opts.KeepOriginal {
		if err := e.fs.Remove(a.Path); err != nil && !os.IsNotExist(err) {
			return nil, conversionError(err, a.Path, "cannot remove source archive")
		}
		e.logger.Debug().Str("archive", a.Path).Msg("Removed source archive")
	}

	return moves, nil
}

// place moves src to dest (relative to the stream root), replacing any
// file already there
func (e *Engine) place(src, dest string) error {
	target := filepath.Join(e.layout.StreamDir(), filepath.FromSlash(dest))
	if err := e.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if info, err := e.fs.Stat(target); err == nil {
		if info.IsDir() {
			return errors.Newf(errors.ErrConversion, "destination %s is a directory", dest)
		}
		e.logger.Debug().Str("destination", dest).Msg("Replacing existing file")
		if err := e.fs.Remove(target); err != nil {
			return err
		}
	}
	return e.fs.Rename(src, target)
}

func (e *Engine) cleanup(workDir string) {
	if err := e.fs.RemoveAll(workDir); err != nil {
		e.logger.Warn().Err(err).Str("dir", workDir).Msg("Failed to clean up workspace")
	}
}

// conversionError wraps err unless it already is a typed failure, and tags
// it with the stage and archive
func conversionError(err error, archivePath, message string) *errors.ConvError {
	var ce *errors.ConvError
	if stderrors.As(err, &ce) && ce.Code == errors.ErrConversion {
		if _, ok := ce.Details[errors.DetailArchive]; !ok {
			ce = ce.WithDetail(errors.DetailArchive, archivePath)
		}
		return ce.WithDetail(errors.DetailStage, "reorganize")
	}
	return errors.Wrap(err, errors.ErrConversion, message).
		WithDetail(errors.DetailStage, "reorganize").
		WithDetail(errors.DetailArchive, archivePath)
}
