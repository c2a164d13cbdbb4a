// Package manifest builds the fxmanifest.lua that declares the content
// of a converted resource.
//
// Output looks like:
//
//	fx_version 'cerulean'
//	game 'gta5'
//
//	data_file 'VEHICLE_METADATA_FILE' 'bikes/vehicles.meta'
//	files {
//	    'data/**/bikes/vehicles.meta',
//	}
//
// The files block is only present when files were sorted into folders.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/paths"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/types"
)

// Header lines every manifest starts with
const (
	FxVersion = "cerulean"
	Game      = "gta5"
)

// WildcardPrefix is prepended to files block entries, and to declared file
// names when the tree was sorted into folders
const WildcardPrefix = "data/**/"

// DataFile is one data_file declaration
type DataFile struct {
	DataType string
	Path     string
}

// Document is a manifest ready to be rendered
type Document struct {
	Header    []string
	DataFiles []DataFile
	// Files is rendered as a files block when FilesBlock is set
	Files      []string
	FilesBlock bool
}

// NewDocument returns a document with the standard header
func NewDocument() *Document {
	return &Document{
		Header: []string{
			fmt.Sprintf("fx_version '%s'", FxVersion),
			fmt.Sprintf("game '%s'", Game),
		},
	}
}

// Generate walks streamDir in lexical order and declares every file the
// registry recognizes. Vehicle containers are never declared, they only
// show up in the files block. An existing manifest in streamDir is ignored.
func Generate(fsys types.FS, streamDir string, registry *rules.Registry, opts types.PlacementOptions) (*Document, error) {
	logger := logging.GetLogger("manifest")

	doc := NewDocument()
	doc.FilesBlock = opts.ClassifyToFolders
	manifestPath := filepath.Join(streamDir, paths.ManifestFileName)

	err := fsys.Walk(streamDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || p == manifestPath {
			return nil
		}

		rel, err := filepath.Rel(streamDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		name := path.Base(rel)

		doc.Files = append(doc.Files, WildcardPrefix+rel)

		dataType, ok := registry.Classify(name)
		if !ok {
			logger.Trace().Str("file", rel).Msg("No data type, not declared")
			return nil
		}
		if rules.IsVehicleContainer(name) {
			return nil
		}

		declared := rel
		if opts.ClassifyToFolders {
			declared = WildcardPrefix + name
		}
		doc.DataFiles = append(doc.DataFiles, DataFile{DataType: dataType, Path: declared})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConversion, "cannot scan stream tree").
			WithDetail(errors.DetailStage, "manifest").
			WithDetail(errors.DetailPath, streamDir)
	}

	logger.Debug().
		Int("declarations", len(doc.DataFiles)).
		Int("files", len(doc.Files)).
		Bool("filesBlock", doc.FilesBlock).
		Msg("Manifest generated")

	return doc, nil
}

// WriteTo renders the document
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	for _, line := range d.Header {
		fmt.Fprintln(cw, line)
	}
	fmt.Fprintln(cw)

	for _, df := range d.DataFiles {
		fmt.Fprintf(cw, "data_file '%s' '%s'\n", df.DataType, df.Path)
	}

	if d.FilesBlock {
		fmt.Fprintln(cw, "files {")
		for _, f := range d.Files {
			fmt.Fprintf(cw, "    '%s',\n", f)
		}
		fmt.Fprintln(cw, "}")
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// Write renders doc to the manifest file at the root of streamDir
func Write(fsys types.FS, streamDir string, doc *Document) error {
	target := filepath.Join(streamDir, paths.ManifestFileName)

	f, err := fsys.Create(target)
	if err != nil {
		return writeError(err, target)
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return writeError(err, target)
	}
	if err := f.Close(); err != nil {
		return writeError(err, target)
	}

	logger := logging.GetLogger("manifest")
	logger.Debug().Str("path", target).Msg("Manifest written")
	return nil
}

func writeError(err error, target string) error {
	return errors.Wrap(err, errors.ErrConversion, "cannot write manifest").
		WithDetail(errors.DetailStage, "manifest").
		WithDetail(errors.DetailPath, target)
}

// countingWriter keeps the first error so rendering can ignore per-line
// results
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
