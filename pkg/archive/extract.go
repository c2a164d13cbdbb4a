package archive

import (
	"archive/zip"
	stderrors "errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/types"
)

// extractEntry is one validated zip entry
type extractEntry struct {
	file *zip.File
	rel  string
	dir  bool
}

// Extract unpacks the zip at archivePath into destDir, preserving its
// internal directory structure. The source archive is left in place.
//
// The archive is opened and every entry name validated before destDir is
// touched, so an unreadable or malformed archive adds nothing to the
// workspace.
func Extract(fsys types.FS, archivePath, destDir string) error {
	logger := logging.GetLogger("archive.extract")

	f, err := fsys.Open(archivePath)
	if err != nil {
		return extractError(err, archivePath, "cannot open archive")
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return extractError(err, archivePath, "cannot stat archive")
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrExtract, "%s is a directory, not an archive", archivePath).
			WithDetail(errors.DetailStage, "extract").
			WithDetail(errors.DetailArchive, archivePath)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return extractError(err, archivePath, "not a valid zip archive")
	}
	registerReaderCodecs(zr)

	entries := make([]extractEntry, 0, len(zr.File))
	for _, zf := range zr.File {
		dir := strings.HasSuffix(zf.Name, "/") || zf.FileInfo().IsDir()
		rel, err := normalizeEntryPath(zf.Name)
		if err != nil {
			if dir && stderrors.Is(err, errEmptyEntryPath) {
				logger.Trace().Str("entry", zf.Name).Msg("Skipping root directory entry")
				continue
			}
			return extractError(err, archivePath, "unsafe entry in archive").
				WithDetail(errors.DetailPath, zf.Name)
		}
		entries = append(entries, extractEntry{file: zf, rel: rel, dir: dir})
	}

	if err := fsys.MkdirAll(destDir, 0755); err != nil {
		return extractError(err, archivePath, "cannot create extraction directory")
	}

	files := 0
	for _, entry := range entries {
		target := filepath.Join(destDir, filepath.FromSlash(entry.rel))
		if entry.dir {
			if err := fsys.MkdirAll(target, 0755); err != nil {
				return extractError(err, archivePath, "cannot create directory").
					WithDetail(errors.DetailPath, entry.rel)
			}
			continue
		}

		if parent := path.Dir(entry.rel); parent != "." {
			if err := fsys.MkdirAll(filepath.Join(destDir, filepath.FromSlash(parent)), 0755); err != nil {
				return extractError(err, archivePath, "cannot create directory").
					WithDetail(errors.DetailPath, parent)
			}
		}

		if err := extractFile(fsys, entry.file, target); err != nil {
			return extractError(err, archivePath, "cannot extract entry").
				WithDetail(errors.DetailPath, entry.rel)
		}
		files++
	}

	logger.Debug().
		Str("archive", archivePath).
		Str("dest", destDir).
		Int("files", files).
		Msg("Archive extracted")

	return nil
}

// extractFile copies one entry's contents to target
func extractFile(fsys types.FS, zf *zip.File, target string) error {
	rc, err := zf.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	w, err := fsys.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, rc); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func extractError(err error, archivePath, message string) *errors.ConvError {
	return errors.Wrap(err, errors.ErrExtract, message).
		WithDetail(errors.DetailStage, "extract").
		WithDetail(errors.DetailArchive, archivePath)
}
