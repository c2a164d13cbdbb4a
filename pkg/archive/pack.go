package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/types"
)

// Pack archives every file under srcDir into destPath, with entry names
// relative to srcDir. The zip is written next to destPath and renamed
// into place, so a failed run never clobbers a previous package.
func Pack(fsys types.FS, srcDir, destPath string) error {
	logger := logging.GetLogger("archive.pack")
	done := logging.LogOperationStart(logger, "pack")
	defer done()

	if info, err := fsys.Stat(srcDir); err != nil {
		return packError(err, destPath, "cannot read output tree")
	} else if !info.IsDir() {
		return errors.Newf(errors.ErrPack, "%s is not a directory", srcDir).
			WithDetail(errors.DetailStage, "pack").
			WithDetail(errors.DetailPath, destPath)
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return packError(err, destPath, "cannot create package directory")
		}
	}

	tmpPath := destPath + ".tmp"
	count, err := writeZip(fsys, srcDir, tmpPath)
	if err != nil {
		_ = fsys.Remove(tmpPath)
		return packError(err, destPath, "cannot write package")
	}

	if err := fsys.Rename(tmpPath, destPath); err != nil {
		_ = fsys.Remove(tmpPath)
		return packError(err, destPath, "cannot move package into place")
	}

	logger.Info().
		Str("package", destPath).
		Int("files", count).
		Msg("Package written")

	return nil
}

// writeZip streams srcDir into a new zip at zipPath and returns the
// number of files written
func writeZip(fsys types.FS, srcDir, zipPath string) (int, error) {
	out, err := fsys.Create(zipPath)
	if err != nil {
		return 0, err
	}

	zw := zip.NewWriter(out)
	registerWriterCodecs(zw)

	count := 0
	walkErr := fsys.Walk(srcDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		if err := copyFile(fsys, p, w); err != nil {
			return err
		}
		count++
		return nil
	})

	closeErr := zw.Close()
	if err := out.Close(); err != nil && closeErr == nil {
		closeErr = err
	}
	if walkErr != nil {
		return count, walkErr
	}
	return count, closeErr
}

func copyFile(fsys types.FS, path string, w io.Writer) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(w, f)
	return err
}

func packError(err error, destPath, message string) *errors.ConvError {
	return errors.Wrap(err, errors.ErrPack, message).
		WithDetail(errors.DetailStage, "pack").
		WithDetail(errors.DetailPath, destPath)
}
