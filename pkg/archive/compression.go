package archive

import (
	"archive/zip"
	"io"

	"github.com/klauspost/compress/flate"
)

// newFlateWriter compresses zip entries with klauspost's deflate
func newFlateWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.DefaultCompression)
}

// newFlateReader decompresses zip entries with klauspost's inflate
func newFlateReader(r io.Reader) io.ReadCloser {
	return flate.NewReader(r)
}

// registerReaderCodecs swaps the Deflate decompressor on a reader
func registerReaderCodecs(zr *zip.Reader) {
	zr.RegisterDecompressor(zip.Deflate, newFlateReader)
}

// registerWriterCodecs swaps the Deflate compressor on a writer
func registerWriterCodecs(zw *zip.Writer) {
	zw.RegisterCompressor(zip.Deflate, newFlateWriter)
}
