// Package download fetches remote archives so the converter only ever sees
// local paths.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/logging"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// Downloader saves remote files into one directory
type Downloader struct {
	fs     types.FS
	dir    string
	client *http.Client
	logger zerolog.Logger
	count  int
}

// New creates a downloader writing into dir. A nil client means
// http.DefaultClient.
func New(fsys types.FS, dir string, client *http.Client) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{
		fs:     fsys,
		dir:    dir,
		client: client,
		logger: logging.GetLogger("download"),
	}
}

// IsRemote reports whether input should be fetched rather than read locally
func IsRemote(input string) bool {
	lower := strings.ToLower(input)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Resolve returns local paths for inputs, fetching the remote ones in order.
// The first failure stops the resolution.
func (d *Downloader) Resolve(ctx context.Context, inputs []string) ([]string, error) {
	resolved := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if !IsRemote(input) {
			resolved = append(resolved, input)
			continue
		}
		local, err := d.Fetch(ctx, input)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, local)
	}
	return resolved, nil
}

// Fetch downloads rawURL into the download directory and returns the local
// path. A partial file is removed on failure.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) (string, error) {
	target := filepath.Join(d.dir, d.fileName(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", downloadError(err, rawURL, "invalid download URL")
	}

	d.logger.Info().Str("url", rawURL).Str("target", target).Msg("Downloading archive")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", downloadError(err, rawURL, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.ErrDownload, "unexpected status %s", resp.Status).
			WithDetail(errors.DetailStage, "download").
			WithDetail(errors.DetailURL, rawURL).
			WithDetail("status", resp.StatusCode)
	}

	if err := d.fs.MkdirAll(d.dir, 0755); err != nil {
		return "", downloadError(err, rawURL, "cannot create download directory")
	}

	out, err := d.fs.Create(target)
	if err != nil {
		return "", downloadError(err, rawURL, "cannot create download file")
	}

	n, copyErr := io.Copy(out, resp.Body)
	closeErr := out.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		_ = d.fs.Remove(target)
		return "", downloadError(copyErr, rawURL, "cannot save download")
	}

	d.logger.Info().
		Str("target", target).
		Str("size", humanize.Bytes(uint64(n))).
		Msg("Download complete")

	return target, nil
}

// fileName picks the local name from the last URL path segment, falling
// back to a numbered name
func (d *Downloader) fileName(rawURL string) string {
	d.count++
	if u, err := url.Parse(rawURL); err == nil {
		name := path.Base(u.Path)
		if name != "." && name != "/" && name != "" && name != ".." {
			return name
		}
	}
	return fmt.Sprintf("download-%d.zip", d.count)
}

func downloadError(err error, rawURL, message string) *errors.ConvError {
	return errors.Wrap(err, errors.ErrDownload, message).
		WithDetail(errors.DetailStage, "download").
		WithDetail(errors.DetailURL, rawURL)
}
