package testutil

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/fxconv/pkg/filesystem"
	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/stretchr/testify/require"
)

// BaseDir is where every Environment roots its files
const BaseDir = "/fxconv"

// Environment bundles an in-memory filesystem with its base directory
type Environment struct {
	t    *testing.T
	FS   types.FS
	Base string
}

// NewEnvironment creates an empty in-memory environment
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(BaseDir, 0755))
	return &Environment{t: t, FS: fs, Base: BaseDir}
}

// Path joins elements onto the base directory
func (e *Environment) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Base}, elem...)...)
}

// Zip writes a zip fixture at base/name and returns its full path
func (e *Environment) Zip(name string, files map[string]string) string {
	e.t.Helper()
	p := e.Path(name)
	WriteZip(e.t, e.FS, p, files)
	return p
}

// Files writes plain files under dir
func (e *Environment) Files(dir string, files map[string]string) {
	e.t.Helper()
	WriteFiles(e.t, e.FS, dir, files)
}

// WriteZip builds a zip archive from name → content pairs. Names ending in
// "/" become directory entries. Entries are written in sorted order.
func WriteZip(t *testing.T, fs types.FS, path string, files map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range sortedKeys(files) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if len(name) > 0 && name[len(name)-1] == '/' {
			continue
		}
		_, err = io.WriteString(w, files[name])
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, buf.Bytes(), 0644))
}

// ReadZip returns the name → content pairs of every file in a zip
func ReadZip(t *testing.T, fs types.FS, path string) map[string]string {
	t.Helper()

	data, err := fs.ReadFile(path)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string]string, len(zr.File))
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[zf.Name] = string(content)
	}
	return out
}

// WriteFiles creates files (and their parents) under dir
func WriteFiles(t *testing.T, fs types.FS, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, fs.WriteFile(p, []byte(content), 0644))
	}
}

// ListFiles returns every regular file under root as sorted slash paths
// relative to root. A missing root yields an empty list.
func ListFiles(t *testing.T, fs types.FS, root string) []string {
	t.Helper()

	if _, err := fs.Stat(root); os.IsNotExist(err) {
		return []string{}
	}

	files := []string{}
	err := fs.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

// Exists reports whether path exists
func Exists(fs types.FS, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
