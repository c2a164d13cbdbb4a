package archive

import (
	stderrors "errors"
	"fmt"
	"strings"
)

var (
	// errInvalidEntryPath marks an entry name that cannot be extracted safely
	errInvalidEntryPath = stderrors.New("invalid entry path")
	// errEmptyEntryPath marks a name made only of separators and "."
	// segments, like the "./" root entry some tools write
	errEmptyEntryPath = fmt.Errorf("%w: nothing left after normalization", errInvalidEntryPath)
)

// normalizeEntryPath converts a zip entry name to a clean relative slash
// path, rejecting absolute names, drive prefixes and ".." segments
func normalizeEntryPath(name string) (string, error) {
	raw := strings.TrimSpace(name)
	if raw == "" || strings.ContainsRune(raw, 0) {
		return "", fmt.Errorf("%w: %q", errInvalidEntryPath, name)
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, `\`) {
		return "", fmt.Errorf("%w: %q is absolute", errInvalidEntryPath, name)
	}

	raw = strings.ReplaceAll(raw, `\`, "/")
	if hasDrivePrefix(raw) {
		return "", fmt.Errorf("%w: %q has a drive prefix", errInvalidEntryPath, name)
	}

	parts := strings.Split(raw, "/")
	clean := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			return "", fmt.Errorf("%w: %q escapes the destination", errInvalidEntryPath, name)
		default:
			clean = append(clean, part)
		}
	}
	if len(clean) == 0 {
		return "", fmt.Errorf("%w: %q", errEmptyEntryPath, name)
	}

	return strings.Join(clean, "/"), nil
}

// hasDrivePrefix reports whether path starts with a drive root like C:/
func hasDrivePrefix(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	b := path[0]
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
