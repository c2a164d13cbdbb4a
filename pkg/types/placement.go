package types

import (
	"fmt"
	"strings"
)

// ClassificationMode selects how extracted content is grouped when
// classification is enabled
type ClassificationMode int

const (
	// ByDlcName gives every archive its own stream subfolder
	ByDlcName ClassificationMode = iota

	// ByResourceType pools all archives into one stream root and relies on
	// folder heuristics instead
	ByResourceType
)

const (
	modeDlcName      = "dlc-name"
	modeResourceType = "resource-type"
)

// ClassificationModes lists the accepted textual values
func ClassificationModes() []string {
	return []string{modeDlcName, modeResourceType}
}

// String returns the textual form used in config files and flags
func (m ClassificationMode) String() string {
	switch m {
	case ByDlcName:
		return modeDlcName
	case ByResourceType:
		return modeResourceType
	default:
		return fmt.Sprintf("ClassificationMode(%d)", int(m))
	}
}

// ParseClassificationMode parses "dlc-name" or "resource-type" (case-insensitive)
func ParseClassificationMode(s string) (ClassificationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case modeDlcName:
		return ByDlcName, nil
	case modeResourceType:
		return ByResourceType, nil
	default:
		return ByDlcName, fmt.Errorf("unknown classification mode %q (want %s)",
			s, strings.Join(ClassificationModes(), " or "))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m ClassificationMode) MarshalText() ([]byte, error) {
	switch m {
	case ByDlcName, ByResourceType:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("invalid classification mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *ClassificationMode) UnmarshalText(text []byte) error {
	parsed, err := ParseClassificationMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// PlacementOptions controls where extracted files end up. It is set once
// per run and never changed while the run is in flight.
type PlacementOptions struct {
	// ClassifyFiles enables per-archive stream roots (see ClassificationMode)
	ClassifyFiles bool

	ClassificationMode ClassificationMode

	// ClassifyToFolders sorts non-container files into audio/, data/ and
	// vehicles/ by sniffing their source directory
	ClassifyToFolders bool

	// SingleVehicle is accepted but has no effect on placement
	SingleVehicle bool

	// KeepOriginal keeps source archives; otherwise they are deleted once
	// their contents have been moved
	KeepOriginal bool
}
