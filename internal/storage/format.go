package storage

import "fmt"

// Format selects the on-disk representation for Save.
type Format string

const (
	// FormatJSON is the full-fidelity format and the only one Load accepts.
	FormatJSON Format = "json"
	// FormatCSV is a write-only spreadsheet export.
	FormatCSV Format = "csv"
	// FormatPlainText is a write-only human-readable transcript.
	FormatPlainText Format = "text"
)

// String returns the format name as used in CLI flags.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a CLI flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "text", "plain", "plaintext":
		return FormatPlainText, nil
	}
	return "", fmt.Errorf("unknown storage format %q", s)
}
