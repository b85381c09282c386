package ingest

import (
	"fmt"
	"strings"
)

// Format identifies an input encoding.
type Format int

const (
	// FormatAuto selects the format from the source name.
	FormatAuto Format = iota
	// FormatStd is the compact 4-field "ID pT phi eta" encoding with
	// blank-line event boundaries.
	FormatStd
	// FormatURQMD is the fixed-column UrQMD file encoding ("f13").
	FormatURQMD
)

// urqmdToken marks UrQMD files by name.
const urqmdToken = ".f13"

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatStd:
		return "std"
	case FormatURQMD:
		return "urqmd"
	default:
		return "auto"
	}
}

// ParseFormat converts a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "auto":
		return FormatAuto, nil
	case "std":
		return FormatStd, nil
	case "urqmd":
		return FormatURQMD, nil
	default:
		return FormatAuto, fmt.Errorf("unknown input format %q (want auto, std or urqmd)", s)
	}
}

// DetectFormat resolves the format to use for a named source. An explicit
// override wins; under auto, a name containing the UrQMD extension token
// selects urqmd and everything else, including unnamed streams, defaults
// to std. There are no error cases.
func DetectFormat(name string, override Format) Format {
	if override != FormatAuto {
		return override
	}
	if name != "" && strings.Contains(name, urqmdToken) {
		return FormatURQMD
	}
	return FormatStd
}
