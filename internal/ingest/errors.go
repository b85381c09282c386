package ingest

import "errors"

// Parse errors. All three are fatal for the source that produced them:
// a corrupted physics record cannot be safely guessed, so the pipeline
// surfaces the error and stops instead of recovering mid-stream.
var (
	// ErrFormat is returned for a line that does not parse into the
	// expected fields or columns.
	ErrFormat = errors.New("malformed particle record")

	// ErrTruncated is returned when a UrQMD header declares more
	// particles than the stream contains.
	ErrTruncated = errors.New("event block truncated")

	// ErrUnknownSpecies is returned when a UrQMD species/charge code has
	// no Monte Carlo ID. Mapping it to a default would silently corrupt
	// multiplicity and flow statistics.
	ErrUnknownSpecies = errors.New("unknown species code")
)
