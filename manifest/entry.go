package manifest

import (
	"strings"

	"github.com/databiosphere/tsvify/errors"
)

// Entry maps a local filename to its predicted remote address. Immutable
// once constructed.
type Entry struct {
	// LocalName is the bare filename, no path.
	LocalName string

	// RemoteAddress is prefix + LocalName, concatenated verbatim.
	RemoteAddress string
}

// NewEntry locates a filename under the remote prefix. The address is raw
// string concatenation: no path-separator normalization and no URL-encoding.
// The operator-supplied prefix is trusted to already end appropriately.
//
// Filenames containing a tab or newline are rejected rather than escaped;
// escaping would silently change what the downstream importer sees.
func NewEntry(name, prefix string) (Entry, error) {
	if name == "" {
		return Entry{}, errors.New("locate", errors.CodeInvalidFilename).
			WithMessage("filename is empty")
	}
	if strings.ContainsAny(name, "\t\n") {
		return Entry{}, errors.New("locate", errors.CodeInvalidFilename).
			WithPath(name).
			WithMessage("filename contains a tab or newline and would corrupt the TSV")
	}
	if strings.ContainsAny(prefix, "\t\n") {
		return Entry{}, errors.New("locate", errors.CodeInvalidInput).
			WithPath(prefix).
			WithMessage("remote prefix contains a tab or newline and would corrupt the TSV")
	}
	return Entry{
		LocalName:     name,
		RemoteAddress: prefix + name,
	}, nil
}
