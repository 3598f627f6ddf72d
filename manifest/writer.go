package manifest

import (
	"strings"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
)

// DefaultOutput is the conventional manifest filename.
const DefaultOutput = "final.tsv"

// Write encodes the manifest and persists it to path, overwriting any
// existing file there. The header is validated first, so an unusable
// manifest never touches the filesystem. The write goes through a scratch
// file renamed onto path, so an interrupted run never leaves a partial
// file that could be mistaken for a complete manifest.
func (m *Manifest) Write(fsys fs.Filesystem, path string) error {
	if err := ValidateHeader(m.HeaderLabel); err != nil {
		return err
	}
	for _, e := range m.Entries {
		if e.LocalName == "" {
			return errors.New("write", errors.CodeInvalidFilename).
				WithMessage("entry has an empty filename")
		}
		if strings.ContainsAny(e.LocalName, "\t\n") {
			return errors.New("write", errors.CodeInvalidFilename).
				WithPath(e.LocalName).
				WithMessage("filename contains a tab or newline and would corrupt the TSV")
		}
		if strings.ContainsAny(e.RemoteAddress, "\t\n") {
			return errors.New("write", errors.CodeInvalidInput).
				WithPath(e.RemoteAddress).
				WithMessage("remote address contains a tab or newline and would corrupt the TSV")
		}
	}

	if err := fs.WriteFileAtomic(fsys, path, m.Encode(), 0o644); err != nil {
		return errors.New("write", errors.CodeWriteFailed).
			WithPath(path).
			WithCause(err)
	}
	return nil
}
