package smash

import (
	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
)

// Info summarizes a parsed manifest.
type Info struct {
	// Entity is the table name embedded in the header's key column.
	Entity string

	// Columns is the number of header columns.
	Columns int

	// Rows is the number of data rows.
	Rows int
}

// InspectFile parses the manifest at path and reports its shape. It is the
// validation behind `tsvify check`: a file that parses cleanly here is one
// the downstream importer will accept structurally.
func InspectFile(fsys fs.Filesystem, path string) (Info, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Info{}, errors.New("check", errors.CodeInvalidManifest).
			WithPath(path).
			WithMessage("cannot read manifest").
			WithCause(err)
	}
	doc, err := Parse(data, path)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Entity:  doc.Entity(),
		Columns: len(doc.Columns),
		Rows:    len(doc.Rows),
	}, nil
}
