// Package pair builds data-table manifests that keep parent files (e.g.
// CRAMs) together with their index-style child files (e.g. CRAIs) on one
// row. A parent appears only when a child sharing its basename exists; rows
// are keyed by a sequential counter, which is what the downstream importer
// receives as the row id.
package pair

import (
	"strconv"
	"strings"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
	"github.com/databiosphere/tsvify/manifest"
)

// Options configures a pairing run.
type Options struct {
	// Dir is the source directory to enumerate. Must exist.
	Dir string

	// ParentExt is the extension of parent files (e.g. "cram").
	ParentExt string

	// ChildExt is the extension of child files (e.g. "crai").
	ChildExt string

	// Prefix is the remote address prefix, concatenated verbatim.
	Prefix string

	// Entity is the table name fragment embedded in the header row.
	Entity string

	// StripParentExt controls how child basenames are derived. When false
	// (the default), a child keeps the parent extension in its name, so
	// x.cram pairs with x.cram.crai. When true, the parent extension is
	// stripped first and x.cram pairs with x.crai.
	StripParentExt bool
}

// Table is a paired manifest: a header row naming the child columns and one
// row per parent/child match.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Build enumerates dir and matches every parent file with the child files
// that share its basename. Parents without a matching child are dropped,
// and so are children without a parent; both mirror how the paired table
// is consumed downstream.
func Build(fsys fs.Filesystem, opts Options) (*Table, error) {
	if err := manifest.ValidateEntity(opts.Entity); err != nil {
		return nil, err
	}
	if opts.ParentExt == opts.ChildExt {
		return nil, errors.New("pair", errors.CodeInvalidInput).
			WithMessage("parent and child extensions are the same")
	}

	parents, err := manifest.List(fsys, opts.Dir, opts.ParentExt)
	if err != nil {
		return nil, err
	}
	children, err := manifest.List(fsys, opts.Dir, opts.ChildExt)
	if err != nil {
		return nil, err
	}

	childExt := strings.TrimPrefix(opts.ChildExt, ".")
	parentExt := strings.TrimPrefix(opts.ParentExt, ".")

	table := &Table{
		Columns: []string{
			"entity:" + opts.Entity + "_id",
			"filename",
			"location",
			"parent_file_ext",
			childExt,
			childExt + "_location",
		},
	}

	i := 0
	for _, parent := range parents {
		base := strings.TrimSuffix(parent, "."+parentExt)
		want := parent + "." + childExt
		if opts.StripParentExt {
			want = base + "." + childExt
		}
		for _, child := range children {
			if child != want {
				continue
			}
			pe, err := manifest.NewEntry(parent, opts.Prefix)
			if err != nil {
				return nil, err
			}
			ce, err := manifest.NewEntry(child, opts.Prefix)
			if err != nil {
				return nil, err
			}
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(i),
				pe.LocalName,
				pe.RemoteAddress,
				parentExt,
				ce.LocalName,
				ce.RemoteAddress,
			})
			i++
		}
	}

	return table, nil
}

// Encode renders the table as UTF-8 TSV text.
func (t *Table) Encode() []byte {
	var b strings.Builder
	b.WriteString(strings.Join(t.Columns, "\t"))
	b.WriteByte('\n')
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Write persists the table to path through the same scratch-and-rename
// path the flat manifest writer uses.
func (t *Table) Write(fsys fs.Filesystem, path string) error {
	if err := fs.WriteFileAtomic(fsys, path, t.Encode(), 0o644); err != nil {
		return errors.New("pair", errors.CodeWriteFailed).
			WithPath(path).
			WithCause(err)
	}
	return nil
}
