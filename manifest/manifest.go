// Package manifest builds tab-separated data-table manifests from a local
// file listing. It predicts the future cloud-storage address of each file by
// concatenating a remote prefix onto the bare filename and emits the header
// row the downstream table importer requires.
//
// # Basic Usage
//
//	fsys := fs.NewBaseOSFS()
//
//	m, err := manifest.Build(fsys, manifest.Options{
//	    Dir:    "/data/crams",
//	    Ext:    "cram",
//	    Prefix: "gs://my-bucket/crams/",
//	    Entity: "sample",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := m.Write(fsys, "final.tsv"); err != nil {
//	    log.Fatal(err)
//	}
//
// The resulting file looks like:
//
//	entity:sample_id	filelocation
//	a.cram	gs://my-bucket/crams/a.cram
//	b.cram	gs://my-bucket/crams/b.cram
//
// Listings are sorted lexicographically, so two runs over an unchanged
// directory produce byte-identical output.
package manifest

import (
	"strings"

	"github.com/databiosphere/tsvify/fs"
)

// Options configures a manifest build.
type Options struct {
	// Dir is the source directory to enumerate. Must exist.
	Dir string

	// Ext is the extension filter, with or without a leading dot.
	Ext string

	// Prefix is the remote address prefix, concatenated verbatim onto each
	// filename. It is trusted to already end appropriately (e.g. with "/").
	Prefix string

	// Entity is the table name fragment embedded in the header row.
	Entity string
}

// Manifest is an ordered sequence of entries plus the header label the
// downstream importer keys on. Built once per invocation and then encoded;
// never mutated after construction.
type Manifest struct {
	HeaderLabel string
	Entries     []Entry
}

// Build runs the full pipeline: validate the entity name, enumerate matching
// files, and locate each one under the remote prefix. The entity name is
// validated first so a configuration error is reported before the filesystem
// is touched.
func Build(fsys fs.Filesystem, opts Options) (*Manifest, error) {
	header, err := Header(opts.Entity)
	if err != nil {
		return nil, err
	}

	names, err := List(fsys, opts.Dir, opts.Ext)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entry, err := NewEntry(name, opts.Prefix)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &Manifest{
		HeaderLabel: header,
		Entries:     entries,
	}, nil
}

// Encode renders the manifest as UTF-8 TSV text: the header line followed by
// one line per entry, each terminated by a single newline.
func (m *Manifest) Encode() []byte {
	var b strings.Builder
	b.WriteString(m.HeaderLabel)
	b.WriteByte('\n')
	for _, e := range m.Entries {
		b.WriteString(e.LocalName)
		b.WriteByte('\t')
		b.WriteString(e.RemoteAddress)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Rows returns the number of data rows in the manifest.
func (m *Manifest) Rows() int {
	return len(m.Entries)
}
