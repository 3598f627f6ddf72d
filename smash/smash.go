// Package smash combines existing data-table manifests. It concatenates the
// data rows of two or more manifests that share a column shape and
// re-headers the result under a fresh entity name, which is how a combined
// table gets its own name in the downstream system.
package smash

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
	"github.com/databiosphere/tsvify/manifest"
)

// keyPattern is the shape of the first header column: the row-key column
// the downstream importer requires.
var keyPattern = regexp.MustCompile(`^entity:([^\s_]+)_id$`)

// Document is a parsed manifest: its header columns and data rows.
type Document struct {
	Columns []string
	Rows    [][]string
}

// Entity returns the entity name embedded in the header's key column.
func (d *Document) Entity() string {
	m := keyPattern.FindStringSubmatch(d.Columns[0])
	if m == nil {
		return ""
	}
	return m[1]
}

// Parse reads TSV manifest text into a Document. The first line must be a
// header whose key column matches entity:<name>_id, and every data row must
// carry exactly as many fields as the header. path is used only for error
// context.
func Parse(data []byte, path string) (*Document, error) {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, errors.New("smash", errors.CodeInvalidManifest).
			WithPath(path).
			WithMessage("manifest is empty")
	}

	lines := strings.Split(text, "\n")
	columns := strings.Split(lines[0], "\t")
	if len(columns) < 2 {
		return nil, errors.New("smash", errors.CodeInvalidManifest).
			WithPath(path).
			WithMessage("header has fewer than two columns")
	}
	if !keyPattern.MatchString(columns[0]) {
		return nil, errors.New("smash", errors.CodeInvalidManifest).
			WithPath(path).
			WithMessage(fmt.Sprintf("header key column %q does not match entity:<name>_id", columns[0]))
	}

	doc := &Document{Columns: columns}
	for i, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		if len(fields) != len(columns) {
			return nil, errors.New("smash", errors.CodeInvalidManifest).
				WithPath(path).
				WithMessage(fmt.Sprintf("row %d has %d fields, want %d", i+1, len(fields), len(columns)))
		}
		doc.Rows = append(doc.Rows, fields)
	}
	return doc, nil
}

// Merge concatenates the data rows of the given documents under a fresh
// entity name. All documents must share the same columns after the key
// column; the key column itself is replaced.
func Merge(entity string, docs []*Document) (*Document, error) {
	if err := manifest.ValidateEntity(entity); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.New("smash", errors.CodeInvalidInput).
			WithMessage("no manifests to merge")
	}

	rest := docs[0].Columns[1:]
	total := 0
	for _, doc := range docs {
		if !equalColumns(doc.Columns[1:], rest) {
			return nil, errors.New("smash", errors.CodeInvalidManifest).
				WithMessage(fmt.Sprintf("column mismatch: %v vs %v",
					docs[0].Columns[1:], doc.Columns[1:]))
		}
		total += len(doc.Rows)
	}

	out := &Document{
		Columns: append([]string{"entity:" + entity + "_id"}, rest...),
	}
	for _, doc := range docs {
		out.Rows = append(out.Rows, doc.Rows...)
	}

	// Row-count postcondition: every input row made it into the output.
	if len(out.Rows) != total {
		return nil, errors.New("smash", errors.CodeInvalidManifest).
			WithMessage(fmt.Sprintf("row mismatch: merged %d rows, want %d", len(out.Rows), total))
	}
	return out, nil
}

// MergeFiles parses every input path, merges the documents under entity,
// and writes the result to out.
func MergeFiles(fsys fs.Filesystem, entity string, paths []string, out string) (*Document, error) {
	if len(paths) < 2 {
		return nil, errors.New("smash", errors.CodeInvalidInput).
			WithMessage("need at least two manifests to merge")
	}

	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, errors.New("smash", errors.CodeInvalidManifest).
				WithPath(path).
				WithMessage("cannot read manifest").
				WithCause(err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	merged, err := Merge(entity, docs)
	if err != nil {
		return nil, err
	}
	if err := merged.Write(fsys, out); err != nil {
		return nil, err
	}
	return merged, nil
}

// Encode renders the document as UTF-8 TSV text.
func (d *Document) Encode() []byte {
	var b strings.Builder
	b.WriteString(strings.Join(d.Columns, "\t"))
	b.WriteByte('\n')
	for _, row := range d.Rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Write persists the document to path through the scratch-and-rename path.
func (d *Document) Write(fsys fs.Filesystem, path string) error {
	if err := fs.WriteFileAtomic(fsys, path, d.Encode(), 0o644); err != nil {
		return errors.New("smash", errors.CodeWriteFailed).
			WithPath(path).
			WithCause(err)
	}
	return nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
