package smash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
)

const (
	cramsTSV = "entity:crams_id\tfilelocation\n" +
		"a.cram\tgs://b/a.cram\n" +
		"b.cram\tgs://b/b.cram\n"
	moreTSV = "entity:more_id\tfilelocation\n" +
		"c.cram\tdrs://c.cram\n"
)

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(cramsTSV), "crams.tsv")
	require.NoError(t, err)

	assert.Equal(t, []string{"entity:crams_id", "filelocation"}, doc.Columns)
	assert.Equal(t, "crams", doc.Entity())
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"a.cram", "gs://b/a.cram"}, doc.Rows[0])
}

func TestParseHeaderOnly(t *testing.T) {
	doc, err := Parse([]byte("entity:crams_id\tfilelocation\n"), "crams.tsv")
	require.NoError(t, err)
	assert.Empty(t, doc.Rows)
}

func TestParseRejectsMalformedManifests(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty file", data: ""},
		{name: "single column header", data: "entity:crams_id\n"},
		{name: "bad key column", data: "crams_id\tfilelocation\n"},
		{name: "underscore in entity", data: "entity:a_b_id\tfilelocation\n"},
		{name: "ragged row", data: "entity:crams_id\tfilelocation\na.cram\n"},
		{name: "overlong row", data: "entity:crams_id\tfilelocation\na.cram\tg\textra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.tsv")
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidManifest, errors.CodeOf(err))
		})
	}
}

func TestMergeReheadersAndConcatenates(t *testing.T) {
	a, err := Parse([]byte(cramsTSV), "a.tsv")
	require.NoError(t, err)
	b, err := Parse([]byte(moreTSV), "b.tsv")
	require.NoError(t, err)

	merged, err := Merge("craipilation", []*Document{a, b})
	require.NoError(t, err)

	assert.Equal(t, []string{"entity:craipilation_id", "filelocation"}, merged.Columns)
	assert.Len(t, merged.Rows, 3)
	assert.Equal(t, "craipilation", merged.Entity())

	want := "entity:craipilation_id\tfilelocation\n" +
		"a.cram\tgs://b/a.cram\n" +
		"b.cram\tgs://b/b.cram\n" +
		"c.cram\tdrs://c.cram\n"
	assert.Equal(t, want, string(merged.Encode()))
}

func TestMergeRejectsColumnMismatch(t *testing.T) {
	a, err := Parse([]byte(cramsTSV), "a.tsv")
	require.NoError(t, err)
	b, err := Parse([]byte("entity:pairs_id\tfilename\tlocation\n"), "b.tsv")
	require.NoError(t, err)

	_, err = Merge("out", []*Document{a, b})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidManifest, errors.CodeOf(err))
}

func TestMergeValidatesEntity(t *testing.T) {
	a, err := Parse([]byte(cramsTSV), "a.tsv")
	require.NoError(t, err)

	_, err = Merge("bad name", []*Document{a})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidHeader, errors.CodeOf(err))
}

func TestMergeFiles(t *testing.T) {
	fsys := fs.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("a.tsv", []byte(cramsTSV), 0o644))
	require.NoError(t, fsys.WriteFile("b.tsv", []byte(moreTSV), 0o644))

	merged, err := MergeFiles(fsys, "all", []string{"a.tsv", "b.tsv"}, "merged.tsv")
	require.NoError(t, err)
	assert.Len(t, merged.Rows, 3)

	got, err := fsys.ReadFile("merged.tsv")
	require.NoError(t, err)
	assert.Equal(t, string(merged.Encode()), string(got))
}

func TestMergeFilesRequiresTwoInputs(t *testing.T) {
	fsys := fs.NewInMemoryFS()

	_, err := MergeFiles(fsys, "all", []string{"a.tsv"}, "merged.tsv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.CodeOf(err))
}

func TestMergeFilesMissingInput(t *testing.T) {
	fsys := fs.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("a.tsv", []byte(cramsTSV), 0o644))

	_, err := MergeFiles(fsys, "all", []string{"a.tsv", "missing.tsv"}, "merged.tsv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidManifest, errors.CodeOf(err))
}

func TestInspectFile(t *testing.T) {
	fsys := fs.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("crams.tsv", []byte(cramsTSV), 0o644))

	info, err := InspectFile(fsys, "crams.tsv")
	require.NoError(t, err)
	assert.Equal(t, Info{Entity: "crams", Columns: 2, Rows: 2}, info)
}

func TestInspectFileRejectsMalformed(t *testing.T) {
	fsys := fs.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("bad.tsv", []byte("not a manifest\n"), 0o644))

	_, err := InspectFile(fsys, "bad.tsv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidManifest, errors.CodeOf(err))
}
