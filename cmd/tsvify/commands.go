package main

import (
	"fmt"
	"io"

	"github.com/databiosphere/tsvify/filegen"
	"github.com/databiosphere/tsvify/fs"
	"github.com/databiosphere/tsvify/manifest"
	"github.com/databiosphere/tsvify/pair"
	"github.com/databiosphere/tsvify/smash"
)

func runBuild(fsys fs.Filesystem, args []string, stderr io.Writer) error {
	fset, vp := newFlags("build", stderr)
	fset.StringP("dir", "d", ".", "source directory to list")
	fset.StringP("ext", "e", "cram", "file extension filter")
	fset.StringP("prefix", "p", "", "remote address prefix, e.g. gs://bucket/path/ (required)")
	fset.StringP("entity", "n", "", "entity name for the header row (required)")
	fset.StringP("output", "o", manifest.DefaultOutput, "output manifest path")
	if err := parseFlags(fset, vp, args); err != nil {
		return err
	}
	if vp.GetString("prefix") == "" {
		return missingFlag(stderr, "build", "prefix")
	}
	if vp.GetString("entity") == "" {
		return missingFlag(stderr, "build", "entity")
	}

	log := newLogger(stderr, vp.GetBool("verbose"))
	opts := manifest.Options{
		Dir:    vp.GetString("dir"),
		Ext:    vp.GetString("ext"),
		Prefix: vp.GetString("prefix"),
		Entity: vp.GetString("entity"),
	}
	log.Debug("building manifest",
		"dir", opts.Dir, "ext", opts.Ext, "prefix", opts.Prefix, "entity", opts.Entity)

	m, err := manifest.Build(fsys, opts)
	if err != nil {
		return err
	}

	out := vp.GetString("output")
	if err := m.Write(fsys, out); err != nil {
		return err
	}
	log.Info("wrote manifest", "path", out, "rows", m.Rows())
	return nil
}

func runPair(fsys fs.Filesystem, args []string, stderr io.Writer) error {
	fset, vp := newFlags("pair", stderr)
	fset.StringP("dir", "d", ".", "source directory to list")
	fset.String("parent-ext", "", "parent file extension, e.g. cram (required)")
	fset.String("child-ext", "", "child file extension, e.g. crai (required)")
	fset.StringP("prefix", "p", "", "remote address prefix (required)")
	fset.StringP("entity", "n", "", "entity name for the header row (required)")
	fset.StringP("output", "o", manifest.DefaultOutput, "output manifest path")
	fset.Bool("strip-parent-ext", false, "pair x.cram with x.crai instead of x.cram.crai")
	if err := parseFlags(fset, vp, args); err != nil {
		return err
	}
	for _, required := range []string{"parent-ext", "child-ext", "prefix", "entity"} {
		if vp.GetString(required) == "" {
			return missingFlag(stderr, "pair", required)
		}
	}

	log := newLogger(stderr, vp.GetBool("verbose"))
	table, err := pair.Build(fsys, pair.Options{
		Dir:            vp.GetString("dir"),
		ParentExt:      vp.GetString("parent-ext"),
		ChildExt:       vp.GetString("child-ext"),
		Prefix:         vp.GetString("prefix"),
		Entity:         vp.GetString("entity"),
		StripParentExt: vp.GetBool("strip-parent-ext"),
	})
	if err != nil {
		return err
	}

	out := vp.GetString("output")
	if err := table.Write(fsys, out); err != nil {
		return err
	}
	log.Info("wrote paired manifest", "path", out, "rows", len(table.Rows))
	return nil
}

func runSmash(fsys fs.Filesystem, args []string, stderr io.Writer) error {
	fset, vp := newFlags("smash", stderr)
	fset.StringP("entity", "n", "", "entity name for the merged table (required)")
	fset.StringP("output", "o", "merged.tsv", "output manifest path")
	if err := parseFlags(fset, vp, args); err != nil {
		return err
	}
	if vp.GetString("entity") == "" {
		return missingFlag(stderr, "smash", "entity")
	}
	inputs := fset.Args()
	if len(inputs) < 2 {
		fmt.Fprintln(stderr, "tsvify smash: need at least two manifest paths to merge")
		return errUsage
	}

	log := newLogger(stderr, vp.GetBool("verbose"))
	out := vp.GetString("output")
	merged, err := smash.MergeFiles(fsys, vp.GetString("entity"), inputs, out)
	if err != nil {
		return err
	}
	log.Info("wrote merged manifest", "path", out, "rows", len(merged.Rows), "inputs", len(inputs))
	return nil
}

func runGenerate(fsys fs.Filesystem, args []string, stderr io.Writer) error {
	fset, vp := newFlags("generate", stderr)
	fset.StringP("dir", "d", ".", "target directory")
	fset.StringP("ext", "e", "cram", "extension for generated files")
	fset.IntP("count", "c", 10, "number of files to generate")
	if err := parseFlags(fset, vp, args); err != nil {
		return err
	}

	log := newLogger(stderr, vp.GetBool("verbose"))
	names, err := filegen.Generate(fsys, filegen.Options{
		Dir:   vp.GetString("dir"),
		Ext:   vp.GetString("ext"),
		Count: vp.GetInt("count"),
	})
	if err != nil {
		return err
	}
	log.Info("generated fixture files", "dir", vp.GetString("dir"), "count", len(names))
	return nil
}

func runCheck(fsys fs.Filesystem, args []string, stdout, stderr io.Writer) error {
	fset, vp := newFlags("check", stderr)
	if err := parseFlags(fset, vp, args); err != nil {
		return err
	}
	if len(fset.Args()) != 1 {
		fmt.Fprintln(stderr, "tsvify check: exactly one manifest path is required")
		return errUsage
	}

	path := fset.Args()[0]
	info, err := smash.InspectFile(fsys, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: entity %q, %d columns, %d data rows\n",
		path, info.Entity, info.Columns, info.Rows)
	return nil
}
