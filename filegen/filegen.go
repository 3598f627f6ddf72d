// Package filegen writes batches of small fixture files so a manifest run
// can be exercised against a realistic directory listing without hauling
// real sequencing data around.
package filegen

import (
	"fmt"
	"strings"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
)

// MaxCount bounds a generation run.
const MaxCount = 100000

// placeholder is the content written into every generated file.
const placeholder = "just another file"

// Options configures a generation run.
type Options struct {
	// Dir is the target directory. Must exist.
	Dir string

	// Ext is the extension for generated files, leading dot optional.
	Ext string

	// Count is the number of files to generate.
	Count int
}

// Generate writes Count files named file000.<ext>, file001.<ext>, ... into
// Dir and returns the generated names in order. Existing files with those
// names are overwritten.
func Generate(fsys fs.Filesystem, opts Options) ([]string, error) {
	if opts.Count <= 0 || opts.Count > MaxCount {
		return nil, errors.New("generate", errors.CodeInvalidInput).
			WithMessage(fmt.Sprintf("count must be between 1 and %d, got %d", MaxCount, opts.Count))
	}
	ext := strings.TrimPrefix(opts.Ext, ".")
	if ext == "" {
		return nil, errors.New("generate", errors.CodeInvalidInput).
			WithMessage("extension is empty")
	}
	if strings.ContainsAny(ext, `/\`) {
		return nil, errors.New("generate", errors.CodeInvalidInput).
			WithPath(ext).
			WithMessage("extension must not contain path separators")
	}

	info, err := fsys.Stat(opts.Dir)
	if err != nil {
		return nil, errors.New("generate", errors.CodeDirectoryNotFound).
			WithPath(opts.Dir).
			WithMessage("target directory does not exist").
			WithCause(err)
	}
	if !info.IsDir() {
		return nil, errors.New("generate", errors.CodeDirectoryNotFound).
			WithPath(opts.Dir).
			WithMessage("not a directory")
	}

	names := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		name := fmt.Sprintf("file%03d.%s", i, ext)
		if err := fsys.WriteFile(fs.Join(opts.Dir, name), []byte(placeholder), 0o644); err != nil {
			return nil, errors.New("generate", errors.CodeWriteFailed).
				WithPath(fs.Join(opts.Dir, name)).
				WithCause(err)
		}
		names = append(names, name)
	}
	return names, nil
}
