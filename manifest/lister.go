package manifest

import (
	"sort"
	"strings"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
)

// List enumerates bare filenames matching *.<ext> in dir, non-recursive,
// directories excluded. The result is sorted lexicographically so that
// repeated runs over an unchanged directory are byte-identical; filesystem
// enumeration order is never exposed to callers.
//
// A missing or unreadable directory yields a DIRECTORY_NOT_FOUND error. A
// directory with no matching files yields an empty slice and no error.
func List(fsys fs.Filesystem, dir, ext string) ([]string, error) {
	suffix, err := normalizeExt(ext)
	if err != nil {
		return nil, err
	}

	info, err := fsys.Stat(dir)
	if err != nil {
		e := errors.New("list", errors.CodeDirectoryNotFound).WithPath(dir).WithCause(err)
		if fs.IsNotExist(err) {
			return nil, e.WithMessage("directory does not exist")
		}
		return nil, e.WithMessage("directory is not readable")
	}
	if !info.IsDir() {
		return nil, errors.New("list", errors.CodeDirectoryNotFound).
			WithPath(dir).
			WithMessage("not a directory")
	}

	infos, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.New("list", errors.CodeDirectoryNotFound).
			WithPath(dir).
			WithMessage("directory is not readable").
			WithCause(err)
	}

	var names []string
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		name := fi.Name()
		// Dotfiles are skipped, as the shell globbing this replaces
		// would skip them.
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(name, suffix) {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// normalizeExt validates an extension filter and returns the filename
// suffix to match. A leading dot is optional.
func normalizeExt(ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return "", errors.New("list", errors.CodeInvalidInput).
			WithMessage("extension filter is empty")
	}
	if strings.ContainsAny(ext, `/\`) {
		return "", errors.New("list", errors.CodeInvalidInput).
			WithPath(ext).
			WithMessage("extension filter must not contain path separators")
	}
	return "." + ext, nil
}
