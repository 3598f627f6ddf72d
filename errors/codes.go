// Package errors provides the error handling system shared by the tsvify
// packages. It extends Go's standard error handling with structured error
// codes so the CLI can map failures to stable exit codes and operators get
// enough context (path, offending value) to fix their input.
package errors

// ErrorCode identifies a specific failure condition. Codes are string-based
// for debuggability and stable across releases.
type ErrorCode string

const (
	// Environment errors.

	// CodeDirectoryNotFound indicates the source directory does not exist
	// or cannot be read.
	CodeDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"

	// Configuration errors.

	// CodeInvalidHeader indicates the entity name would produce a header
	// row the downstream table importer rejects.
	CodeInvalidHeader ErrorCode = "INVALID_HEADER"

	// CodeInvalidInput indicates a provided option is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Data errors.

	// CodeInvalidFilename indicates a matched file's name contains a tab
	// or newline and would corrupt the TSV.
	CodeInvalidFilename ErrorCode = "INVALID_FILENAME"

	// CodeInvalidManifest indicates an input manifest is not a valid
	// tab-separated data table.
	CodeInvalidManifest ErrorCode = "INVALID_MANIFEST"

	// I/O errors.

	// CodeWriteFailed indicates the output file could not be written.
	CodeWriteFailed ErrorCode = "WRITE_FAILED"

	// Generic errors.

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
