package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/databiosphere/tsvify/errors"
)

// LocationColumn is the second header column. The table importer treats the
// first column as the row key and this one as the file address.
const LocationColumn = "filelocation"

// headerPattern is the shape the downstream importer requires of the first
// row. A malformed header makes the whole manifest unusable, so this is
// enforced before anything is written.
var headerPattern = regexp.MustCompile(`^entity:[^\s_]+_id\t` + LocationColumn + `$`)

// Header builds the header label for the given entity name:
//
//	entity:<name>_id<TAB>filelocation
//
// It returns an INVALID_HEADER error when the name would violate the
// importer's pattern.
func Header(entity string) (string, error) {
	if err := ValidateEntity(entity); err != nil {
		return "", err
	}
	return "entity:" + entity + "_id\t" + LocationColumn, nil
}

// ValidateEntity checks that an entity name can be embedded in a header row.
// The name must be non-empty and contain no whitespace and no underscore;
// an underscore would make the `_id` suffix ambiguous to the importer.
func ValidateEntity(entity string) error {
	if entity == "" {
		return errors.New("header", errors.CodeInvalidHeader).
			WithMessage("entity name is empty; expected header pattern entity:<name>_id\\tfilelocation")
	}
	if strings.ContainsRune(entity, '_') {
		return errors.New("header", errors.CodeInvalidHeader).
			WithPath(entity).
			WithMessage("entity name must not contain underscores; expected header pattern entity:<name>_id\\tfilelocation")
	}
	if strings.ContainsFunc(entity, unicode.IsSpace) {
		return errors.New("header", errors.CodeInvalidHeader).
			WithPath(entity).
			WithMessage("entity name must not contain whitespace; expected header pattern entity:<name>_id\\tfilelocation")
	}
	return nil
}

// ValidateHeader checks a complete header label against the importer's
// required pattern.
func ValidateHeader(label string) error {
	if !headerPattern.MatchString(label) {
		return errors.New("header", errors.CodeInvalidHeader).
			WithPath(label).
			WithMessage(fmt.Sprintf("header does not match %s", headerPattern))
	}
	return nil
}
