package notionid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the type of object an identifier refers to.
type Kind string

const (
	// KindPage identifies a page.
	KindPage Kind = "page"

	// KindDatabase identifies a database.
	KindDatabase Kind = "database"

	// KindBlock identifies a block.
	KindBlock Kind = "block"
)

// ValidKinds returns all valid kinds.
func ValidKinds() []Kind {
	return []Kind{KindPage, KindDatabase, KindBlock}
}

// IsValid returns true if this is a recognized kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindPage, KindDatabase, KindBlock:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Parse extracts the API identifier from raw, which may be a bare ID or a
// URL copied from the Notion UI.
//
// Only the last path segment is considered. For pages, query strings and
// fragments are dropped and the last "-" separated token of the title slug is
// returned, unless the segment already is a dashed UUID. For databases the
// view query is dropped. For blocks the fragment after "#" is returned; a
// block value without a fragment is read as a page.
func Parse(raw string, kind Kind) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid id kind: %q (valid: %v)", kind, ValidKinds())
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%s id cannot be empty", kind)
	}

	segment := raw[strings.LastIndex(raw, "/")+1:]

	var id string
	switch kind {
	case KindPage:
		id = pageID(segment)
	case KindDatabase:
		id = cut(segment, "?")
	case KindBlock:
		// Without a fragment the URL points at a page, which is also a block.
		if _, fragment, ok := strings.Cut(segment, "#"); ok {
			id = fragment
		} else {
			id = pageID(segment)
		}
	}

	if id == "" {
		return "", fmt.Errorf("no %s id found in %q", kind, raw)
	}
	return id, nil
}

// pageID applies the page rule to a single path segment.
func pageID(segment string) string {
	segment = cut(segment, "#")
	segment = cut(segment, "?")
	if isDashedUUID(segment) {
		return segment
	}
	return segment[strings.LastIndex(segment, "-")+1:]
}

// cut returns s up to the first occurrence of sep.
func cut(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

func isDashedUUID(s string) bool {
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
