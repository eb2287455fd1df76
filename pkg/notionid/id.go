package notionid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID is a Notion object identifier.
//
// Notion prints IDs undashed in URLs ("4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d") and
// dashed in API responses ("4f1c0a34-f0a2-4e2a-8a9e-2c3d5a6b7c8d"). ID accepts
// either and always prints the dashed lowercase form.
type ID struct {
	value uuid.UUID
}

// NewID parses raw as an identifier of the given kind. raw may be a URL.
func NewID(raw string, kind Kind) (ID, error) {
	s, err := Parse(raw, kind)
	if err != nil {
		return ID{}, err
	}
	return ParseID(s)
}

// ParseID parses a bare identifier in dashed or undashed form.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, fmt.Errorf("ID cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid ID format: %w", err)
	}
	return ID{value: u}, nil
}

// String returns the dashed lowercase form.
func (id ID) String() string {
	return id.value.String()
}

// Compact returns the undashed form used in notion.so URLs.
func (id ID) Compact() string {
	return strings.ReplaceAll(id.value.String(), "-", "")
}

// PageURL returns the browser URL for a page or database.
func PageURL(id ID) string {
	return "https://www.notion.so/" + id.Compact()
}
