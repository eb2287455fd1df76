package page

import (
	"encoding/json"

	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// ParentKind is the type of object a page is created under.
type ParentKind string

const (
	ParentPage      ParentKind = "page"
	ParentDatabase  ParentKind = "database"
	ParentWorkspace ParentKind = "workspace"
)

// Parent references the page, database or workspace a page belongs to.
type Parent struct {
	kind ParentKind
	id   string
}

// NewParent returns a page or database parent. id may be a URL; it is
// normalized according to kind.
func NewParent(kind ParentKind, id string) (Parent, error) {
	var idKind notionid.Kind
	switch kind {
	case ParentPage:
		idKind = notionid.KindPage
	case ParentDatabase:
		idKind = notionid.KindDatabase
	default:
		return Parent{}, props.Invalidf("Parent", "parent type must be page or database, got %q", kind)
	}

	parsed, err := notionid.Parse(id, idKind)
	if err != nil {
		return Parent{}, props.Invalid("Parent", err)
	}
	return Parent{kind: kind, id: parsed}, nil
}

// WorkspaceParent returns the workspace root parent.
func WorkspaceParent() Parent {
	return Parent{kind: ParentWorkspace}
}

// Kind returns the parent type.
func (p Parent) Kind() ParentKind {
	return p.kind
}

// ID returns the parent ID. It is empty for a workspace parent.
func (p Parent) ID() string {
	return p.id
}

// IsZero reports whether the parent is unset.
func (p Parent) IsZero() bool {
	return p.kind == ""
}

// MarshalJSON implements json.Marshaler.
func (p Parent) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case ParentWorkspace:
		return json.Marshal(map[string]interface{}{
			"type":      "workspace",
			"workspace": true,
		})
	case ParentPage, ParentDatabase:
		key := string(p.kind) + "_id"
		return json.Marshal(map[string]string{
			"type": key,
			key:    p.id,
		})
	default:
		return nil, props.Invalidf("Parent", "parent is not set")
	}
}
