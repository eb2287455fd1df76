// Package notionid normalizes Notion object identifiers.
//
// Users copy identifiers out of the browser, so the value handed to the
// client is frequently a full URL rather than a bare ID. Parse reduces such a
// value to the ID the REST API expects, using rules that depend on the kind of
// object the URL points at.
//
// # Kinds
//
//   - page: ".../Some-Title-<id>" yields <id>
//   - database: ".../<id>?v=<view>" yields <id>
//   - block: ".../Page-<page>#<id>" yields <id>; without "#" the page rule
//     applies, since a page is the parent block of its content
//
// # Usage
//
//	id, err := notionid.Parse("https://www.notion.so/Roadmap-4f1c0a34f0a24e2a8a9e2c3d5a6b7c8d", notionid.KindPage)
//	if err != nil {
//	    return err
//	}
//
// The ID type wraps a UUID and accepts both the dashed and the undashed form
// Notion uses in URLs. PageURL turns it back into a browser link.
package notionid
