// Package page builds the parent reference and property values of a Notion
// page.
package page
