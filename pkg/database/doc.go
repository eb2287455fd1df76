// Package database builds the property schema of a Notion database.
//
// A Schema maps column names to properties. Select and MultiSelect carry an
// ordered option list; Number carries a display format:
//
//	status := database.NewSelect(
//	    database.MustOption("Todo", props.ColorGray),
//	    database.MustOption("Done", props.ColorGreen),
//	)
//	schema := database.NewSchema()
//	schema.Set("Name", database.Title())
//	schema.Set("Status", status)
package database
