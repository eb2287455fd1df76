// Package props contains the small value objects that make up Notion
// request bodies: styled text, rich text sequences, colors, emoji, file
// objects, icons and covers.
//
// Every type is a plain struct with an explicit MarshalJSON. Serialization
// builds a fresh payload on each call, so values can be copied and reused
// without sharing nested state.
//
// # Rich text
//
// A RichText is an ordered list of Text spans bound to a property key
// ("rich_text" unless changed with SetKey). Blocks accept RichTextItem
// arguments, which only Text and *RichText implement:
//
//	rt := props.NewRichText(
//	    props.NewText("Release "),
//	    props.NewText("v2", props.Bold(), props.WithColor(props.ColorRed)),
//	)
//	rt.Append(props.NewText(" is out", props.WithLink("https://example.com")))
//
// # Errors
//
// Invalid input is reported as *Error wrapping ErrInvalidValue, ErrArity or
// ErrIndexOutOfRange, so callers can test with errors.Is.
package props
