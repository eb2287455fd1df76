package props

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Emoji is an emoji object.
type Emoji struct {
	Emoji string
}

// Validate implements validation.Validatable.
func (e Emoji) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Emoji, validation.Required),
	)
}

// MarshalJSON implements json.Marshaler.
func (e Emoji) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, Invalid("Emoji", err)
	}
	return json.Marshal(map[string]string{
		"type":  "emoji",
		"emoji": e.Emoji,
	})
}

// FileType is the hosting type of a file object.
type FileType string

const (
	// FileExternal is a file hosted outside Notion.
	FileExternal FileType = "external"

	// FileHosted is a file uploaded to Notion.
	FileHosted FileType = "file"
)

// FileObject references an image, video or other file by URL.
type FileObject struct {
	Type FileType
	URL  string
}

// External returns an externally hosted file object.
func External(url string) FileObject {
	return FileObject{Type: FileExternal, URL: url}
}

// Hosted returns a Notion hosted file object.
func Hosted(url string) FileObject {
	return FileObject{Type: FileHosted, URL: url}
}

// Cover returns a page cover pointing at an external image.
func Cover(url string) FileObject {
	return External(url)
}

// Validate implements validation.Validatable.
func (f FileObject) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Type, validation.Required, validation.In(FileExternal, FileHosted)),
		validation.Field(&f.URL, validation.Required),
	)
}

// MarshalJSON implements json.Marshaler.
func (f FileObject) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, Invalid("FileObject", err)
	}
	return json.Marshal(map[string]interface{}{
		"type": f.Type,
		string(f.Type): map[string]string{
			"url": f.URL,
		},
	})
}

// Icon is either an emoji or a file object.
type Icon struct {
	emoji *Emoji
	file  *FileObject
}

// EmojiIcon returns an emoji icon.
func EmojiIcon(emoji string) Icon {
	return Icon{emoji: &Emoji{Emoji: emoji}}
}

// FileIcon returns an icon backed by a file object.
func FileIcon(f FileObject) Icon {
	return Icon{file: &f}
}

// NewIcon builds an icon from an emoji or a file. At least one must be set;
// when both are, the emoji is used and the file is ignored.
func NewIcon(emoji string, file *FileObject) (Icon, error) {
	switch {
	case emoji == "" && file == nil:
		return Icon{}, Invalidf("Icon", "either emoji or file is required")
	case emoji != "" && file != nil:
		logger.Warn("icon has both emoji and file, using emoji", "emoji", emoji, "file", file.URL)
		return EmojiIcon(emoji), nil
	case emoji != "":
		return EmojiIcon(emoji), nil
	default:
		return FileIcon(*file), nil
	}
}

// IsZero reports whether the icon is unset.
func (i Icon) IsZero() bool {
	return i.emoji == nil && i.file == nil
}

// Emoji returns the emoji, if this is an emoji icon.
func (i Icon) Emoji() (string, bool) {
	if i.emoji == nil {
		return "", false
	}
	return i.emoji.Emoji, true
}

// File returns the file object, if this is a file icon.
func (i Icon) File() (FileObject, bool) {
	if i.file == nil {
		return FileObject{}, false
	}
	return *i.file, true
}

// MarshalJSON implements json.Marshaler.
func (i Icon) MarshalJSON() ([]byte, error) {
	switch {
	case i.emoji != nil:
		return json.Marshal(*i.emoji)
	case i.file != nil:
		return json.Marshal(*i.file)
	default:
		return nil, Invalidf("Icon", "icon is empty")
	}
}
