package block

import (
	"net/url"
	"path"
	"strings"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// ImageExtensions lists the file extensions an image block accepts.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "tif", "tiff", "bmp", "svg", "heic"}

// mediaBlock holds the fields shared by file-backed blocks.
type mediaBlock struct {
	file    props.FileObject
	caption *props.RichText
}

func newMediaBlock(op string, file props.FileObject, caption []props.RichTextItem) (mediaBlock, error) {
	if err := file.Validate(); err != nil {
		return mediaBlock{}, props.Invalid(op, err)
	}
	return mediaBlock{
		file:    file,
		caption: props.NewKeyedRichText("caption", caption...),
	}, nil
}

// File returns the file object.
func (b *mediaBlock) File() props.FileObject {
	return b.file
}

// Caption returns the caption.
func (b *mediaBlock) Caption() *props.RichText {
	return b.caption
}

// SetCaption replaces the caption. rt must be bound to "caption".
func (b *mediaBlock) SetCaption(rt *props.RichText) error {
	if err := keyed("SetCaption", rt, "caption"); err != nil {
		return err
	}
	b.caption = rt
	return nil
}

func (b *mediaBlock) payload() payload {
	return payload{
		"type":              b.file.Type,
		string(b.file.Type): map[string]string{"url": b.file.URL},
		"caption":           b.caption.Texts(),
	}
}

// Image is an image block.
type Image struct {
	mediaBlock
}

// NewImage returns an image block. The URL path must end in one of
// ImageExtensions.
func NewImage(file props.FileObject, caption ...props.RichTextItem) (*Image, error) {
	m, err := newMediaBlock("Image", file, caption)
	if err != nil {
		return nil, err
	}
	if !hasImageExtension(file.URL) {
		return nil, props.Invalidf("Image", "url %q must end in one of %v", file.URL, ImageExtensions)
	}
	return &Image{mediaBlock: m}, nil
}

func hasImageExtension(raw string) bool {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (*Image) Type() Type { return TypeImage }
func (*Image) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Image) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// Video is a video block.
type Video struct {
	mediaBlock
}

// NewVideo returns a video block.
func NewVideo(file props.FileObject, caption ...props.RichTextItem) (*Video, error) {
	m, err := newMediaBlock("Video", file, caption)
	if err != nil {
		return nil, err
	}
	return &Video{mediaBlock: m}, nil
}

func (*Video) Type() Type { return TypeVideo }
func (*Video) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Video) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// File is a generic file block.
type File struct {
	mediaBlock
}

// NewFile returns a file block.
func NewFile(file props.FileObject, caption ...props.RichTextItem) (*File, error) {
	m, err := newMediaBlock("File", file, caption)
	if err != nil {
		return nil, err
	}
	return &File{mediaBlock: m}, nil
}

func (*File) Type() Type { return TypeFile }
func (*File) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *File) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}

// PDF is an embedded PDF.
type PDF struct {
	mediaBlock
}

// NewPDF returns a PDF block.
func NewPDF(file props.FileObject, caption ...props.RichTextItem) (*PDF, error) {
	m, err := newMediaBlock("PDF", file, caption)
	if err != nil {
		return nil, err
	}
	return &PDF{mediaBlock: m}, nil
}

func (*PDF) Type() Type { return TypePDF }
func (*PDF) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *PDF) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), b.payload())
}
