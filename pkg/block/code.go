package block

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// Language is the syntax highlighting language of a code block.
type Language string

const (
	LanguagePlainText  Language = "plain text"
	LanguageBash       Language = "bash"
	LanguageGo         Language = "go"
	LanguageJSON       Language = "json"
	LanguageJavaScript Language = "javascript"
	LanguageMarkdown   Language = "markdown"
	LanguagePython     Language = "python"
	LanguageShell      Language = "shell"
	LanguageSQL        Language = "sql"
	LanguageTypeScript Language = "typescript"
	LanguageYAML       Language = "yaml"
)

var languages = []Language{
	"abap", "arduino", "bash", "basic", "c", "clojure", "coffeescript", "c++",
	"c#", "css", "dart", "diff", "docker", "elixir", "elm", "erlang", "flow",
	"fortran", "f#", "gherkin", "glsl", "go", "graphql", "groovy", "haskell",
	"html", "java", "javascript", "json", "julia", "kotlin", "latex", "less",
	"lisp", "livescript", "lua", "makefile", "markdown", "markup", "matlab",
	"mermaid", "nix", "objective-c", "ocaml", "pascal", "perl", "php",
	"plain text", "powershell", "prolog", "protobuf", "python", "r", "reason",
	"ruby", "rust", "sass", "scala", "scheme", "scss", "shell", "sql", "swift",
	"typescript", "vb.net", "verilog", "vhdl", "visual basic", "webassembly",
	"xml", "yaml", "java/c/c++/c#",
}

// ValidLanguages returns every language a code block accepts.
func ValidLanguages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Validate implements validation.Validatable.
func (l Language) Validate() error {
	elems := make([]interface{}, len(languages))
	for i, v := range languages {
		elems[i] = string(v)
	}
	return validation.Validate(string(l),
		validation.Required,
		validation.In(elems...).Error("must be a supported language"),
	)
}

// Code is a code block.
type Code struct {
	text     *props.RichText
	caption  *props.RichText
	language Language
}

// NewCode returns a code block in the given language holding items.
func NewCode(language Language, items ...props.RichTextItem) (*Code, error) {
	c := &Code{
		text:    props.NewRichText(items...),
		caption: props.NewKeyedRichText("caption"),
	}
	if err := c.SetLanguage(language); err != nil {
		return nil, err
	}
	return c, nil
}

// RichText returns the code text.
func (b *Code) RichText() *props.RichText {
	return b.text
}

// SetRichText replaces the code text. rt must be bound to "rich_text".
func (b *Code) SetRichText(rt *props.RichText) error {
	if err := keyed("Code.SetRichText", rt, props.DefaultRichTextKey); err != nil {
		return err
	}
	b.text = rt
	return nil
}

// Caption returns the caption.
func (b *Code) Caption() *props.RichText {
	return b.caption
}

// SetCaption replaces the caption. rt must be bound to "caption".
func (b *Code) SetCaption(rt *props.RichText) error {
	if err := keyed("Code.SetCaption", rt, "caption"); err != nil {
		return err
	}
	b.caption = rt
	return nil
}

// Language returns the highlighting language.
func (b *Code) Language() Language {
	return b.language
}

// SetLanguage changes the highlighting language.
func (b *Code) SetLanguage(l Language) error {
	if err := l.Validate(); err != nil {
		return props.Invalid("Code.SetLanguage", err)
	}
	b.language = l
	return nil
}

func (*Code) Type() Type { return TypeCode }
func (*Code) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Code) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{
		props.DefaultRichTextKey: b.text.Texts(),
		"caption":                b.caption.Texts(),
		"language":               b.language,
	})
}

// Equation is a block level KaTeX expression.
type Equation struct {
	Expression string
}

// NewEquation returns an equation block.
func NewEquation(expression string) *Equation {
	return &Equation{Expression: expression}
}

func (*Equation) Type() Type { return TypeEquation }
func (*Equation) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *Equation) MarshalJSON() ([]byte, error) {
	return marshalBlock(b.Type(), payload{"expression": b.Expression})
}
