package tui

import (
	"github.com/alecthomas/chroma/v2"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// codeTheme is the chroma style used for code blocks in release notes.
const codeTheme = "deputui-notes"

func init() {
	// Catppuccin Mocha palette, transparent background. Release notes are
	// mostly diffs, shell snippets and config, so generic tokens get colors too.
	chromastyles.Register(chroma.MustNewStyle(codeTheme, chroma.StyleEntries{
		chroma.Background:         "",
		chroma.Text:               "#cdd6f4",
		chroma.Error:              "#f38ba8",
		chroma.Comment:            "#6c7086 italic",
		chroma.Keyword:            "#cba6f7",
		chroma.KeywordType:        "#f9e2af",
		chroma.Operator:           "#89dceb",
		chroma.Punctuation:        "#9399b2",
		chroma.NameAttribute:      "#f9e2af",
		chroma.NameBuiltin:        "#fab387",
		chroma.NameFunction:       "#89b4fa",
		chroma.NameTag:            "#cba6f7",
		chroma.LiteralNumber:      "#fab387",
		chroma.LiteralString:      "#a6e3a1",
		chroma.GenericDeleted:     "#f38ba8",
		chroma.GenericInserted:    "#a6e3a1",
		chroma.GenericHeading:     "#89b4fa bold",
		chroma.GenericSubheading:  "#a6adc8 bold",
		chroma.GenericPrompt:      "#6c7086",
		chroma.GenericEmph:        "italic",
		chroma.GenericStrong:      "bold",
		chroma.NameVariable:       "#f5e0dc",
		chroma.KeywordConstant:    "#fab387",
		chroma.LiteralStringOther: "#94e2d5",
	}))
}
