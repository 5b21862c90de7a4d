package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// glamourStyle returns the named glamour style with the notes code theme.
// Unknown names fall back to the dark style.
func glamourStyle(name string) glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if s, ok := glamourstyles.DefaultStyles[name]; ok && s != nil {
		cfg = *s
	}

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin
	cfg.CodeBlock.Theme = codeTheme
	cfg.CodeBlock.Chroma = nil
	return cfg
}

// notesRenderer turns release notes into terminal output and remembers the
// last result, so repaints of an unchanged pane do not re-render.
type notesRenderer struct {
	style    string
	source   string
	rendered string
	width    int
	enabled  bool
}

func newNotesRenderer(style string, enabled bool) *notesRenderer {
	return &notesRenderer{style: style, enabled: enabled}
}

// Render returns source rendered as markdown wrapped at width.
// Raw text is returned when rendering is disabled or fails.
func (r *notesRenderer) Render(source string, width int) string {
	if !r.enabled || width <= 0 {
		return source
	}
	if source == r.source && width == r.width && r.rendered != "" {
		return r.rendered
	}

	out, err := r.render(source, width)
	if err != nil {
		return source
	}
	r.source, r.width, r.rendered = source, width, out
	return out
}

func (r *notesRenderer) render(source string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourStyle(r.style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(source)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
