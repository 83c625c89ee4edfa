package richtext

import "github.com/goliatone/go-footnotes/pkg/interfaces"

// HTMLRenderer treats the stored value as ready-made HTML and passes it
// through byte for byte. It is the default block renderer: rich text fields
// sourced from a CMS editor arrive already expanded to HTML, with footnote
// markers inline.
type HTMLRenderer struct{}

// NewHTMLRenderer constructs the passthrough renderer.
func NewHTMLRenderer() HTMLRenderer {
	return HTMLRenderer{}
}

// Render satisfies interfaces.RichTextRenderer.
func (HTMLRenderer) Render(source string) (string, error) {
	return source, nil
}

var _ interfaces.RichTextRenderer = HTMLRenderer{}
