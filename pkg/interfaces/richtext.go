package interfaces

// RichTextRenderer converts a stored rich text value into an HTML fragment.
// Implementations must leave inline footnote marker tags intact so the
// resolver can rewrite them after rendering.
type RichTextRenderer interface {
	Render(source string) (string, error)
}
