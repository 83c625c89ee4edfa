package footnotes

import "github.com/goliatone/go-footnotes/notes"

type (
	Footnote      = notes.Footnote
	RenderState   = notes.RenderState
	RenderContext = notes.RenderContext
)
