package richtext

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/goliatone/go-footnotes/internal/footnotes"
	"github.com/goliatone/go-footnotes/notes"
	"github.com/goliatone/go-footnotes/pkg/interfaces"
)

// FeatureFootnotes is the editor feature every block constructed here
// carries, whether or not the caller asked for it.
const FeatureFootnotes = "footnotes"

// Block is a rich text editing/rendering unit that always enables the
// footnotes feature and always rewrites footnote markers after producing
// HTML. It stays usable as a child of StructBlock and StreamBlock
// compositions without losing either behaviour.
type Block struct {
	features []string
	renderer interfaces.RichTextRenderer
	resolver *footnotes.Resolver
	tmpl     *template.Template
}

// Option configures a Block.
type Option func(*Block)

// WithFeatures sets the enabled editing features. Construction appends
// "footnotes" when absent, preserving the caller's ordering and never
// duplicating it.
func WithFeatures(features ...string) Option {
	return func(b *Block) {
		b.features = append([]string(nil), features...)
	}
}

// WithRenderer overrides how the stored value becomes HTML. The default
// treats the value as ready-made HTML.
func WithRenderer(renderer interfaces.RichTextRenderer) Option {
	return func(b *Block) {
		if renderer != nil {
			b.renderer = renderer
		}
	}
}

// WithTemplate sets a custom render template. The template receives the
// produced HTML as .Value; Render falls back to RenderBasic when none is
// configured.
func WithTemplate(tmpl *template.Template) Option {
	return func(b *Block) {
		b.tmpl = tmpl
	}
}

// WithResolver overrides the marker resolver, letting module wiring share a
// configured instance across blocks.
func WithResolver(resolver *footnotes.Resolver) Option {
	return func(b *Block) {
		if resolver != nil {
			b.resolver = resolver
		}
	}
}

// NewBlock constructs a rich text block.
func NewBlock(opts ...Option) *Block {
	b := &Block{
		renderer: HTMLRenderer{},
		resolver: footnotes.NewResolver(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.features = ensureFootnotesFeature(b.features)
	return b
}

// Features returns the effective editing feature list.
func (b *Block) Features() []string {
	out := make([]string, len(b.features))
	copy(out, b.features)
	return out
}

// Render produces the block's HTML through the configured template, falling
// back to RenderBasic when none is set. Footnote markers are rewritten before
// returning; the result is safe for direct template inclusion.
func (b *Block) Render(value string, rctx notes.RenderContext) (template.HTML, error) {
	if b.tmpl == nil {
		return b.RenderBasic(value, rctx)
	}

	rendered, err := b.renderer.Render(value)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, map[string]any{
		"Value": template.HTML(rendered),
	}); err != nil {
		return "", fmt.Errorf("richtext: render template: %w", err)
	}

	return b.resolver.Rewrite(buf.String(), rctx), nil
}

// RenderBasic produces the block's HTML without a template. Footnote markers
// are rewritten before returning.
func (b *Block) RenderBasic(value string, rctx notes.RenderContext) (template.HTML, error) {
	rendered, err := b.renderer.Render(value)
	if err != nil {
		return "", err
	}
	return b.resolver.Rewrite(rendered, rctx), nil
}

func ensureFootnotesFeature(features []string) []string {
	for _, feature := range features {
		if feature == FeatureFootnotes {
			return features
		}
	}
	return append(features, FeatureFootnotes)
}
