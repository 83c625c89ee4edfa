package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-footnotes/pkg/interfaces"
)

// MarkdownOptions controls how markdown-sourced rich text is rendered.
type MarkdownOptions struct {
	// Extensions selects goldmark extensions by name; unknown names are
	// ignored. Empty selects the GFM defaults.
	Extensions []string
	// HardWraps renders newlines as <br> elements.
	HardWraps bool
	// Sanitize suppresses raw HTML in the output. Footnote markers are raw
	// inline HTML, so sanitized rendering strips them before the resolver
	// ever sees them; leave this off for fields that carry markers.
	Sanitize bool
}

// MarkdownRenderer renders markdown-sourced rich text through goldmark. The
// renderer is stateless after construction so callers can reuse a single
// instance across requests without locking.
type MarkdownRenderer struct {
	engine goldmark.Markdown
}

// NewMarkdownRenderer constructs a renderer from the supplied options.
func NewMarkdownRenderer(opts MarkdownOptions) *MarkdownRenderer {
	return &MarkdownRenderer{engine: newGoldmarkEngine(opts)}
}

// Render satisfies interfaces.RichTextRenderer.
func (r *MarkdownRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("richtext: markdown render: %w", err)
	}
	return buf.String(), nil
}

func newGoldmarkEngine(opts MarkdownOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}

	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	if !opts.Sanitize {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

var _ interfaces.RichTextRenderer = (*MarkdownRenderer)(nil)
