package richtext_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-footnotes/notes"
	"github.com/goliatone/go-footnotes/richtext"
	"github.com/google/uuid"
)

func TestMarkdownRenderer_BasicDocument(t *testing.T) {
	renderer := richtext.NewMarkdownRenderer(richtext.MarkdownOptions{})

	out, err := renderer.Render("# Title\n\nA paragraph with **bold** text.")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, `<h1 id="title">Title</h1>`) {
		t.Fatalf("Render() = %q, want heading with auto id", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("Render() = %q, want bold span", out)
	}
}

func TestMarkdownRenderer_KeepsRawMarkers(t *testing.T) {
	renderer := richtext.NewMarkdownRenderer(richtext.MarkdownOptions{})

	id := uuid.New().String()
	out, err := renderer.Render(fmt.Sprintf(`A claim.<footnote id="%s">1</footnote>`, id))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, fmt.Sprintf(`<footnote id="%s">1</footnote>`, id)) {
		t.Fatalf("Render() = %q, want raw marker preserved", out)
	}
}

func TestMarkdownRenderer_SanitizeStripsRawHTML(t *testing.T) {
	renderer := richtext.NewMarkdownRenderer(richtext.MarkdownOptions{Sanitize: true})

	out, err := renderer.Render(`Text with <script>alert(1)</script> inline.`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("Render() = %q, want raw HTML suppressed", out)
	}
}

func TestMarkdownRenderer_ExtensionSelection(t *testing.T) {
	gfm := richtext.NewMarkdownRenderer(richtext.MarkdownOptions{Extensions: []string{"strikethrough"}})

	out, err := gfm.Render("~~gone~~")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "<del>gone</del>") {
		t.Fatalf("Render() = %q, want strikethrough", out)
	}

	plain := richtext.NewMarkdownRenderer(richtext.MarkdownOptions{Extensions: []string{"definition"}})
	out, err = plain.Render("~~kept~~")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "<del>") {
		t.Fatalf("Render() = %q, strikethrough should be off", out)
	}
}

func TestMarkdownBlock_EndToEnd(t *testing.T) {
	fn := &notes.Footnote{ID: uuid.New(), Text: "cited"}
	rctx := newPageContext(fn)

	block := richtext.NewBlock(
		richtext.WithRenderer(richtext.NewMarkdownRenderer(richtext.MarkdownOptions{})),
	)

	source := fmt.Sprintf(`A cited claim.<footnote id="%s">1</footnote>`, fn.ID)
	got, err := block.RenderBasic(source, rctx)
	if err != nil {
		t.Fatalf("RenderBasic() error = %v", err)
	}
	if !strings.Contains(string(got), `<a href="#footnote-1" id="footnote-source-1-0"><sup>[1]</sup></a>`) {
		t.Fatalf("RenderBasic() = %q, want rewritten marker", got)
	}
}
