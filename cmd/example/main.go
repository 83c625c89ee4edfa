package main

import (
	"context"
	"fmt"
	"log"

	footnotes "github.com/goliatone/go-footnotes"
	"github.com/goliatone/go-footnotes/notes"
	"github.com/goliatone/go-footnotes/richtext"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	cfg := footnotes.DefaultConfig()
	cfg.Logging.Enabled = true
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "debug"

	module, err := footnotes.New(cfg)
	if err != nil {
		log.Fatalf("footnotes: %v", err)
	}

	pageID := uuid.New()
	svc := module.Notes()

	first, err := svc.Create(ctx, notes.CreateFootnoteRequest{
		PageID: pageID,
		Text:   "Numbers follow first appearance in the rendered page.",
	})
	if err != nil {
		log.Fatalf("create footnote: %v", err)
	}

	second, err := svc.Create(ctx, notes.CreateFootnoteRequest{
		PageID: pageID,
		Text:   "Repeated references keep the original number.",
	})
	if err != nil {
		log.Fatalf("create footnote: %v", err)
	}

	rctx, err := module.PageRenderContext(ctx, pageID)
	if err != nil {
		log.Fatalf("page render context: %v", err)
	}

	block := module.NewRichTextBlock()
	fmt.Printf("features: %v\n\n", block.Features())

	body := fmt.Sprintf(
		`<p>Ordering is stable.<footnote id="%s">a</footnote> `+
			`Second note.<footnote id="%s">b</footnote> `+
			`First again.<footnote id="%s">a</footnote></p>`,
		first.ID, second.ID, first.ID,
	)

	rendered, err := block.RenderBasic(body, rctx)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println(rendered)
	fmt.Println()

	for i, fn := range rctx.State.Footnotes() {
		fmt.Printf("[%d] %s (sources %v)\n", i+1, fn.Text, rctx.State.ReferenceIDs(fn.ID.String()))
	}

	markdown := richtext.NewBlock(
		richtext.WithRenderer(richtext.NewMarkdownRenderer(richtext.MarkdownOptions{
			Extensions: []string{"gfm"},
		})),
	)
	out, err := markdown.RenderBasic("# Markdown works too\n\nPlain paragraphs render as HTML.", notes.RenderContext{})
	if err != nil {
		log.Fatalf("markdown render: %v", err)
	}
	fmt.Println()
	fmt.Println(out)
}
