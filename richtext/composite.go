package richtext

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-footnotes/notes"
)

// NamedBlock pairs a child block with its field name inside a composition.
type NamedBlock struct {
	Name  string
	Block *Block
}

// StructBlock composes named child blocks into a fixed-shape structure, the
// struct-like compositions hosts build page sections from. Child blocks keep
// their feature lists and marker rewriting.
type StructBlock struct {
	names    []string
	children map[string]*Block
}

// NewStructBlock constructs a struct block from named children in
// declaration order.
func NewStructBlock(children ...NamedBlock) *StructBlock {
	s := &StructBlock{
		children: make(map[string]*Block, len(children)),
	}
	for _, child := range children {
		if child.Block == nil {
			continue
		}
		if _, exists := s.children[child.Name]; exists {
			continue
		}
		s.names = append(s.names, child.Name)
		s.children[child.Name] = child.Block
	}
	return s
}

// Child returns the named child block, or nil when absent.
func (s *StructBlock) Child(name string) *Block {
	return s.children[name]
}

// Render renders every child that has a value, in declaration order, joined
// into one fragment. All children share the supplied render context so
// footnote numbering stays consistent across fields.
func (s *StructBlock) Render(values map[string]string, rctx notes.RenderContext) (template.HTML, error) {
	var out strings.Builder
	for _, name := range s.names {
		value, ok := values[name]
		if !ok {
			continue
		}
		html, err := s.children[name].Render(value, rctx)
		if err != nil {
			return "", fmt.Errorf("richtext: struct child %q: %w", name, err)
		}
		out.WriteString(string(html))
	}
	return template.HTML(out.String()), nil
}

// StreamItem is one entry of a stream value: a child block name and the
// stored value to render with it.
type StreamItem struct {
	Type  string
	Value string
}

// StreamBlock composes named child block definitions rendered against an
// ordered stream of typed values, the list-like composition hosts store
// page bodies as.
type StreamBlock struct {
	children map[string]*Block
}

// NewStreamBlock constructs a stream block from named child definitions.
func NewStreamBlock(children ...NamedBlock) *StreamBlock {
	s := &StreamBlock{
		children: make(map[string]*Block, len(children)),
	}
	for _, child := range children {
		if child.Block == nil {
			continue
		}
		if _, exists := s.children[child.Name]; exists {
			continue
		}
		s.children[child.Name] = child.Block
	}
	return s
}

// Child returns the named child block definition, or nil when absent.
func (s *StreamBlock) Child(name string) *Block {
	return s.children[name]
}

// Render renders the stream in document order, dispatching each item to its
// child block definition. Items referencing unknown child types fail rather
// than vanish: streams are authored against the block's own definition, so a
// missing type is a programming error, not content drift.
func (s *StreamBlock) Render(items []StreamItem, rctx notes.RenderContext) (template.HTML, error) {
	var out strings.Builder
	for i, item := range items {
		child, ok := s.children[item.Type]
		if !ok {
			return "", fmt.Errorf("richtext: stream item %d references unknown block %q", i, item.Type)
		}
		html, err := child.Render(item.Value, rctx)
		if err != nil {
			return "", fmt.Errorf("richtext: stream item %d (%s): %w", i, item.Type, err)
		}
		out.WriteString(string(html))
	}
	return template.HTML(out.String()), nil
}
