package richtext

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// DocumentMeta is the structured front matter accepted on rich text sources.
type DocumentMeta struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Draft   bool     `yaml:"draft"`
}

// Document is a rich text source with its front matter split out.
type Document struct {
	Meta DocumentMeta
	Body string
}

// LoadDocument extracts front matter and body from the provided source
// bytes. Sources without front matter load with zero metadata and the full
// source as body.
func LoadDocument(source []byte) (*Document, error) {
	var meta DocumentMeta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("richtext: parse frontmatter: %w", err)
	}

	return &Document{
		Meta: meta,
		Body: string(body),
	}, nil
}
