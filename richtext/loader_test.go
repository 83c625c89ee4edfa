package richtext_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-footnotes/richtext"
)

func TestLoadDocument_WithFrontMatter(t *testing.T) {
	source := []byte(`---
title: Release notes
summary: What changed this cycle
tags:
  - changelog
  - release
draft: true
---
# Release notes

Body content here.
`)

	doc, err := richtext.LoadDocument(source)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.Meta.Title != "Release notes" || doc.Meta.Summary != "What changed this cycle" {
		t.Fatalf("Meta = %+v", doc.Meta)
	}
	if !doc.Meta.Draft {
		t.Fatal("Meta.Draft should be true")
	}
	if want := []string{"changelog", "release"}; !reflect.DeepEqual(doc.Meta.Tags, want) {
		t.Fatalf("Meta.Tags = %v, want %v", doc.Meta.Tags, want)
	}
	if !strings.HasPrefix(strings.TrimSpace(doc.Body), "# Release notes") {
		t.Fatalf("Body = %q", doc.Body)
	}
}

func TestLoadDocument_WithoutFrontMatter(t *testing.T) {
	source := []byte("# Just markdown\n\nNo front matter at all.\n")

	doc, err := richtext.LoadDocument(source)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if !reflect.DeepEqual(doc.Meta, richtext.DocumentMeta{}) {
		t.Fatalf("Meta = %+v, want zero", doc.Meta)
	}
	if string(source) != doc.Body {
		t.Fatalf("Body = %q, want full source", doc.Body)
	}
}
