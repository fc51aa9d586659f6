package frontmatter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	source := []byte(`---
layout: blog_post
title: "Hello"
by: advocate
communities: [devops, security]
description: "A short post."
tags: [oauth, oidc]
type: awareness
---

Body text.
`)
	doc, err := ParseDocument("_posts/hello.md", source)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Path != "_posts/hello.md" {
		t.Fatalf("expected path to be kept, got %q", doc.Path)
	}
	if got := doc.Communities(); !reflect.DeepEqual(got, []string{"devops", "security"}) {
		t.Fatalf("communities mismatch: %v", got)
	}
	if doc.Type() != "awareness" || doc.By() != "advocate" {
		t.Fatalf("unexpected scalars type=%q by=%q", doc.Type(), doc.By())
	}
	if got := doc.Tags(); !reflect.DeepEqual(got, []string{"oauth", "oidc"}) {
		t.Fatalf("tags mismatch: %v", got)
	}
	if doc.Description() != "A short post." {
		t.Fatalf("description mismatch: %q", doc.Description())
	}
	if !strings.Contains(string(doc.Body), "Body text.") {
		t.Fatalf("expected body, got %q", doc.Body)
	}
}

func TestParseDocumentMalformedHeader(t *testing.T) {
	source := []byte("---\ncommunities: [devops\ntags: oops: bad\n---\nbody\n")
	_, err := ParseDocument("_posts/broken.md", source)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Path != "_posts/broken.md" {
		t.Fatalf("expected ParseError naming the file, got %v", err)
	}
	if !strings.Contains(err.Error(), "_posts/broken.md") {
		t.Fatalf("expected message to name the file, got %q", err.Error())
	}
}

func TestParseDocumentWithoutHeader(t *testing.T) {
	doc, err := ParseDocument("plain.md", []byte("# Just a body\n"))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Attributes) != 0 {
		t.Fatalf("expected no attributes, got %v", doc.Attributes)
	}
	if doc.Communities() != nil || doc.Tags() != nil || doc.Type() != "" {
		t.Fatal("expected empty accessors")
	}
}

func TestParseDocumentHeaderVariants(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"plain", "---\ncommunities: [finance]\n---\nbody\n"},
		{"byte order mark", "\ufeff---\ncommunities: [finance]\n---\nbody\n"},
		{"dots closing", "---\ncommunities: [finance]\n...\nbody\n"},
		{"dots closing with trailing space", "---\ncommunities: [finance]\n... \nbody\n"},
		{"crlf", "---\r\ncommunities: [finance]\r\n---\r\nbody\r\n"},
		{"byte order mark and dots", "\ufeff---\ncommunities: [finance]\n...\nbody\n"},
		{"leading blank line and dots", "\n---\ncommunities: [finance]\n...\nbody\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseDocument("p.md", []byte(tc.source))
			if err != nil {
				t.Fatalf("ParseDocument: %v", err)
			}
			if got := doc.Communities(); !reflect.DeepEqual(got, []string{"finance"}) {
				t.Fatalf("expected [finance], got %v", got)
			}
			if !strings.Contains(string(doc.Body), "body") {
				t.Fatalf("expected body to survive, got %q", doc.Body)
			}
		})
	}
}

func TestParseDocumentUnterminatedHeader(t *testing.T) {
	for _, source := range []string{
		"---\ncommunities: [finance]\n",
		"\ufeff---\ncommunities: [finance]\nbody\n",
	} {
		_, err := ParseDocument("open.md", []byte(source))
		if !errors.Is(err, ErrParse) {
			t.Fatalf("%q: expected ErrParse, got %v", source, err)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Path != "open.md" {
			t.Fatalf("%q: expected ParseError naming the file, got %v", source, err)
		}
	}
}

func TestParseDocumentByteOrderMarkWithoutHeader(t *testing.T) {
	doc, err := ParseDocument("plain.md", []byte("\ufeff# Just a body\n"))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Attributes) != 0 {
		t.Fatalf("expected no attributes, got %v", doc.Attributes)
	}
}

func TestCommunitiesAcceptsScalarAndSequence(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  []string
	}{
		{"absent", nil, nil},
		{"empty string", "", nil},
		{"empty sequence", []any{}, nil},
		{"scalar", "devops", []string{"devops"}},
		{"sequence", []any{"devops", "go"}, []string{"devops", "go"}},
		{"string slice", []string{"java"}, []string{"java"}},
		{"numeric item", []any{"go", 42}, []string{"go", "42"}},
		{"nil item", []any{"go", nil}, []string{"go", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := &Document{Attributes: map[string]any{"communities": tc.value}}
			if got := doc.Communities(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Communities() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestScalarTagIsSingleTag(t *testing.T) {
	doc := &Document{Attributes: map[string]any{"tags": "oauth"}}
	if got := doc.Tags(); !reflect.DeepEqual(got, []string{"oauth"}) {
		t.Fatalf("expected scalar tag, got %v", got)
	}
}

func TestExcerptUsesFirstParagraph(t *testing.T) {
	doc := &Document{Body: []byte("# Title\n\nThis is **the** first\nparagraph with a [link](https://example.com).\n\nSecond paragraph.\n")}
	got := doc.Excerpt(200)
	if got != "This is the first paragraph with a link." {
		t.Fatalf("unexpected excerpt %q", got)
	}
}

func TestExcerptTruncatesOnWordBoundary(t *testing.T) {
	doc := &Document{Body: []byte("alpha beta gamma delta\n")}
	if got := doc.Excerpt(13); got != "alpha beta..." {
		t.Fatalf("unexpected excerpt %q", got)
	}
	if got := (&Document{Body: []byte("# only a heading\n")}).Excerpt(10); got != "" {
		t.Fatalf("expected empty excerpt, got %q", got)
	}
}
