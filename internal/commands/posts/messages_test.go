package postscmd

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blogcheck/internal/posts"
)

func TestStampPostCommandValidate(t *testing.T) {
	if err := (StampPostCommand{}).Validate(); err != nil {
		t.Fatalf("blank date should be accepted: %v", err)
	}
	if err := (StampPostCommand{Date: "2019/09/01"}).Validate(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestCreatePostCommandDefaultsAreValid(t *testing.T) {
	if err := (CreatePostCommand{Name: "my post"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreatePostCommandFormats(t *testing.T) {
	for _, format := range posts.Formats() {
		if err := (CreatePostCommand{Name: "x", Format: format}).Validate(); err != nil {
			t.Fatalf("format %q should be accepted: %v", format, err)
		}
	}

	err := (CreatePostCommand{Name: "x", Format: "html"}).Validate()
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), strings.Join(posts.Formats(), ", ")) {
		t.Fatalf("expected message to list formats, got %v", err)
	}
}
