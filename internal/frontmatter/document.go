package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrParse matches every front matter parse failure.
var ErrParse = errors.New("frontmatter: parse failed")

// ParseError reports a document whose metadata header is not well-formed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse YAML front matter for file: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Document is a parsed content file. Attributes holds the raw header values as
// decoded from YAML; use the typed accessors to read the validated fields.
type Document struct {
	Path       string
	Attributes map[string]any
	Body       []byte
}

// ParseDocument splits source into its metadata header and body. A file with
// no header yields empty attributes and the whole source as body.
func ParseDocument(path string, source []byte) (*Document, error) {
	source, err := normaliseHeader(source)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	attrs := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &attrs)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Document{
		Path:       path,
		Attributes: attrs,
		Body:       body,
	}, nil
}

var (
	byteOrderMark = []byte("\ufeff")

	errUnterminatedHeader = errors.New("front matter header is not closed")
)

// normaliseHeader strips a leading byte order mark and rewrites a "..."
// closing delimiter to "---". Lines are compared trimmed and leading blank
// lines are skipped, the same way the header is detected when parsed. A header
// opened with "---" but never closed is an error.
func normaliseHeader(source []byte) ([]byte, error) {
	source = bytes.TrimPrefix(source, byteOrderMark)

	offset, opened := 0, false
	for offset < len(source) {
		line, _, more := bytes.Cut(source[offset:], []byte("\n"))
		trimmed := string(bytes.TrimSpace(line))
		switch {
		case !opened && trimmed == "":
		case !opened && trimmed == "---":
			opened = true
		case !opened:
			return source, nil
		case trimmed == "---":
			return source, nil
		case trimmed == "...":
			out := make([]byte, 0, len(source))
			out = append(out, source[:offset]...)
			out = append(out, "---"...)
			out = append(out, source[offset+len(bytes.TrimRight(line, "\r")):]...)
			return out, nil
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	if opened {
		return nil, errUnterminatedHeader
	}
	return source, nil
}

// Communities returns the communities attribute, accepting either a single
// string or a sequence. Absent or empty values return nil.
func (d *Document) Communities() []string {
	return d.list("communities")
}

// Type returns the type attribute, or "" when absent.
func (d *Document) Type() string {
	return d.scalar("type")
}

// By returns the by attribute, or "" when absent.
func (d *Document) By() string {
	return d.scalar("by")
}

// Tags returns the tags attribute. A scalar is treated as a single tag.
func (d *Document) Tags() []string {
	return d.list("tags")
}

// Description returns the description with surrounding whitespace removed.
func (d *Document) Description() string {
	return strings.TrimSpace(d.scalar("description"))
}

func (d *Document) scalar(key string) string {
	if d == nil {
		return ""
	}
	return stringify(d.Attributes[key])
}

func (d *Document) list(key string) []string {
	if d == nil {
		return nil
	}
	switch value := d.Attributes[key].(type) {
	case nil:
		return nil
	case []any:
		if len(value) == 0 {
			return nil
		}
		out := make([]string, len(value))
		for i, item := range value {
			out[i] = stringify(item)
		}
		return out
	case []string:
		if len(value) == 0 {
			return nil
		}
		return append([]string(nil), value...)
	default:
		s := stringify(value)
		if s == "" {
			return nil
		}
		return []string{s}
	}
}

// stringify renders YAML scalars the way they appear in the source. Unquoted
// numbers and booleans decode to non-string types.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
