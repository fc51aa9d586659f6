package frontmatter

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var excerptEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Excerpt returns the first markdown paragraph of the body as plain text,
// truncated to limit runes. It returns "" when the body has no paragraph.
func (d *Document) Excerpt(limit int) string {
	if d == nil || len(d.Body) == 0 {
		return ""
	}
	root := excerptEngine.Parser().Parse(text.NewReader(d.Body))

	var paragraph ast.Node
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Kind() == ast.KindParagraph {
			paragraph = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if paragraph == nil {
		return ""
	}

	var b strings.Builder
	_ = ast.Walk(paragraph, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(d.Body))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.AutoLink:
			b.Write(node.Label(d.Body))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return truncate(strings.Join(strings.Fields(b.String()), " "), limit)
}

func truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	cut := strings.TrimSpace(string(runes[:limit]))
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
