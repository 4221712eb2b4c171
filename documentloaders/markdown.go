package documentloaders

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// flattenMarkdown parses Markdown and returns its plain-text content.
// Block boundaries (headings, paragraphs, list items, quotes) become
// blank lines so the paragraph splitter still finds its boundaries in
// the flattened text. Formatting markers and link targets are dropped.
func flattenMarkdown(source []byte) (string, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var buf strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
			writeBlockBreak(&buf)
		case *ast.FencedCodeBlock:
			writeBlockBreak(&buf)
			writeCodeLines(&buf, node.Lines(), source)
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			writeBlockBreak(&buf)
			writeCodeLines(&buf, node.Lines(), source)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func writeBlockBreak(buf *strings.Builder) {
	if buf.Len() > 0 {
		buf.WriteString("\n\n")
	}
}

func writeCodeLines(buf *strings.Builder, lines *text.Segments, source []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
}
