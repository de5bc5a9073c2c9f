// Package preprocess turns Markdown (or plain text) into the clean running
// text an annotator expects: only prose-bearing blocks are kept, quotemark
// variants are normalized to straight double quotes, and whitespace is
// collapsed.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// quotemarks maps curly quotes, low quotes, and guillemets to '"'.
const quotemarks = "«»‘’‛“”„‟‹›"

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractText extracts running text from a Markdown source. Only
// paragraphs, block quotes, and lists contribute; headings, code blocks,
// and other structural elements are dropped. The result is NFKC-normalized
// with quotemarks and whitespace cleaned up.
func ExtractText(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var parts []string
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *ast.Paragraph, *ast.Blockquote, *ast.List:
			parts = append(parts, plainText(child, source))
		}
	}

	combined := norm.NFKC.String(strings.Join(parts, " "))
	return NormalizeQuotes(CollapseWhitespace(combined))
}

// plainText collects the text content of a block node, separating nested
// blocks with spaces.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := node.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					sb.WriteByte(' ')
				}
			}
			return ast.WalkContinue, nil
		}
		switch node.(type) {
		case *ast.Paragraph, *ast.TextBlock, *ast.ListItem:
			sb.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// NormalizeQuotes replaces quotemark variants with straight double quotes.
func NormalizeQuotes(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(quotemarks, r) {
			return '"'
		}
		return r
	}, s)
}

// CollapseWhitespace collapses runs of whitespace to single spaces and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
