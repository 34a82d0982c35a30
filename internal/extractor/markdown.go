package extractor

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/structure"
)

// MarkdownExtractor handles .md manuscript drafts via goldmark.
// Headings come straight from the AST, so the structure here is
// authoritative rather than inferred.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(data []byte) (*Extraction, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(data))
	if doc == nil {
		return nil, document.NewError(document.CodeMarkdownExtraction, "parse markdown", nil)
	}

	var (
		content strings.Builder
		st      = document.Structure{
			Chapters:   []document.Chapter{},
			Sections:   []document.Section{},
			Headers:    []document.Header{},
			Paragraphs: []document.Paragraph{},
			Images:     []document.Image{},
			Tables:     []document.Table{},
		}
		line      = 1
		paraIndex = 0
	)

	page := func() int { return content.Len()/charsPerPage + 1 }
	appendBlock := func(t string) {
		if content.Len() > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(t)
		line += strings.Count(t, "\n") + 2
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := mdNodeText(node, data)
			if title == "" {
				continue
			}
			st.Headers = append(st.Headers, document.Header{
				ID:    uuid.NewString(),
				Text:  title,
				Level: node.Level,
				Page:  page(),
				Line:  line,
			})
			appendBlock(title)
		default:
			t := mdNodeText(n, data)
			if t == "" {
				continue
			}
			st.Paragraphs = append(st.Paragraphs, document.Paragraph{
				ID:      uuid.NewString(),
				Content: t,
				Page:    page(),
				Index:   paraIndex,
			})
			paraIndex++
			appendBlock(t)
		}
	}

	st.Chapters = structure.PairChapters(st.Headers)

	ex := &Extraction{
		Content:   content.String(),
		Structure: &st,
	}
	fillCommonMetadata(&ex.Metadata, ex.Content)
	return ex, nil
}

// mdNodeText flattens a goldmark AST node into plain text.
func mdNodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(mdNodeText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
