package extractor

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/structure"
)

// DOCXExtractor handles .docx manuscripts. Besides plain content it
// emits a parallel HTML markup representation; structure is derived
// from the markup tags, which carry the paragraph styles, rather than
// guessed from the text.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(data []byte) (*Extraction, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "manuscript-docx-*.docx")
	if err != nil {
		return nil, document.NewError(document.CodeDOCXExtraction, "create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return nil, document.NewError(document.CodeDOCXExtraction, "write temp file", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, document.NewError(document.CodeDOCXExtraction, "seek temp file", err)
	}

	doc, err := docx.Parse(tmp, int64(len(data)))
	tmp.Close()
	if err != nil {
		return nil, document.NewError(document.CodeDOCXExtraction, "parse docx", err)
	}

	var content, markup strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			text := docxParagraphText(v)
			if text == "" {
				continue
			}
			if level := docxHeadingLevel(v); level > 0 {
				markup.WriteString(fmt.Sprintf("<h%d>%s</h%d>\n", level, html.EscapeString(text), level))
			} else {
				markup.WriteString("<p>" + html.EscapeString(text) + "</p>\n")
			}
			if content.Len() > 0 {
				content.WriteString("\n\n")
			}
			content.WriteString(text)
		case *docx.Table:
			markup.WriteString("<table>")
			for range v.TableRows {
				markup.WriteString("<tr></tr>")
			}
			markup.WriteString("</table>\n")
		}
	}

	st := structure.FromMarkup(markup.String())
	ex := &Extraction{
		Content:   content.String(),
		Structure: &st,
		Markup:    markup.String(),
	}
	fillCommonMetadata(&ex.Metadata, ex.Content)
	return ex, nil
}

// docxHeadingLevel maps a paragraph's style to a heading level, 0 for
// body text.
func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	for lvl := 1; lvl <= 6; lvl++ {
		if style == fmt.Sprintf("heading%d", lvl) {
			return lvl
		}
	}
	if style == "title" {
		return 1
	}
	return 0
}

// docxParagraphText concatenates the run text of a paragraph.
func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
