package structure

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// Page estimate for markup-derived structure, matching the extractors'
// characters-per-page divisor.
const markupCharsPerPage = 3000

// FromMarkup builds structure from an extractor-supplied HTML
// representation. Heading tags carry the levels directly, so none of
// the plain-text heuristics apply.
func FromMarkup(markup string) document.Structure {
	st := document.Structure{
		Chapters:   []document.Chapter{},
		Sections:   []document.Section{},
		Headers:    []document.Header{},
		Paragraphs: []document.Paragraph{},
		Images:     []document.Image{},
		Tables:     []document.Table{},
	}

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return st
	}

	chars := 0
	lineNo := 1
	paraIndex := 0
	page := func() int { return chars/markupCharsPerPage + 1 }

	advance := func(text string) {
		chars += len(text)
		lineNo += strings.Count(text, "\n") + 2
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := tagLevel(n.Data); level > 0 {
				text := textContent(n)
				st.Headers = append(st.Headers, document.Header{
					ID:    uuid.NewString(),
					Text:  text,
					Level: level,
					Page:  page(),
					Line:  lineNo,
				})
				advance(text)
				return
			}
			switch n.Data {
			case "p", "blockquote", "li":
				text := textContent(n)
				if text == "" {
					return
				}
				st.Paragraphs = append(st.Paragraphs, document.Paragraph{
					ID:      uuid.NewString(),
					Content: text,
					Page:    page(),
					Index:   paraIndex,
				})
				paraIndex++
				advance(text)
				return
			case "table":
				st.Tables = append(st.Tables, document.Table{
					ID:   uuid.NewString(),
					Page: page(),
					Rows: countRows(n),
				})
				return
			case "img":
				st.Images = append(st.Images, document.Image{
					ID:   uuid.NewString(),
					Page: page(),
					Name: attr(n, "src"),
				})
				return
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	st.Chapters = PairChapters(st.Headers)
	return st
}

func tagLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func countRows(table *html.Node) int {
	rows := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return rows
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
