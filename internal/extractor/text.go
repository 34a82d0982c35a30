package extractor

import (
	"bufio"
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// TextExtractor handles plain .txt manuscripts. The content is the
// raw string; metadata and structure must both be derived from it.
type TextExtractor struct{}

func (e *TextExtractor) Extract(data []byte) (*Extraction, error) {
	if !utf8.Valid(data) {
		return nil, document.NewError(document.CodeTXTExtraction,
			"file is not valid UTF-8 text", nil)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, document.NewError(document.CodeTXTExtraction, "read text", err)
	}

	content := strings.TrimSpace(strings.Join(lines, "\n"))

	ex := &Extraction{Content: content}
	fillCommonMetadata(&ex.Metadata, content)
	return ex, nil
}
