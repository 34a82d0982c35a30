// Package extractor turns raw manuscript bytes into plain text,
// metadata, and a best-effort structural skeleton. One extractor per
// file type, selected by a factory.
package extractor

import (
	"strings"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

// charsPerPage is the fixed divisor used to estimate page counts for
// formats that carry no pagination. An approximation, never
// authoritative; Metadata.PagesEstimated marks it.
const charsPerPage = 3000

// Extraction is the result of running an extractor over a file.
type Extraction struct {
	Content  string
	Metadata document.Metadata

	// Structure is set when the format itself yields structure (DOCX
	// styles, markdown headings); nil means the caller should infer
	// structure from Content.
	Structure *document.Structure

	// Markup is a parallel HTML representation of the content when the
	// format provides richer styling than plain text.
	Markup string
}

// Extractor converts one file format into an Extraction.
type Extractor interface {
	Extract(data []byte) (*Extraction, error)
}

// SupportedTypes lists the file-type tags the factory accepts.
var SupportedTypes = map[string]bool{
	"docx": true,
	"pdf":  true,
	"txt":  true,
	"md":   true,
}

// ForType returns the extractor for a file-type tag, or an
// UNSUPPORTED_FILE_TYPE error.
func ForType(fileType string) (Extractor, error) {
	switch strings.ToLower(strings.TrimPrefix(fileType, ".")) {
	case "docx":
		return &DOCXExtractor{}, nil
	case "pdf":
		return &PDFExtractor{}, nil
	case "txt", "text":
		return &TextExtractor{}, nil
	case "md", "markdown":
		return &MarkdownExtractor{}, nil
	default:
		return nil, document.NewError(document.CodeUnsupportedFileType,
			"unsupported file type", nil).WithDetail("file_type", fileType)
	}
}

// IsSupported checks a file-type tag without constructing an
// extractor.
func IsSupported(fileType string) bool {
	return SupportedTypes[strings.ToLower(strings.TrimPrefix(fileType, "."))]
}

// fillCommonMetadata populates the counts every extractor reports the
// same way: characters, script-weighted words, detected languages,
// and an estimated page count when the format supplied none.
func fillCommonMetadata(md *document.Metadata, content string) {
	md.Characters = len([]rune(content))
	md.Words = textutil.CountWords(content)
	md.Language = textutil.DetectLanguages(content)
	if md.Pages == 0 {
		md.Pages = md.Characters/charsPerPage + 1
		md.PagesEstimated = true
	}
}
