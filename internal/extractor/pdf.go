package extractor

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// PDFExtractor handles PDF manuscripts: page text plus whatever the
// Info dictionary carries (title, author, timestamps). Page count is
// real here, not estimated.
type PDFExtractor struct{}

func (e *PDFExtractor) Extract(data []byte) (*Extraction, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "manuscript-pdf-*.pdf")
	if err != nil {
		return nil, document.NewError(document.CodePDFExtraction, "create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return nil, document.NewError(document.CodePDFExtraction, "write temp file", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, document.NewError(document.CodePDFExtraction, "open pdf", err)
	}
	defer f.Close()

	var content strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page degrades to a gap, not a failure.
			continue
		}
		if content.Len() > 0 {
			content.WriteString("\f")
		}
		content.WriteString(strings.TrimSpace(text))
	}

	ex := &Extraction{Content: content.String()}
	ex.Metadata.Pages = numPages

	readInfo(reader, &ex.Metadata)
	fillCommonMetadata(&ex.Metadata, ex.Content)
	return ex, nil
}

// readInfo copies the PDF Info dictionary into metadata when present.
func readInfo(reader *pdflib.Reader, md *document.Metadata) {
	defer func() {
		// Malformed xref/Info structures panic inside the pdf library;
		// metadata is best-effort, so swallow and keep what we have.
		_ = recover()
	}()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return
	}
	md.Title = pdfString(info.Key("Title"))
	md.Author = pdfString(info.Key("Author"))
	md.CreatedDate = pdfDate(pdfString(info.Key("CreationDate")))
	md.ModifiedDate = pdfDate(pdfString(info.Key("ModDate")))
}

// pdfString decodes a PDF text string value, handling the UTF-16BE
// BOM form.
func pdfString(v pdflib.Value) string {
	if v.Kind() != pdflib.String {
		return ""
	}
	s := v.RawString()
	if strings.HasPrefix(s, "\xfe\xff") {
		b := []byte(s[2:])
		u := make([]uint16, 0, len(b)/2)
		for i := 0; i+1 < len(b); i += 2 {
			u = append(u, uint16(b[i])<<8|uint16(b[i+1]))
		}
		return string(utf16.Decode(u))
	}
	return s
}

// pdfDate converts the PDF date form D:YYYYMMDDHHmmSS... into an
// ISO-ish YYYY-MM-DD string, best effort.
func pdfDate(s string) string {
	s = strings.TrimPrefix(s, "D:")
	if len(s) < 8 {
		return ""
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}
