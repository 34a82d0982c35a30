package document

import "fmt"

// Machine-readable error codes surfaced at the pipeline boundary.
const (
	CodeProcessing          = "PROCESSING_ERROR"
	CodeDOCXExtraction      = "DOCX_EXTRACTION_ERROR"
	CodePDFExtraction       = "PDF_EXTRACTION_ERROR"
	CodeTXTExtraction       = "TXT_EXTRACTION_ERROR"
	CodeMarkdownExtraction  = "MARKDOWN_EXTRACTION_ERROR"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
)

// PipelineError is the error family callers of the pipeline receive.
// Code is machine-readable; Details carries context for diagnostics.
type PipelineError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// NewError builds a PipelineError wrapping cause (which may be nil).
func NewError(code, message string, cause error) *PipelineError {
	return &PipelineError{Code: code, Message: message, Err: cause}
}

// WithDetail attaches a key/value pair and returns the error for
// chaining.
func (e *PipelineError) WithDetail(key string, value any) *PipelineError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}
