package document

// Processed is the fully processed form of an uploaded manuscript:
// extracted content, its chunks, metadata, and inferred structure.
// It is immutable once the pipeline returns it; the analyzers read it
// without mutation.
type Processed struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Chunks    []Chunk   `json:"chunks"`
	Metadata  Metadata  `json:"metadata"`
	Structure Structure `json:"structure"`
}

// Chunk is a bounded-size slice of document content sized for per-unit
// analysis. Chunks are ordered by Index and may overlap in content.
type Chunk struct {
	ID       string        `json:"id"`
	Index    int           `json:"index"`
	Content  string        `json:"content"`
	Tokens   int           `json:"tokens"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ChunkMetadata locates a chunk within the source document.
type ChunkMetadata struct {
	Page      int    `json:"page,omitempty"`
	Paragraph int    `json:"paragraph,omitempty"`
	Section   string `json:"section,omitempty"`
}

// Metadata carries document-level facts pulled from the file or
// estimated from its content.
type Metadata struct {
	Title      string   `json:"title,omitempty"`
	Author     string   `json:"author,omitempty"`
	Pages      int      `json:"pages,omitempty"`
	Words      int      `json:"words,omitempty"`
	Characters int      `json:"characters,omitempty"`
	Language   []string `json:"language"`

	// PagesEstimated marks Pages as a content-length estimate rather
	// than a page count read from the file.
	PagesEstimated bool `json:"pages_estimated,omitempty"`

	CreatedDate  string `json:"created_date,omitempty"`
	ModifiedDate string `json:"modified_date,omitempty"`
}

// Structure is the inferred structural skeleton of a document. All
// slices are present but empty when nothing was detected.
type Structure struct {
	Chapters   []Chapter   `json:"chapters"`
	Sections   []Section   `json:"sections"`
	Headers    []Header    `json:"headers"`
	Paragraphs []Paragraph `json:"paragraphs"`
	Images     []Image     `json:"images"`
	Tables     []Table     `json:"tables"`
}

// Header is a detected heading line. Level 1 is the top of the
// hierarchy. Monotonic nesting is deliberately not enforced here; the
// layout analyzer reports violations.
type Header struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
	Line  int    `json:"line"`
}

// OpenEndedPage is the PageEnd sentinel for the last chapter of a
// document, where no following chapter header bounds it.
const OpenEndedPage = -1

// Chapter spans from its own header to just before the next chapter
// header. WordCount is zero until the pipeline backfills it.
type Chapter struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	PageStart int       `json:"page_start"`
	PageEnd   int       `json:"page_end"`
	WordCount int       `json:"word_count"`
	Sections  []Section `json:"sections,omitempty"`
}

// Section is a sub-division of a chapter.
type Section struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PageStart int    `json:"page_start"`
	PageEnd   int    `json:"page_end"`
}

// Paragraph is one blank-line-delimited block of content in document
// order.
type Paragraph struct {
	ID      string          `json:"id"`
	Content string          `json:"content"`
	Page    int             `json:"page"`
	Index   int             `json:"index"`
	Style   *ParagraphStyle `json:"style,omitempty"`
}

// ParagraphStyle carries formatting hints when the source format
// provides them.
type ParagraphStyle struct {
	Font       string  `json:"font,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	LineHeight float64 `json:"line_height,omitempty"`
	Alignment  string  `json:"alignment,omitempty"`
	Indent     float64 `json:"indent,omitempty"`
}

// Image is a reference to an embedded image.
type Image struct {
	ID   string `json:"id"`
	Page int    `json:"page"`
	Name string `json:"name,omitempty"`
}

// Table is a reference to an embedded table.
type Table struct {
	ID   string `json:"id"`
	Page int    `json:"page"`
	Rows int    `json:"rows,omitempty"`
}
