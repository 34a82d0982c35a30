package pipeline

import (
	"sync"
	"time"

	"github.com/byte-squad-abac/manuscript/internal/chunker"
	"github.com/byte-squad-abac/manuscript/internal/document"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusChunking   JobStatus = "chunking"
	StatusAnalyzing  JobStatus = "analyzing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single manuscript analysis.
type Job struct {
	mu sync.Mutex

	ID       string `json:"job_id"`
	Filename string `json:"filename"`
	FileType string `json:"file_type"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData  []byte
	chunkOpts *chunker.Options
	doc       *document.Processed
	report    *AnalysisReport
	errors    []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalChunks    int      `json:"total_chunks"`
	SpellingIssues int      `json:"spelling_issues"`
	LayoutIssues   int      `json:"layout_issues"`
	Errors         []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetTotalChunks records total chunk count.
func (j *Job) SetTotalChunks(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalChunks = n
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetChunkOptions overrides the pipeline's default chunking for this
// job only.
func (j *Job) SetChunkOptions(opts chunker.Options) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.chunkOpts = &opts
}

// ChunkOptions returns the per-job chunking override, nil when the
// defaults apply.
func (j *Job) ChunkOptions() *chunker.Options {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.chunkOpts
}

// SetResult records the processed document and its report, releasing
// the raw file bytes the job no longer needs.
func (j *Job) SetResult(doc *document.Processed, report *AnalysisReport) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.doc = doc
	j.report = report
	j.Progress.SpellingIssues = len(report.Spelling)
	j.Progress.LayoutIssues = len(report.Layout)
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// Document returns the processed document, nil until the job completes.
func (j *Job) Document() *document.Processed {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.doc
}

// Report returns the analysis report, nil until the job completes.
func (j *Job) Report() *AnalysisReport {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.report
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Filename string    `json:"filename"`
	FileType string    `json:"file_type"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		Filename: j.Filename,
		FileType: j.FileType,
		Status:   j.Status,
		Phase:    j.Phase,
		Progress: Progress{
			TotalChunks:    j.Progress.TotalChunks,
			SpellingIssues: j.Progress.SpellingIssues,
			LayoutIssues:   j.Progress.LayoutIssues,
			Errors:         errs,
		},
	}
}
