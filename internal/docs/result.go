package docs

import "github.com/ternarybob/consilium/internal/classify"

// Result is the immutable record produced once per processed file.
type Result struct {
	Success        bool              `json:"success"`
	FileName       string            `json:"file_name,omitempty"`
	FileSize       int64             `json:"file_size,omitempty"`
	WordCount      int               `json:"word_count,omitempty"`
	Category       classify.Category `json:"category,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	ContentPreview string            `json:"content_preview,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// BatchResult aggregates per-file results for a directory run.
type BatchResult struct {
	BatchID    string   `json:"batch_id"`
	TotalFiles int      `json:"total_files"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}
