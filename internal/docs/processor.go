// -----------------------------------------------------------------------
// Document Processor - extract, classify, and summarize documents one at
// a time or as a directory batch.
// -----------------------------------------------------------------------

package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/classify"
	"github.com/ternarybob/consilium/internal/extract"
	"github.com/ternarybob/consilium/internal/workers"
)

// Processor runs the extract -> classify -> summarize chain per document.
type Processor struct {
	extractor  *extract.Extractor
	numWorkers int
	logger     arbor.ILogger
}

// NewProcessor creates a document processor. numWorkers controls batch
// concurrency; 1 processes files sequentially.
func NewProcessor(extractor *extract.Extractor, numWorkers int, logger arbor.ILogger) *Processor {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Processor{
		extractor:  extractor,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// ProcessDocument processes a single file. Failures are reported in the
// result, never as an error: a missing file or failed extraction yields
// Success=false with a message.
func (p *Processor) ProcessDocument(path string) Result {
	p.logger.Info().Str("file", path).Msg("Processing document")

	info, err := os.Stat(path)
	if err != nil {
		return Result{
			Success: false,
			Error:   fmt.Sprintf("File not found: %s", path),
		}
	}

	content := p.extractor.Text(path)
	if content == "" {
		return Result{
			Success:  false,
			FileName: filepath.Base(path),
			Error:    "Could not extract text from document",
		}
	}

	fileName := filepath.Base(path)
	category := classify.Classify(content, fileName)

	result := Result{
		Success:        true,
		FileName:       fileName,
		FileSize:       info.Size(),
		WordCount:      len(strings.Fields(content)),
		Category:       category,
		Summary:        Summarize(content, category),
		ContentPreview: preview(content),
	}

	p.logger.Info().
		Str("file", fileName).
		Str("category", category.String()).
		Int("word_count", result.WordCount).
		Msg("Document processed")

	return result
}

// ProcessDirectory processes every supported document directly under dir.
// Individual file failures are collected, not fatal; the returned error
// covers only a missing directory or an empty match set.
func (p *Processor) ProcessDirectory(dir string) (*BatchResult, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}

	files, err := discoverDocuments(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no supported documents found in %s", dir)
	}

	batchID := uuid.NewString()
	p.logger.Info().
		Str("batch_id", batchID).
		Str("directory", dir).
		Int("files", len(files)).
		Int("workers", p.numWorkers).
		Msg("Starting batch processing")

	results := make([]Result, len(files))
	pool := workers.NewPool(p.numWorkers, p.logger)
	pool.Start()

	for i, file := range files {
		i, file := i, file
		err := pool.Submit(func(context.Context) error {
			results[i] = p.ProcessDocument(file)
			return nil
		})
		if err != nil {
			results[i] = Result{
				Success:  false,
				FileName: filepath.Base(file),
				Error:    fmt.Sprintf("Failed to queue document: %s", err),
			}
		}
	}
	pool.Wait()

	batch := &BatchResult{
		BatchID:    batchID,
		TotalFiles: len(files),
		Results:    results,
	}
	for _, r := range results {
		if r.Success {
			batch.Successful++
		} else {
			batch.Failed++
		}
	}

	p.logger.Info().
		Str("batch_id", batchID).
		Int("successful", batch.Successful).
		Int("failed", batch.Failed).
		Msg("Batch processing complete")

	return batch, nil
}

// discoverDocuments lists supported files directly under dir, matching
// extensions case-insensitively. Each file is counted once regardless of
// extension casing.
func discoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	supported := make(map[string]bool, len(extract.SupportedExtensions()))
	for _, ext := range extract.SupportedExtensions() {
		supported[ext] = true
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supported[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
