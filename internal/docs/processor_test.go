package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/classify"
	"github.com/ternarybob/consilium/internal/extract"
)

func newTestProcessor(workers int) *Processor {
	logger := arbor.NewLogger()
	return NewProcessor(extract.NewExtractor(logger), workers, logger)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestProcessDocument(t *testing.T) {
	processor := newTestProcessor(1)
	dir := t.TempDir()

	path := writeFile(t, dir, "march_invoice.txt",
		"Invoice for consulting. Total amount due is $400. Payment expected within 30 days.")

	result := processor.ProcessDocument(path)
	require.True(t, result.Success)
	assert.Equal(t, "march_invoice.txt", result.FileName)
	assert.Equal(t, classify.CategoryFinancial, result.Category)
	assert.Equal(t, 13, result.WordCount)
	assert.Greater(t, result.FileSize, int64(0))
	assert.Contains(t, result.Summary, "This is a financial document with 13 words.")
	assert.Contains(t, result.Summary, "Content preview: Invoice for consulting")
	assert.Contains(t, result.ContentPreview, "Invoice for consulting")
	assert.Empty(t, result.Error)
}

func TestProcessDocument_MissingFile(t *testing.T) {
	processor := newTestProcessor(1)
	path := filepath.Join(t.TempDir(), "absent.txt")

	result := processor.ProcessDocument(path)
	assert.False(t, result.Success)
	assert.Equal(t, "File not found: "+path, result.Error)
}

func TestProcessDocument_ExtractionFailure(t *testing.T) {
	processor := newTestProcessor(1)
	dir := t.TempDir()

	// A PDF that isn't one: extraction yields empty text.
	path := writeFile(t, dir, "broken.pdf", "not actually a pdf")

	result := processor.ProcessDocument(path)
	assert.False(t, result.Success)
	assert.Equal(t, "Could not extract text from document", result.Error)
}

func TestProcessDocument_LongContentPreviewTruncated(t *testing.T) {
	processor := newTestProcessor(1)
	dir := t.TempDir()

	content := strings.Repeat("word ", 100)
	path := writeFile(t, dir, "long.txt", content)

	result := processor.ProcessDocument(path)
	require.True(t, result.Success)
	assert.Len(t, result.ContentPreview, 203, "200 characters plus ellipsis")
	assert.True(t, strings.HasSuffix(result.ContentPreview, "..."))
}

func TestProcessDocument_MultiByteContentStaysValidUTF8(t *testing.T) {
	processor := newTestProcessor(1)
	dir := t.TempDir()

	// 250 two-byte runes: a byte-indexed cut at 200 would split one.
	path := writeFile(t, dir, "unicode.txt", strings.Repeat("é", 250))

	result := processor.ProcessDocument(path)
	require.True(t, result.Success)
	assert.Equal(t, strings.Repeat("é", 200)+"...", result.ContentPreview)
	assert.True(t, utf8.ValidString(result.ContentPreview))
	assert.True(t, utf8.ValidString(result.Summary))
}

func TestProcessDirectory(t *testing.T) {
	processor := newTestProcessor(2)
	dir := t.TempDir()

	// Three documents that extract cleanly, two that cannot.
	writeFile(t, dir, "invoice.txt", "Invoice total amount $500.")
	writeFile(t, dir, "contract.txt", "This agreement binds both parties.")
	writeFile(t, dir, "notes.txt", "Just some plain meeting notes.")
	writeFile(t, dir, "broken.pdf", "not a pdf")
	writeFile(t, dir, "broken.docx", "not a docx")

	// Unsupported extensions are not discovered at all.
	writeFile(t, dir, "data.csv", "a,b,c")

	batch, err := processor.ProcessDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, batch.TotalFiles)
	assert.Equal(t, 3, batch.Successful)
	assert.Equal(t, 2, batch.Failed)
	assert.Len(t, batch.Results, 5)
	assert.NotEmpty(t, batch.BatchID)
}

func TestProcessDirectory_MissingDirectory(t *testing.T) {
	processor := newTestProcessor(1)

	_, err := processor.ProcessDirectory(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
}

func TestProcessDirectory_NoSupportedFiles(t *testing.T) {
	processor := newTestProcessor(1)
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", "a,b,c")

	_, err := processor.ProcessDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported documents found")
}

func TestDiscoverDocuments_CaseInsensitiveWithoutDoubleCounting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "UPPER.TXT", "upper case extension")
	writeFile(t, dir, "lower.txt", "lower case extension")
	writeFile(t, dir, "Mixed.Txt", "mixed case extension")
	writeFile(t, dir, "skip.csv", "unsupported")

	files, err := discoverDocuments(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3, "each file is counted exactly once")
}

func TestSummarize(t *testing.T) {
	content := "First sentence here. Second one follows. Third closes it out. Fourth is never quoted."
	summary := Summarize(content, classify.CategoryGeneral)

	assert.Contains(t, summary, "This is a general document with 14 words.")
	assert.Contains(t, summary, "First sentence here")
	assert.Contains(t, summary, "Third closes it out")
	assert.NotContains(t, summary, "Fourth is never quoted")
}

func TestSummarize_TruncatesLongOpening(t *testing.T) {
	content := strings.Repeat("x", 400) + ". more text."
	summary := Summarize(content, classify.CategoryTechnical)
	assert.Contains(t, summary, strings.Repeat("x", 200)+"...")
}

func TestSummarize_EmptyContent(t *testing.T) {
	summary := Summarize("", classify.CategoryGeneral)
	assert.Equal(t, "This is a general document with 0 words. ", summary)
}
