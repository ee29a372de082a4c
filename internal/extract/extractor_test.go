package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"report.pdf", FormatPDF},
		{"report.PDF", FormatPDF},
		{"letter.doc", FormatWord},
		{"letter.docx", FormatWord},
		{"letter.DOCX", FormatWord},
		{"notes.txt", FormatText},
		{"scan.jpg", FormatImage},
		{"scan.jpeg", FormatImage},
		{"scan.png", FormatImage},
		{"archive.zip", FormatUnknown},
		{"noextension", FormatUnknown},
		{"dir/nested.Txt", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "pdf", FormatPDF.String())
	assert.Equal(t, "word", FormatWord.String())
	assert.Equal(t, "image", FormatImage.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	require.Len(t, exts, 7)
	for _, ext := range exts {
		assert.NotEqual(t, FormatUnknown, DetectFormat("file"+ext))
	}
}

func TestExtractor_PlainText(t *testing.T) {
	extractor := NewExtractor(arbor.NewLogger())

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("this is an invoice for payment"), 0644))

	assert.Equal(t, "this is an invoice for payment", extractor.Text(path))
}

func TestExtractor_UnsupportedExtension(t *testing.T) {
	extractor := NewExtractor(arbor.NewLogger())

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c"), 0644))

	assert.Empty(t, extractor.Text(path), "unsupported extensions yield empty text, not an error")
}

func TestExtractor_MissingFile(t *testing.T) {
	extractor := NewExtractor(arbor.NewLogger())
	assert.Empty(t, extractor.Text(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestExtractor_CorruptPDF(t *testing.T) {
	extractor := NewExtractor(arbor.NewLogger())

	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	assert.Empty(t, extractor.Text(path), "extraction failures yield empty text")
}

func TestCollectPageText_PrefixedContentFiles(t *testing.T) {
	// pdfcpu names extracted content files <input-basename>_Content_page_<n>.txt.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_Content_page_1.txt"), []byte("page one"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_Content_page_2.txt"), []byte("page two"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_Image_1.png"), []byte{0x89}, 0644))

	assert.Equal(t, "page one\n\npage two", collectPageText(dir, 2))
}

func TestCollectPageText_PageOrder(t *testing.T) {
	// Directory listing order is lexical; reassembly must be numeric.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r_Content_page_10.txt"), []byte("ten"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r_Content_page_2.txt"), []byte("two"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r_Content_page_1.txt"), []byte("one"), 0644))

	assert.Equal(t, "one\n\ntwo\n\nten", collectPageText(dir, 10))
}

func TestCollectPageText_NoContentFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not a content file"), 0644))

	assert.Empty(t, collectPageText(dir, 3))
}

func TestExtractor_CorruptWordDocument(t *testing.T) {
	extractor := NewExtractor(arbor.NewLogger())

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	assert.Empty(t, extractor.Text(path))
}
