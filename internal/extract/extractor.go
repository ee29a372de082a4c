// -----------------------------------------------------------------------
// Text Extractor - Extract plain text from documents by format.
// Dispatches on file extension to pdfcpu, docconv, gosseract OCR, or a
// plain file read. Extraction failures yield empty text, never errors;
// the caller treats empty text as a terminal failure for that file.
// -----------------------------------------------------------------------

package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"code.sajari.com/docconv"
	"github.com/otiai10/gosseract/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/arbor"
)

// contentPagePattern matches pdfcpu's extracted content files. The files are
// named <input-basename>_Content_page_<n>.txt, so the match anchors on the
// suffix rather than the full name.
var contentPagePattern = regexp.MustCompile(`Content_page_(\d+)\.txt$`)

// Extractor converts documents to plain text.
type Extractor struct {
	logger  arbor.ILogger
	tempDir string
}

// NewExtractor creates a text extractor. A temp directory is used as
// scratch space for PDF content extraction.
func NewExtractor(logger arbor.ILogger) *Extractor {
	tempDir := filepath.Join(os.TempDir(), "consilium-extract")
	os.MkdirAll(tempDir, 0755)

	return &Extractor{
		logger:  logger,
		tempDir: tempDir,
	}
}

// Text extracts plain text from the file at path, dispatching on its
// extension. Every routine catches its library's errors and returns empty
// text; an unsupported extension also yields empty text.
func (e *Extractor) Text(path string) string {
	format := DetectFormat(path)

	switch format {
	case FormatPDF:
		return e.pdfText(path)
	case FormatWord:
		return e.wordText(path)
	case FormatImage:
		return e.imageText(path)
	case FormatText:
		return e.plainText(path)
	default:
		e.logger.Debug().
			Str("file", path).
			Msg("Unsupported file format, no text extracted")
		return ""
	}
}

// pdfText extracts text from a PDF. pdfcpu has no direct text extraction,
// so page content is extracted to a scratch directory and concatenated in
// page order.
func (e *Extractor) pdfText(path string) string {
	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to read PDF")
		return ""
	}
	pageCount := pdfCtx.PageCount

	// Per-call scratch dir: concurrent batch workers must never share one.
	outDir, err := os.MkdirTemp(e.tempDir, "pages-")
	if err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to create PDF scratch directory")
		return ""
	}
	defer os.RemoveAll(outDir)

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(path, outDir, nil, conf); err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to extract PDF content")
		return ""
	}

	return collectPageText(outDir, pageCount)
}

// collectPageText reassembles pdfcpu's per-page content files from outDir in
// page order.
func collectPageText(outDir string, pageCount int) string {
	pageTexts := make(map[int]string)
	files, _ := os.ReadDir(outDir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		m := contentPagePattern.FindStringSubmatch(file.Name())
		if m == nil {
			continue
		}
		pageNum, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		pageTexts[pageNum] = string(content)
	}

	var text strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		if page, ok := pageTexts[pageNum]; ok {
			if text.Len() > 0 {
				text.WriteString("\n\n")
			}
			text.WriteString(page)
		}
	}

	return text.String()
}

// wordText extracts text from a Word document. Modern .docx files are
// converted directly; legacy .doc conversion depends on external tooling
// and falls back to empty text when unavailable.
func (e *Extractor) wordText(path string) string {
	f, err := os.Open(path)
	if err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to open Word document")
		return ""
	}
	defer f.Close()

	var text string
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		text, _, err = docconv.ConvertDocx(f)
	} else {
		text, _, err = docconv.ConvertDoc(f)
	}
	if err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to extract Word document text")
		return ""
	}

	return text
}

// imageText runs OCR over an image file.
func (e *Extractor) imageText(path string) string {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to load image for OCR")
		return ""
	}

	text, err := client.Text()
	if err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("OCR extraction failed")
		return ""
	}

	return text
}

// plainText reads a text file as-is.
func (e *Extractor) plainText(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn().Str("file", path).Err(err).Msg("Failed to read text file")
		return ""
	}
	return string(content)
}
