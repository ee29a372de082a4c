package extract

import (
	"path/filepath"
	"strings"
)

// Format identifies which extraction routine handles a file.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatWord
	FormatImage
	FormatText
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "word"
	case FormatImage:
		return "image"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// formatByExtension maps lower-cased file extensions to formats.
var formatByExtension = map[string]Format{
	".pdf":  FormatPDF,
	".doc":  FormatWord,
	".docx": FormatWord,
	".txt":  FormatText,
	".jpg":  FormatImage,
	".jpeg": FormatImage,
	".png":  FormatImage,
}

// DetectFormat maps a file path to its extraction format by lower-cased
// extension. Unrecognized extensions yield FormatUnknown.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatByExtension[ext]; ok {
		return f
	}
	return FormatUnknown
}

// SupportedExtensions returns the lower-cased extensions the extractor
// handles, in a stable order. Callers matching against these must
// lower-case candidate extensions first.
func SupportedExtensions() []string {
	return []string{".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png"}
}
