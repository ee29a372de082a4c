package docs

import (
	"fmt"
	"strings"

	"github.com/ternarybob/consilium/internal/classify"
)

// previewLimit truncates content previews and summary excerpts.
const previewLimit = 200

// summarySentences is how many leading sentences the summary quotes.
const summarySentences = 3

// Summarize produces a short plain-text summary: the word count, the
// category, and the document's first few sentences truncated to a fixed
// length.
func Summarize(content string, category classify.Category) string {
	wordCount := len(strings.Fields(content))

	sentences := strings.SplitN(content, ".", summarySentences+1)
	if len(sentences) > summarySentences {
		sentences = sentences[:summarySentences]
	}
	firstPart := truncate(strings.TrimSpace(strings.Join(sentences, ". ")))

	summary := fmt.Sprintf("This is a %s document with %d words. ", category, wordCount)
	if firstPart != "" {
		summary += fmt.Sprintf("Content preview: %s", firstPart)
	}

	return summary
}

// preview returns the first previewLimit characters of content, with an
// ellipsis when truncated.
func preview(content string) string {
	return truncate(content)
}

// truncate caps s at previewLimit characters. Truncation counts runes so a
// multi-byte character is never split.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return s
}
