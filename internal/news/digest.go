package news

import (
	"fmt"
	"strings"
)

// DefaultDigestSize caps how many items are rendered into a digest.
const DefaultDigestSize = 10

// snippetLimit truncates result bodies in the digest.
const snippetLimit = 200

// FormatDigest renders collected news items as the plain-text block fed to
// the analysis pipeline. Items beyond max are dropped; duplicates are kept
// as collected. An empty collection yields an explanatory line rather than
// an error.
func FormatDigest(companyName, symbol string, items []Item, max int) string {
	if max <= 0 {
		max = DefaultDigestSize
	}

	if len(items) == 0 {
		return fmt.Sprintf("No recent news found for %s (%s)", companyName, symbol)
	}

	if len(items) > max {
		items = items[:max]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RECENT NEWS FOR %s (%s)\n", companyName, symbol)
	b.WriteString("==========================================\n")

	for i, item := range items {
		body := item.Body
		if len(body) > snippetLimit {
			body = body[:snippetLimit] + "..."
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&b, "   Source: %s\n", item.Source)
		if body != "" {
			fmt.Fprintf(&b, "   Summary: %s\n", body)
		}
		fmt.Fprintf(&b, "   URL: %s\n", item.URL)
	}

	return b.String()
}
