// -----------------------------------------------------------------------
// Searcher - Keyword news search against the DuckDuckGo HTML endpoint.
// Issues a fixed set of queries per stock, pausing between queries to
// stay under the search service's rate limits.
// -----------------------------------------------------------------------

package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"golang.org/x/time/rate"
)

// Item is a single news search result.
type Item struct {
	Title  string
	Body   string
	URL    string
	Source string
}

// Searcher issues keyword searches against the search service's HTML
// endpoint and parses the result markup.
type Searcher struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxResults int
	userAgent  string
	logger     arbor.ILogger
}

// NewSearcher builds a searcher from configuration.
func NewSearcher(cfg common.NewsConfig, logger arbor.ILogger) (*Searcher, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid news timeout %q: %w", cfg.Timeout, err)
	}
	delay, err := time.ParseDuration(cfg.QueryDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid news query delay %q: %w", cfg.QueryDelay, err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	// One query per delay period; burst 1 so the pause applies between
	// every pair of consecutive queries.
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	if delay <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &Searcher{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		maxResults: maxResults,
		userAgent:  cfg.UserAgent,
		logger:     logger,
	}, nil
}

// Queries returns the fixed query set issued for a stock.
func Queries(companyName, symbol string) []string {
	return []string{
		fmt.Sprintf("%s stock news", companyName),
		fmt.Sprintf("%s earnings news", symbol),
		fmt.Sprintf("%s financial news", companyName),
	}
}

// Search runs the fixed query set and aggregates results. A failing query
// is logged and skipped; partial results are returned. The only hard error
// is context cancellation.
func (s *Searcher) Search(ctx context.Context, companyName, symbol string) ([]Item, error) {
	var all []Item

	for _, query := range Queries(companyName, symbol) {
		if err := s.limiter.Wait(ctx); err != nil {
			return all, err
		}

		items, err := s.searchQuery(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}
			s.logger.Warn().
				Str("query", query).
				Err(err).
				Msg("News query failed, continuing with remaining queries")
			continue
		}

		all = append(all, items...)
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Int("items", len(all)).
		Msg("News search complete")

	return all, nil
}

// searchQuery runs a single query and parses up to maxResults items.
func (s *Searcher) searchQuery(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	items := make([]Item, 0, s.maxResults)
	doc.Find("div.result").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(items) >= s.maxResults {
			return false
		}

		link := sel.Find("a.result__a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		href = resolveRedirect(href)
		if title == "" || href == "" {
			return true
		}

		items = append(items, Item{
			Title:  title,
			Body:   strings.TrimSpace(sel.Find(".result__snippet").First().Text()),
			URL:    href,
			Source: hostOf(href),
		})
		return true
	})

	return items, nil
}

// resolveRedirect unwraps the search service's /l/?uddg= redirect links to
// the destination URL. Non-redirect links pass through unchanged.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// hostOf returns the host of a URL, or "Unknown" when it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return u.Host
}
