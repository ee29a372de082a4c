// -----------------------------------------------------------------------
// Fetcher - Retrieves stock snapshots with a single market-suffix retry
// for NSE-only symbols.
// -----------------------------------------------------------------------

package market

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
)

// Fetcher retrieves stock snapshots. If the symbol as given is unknown to
// the data service and lacks the market suffix, the fetcher retries exactly
// once with the suffix appended. There is no further retry.
type Fetcher struct {
	client *Client
	suffix string
	rng    string
	logger arbor.ILogger
}

// NewFetcher creates a fetcher. suffix defaults to the NSE suffix and rng
// to "3y" when empty.
func NewFetcher(client *Client, suffix, rng string, logger arbor.ILogger) *Fetcher {
	if suffix == "" {
		suffix = common.NSESuffix
	}
	if rng == "" {
		rng = "3y"
	}
	return &Fetcher{
		client: client,
		suffix: suffix,
		rng:    rng,
		logger: logger,
	}
}

// Fetch retrieves a snapshot for the symbol, applying the suffix retry rule.
func (f *Fetcher) Fetch(ctx context.Context, symbol common.Symbol) (*Snapshot, error) {
	result, err := f.client.Chart(ctx, symbol.Code, f.rng)
	if err == nil {
		return buildSnapshot(result), nil
	}

	if symbol.HasMarketSuffix(f.suffix) {
		return nil, err
	}

	retry := symbol.WithMarketSuffix(f.suffix)
	f.logger.Info().
		Str("symbol", symbol.Code).
		Str("retry_symbol", retry.Code).
		Err(err).
		Msg("First fetch attempt failed, retrying with market suffix")

	result, retryErr := f.client.Chart(ctx, retry.Code, f.rng)
	if retryErr != nil {
		f.logger.Warn().
			Str("symbol", retry.Code).
			Err(retryErr).
			Msg("Suffix retry failed")
		return nil, retryErr
	}

	return buildSnapshot(result), nil
}
