package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

// chartBody builds a minimal chart API response for a symbol with the given
// daily closes. Volumes are synthesized as 1000*(i+1).
func chartBody(symbol string, closes []float64) string {
	closeParts := make([]string, len(closes))
	volParts := make([]string, len(closes))
	tsParts := make([]string, len(closes))
	for i, c := range closes {
		closeParts[i] = fmt.Sprintf("%.2f", c)
		volParts[i] = fmt.Sprintf("%d", 1000*(i+1))
		tsParts[i] = fmt.Sprintf("%d", 1700000000+i*86400)
	}
	return fmt.Sprintf(`{
		"chart": {
			"result": [{
				"meta": {
					"currency": "USD",
					"symbol": %q,
					"exchangeName": "NMS",
					"fullExchangeName": "NasdaqGS",
					"longName": "Test Corporation",
					"regularMarketPrice": %.2f,
					"regularMarketVolume": 5000,
					"fiftyTwoWeekHigh": 200.0,
					"fiftyTwoWeekLow": 90.0
				},
				"timestamp": [%s],
				"indicators": {"quote": [{"close": [%s], "volume": [%s]}]}
			}],
			"error": null
		}
	}`, symbol, closes[len(closes)-1],
		strings.Join(tsParts, ","), strings.Join(closeParts, ","), strings.Join(volParts, ","))
}

const notFoundBody = `{
	"chart": {
		"result": null,
		"error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(
		WithBaseURL(server.URL),
		WithLogger(arbor.NewLogger()),
		WithRateLimit(1000),
	)
	return client, server
}

func TestClient_Chart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v8/finance/chart/NVDA")
		assert.Equal(t, "3y", r.URL.Query().Get("range"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, chartBody("NVDA", []float64{100, 110, 120}))
	})

	result, err := client.Chart(context.Background(), "NVDA", "3y")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", result.Meta.Symbol)
	assert.Equal(t, 120.0, result.Meta.RegularMarketPrice)
	assert.Len(t, result.Indicators.Quote[0].Close, 3)
}

func TestClient_Chart_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, notFoundBody)
	})

	_, err := client.Chart(context.Background(), "BOGUS", "1y")
	require.Error(t, err)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "BOGUS", notFound.Symbol)
}

func TestClient_Chart_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "upstream broke")
	})

	_, err := client.Chart(context.Background(), "NVDA", "1y")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestClient_Chart_EmptySymbol(t *testing.T) {
	client := NewClient()
	_, err := client.Chart(context.Background(), "", "1y")
	require.Error(t, err)
}

func TestBuildSnapshot_Returns(t *testing.T) {
	// 260 trading days climbing from 100; enough history for all windows.
	closes := make([]float64, 260)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartBody("NVDA", closes))
	})

	result, err := client.Chart(context.Background(), "NVDA", "3y")
	require.NoError(t, err)

	snap := buildSnapshot(result)
	assert.Equal(t, "Test Corporation", snap.CompanyName)
	assert.Equal(t, closes[len(closes)-1], snap.CurrentPrice)
	require.NotNil(t, snap.OneMonthReturn)
	require.NotNil(t, snap.ThreeMonthReturn)
	require.NotNil(t, snap.OneYearReturn)
	assert.InDelta(t, (359.0-339.0)/339.0*100, *snap.OneMonthReturn, 0.001)
	require.NotNil(t, snap.AvgVolume)
}

func TestBuildSnapshot_ShortHistory(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartBody("NVDA", []float64{100, 105}))
	})

	result, err := client.Chart(context.Background(), "NVDA", "1mo")
	require.NoError(t, err)

	snap := buildSnapshot(result)
	// Too little history for any return window: absent, not zero.
	assert.Nil(t, snap.OneMonthReturn)
	assert.Nil(t, snap.ThreeMonthReturn)
	assert.Nil(t, snap.OneYearReturn)
}

func TestFormatReport(t *testing.T) {
	snap := &Snapshot{
		Symbol:       "NVDA",
		CompanyName:  "Test Corporation",
		Exchange:     "NasdaqGS",
		Currency:     "USD",
		CurrentPrice: 120.5,
		Week52High:   ptr(200),
		Week52Low:    ptr(90),
	}

	report := FormatReport(snap)
	assert.Contains(t, report, "STOCK DATA FOR NVDA")
	assert.Contains(t, report, "Company: Test Corporation")
	assert.Contains(t, report, "52 Week High: 200.00")
	// Missing returns render as n/a, never as zero.
	assert.Contains(t, report, "1 Year Return: n/a")
}
