package market

import "fmt"

// chartResponse is the top-level envelope of the chart API.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

// chartError is the error object the API returns inside a 200 or 404 body.
type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// chartResult holds metadata plus daily series for one symbol.
type chartResult struct {
	Meta       chartMeta `json:"meta"`
	Timestamp  []int64   `json:"timestamp"`
	Indicators struct {
		Quote []quoteBlock `json:"quote"`
	} `json:"indicators"`
}

type chartMeta struct {
	Currency             string  `json:"currency"`
	Symbol               string  `json:"symbol"`
	ExchangeName         string  `json:"exchangeName"`
	FullExchangeName     string  `json:"fullExchangeName"`
	InstrumentType       string  `json:"instrumentType"`
	LongName             string  `json:"longName"`
	ShortName            string  `json:"shortName"`
	RegularMarketPrice   float64 `json:"regularMarketPrice"`
	RegularMarketVolume  int64   `json:"regularMarketVolume"`
	FiftyTwoWeekHigh     float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      float64 `json:"fiftyTwoWeekLow"`
	RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
}

// quoteBlock carries the daily series. Entries are nullable: the API emits
// null for halted or missing sessions, hence pointer elements.
type quoteBlock struct {
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// APIError represents a non-OK response from the market data API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("market API error on %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// NotFoundError indicates the symbol is unknown to the data service. The
// fetcher treats this as the trigger for the single suffix retry.
type NotFoundError struct {
	Symbol      string
	Description string
}

func (e *NotFoundError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("symbol %s not found: %s", e.Symbol, e.Description)
	}
	return fmt.Sprintf("symbol %s not found", e.Symbol)
}
