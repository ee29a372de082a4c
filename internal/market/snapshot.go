package market

import (
	"fmt"
	"strings"
	"time"
)

// Trading-day windows used for trailing return calculations.
const (
	monthTradingDays   = 21
	quarterTradingDays = 63
	yearTradingDays    = 252
)

// Snapshot is the point-in-time view of a stock assembled from the chart
// API. Optional fields are pointers: nil means the service did not supply
// the value, which is distinct from a value of zero.
type Snapshot struct {
	// Identification
	Symbol      string
	CompanyName string
	Exchange    string
	Currency    string

	// Current price data
	CurrentPrice float64
	DayLow       *float64
	DayHigh      *float64
	Volume       *int64
	AvgVolume    *int64

	// 52-week range
	Week52High *float64
	Week52Low  *float64

	// Trailing returns, percent
	OneMonthReturn   *float64
	ThreeMonthReturn *float64
	OneYearReturn    *float64

	LastUpdated time.Time
}

// buildSnapshot converts a chart result into a Snapshot, computing trailing
// returns from the daily close series.
func buildSnapshot(result *chartResult) *Snapshot {
	meta := result.Meta

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}

	exchange := meta.FullExchangeName
	if exchange == "" {
		exchange = meta.ExchangeName
	}

	snap := &Snapshot{
		Symbol:       meta.Symbol,
		CompanyName:  name,
		Exchange:     exchange,
		Currency:     meta.Currency,
		CurrentPrice: meta.RegularMarketPrice,
		LastUpdated:  time.Now(),
	}

	if meta.RegularMarketDayLow > 0 {
		snap.DayLow = ptr(meta.RegularMarketDayLow)
	}
	if meta.RegularMarketDayHigh > 0 {
		snap.DayHigh = ptr(meta.RegularMarketDayHigh)
	}
	if meta.FiftyTwoWeekHigh > 0 {
		snap.Week52High = ptr(meta.FiftyTwoWeekHigh)
	}
	if meta.FiftyTwoWeekLow > 0 {
		snap.Week52Low = ptr(meta.FiftyTwoWeekLow)
	}
	if meta.RegularMarketVolume > 0 {
		snap.Volume = ptrInt(meta.RegularMarketVolume)
	}

	closes, volumes := dailySeries(result)

	if len(volumes) > 0 {
		var total int64
		for _, v := range volumes {
			total += v
		}
		snap.AvgVolume = ptrInt(total / int64(len(volumes)))
	}

	if len(closes) > 0 {
		price := snap.CurrentPrice
		if price == 0 {
			price = closes[len(closes)-1]
			snap.CurrentPrice = price
		}
		snap.OneMonthReturn = trailingReturn(closes, price, monthTradingDays)
		snap.ThreeMonthReturn = trailingReturn(closes, price, quarterTradingDays)
		snap.OneYearReturn = trailingReturn(closes, price, yearTradingDays)
	}

	return snap
}

// dailySeries flattens the nullable close/volume series, dropping sessions
// with missing closes so that window offsets count real trading days.
func dailySeries(result *chartResult) ([]float64, []int64) {
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	closes := make([]float64, 0, len(quote.Close))
	volumes := make([]int64, 0, len(quote.Volume))
	for i, c := range quote.Close {
		if c == nil {
			continue
		}
		closes = append(closes, *c)
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volumes = append(volumes, *quote.Volume[i])
		}
	}
	return closes, volumes
}

// trailingReturn computes the percent return from the close `days` trading
// days back to the current price. Returns nil when the series is too short.
func trailingReturn(closes []float64, current float64, days int) *float64 {
	if len(closes) < days {
		return nil
	}
	base := closes[len(closes)-days]
	if base == 0 {
		return nil
	}
	return ptr((current - base) / base * 100)
}

// FormatReport renders a snapshot as the plain-text block fed to the
// analysis pipeline. Absent values render as "n/a".
func FormatReport(s *Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "STOCK DATA FOR %s\n", s.Symbol)
	b.WriteString("===============================\n")
	fmt.Fprintf(&b, "Company: %s\n", orNA(s.CompanyName))
	fmt.Fprintf(&b, "Exchange: %s | Currency: %s\n\n", orNA(s.Exchange), orNA(s.Currency))

	b.WriteString("CURRENT METRICS:\n")
	fmt.Fprintf(&b, "- Current Price: %.2f\n", s.CurrentPrice)
	fmt.Fprintf(&b, "- Day Range: %s - %s\n", fmtFloat(s.DayLow), fmtFloat(s.DayHigh))
	fmt.Fprintf(&b, "- 52 Week High: %s\n", fmtFloat(s.Week52High))
	fmt.Fprintf(&b, "- 52 Week Low: %s\n\n", fmtFloat(s.Week52Low))

	b.WriteString("PERFORMANCE:\n")
	fmt.Fprintf(&b, "- 1 Month Return: %s\n", fmtPct(s.OneMonthReturn))
	fmt.Fprintf(&b, "- 3 Month Return: %s\n", fmtPct(s.ThreeMonthReturn))
	fmt.Fprintf(&b, "- 1 Year Return: %s\n\n", fmtPct(s.OneYearReturn))

	b.WriteString("TRADING DATA:\n")
	fmt.Fprintf(&b, "- Volume: %s\n", fmtInt(s.Volume))
	fmt.Fprintf(&b, "- Average Volume: %s\n", fmtInt(s.AvgVolume))

	return b.String()
}

func ptr(f float64) *float64 { return &f }
func ptrInt(i int64) *int64  { return &i }

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

func fmtFloat(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *f)
}

func fmtPct(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *f)
}

func fmtInt(i *int64) string {
	if i == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *i)
}
