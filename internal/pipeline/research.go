// -----------------------------------------------------------------------
// Research pipeline - the fixed four-step stock analysis chain:
// collect data -> collect news -> fundamental analysis -> recommendation.
// -----------------------------------------------------------------------

package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/market"
	"github.com/ternarybob/consilium/internal/news"
)

// Step IDs of the research chain.
const (
	StepCollectData    = "collect-data"
	StepCollectNews    = "collect-news"
	StepAnalysis       = "fundamental-analysis"
	StepRecommendation = "recommendation"
)

// Orchestrator wires the data fetchers and the step runner into a single
// entry point for analyzing a stock.
type Orchestrator struct {
	runner     *Runner
	fetcher    *market.Fetcher
	searcher   *news.Searcher
	digestSize int
	logger     arbor.ILogger
}

// NewOrchestrator creates an orchestrator. digestSize caps how many news
// items are rendered into the news step's collected data.
func NewOrchestrator(runner *Runner, fetcher *market.Fetcher, searcher *news.Searcher, digestSize int, logger arbor.ILogger) *Orchestrator {
	if digestSize <= 0 {
		digestSize = news.DefaultDigestSize
	}
	return &Orchestrator{
		runner:     runner,
		fetcher:    fetcher,
		searcher:   searcher,
		digestSize: digestSize,
		logger:     logger,
	}
}

// Analyze runs the four-step research chain for a symbol and returns the
// final recommendation text. Any engine failure is logged and returned;
// there is no partial retry of individual steps.
func (o *Orchestrator) Analyze(ctx context.Context, rawSymbol string) (string, error) {
	symbol := common.ParseSymbol(rawSymbol)
	if symbol.IsZero() {
		return "", fmt.Errorf("no stock symbol provided")
	}

	runID := uuid.NewString()
	o.logger.Info().
		Str("run_id", runID).
		Str("symbol", symbol.Code).
		Msg("Starting stock analysis")

	result, err := o.runner.Run(ctx, o.researchSteps(symbol))
	if err != nil {
		o.logger.Error().
			Str("run_id", runID).
			Str("symbol", symbol.Code).
			Err(err).
			Msg("Stock analysis failed")
		return "", fmt.Errorf("error during analysis: %w", err)
	}

	o.logger.Info().
		Str("run_id", runID).
		Str("symbol", symbol.Code).
		Msg("Stock analysis complete")

	return result, nil
}

// researchSteps builds the fixed four-step chain for a symbol. The first
// two steps carry Gather functions that call the market and news services;
// their failures become explanatory text in the prompt rather than aborting
// the chain. The company name resolved by the data step is shared with the
// news step, which falls back to the bare symbol when it is unavailable.
func (o *Orchestrator) researchSteps(symbol common.Symbol) []Step {
	var companyName string

	gatherData := func(ctx context.Context) string {
		snap, err := o.fetcher.Fetch(ctx, symbol)
		if err != nil {
			return fmt.Sprintf("Error fetching %s: %s", symbol, err)
		}
		companyName = snap.CompanyName
		return market.FormatReport(snap)
	}

	gatherNews := func(ctx context.Context) string {
		name := companyName
		if name == "" {
			name = symbol.Code
		}
		items, err := o.searcher.Search(ctx, name, symbol.Code)
		if err != nil {
			return fmt.Sprintf("Error searching for news: %s", err)
		}
		return news.FormatDigest(name, symbol.Code, items, o.digestSize)
	}

	return []Step{
		{
			ID:        StepCollectData,
			Role:      "Financial Data Specialist",
			Goal:      "Gather comprehensive financial data including current stock metrics, historical performance (1-3 years), and market data with proper symbol handling for both regular and Indian (.NS) stocks",
			Backstory: "You are an experienced financial data analyst who specializes in extracting and organizing stock market data. You have expertise in handling various stock exchanges and ensuring data accuracy across different markets. You're meticulous about data quality and always double-check your sources.",
			Description: fmt.Sprintf(`Collect comprehensive financial data for stock symbol: %s

Your tasks:
1. Review the collected market data above for all relevant financial metrics
2. Gather current stock price, market metrics, and historical performance
3. Ensure all data is accurate and complete
4. Format the data clearly for the next agent

Focus on: Current valuation metrics, financial health indicators, and market performance data.`, symbol.Code),
			ExpectedOutput: "A comprehensive dataset with all relevant financial metrics and historical performance data formatted clearly for analysis",
			Gather:         gatherData,
		},
		{
			ID:        StepCollectNews,
			Role:      "Market News Intelligence Specialist",
			Goal:      "Collect and analyze the most relevant news from the past week related to the company, including corporate announcements, industry trends, and market sentiment that could impact stock performance",
			Backstory: "You are a seasoned financial journalist with deep expertise in identifying market-moving news. You excel at filtering noise from signal and understanding how news events translate to stock performance. You have a keen eye for spotting trends and understanding market sentiment.",
			Description: fmt.Sprintf(`Gather recent news and market intelligence for the stock: %s

Your tasks:
1. Use the company name from the previous step to assess the collected news
2. Focus on news that could impact stock performance
3. Look for earnings reports, corporate announcements, analyst opinions, industry trends
4. Assess overall market sentiment around the company
5. Identify any potential catalysts or risk factors mentioned in the news

Focus on: Market-moving news, sentiment analysis, and potential impact on stock performance.`, symbol.Code),
			ExpectedOutput: "A comprehensive news summary with key headlines, market sentiment analysis, and assessment of potential impact on stock performance",
			DependsOn:      []string{StepCollectData},
			Gather:         gatherNews,
		},
		{
			ID:        StepAnalysis,
			Role:      "Comprehensive Financial Analyst",
			Goal:      "Synthesize all collected data into a detailed fundamental analysis covering key metrics, growth, valuation, and competitive positioning using industry-standard benchmarks",
			Backstory: "You are a CFA charterholder with 15+ years of experience in equity research. You specialize in breaking down complex financial data into clear, actionable insights that both professionals and beginners can understand. You're known for your thorough analysis and ability to spot both opportunities and risks.",
			Description: fmt.Sprintf(`Create a detailed fundamental analysis for %s using all collected data and news.

Your tasks:
1. Analyze all financial metrics from the collected data
2. Compare key metrics against industry benchmarks and standards
3. Assess the company's financial health, growth prospects, and valuation
4. Incorporate recent news and market sentiment into your analysis
5. Identify key strengths, weaknesses, opportunities, and threats
6. Write your analysis in clear, accessible language for non-experts

Structure your analysis with these sections:
- Executive Summary
- Financial Health Assessment
- Valuation Analysis
- Growth Prospects
- Recent News Impact
- Risk Factors
- Industry Comparison

Make it comprehensive but easy to understand.`, symbol.Code),
			ExpectedOutput: "A detailed fundamental analysis report with clear sections covering financial health, valuation, growth prospects, news impact, and risk assessment, written in accessible language",
			DependsOn:      []string{StepCollectData, StepCollectNews},
		},
		{
			ID:        StepRecommendation,
			Role:      "Investment Recommendation Specialist",
			Goal:      "Review the comprehensive analysis and provide a clear BUY/HOLD/SELL recommendation with detailed reasoning, confidence level, and risk assessment in language that's accessible to non-experts",
			Backstory: "You are a senior portfolio manager with a track record of successful investment decisions. You excel at translating complex analysis into clear investment guidance and explaining the rationale behind each recommendation. You always consider risk-reward ratios and investment time horizons.",
			Description: fmt.Sprintf(`Provide a clear investment recommendation for %s based on the comprehensive analysis.

Your tasks:
1. Review all previous analysis and data
2. Synthesize findings into a clear BUY/HOLD/SELL recommendation
3. Provide your confidence level (High/Medium/Low) and reasoning
4. Explain the key factors supporting your decision
5. Identify main risks and potential catalysts
6. Suggest an appropriate investment time horizon
7. Write everything in simple terms that a beginner investor can understand

Your final recommendation should include:
- Clear Decision: BUY/HOLD/SELL
- Confidence Level: High/Medium/Low
- Key Supporting Reasons (3-5 bullet points)
- Main Risks to Consider
- Suggested Time Horizon
- Bottom Line Summary in plain English

Be decisive but honest about uncertainties and risks.`, symbol.Code),
			ExpectedOutput: "A clear investment recommendation with decision, confidence level, supporting reasons, risk assessment, and plain-English summary suitable for beginner investors",
			DependsOn:      []string{StepCollectData, StepCollectNews, StepAnalysis},
		},
	}
}
