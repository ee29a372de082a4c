// -----------------------------------------------------------------------
// consilium - stock research pipeline.
// Fetches market data and recent news for a ticker, then runs the fixed
// four-step analysis chain to produce a buy/hold/sell recommendation.
// -----------------------------------------------------------------------

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/llm"
	"github.com/ternarybob/consilium/internal/market"
	"github.com/ternarybob/consilium/internal/news"
	"github.com/ternarybob/consilium/internal/pipeline"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles  configPaths
	symbolFlag   = flag.String("symbol", "", "Stock symbol to analyze (e.g. NVDA, RELIANCE)")
	symbolFlagS  = flag.String("s", "", "Stock symbol to analyze (shorthand)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("consilium version %s\n", common.GetVersion())
		os.Exit(0)
	}

	symbol := *symbolFlag
	if *symbolFlagS != "" {
		symbol = *symbolFlagS
	}
	if symbol == "" && flag.NArg() > 0 {
		symbol = flag.Arg(0)
	}
	if symbol == "" {
		fmt.Println("Usage: consilium -symbol <SYMBOL>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("consilium.toml"); err == nil {
			configFiles = append(configFiles, "consilium.toml")
		}
	}

	// Startup order: config -> logger -> banner -> key check
	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger := common.SetupLogger(config)
	common.PrintBanner("consilium", common.GetVersion())

	if err := config.RequireGeminiKey(); err != nil {
		logger.Fatal().Err(err).Msg("Startup check failed")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator, closeFn, err := buildOrchestrator(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize pipeline")
		os.Exit(1)
	}
	defer closeFn()

	fmt.Printf("\nStarting Stock Analysis for: %s\n", symbol)
	fmt.Println("==================================================")

	result, err := orchestrator.Analyze(ctx, symbol)
	if err != nil {
		logger.Error().Str("symbol", symbol).Err(err).Msg("Analysis failed")
		fmt.Printf("\nError during analysis: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nAnalysis Complete for %s\n", symbol)
	fmt.Println("==================================================")
	fmt.Println()
	fmt.Println(result)
}

// buildOrchestrator wires the market client, news searcher, and content
// provider into the research pipeline.
func buildOrchestrator(config *common.Config, logger arbor.ILogger) (*pipeline.Orchestrator, func() error, error) {
	clientOpts := []market.ClientOption{
		market.WithBaseURL(config.Market.BaseURL),
		market.WithLogger(logger),
		market.WithRateLimit(config.Market.RateLimit),
	}
	if timeout, err := time.ParseDuration(config.Market.Timeout); err == nil && timeout > 0 {
		clientOpts = append(clientOpts, market.WithTimeout(timeout))
	}
	client := market.NewClient(clientOpts...)
	fetcher := market.NewFetcher(client, config.Market.Suffix, config.Market.Range, logger)

	searcher, err := news.NewSearcher(config.News, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create news searcher: %w", err)
	}

	factory := llm.NewProviderFactory(config, logger)
	runner := pipeline.NewRunner(factory, logger)
	orchestrator := pipeline.NewOrchestrator(runner, fetcher, searcher, config.News.MaxDigestSize, logger)

	return orchestrator, factory.Close, nil
}
