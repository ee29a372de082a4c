// -----------------------------------------------------------------------
// consilium-docs - document classification utility.
// Extracts text from documents (PDF, Word, image OCR, plain text),
// assigns a category by keyword rules, and summarizes the content.
// -----------------------------------------------------------------------

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/docs"
	"github.com/ternarybob/consilium/internal/extract"
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
	fileFlag     = flag.String("file", "", "Process single document file")
	fileFlagF    = flag.String("f", "", "Process single document file (shorthand)")
	batchFlag    = flag.String("batch", "", "Process all documents in directory")
	batchFlagB   = flag.String("b", "", "Process all documents in directory (shorthand)")
	interactive  = flag.Bool("interactive", false, "Run in interactive mode")
	interactiveI = flag.Bool("i", false, "Run in interactive mode (shorthand)")
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
		fmt.Printf("consilium-docs version %s\n", common.GetVersion())
		os.Exit(0)
	}

	fmt.Println("Document Classification Framework")
	fmt.Println("==================================================")

	if len(configFiles) == 0 {
		if _, err := os.Stat("consilium.toml"); err == nil {
			configFiles = append(configFiles, "consilium.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		arbor.NewLogger().Fatal().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger := common.SetupLogger(config)

	if err := config.RequireGeminiKey(); err != nil {
		fmt.Println("Error: GOOGLE_API_KEY not found in environment")
		logger.Fatal().Err(err).Msg("Startup check failed")
		os.Exit(1)
	}

	processor := docs.NewProcessor(extract.NewExtractor(logger), config.Docs.Workers, logger)

	filePath := *fileFlag
	if *fileFlagF != "" {
		filePath = *fileFlagF
	}
	batchDir := *batchFlag
	if *batchFlagB != "" {
		batchDir = *batchFlagB
	}

	switch {
	case filePath != "":
		fmt.Printf("Processing single document: %s\n", filePath)
		printResult(processor.ProcessDocument(filePath))
		fmt.Println("Processing completed!")

	case batchDir != "":
		fmt.Printf("Processing directory: %s\n", batchDir)
		runBatch(processor, batchDir)
		fmt.Println("Batch processing completed!")

	case *interactive || *interactiveI:
		runInteractive(processor)

	default:
		// No flags given: fall back to the interactive menu.
		runInteractive(processor)
	}
}

// runInteractive loops over a simple numbered menu until the user exits.
func runInteractive(processor *docs.Processor) {
	fmt.Println("Interactive Mode")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nOptions:")
		fmt.Println("1. Process single document")
		fmt.Println("2. Process directory")
		fmt.Println("3. Exit")
		fmt.Print("Select option (1-3): ")

		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "1":
			fmt.Print("Enter document path: ")
			if !scanner.Scan() {
				return
			}
			if path := strings.TrimSpace(scanner.Text()); path != "" {
				printResult(processor.ProcessDocument(path))
			}

		case "2":
			fmt.Print("Enter directory path: ")
			if !scanner.Scan() {
				return
			}
			if dir := strings.TrimSpace(scanner.Text()); dir != "" {
				runBatch(processor, dir)
			}

		case "3":
			fmt.Println("Goodbye!")
			return

		default:
			fmt.Println("Invalid option")
		}
	}
}

// runBatch processes a directory and prints the aggregate result.
func runBatch(processor *docs.Processor, dir string) {
	batch, err := processor.ProcessDirectory(dir)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}

	fmt.Printf("\nBatch %s: %d files, %d successful, %d failed\n",
		batch.BatchID, batch.TotalFiles, batch.Successful, batch.Failed)
	for _, result := range batch.Results {
		printResult(result)
	}
}

// printResult renders one document result as indented JSON.
func printResult(result docs.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("Results: %+v\n", result)
		return
	}
	fmt.Printf("Results: %s\n", out)
}
