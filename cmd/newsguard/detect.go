package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsguard/internal/config"
	"github.com/jonathan/newsguard/internal/corroborate"
	"github.com/jonathan/newsguard/internal/db"
	"github.com/jonathan/newsguard/internal/detect"
	"github.com/jonathan/newsguard/internal/llm"
	"github.com/jonathan/newsguard/internal/observability"
	"github.com/jonathan/newsguard/internal/rules"
	"github.com/jonathan/newsguard/internal/search"
	"github.com/jonathan/newsguard/internal/types"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Assess a news article for fabrication risk",
	Long:  "Run the weighted rule checklist through the generation model, corroborate the claims against web search evidence, and print the final risk assessment.",
	RunE:  runDetect,
}

var (
	detectTitle      string
	detectContent    string
	detectURL        string
	detectDomain     string
	detectFile       string
	detectBatchFile  string
	detectOutFile    string
	detectConfigPath string
	detectRulesPath  string
	detectAPIKey     string
	detectSearchKey  string
	detectSearchCX   string
	detectDBURL      string
	detectNoSearch   bool
	detectJSON       bool
	detectVerbose    bool
)

func init() {
	detectCmd.Flags().StringVar(&detectTitle, "title", "", "Article title")
	detectCmd.Flags().StringVar(&detectContent, "content", "", "Article body text")
	detectCmd.Flags().StringVar(&detectURL, "url", "", "Article URL (used to derive the source domain)")
	detectCmd.Flags().StringVar(&detectDomain, "domain", "", "Source domain (overrides the URL-derived one)")
	detectCmd.Flags().StringVarP(&detectFile, "file", "f", "", "Path to a JSON file with title/content/url fields")
	detectCmd.Flags().StringVar(&detectBatchFile, "batch", "", "Path to a JSON file with an array of test cases")
	detectCmd.Flags().StringVarP(&detectOutFile, "out", "o", "", "Write the assessment session JSON to this path")
	detectCmd.Flags().StringVar(&detectConfigPath, "config", "", "Path to a JSON config file")
	detectCmd.Flags().StringVar(&detectRulesPath, "rules", "", "Path to a custom rules JSON file")
	detectCmd.Flags().StringVar(&detectAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	detectCmd.Flags().StringVar(&detectSearchKey, "search-api-key", "", "Custom Search API key (overrides SEARCH_API_KEY env var)")
	detectCmd.Flags().StringVar(&detectSearchCX, "search-engine-id", "", "Custom Search engine id (overrides SEARCH_ENGINE_ID env var)")
	detectCmd.Flags().StringVar(&detectDBURL, "db-url", "", "PostgreSQL URL to persist the assessment (overrides DATABASE_URL env var)")
	detectCmd.Flags().BoolVar(&detectNoSearch, "no-search", false, "Skip the web corroboration stage")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Print the assessment as JSON instead of formatted output")
	detectCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if detectBatchFile != "" {
		return runBatch(cfg, detectBatchFile)
	}

	item, err := loadItem()
	if err != nil {
		return err
	}

	ctx := context.Background()
	detector, client, ruleSet, err := newDetectorFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	assessment, err := detector.Detect(ctx, item)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if cfg.DatabaseURL != "" {
		if err := persistAssessment(ctx, cfg.DatabaseURL, assessment); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist assessment: %v\n", err)
		}
	}

	if detectOutFile != "" {
		session := &detect.Session{Item: item, Assessment: assessment}
		jsonBytes, err := json.MarshalIndent(session, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}
		if err := os.WriteFile(detectOutFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write session file: %w", err)
		}
	}

	return printAssessment(assessment, ruleSet, detectJSON)
}

// resolveConfig merges flags, an optional config file, and environment
// variables, in that order of precedence.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		APIKey:         detectAPIKey,
		SearchAPIKey:   detectSearchKey,
		SearchEngineID: detectSearchCX,
		DatabaseURL:    detectDBURL,
		Rules:          detectRulesPath,
		NoSearch:       detectNoSearch,
		Verbose:        detectVerbose,
	}

	if detectConfigPath != "" {
		fileCfg, err := config.LoadConfig(detectConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}

	env := config.Config{
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		SearchAPIKey:   os.Getenv("SEARCH_API_KEY"),
		SearchEngineID: os.Getenv("SEARCH_ENGINE_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}
	merged := flags.MergeWithDefaults(env)

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	if merged.APIKey == "" {
		return config.Config{}, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return merged, nil
}

// loadItem builds the news item from --file or the individual flags.
func loadItem() (*types.NewsItem, error) {
	if detectFile != "" {
		data, err := os.ReadFile(detectFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		var item types.NewsItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to parse input file: %w", err)
		}
		return &item, nil
	}

	if detectTitle == "" || detectContent == "" {
		return nil, fmt.Errorf("must provide either --file or both --title and --content")
	}
	return &types.NewsItem{
		Title:   detectTitle,
		Content: detectContent,
		URL:     detectURL,
		Domain:  detectDomain,
	}, nil
}

// newDetectorFromConfig wires the generation client, the optional search
// scorer, and the rule set into a detector. The caller closes the client.
func newDetectorFromConfig(ctx context.Context, cfg config.Config) (*detect.Detector, llm.Client, []rules.Rule, error) {
	ruleSet := rules.Default()
	if cfg.Rules != "" {
		loaded, err := rules.LoadFile(cfg.Rules)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load rules: %w", err)
		}
		ruleSet = loaded
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	var scorer *corroborate.Scorer
	if !cfg.NoSearch && cfg.SearchAPIKey != "" && cfg.SearchEngineID != "" {
		searcher, err := search.NewGoogleSearcher(ctx, cfg.SearchAPIKey, cfg.SearchEngineID, cfg.Verbose)
		if err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("failed to create search client: %w", err)
		}
		scorer = corroborate.NewScorer(searcher,
			corroborate.WithMaxResults(cfg.MaxSearchResults),
			corroborate.WithVerbose(cfg.Verbose))
	} else if !cfg.NoSearch && cfg.Verbose {
		fmt.Fprintln(os.Stderr, "Note: search credentials not set; running without web corroboration")
	}

	opts := []detect.Option{detect.WithVerbose(cfg.Verbose)}
	if cfg.HighRiskThreshold != 0 && cfg.LowRiskThreshold != 0 {
		opts = append(opts, detect.WithThresholds(cfg.HighRiskThreshold, cfg.LowRiskThreshold))
	}
	return detect.NewDetector(client, scorer, ruleSet, opts...), client, ruleSet, nil
}

func persistAssessment(ctx context.Context, databaseURL string, assessment *types.FinalAssessment) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	return database.SaveAssessment(ctx, assessment)
}

func printAssessment(assessment *types.FinalAssessment, ruleSet []rules.Rule, asJSON bool) error {
	if asJSON {
		jsonBytes, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal assessment: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAssessment(assessment, ruleSet)
	return nil
}
