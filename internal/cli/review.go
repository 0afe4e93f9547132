package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/critic/internal/analysis"
	"github.com/dshills/critic/internal/backend"
	"github.com/dshills/critic/internal/cache"
	"github.com/dshills/critic/internal/config"
	"github.com/dshills/critic/internal/gitstatus"
	"github.com/dshills/critic/internal/output"
	"github.com/dshills/critic/internal/redact"
	"github.com/dshills/critic/internal/review"
	"github.com/dshills/critic/internal/suitability"
)

// Shared review flags
var (
	flagRepo         string
	flagFormat       string
	flagOut          string
	flagAnalyzer     string
	flagProvider     string
	flagModel        string
	flagSuggestions  bool
	flagConcurrency  int
	flagFailOnIssues bool
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRepo, "repo", ".", "Repository path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagAnalyzer, "analyzer", "", "Analysis strategy (ai, static)")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "Backend provider (anthropic, ollama, mock)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().BoolVar(&flagSuggestions, "suggestions", false, "Include improvement suggestions in findings")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Maximum files analyzed in parallel")
	cmd.Flags().BoolVar(&flagFailOnIssues, "fail-on-issues", false, "Exit with code 1 when issues are found")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagAnalyzer != "" {
		m["analyzer"] = flagAnalyzer
	}
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagConcurrency > 0 {
		m["concurrency"] = fmt.Sprintf("%d", flagConcurrency)
	}
	if flagSuggestions {
		m["suggestions"] = "true"
	}
	return m
}

// buildAnalyzer assembles the analysis strategy from configuration. All
// errors here are configuration errors: nothing has touched the repository
// yet.
func buildAnalyzer(cfg config.Config) (analysis.Strategy, error) {
	deps := analysis.Deps{Model: cfg.Backend.Model}

	if cfg.Privacy.RedactSecrets {
		r, err := redact.New(cfg.Privacy.RedactPatterns, cfg.Privacy.RedactPaths)
		if err != nil {
			return nil, err
		}
		deps.Redactor = r
	}

	if cfg.Review.Analyzer == analysis.KindAI {
		client, err := backend.New(cfg.Backend.Provider, cfg.Backend.Model)
		if err != nil {
			return nil, err
		}
		deps.Client = client

		c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		deps.Cache = c
	}

	return analysis.New(cfg.Review.Analyzer, deps)
}

func runReview(reviewType review.Type) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitConfigError
		return
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitConfigError
		return
	}

	pipeline := &review.Pipeline{
		Status: gitstatus.NewReader(time.Duration(cfg.Git.TimeoutSeconds) * time.Second),
		Limits: suitability.Limits{
			Extensions:      cfg.Review.Extensions,
			ExcludePatterns: cfg.Review.ExcludePatterns,
			MaxFileBytes:    cfg.Review.MaxFileBytes,
			MaxLines:        cfg.Review.MaxLines,
			MaxFunctions:    cfg.Review.MaxFunctions,
			MaxClasses:      cfg.Review.MaxClasses,
		},
		Concurrency:        cfg.Review.Concurrency,
		CaseSensitivePaths: cfg.Review.CaseSensitivePaths,
	}

	res, err := pipeline.Execute(context.Background(), review.Request{
		RepoPath:           flagRepo,
		Type:               reviewType,
		IncludeSuggestions: cfg.Review.IncludeSuggestions,
		Analyzer:           analyzer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteResult(res, flagFormat, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if flagFailOnIssues && res.IssueCount() > 0 {
		exitCode = ExitIssues
	}
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review changed files",
	Long:  "Review files selected from git status. Use subcommands to choose the scope.",
}

var reviewStagedCmd = &cobra.Command{
	Use:   "staged",
	Short: "Review staged files (index vs HEAD)",
	RunE: func(cmd *cobra.Command, args []string) error {
		runReview(review.TypeStaged)
		return nil
	},
}

var reviewModifiedCmd = &cobra.Command{
	Use:   "modified",
	Short: "Review staged and working-tree modified files",
	RunE: func(cmd *cobra.Command, args []string) error {
		runReview(review.TypeModified)
		return nil
	},
}

var reviewFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Review all changed files including untracked",
	RunE: func(cmd *cobra.Command, args []string) error {
		runReview(review.TypeFull)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{reviewStagedCmd, reviewModifiedCmd, reviewFullCmd} {
		addReviewFlags(cmd)
		reviewCmd.AddCommand(cmd)
	}
}
