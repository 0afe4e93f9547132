package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes, stable for CI gating and git hooks.
const (
	ExitSuccess      = 0
	ExitIssues       = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "critic",
	Short: "Git-status-driven AI code review",
	Long:  "Critic reviews changed files in a git repository using AI or static analysis and emits structured reports with deterministic exit codes.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	// A repo-local .env is the common place for ANTHROPIC_API_KEY.
	_ = godotenv.Load()

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print critic version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "critic version %s\n", version)
	},
}
