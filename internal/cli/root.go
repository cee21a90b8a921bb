package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsageError = 2
)

var (
	flagUsername string
	flagToken    string
	flagAPIKey   string
	flagCommits  int
	flagOutput   string
	flagLogLevel string
	flagNoPDF    bool
	flagDryRun   bool
)

var rootCmd = &cobra.Command{
	Use:   "revu",
	Short: "AI-powered review of a GitHub user's recent commits",
	Long: "Revu fetches a GitHub user's repositories, inspects their most recent\n" +
		"commits, scores each one with Gemini, and writes text and PDF reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline()
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagUsername != "" {
		m["githubUsername"] = flagUsername
	}
	if flagToken != "" {
		m["githubToken"] = flagToken
	}
	if flagAPIKey != "" {
		m["apiKey"] = flagAPIKey
	}
	if flagCommits > 0 {
		m["commits"] = fmt.Sprintf("%d", flagCommits)
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}

// Run executes the root command and returns an exit code.
func Run() int {
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
	Short: "Print revu version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "revu version %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagUsername, "github-username", "", "GitHub username to review (default: inferred from git)")
	rootCmd.Flags().StringVar(&flagToken, "github-token", "", "GitHub token for API access and private clones")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key")
	rootCmd.Flags().IntVarP(&flagCommits, "commits", "c", 0, "Number of recent commits to review per repository")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Text report path (default: timestamped file in the output directory)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (DEBUG, INFO, WARNING, ERROR)")
	rootCmd.Flags().BoolVar(&flagNoPDF, "no-pdf", false, "Skip PDF generation")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the run plan without cloning or analyzing")
}
