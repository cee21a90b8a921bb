package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/avelis/revu/internal/analyze"
	"github.com/avelis/revu/internal/config"
	"github.com/avelis/revu/internal/ghapi"
	"github.com/avelis/revu/internal/gitcmd"
	"github.com/avelis/revu/internal/logging"
	"github.com/avelis/revu/internal/report"
	"github.com/avelis/revu/internal/review"
)

// runPipeline drives the full review: config, repo listing, clone, analyze,
// report. Failures after flag parsing set exitCode and return nil so cobra
// does not print usage for runtime errors.
func runPipeline() error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	log, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return nil
	}
	defer func() { _ = closeLog() }()

	username := cfg.GithubUsername
	if username == "" {
		username = gitcmd.InferUsername()
	}
	if username == "" {
		fmt.Fprintln(os.Stderr, "Error: no GitHub username given and none could be inferred from git; use --github-username")
		log.Error("no GitHub username resolved")
		exitCode = ExitError
		return nil
	}
	log.Info("starting review run", "username", username, "commits", cfg.CommitCount, "model", cfg.GeminiModel)

	if flagDryRun {
		printPlan(cfg, username)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &gitcmd.Runner{Token: cfg.GithubToken, Log: log}
	runner.ConfigureIdentity(cfg.GitUserName, cfg.GitUserEmail)

	gh, err := ghapi.NewClient(ctx, cfg.GithubToken, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return nil
	}
	cloneURLs, err := gh.ListUserRepos(ctx, username)
	if err != nil {
		log.Error("listing repositories failed", "username", username, "err", err)
	}
	if len(cloneURLs) == 0 {
		fmt.Fprintf(os.Stderr, "No repositories found for user %s. Exiting.\n", username)
		fmt.Fprintf(os.Stderr, "Check the log file for details: %s\n", cfg.LogFile)
		exitCode = ExitError
		return nil
	}
	fmt.Printf("Found %d repositories for %s\n", len(cloneURLs), username)

	scratch, err := os.MkdirTemp("", "revu-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitError
		return nil
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("scratch cleanup failed", "dir", scratch, "err", err)
		}
	}()

	analyzer := analyze.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxDiffSize, log)
	orch := &review.Orchestrator{Source: runner, Analyzer: analyzer, Cloner: runner, Log: log}
	reviews := orch.ReviewAll(ctx, cloneURLs, scratch, cfg.CommitCount)

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nReview interrupted by user")
		log.Info("run interrupted", "reviews", len(reviews))
		return nil
	}
	if len(reviews) == 0 {
		fmt.Fprintln(os.Stderr, "No commits were analyzed. Exiting.")
		exitCode = ExitError
		return nil
	}

	now := time.Now()
	meta := report.Meta{
		Username:           username,
		LogLevel:           cfg.LogLevel,
		MaxDiffSize:        cfg.MaxDiffSize,
		DefaultCommitCount: cfg.CommitCount,
		GeneratedAt:        now,
	}
	outDir := report.OutputDir(cfg.OutputDir, cfg.ContainerOutputDir, log)
	textPath := resolveTextPath(outDir, username, now)

	text := report.Build(reviews, meta)
	if err := report.Save(text, textPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Check the log file for details: %s\n", cfg.LogFile)
		log.Error("saving text report failed", "path", textPath, "err", err)
		exitCode = ExitError
		return nil
	}
	fmt.Printf("Report saved to: %s\n", textPath)

	if !flagNoPDF {
		pdfPath := filepath.Join(outDir, report.PDFReportName(username, now))
		name, err := report.RenderPDF(reviews, text, meta, pdfPath, log)
		switch {
		case errors.Is(err, report.ErrNoRenderer):
			fmt.Fprintf(os.Stderr, "%v\n", err)
		case err != nil:
			fmt.Fprintf(os.Stderr, "PDF generation failed: %v\n", err)
		default:
			fmt.Printf("PDF report saved to: %s (%s)\n", pdfPath, name)
		}
	}

	fmt.Printf("\nAnalyzed %d commits across %d repositories.\n", len(reviews), len(cloneURLs))
	if avg, ok := review.AverageScore(reviews); ok {
		fmt.Printf("Average quality score: %.1f/10\n", avg)
	}
	fmt.Printf("Details in the log file: %s\n", cfg.LogFile)
	log.Info("review run complete", "reviews", len(reviews), "report", textPath)

	return nil
}

// resolveTextPath applies the --output flag: absolute paths are used as
// given, relative paths are joined to the output directory, and an empty
// flag falls back to the timestamped default name.
func resolveTextPath(outDir, username string, now time.Time) string {
	if flagOutput == "" {
		return filepath.Join(outDir, report.TextReportName(username, now))
	}
	if filepath.IsAbs(flagOutput) {
		return flagOutput
	}
	return filepath.Join(outDir, flagOutput)
}

func printPlan(cfg config.Config, username string) {
	fmt.Printf("Dry run: would review the %d most recent commits of each repository\n", cfg.CommitCount)
	fmt.Printf("  GitHub user:   %s\n", username)
	fmt.Printf("  Gemini model:  %s\n", cfg.GeminiModel)
	fmt.Printf("  Max diff size: %d characters\n", cfg.MaxDiffSize)
	fmt.Printf("  Output dir:    %s\n", cfg.OutputDir)
	fmt.Printf("  Log file:      %s\n", cfg.LogFile)
	if cfg.GithubToken == "" {
		fmt.Println("  GitHub token:  (none; private repositories will be skipped)")
	} else {
		fmt.Println("  GitHub token:  configured")
	}
	if cfg.GeminiAPIKey == "" {
		fmt.Println("  Gemini key:    (none; commits will be listed without AI analysis)")
	} else {
		fmt.Println("  Gemini key:    configured")
	}
}
