package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avelis/revu/internal/review"
)

// Meta carries the run-level configuration echoed into reports.
type Meta struct {
	Username           string
	LogLevel           string
	MaxDiffSize        int
	DefaultCommitCount int
	GeneratedAt        time.Time
}

// Build renders the full text report: header, summary, then one detailed
// block per review in input order.
func Build(reviews []review.Review, meta Meta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Git Commit Review Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n", meta.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Log Level: %s\n", meta.LogLevel)
	fmt.Fprintf(&b, "Max Diff Size: %d characters\n\n", meta.MaxDiffSize)

	fmt.Fprintf(&b, "## Summary\n")
	fmt.Fprintf(&b, "Total commits reviewed: %d\n", len(reviews))
	if avg, ok := review.AverageScore(reviews); ok {
		fmt.Fprintf(&b, "Average quality score: %.1f/10\n", avg)
		fmt.Fprintf(&b, "Scores distribution: %s\n", strings.Join(review.NumericScores(reviews), ", "))
	}

	b.WriteString("\n## Detailed Reviews\n")

	for _, rv := range reviews {
		c := rv.Commit
		a := rv.Analysis
		fmt.Fprintf(&b, "\n### Commit: %s (%s)\n", c.ShortHash(), filepath.Base(rv.Repository))
		fmt.Fprintf(&b, "**Author:** %s  \n", c.Author)
		fmt.Fprintf(&b, "**Date:** %s  \n", c.Date)
		fmt.Fprintf(&b, "**Message:** %s  \n", c.Message)
		fmt.Fprintf(&b, "**Quality Score:** %s/10\n\n", a.Score)
		fmt.Fprintf(&b, "**Feedback:**\n%s\n\n", a.Feedback)
		b.WriteString("**Suggestions:**\n")
		for _, s := range a.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n---\n")
	}

	return b.String()
}

// Save writes the report to path, creating parent directories as needed.
func Save(report, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// TextReportName returns the timestamped text report filename for a user.
func TextReportName(username string, ts time.Time) string {
	return fmt.Sprintf("commit_review_%s_%s.txt", username, ts.Format("20060102_150405"))
}

// PDFReportName returns the timestamped PDF filename for a user.
func PDFReportName(username string, ts time.Time) string {
	return fmt.Sprintf("analysis_%s_%s.pdf", username, ts.Format("20060102_150405"))
}

const fallbackDirName = "revu-reports"

// OutputDir resolves and creates the output directory: the configured dir,
// overridden by containerDir when running inside a container (marked by
// /app existing). Creation failure falls back to a directory under the
// current working directory.
func OutputDir(configured, containerDir string, log *slog.Logger) string {
	if log == nil {
		log = slog.Default()
	}

	dir := configured
	if containerDir != "" {
		if _, err := os.Stat("/app"); err == nil {
			dir = containerDir
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot create output directory, falling back", "dir", dir, "err", err)
		cwd, _ := os.Getwd()
		dir = filepath.Join(cwd, fallbackDirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("cannot create fallback output directory", "dir", dir, "err", err)
		}
	}

	log.Info("using output directory", "dir", dir)
	return dir
}
