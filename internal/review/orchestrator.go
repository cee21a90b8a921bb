package review

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// CommitSource lists commits and fetches diffs from a local checkout.
// Implementations must degrade to empty results on failure rather than
// returning errors; a repository that cannot be inspected contributes zero
// commits.
type CommitSource interface {
	ListRecentCommits(repoPath string, count int) []Commit
	CommitDiff(repoPath, hash string) string
}

// Analyzer produces an Analysis for one commit's diff. It never fails:
// every failure mode degrades to a sentinel score.
type Analyzer interface {
	Analyze(ctx context.Context, commit Commit, diff string) Analysis
}

// Cloner fetches a remote repository into a local directory.
type Cloner interface {
	Clone(ctx context.Context, url, dest string) bool
}

// Orchestrator walks repositories and commits sequentially, pairing each
// diff with its analysis in listing order.
type Orchestrator struct {
	Source   CommitSource
	Analyzer Analyzer
	Cloner   Cloner
	Log      *slog.Logger
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Log != nil {
		return o.Log
	}
	return slog.Default()
}

// ReviewRepository reviews the count most recent non-merge commits of the
// checkout at repoPath, one Review per commit, preserving commit order.
func (o *Orchestrator) ReviewRepository(ctx context.Context, repoPath string, count int) []Review {
	log := o.logger()
	log.Info("reviewing repository", "repo", filepath.Base(repoPath), "commits", count)

	commits := o.Source.ListRecentCommits(repoPath, count)
	reviews := make([]Review, 0, len(commits))
	for _, c := range commits {
		diff := o.Source.CommitDiff(repoPath, c.Hash)
		analysis := o.Analyzer.Analyze(ctx, c, diff)
		reviews = append(reviews, Review{
			Repository: repoPath,
			Commit:     c,
			Analysis:   analysis,
		})
	}

	log.Info("repository analysis complete", "repo", filepath.Base(repoPath), "reviews", len(reviews))
	return reviews
}

// ReviewAll clones each URL into a subdirectory of scratchDir and reviews
// it. A failed clone skips that repository; the rest are still processed.
// The caller owns scratchDir cleanup.
func (o *Orchestrator) ReviewAll(ctx context.Context, cloneURLs []string, scratchDir string, count int) []Review {
	log := o.logger()

	var all []Review
	for i, url := range cloneURLs {
		name := RepoNameFromURL(url)
		dest := filepath.Join(scratchDir, name)
		log.Info("processing repository", "n", i+1, "total", len(cloneURLs), "repo", name)

		if !o.Cloner.Clone(ctx, url, dest) {
			continue
		}
		all = append(all, o.ReviewRepository(ctx, dest, count)...)
	}
	return all
}

// RepoNameFromURL extracts the repository name from a clone URL.
func RepoNameFromURL(url string) string {
	name := url[strings.LastIndex(url, "/")+1:]
	return strings.TrimSuffix(name, ".git")
}
