package gitcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/avelis/revu/internal/redact"
	"github.com/avelis/revu/internal/review"
)

const githubHTTPSPrefix = "https://github.com/"

// Runner executes git commands. Token, when set, is embedded into GitHub
// HTTPS clone URLs for private repository access and masked in log output.
type Runner struct {
	Token string
	Log   *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// ListRecentCommits returns up to count recent non-merge commits of the
// checkout at repoPath, newest first. Lines that do not split into exactly
// four pipe-delimited fields are dropped. On failure it logs and returns nil.
func (r *Runner) ListRecentCommits(repoPath string, count int) []review.Commit {
	out, err := git(repoPath,
		"log", "--no-merges", fmt.Sprintf("-%d", count),
		"--pretty=format:%H|%an|%ad|%s", "--date=iso")
	if err != nil {
		r.logger().Error("listing commits failed", "repo", repoPath, "err", err)
		return nil
	}

	var commits []review.Commit
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			continue
		}
		commits = append(commits, review.Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Message: parts[3],
		})
	}

	r.logger().Info("found commits", "repo", repoPath, "count", len(commits))
	return commits
}

// CommitDiff returns the full diff text of one commit. Returns empty text on
// failure (logged); never errors to the caller.
func (r *Runner) CommitDiff(repoPath, hash string) string {
	out, err := git(repoPath, "show", "--no-merges", hash)
	if err != nil {
		r.logger().Error("fetching diff failed", "commit", shortHash(hash), "err", err)
		return ""
	}
	return out
}

// Clone performs a shallow clone of url into dest. When a token is
// configured and the URL targets github.com over HTTPS, the token is
// embedded as credentials. The token never appears in log output.
func (r *Runner) Clone(ctx context.Context, url, dest string) bool {
	cloneURL := injectToken(url, r.Token)

	r.logger().Debug("cloning repository", "url", redact.MaskToken(cloneURL, r.Token), "dest", dest)
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", cloneURL, dest)
	if out, err := cmd.CombinedOutput(); err != nil {
		r.logger().Error("clone failed",
			"url", redact.MaskToken(url, r.Token),
			"err", redact.MaskToken(fmt.Sprintf("%v: %s", err, out), r.Token))
		return false
	}
	return true
}

// ConfigureIdentity sets the global git identity used for any operations the
// clones may need. Failure is a warning, not an error.
func (r *Runner) ConfigureIdentity(name, email string) {
	settings := [][]string{
		{"user.name", name},
		{"user.email", email},
		{"init.defaultBranch", "main"},
		{"pull.rebase", "false"},
	}
	for _, kv := range settings {
		if _, err := git("", "config", "--global", kv[0], kv[1]); err != nil {
			r.logger().Warn("git config failed", "key", kv[0], "err", err)
			return
		}
	}
	r.logger().Info("git identity configured", "name", name, "email", email)
}

// InferUsername guesses the GitHub username from the current checkout's
// origin remote, then from the global github.user setting. Returns "" when
// nothing resolves.
func InferUsername() string {
	if out, err := git("", "remote", "get-url", "origin"); err == nil {
		if owner := parseRemoteOwner(strings.TrimSpace(out)); owner != "" {
			return owner
		}
	}
	if out, err := git("", "config", "--global", "github.user"); err == nil {
		return strings.TrimSpace(out)
	}
	return ""
}

// parseRemoteOwner extracts the owner segment from a github.com remote URL,
// handling both HTTPS and SSH forms.
func parseRemoteOwner(url string) string {
	if rest, ok := strings.CutPrefix(url, githubHTTPSPrefix); ok {
		if i := strings.Index(rest, "/"); i > 0 {
			return rest[:i]
		}
		return rest
	}
	if rest, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		if i := strings.Index(rest, "/"); i > 0 {
			return rest[:i]
		}
	}
	return ""
}

func injectToken(url, token string) string {
	if token == "" || !strings.HasPrefix(url, githubHTTPSPrefix) {
		return url
	}
	return "https://" + token + "@" + strings.TrimPrefix(url, "https://")
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func git(dir string, args ...string) (string, error) {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
