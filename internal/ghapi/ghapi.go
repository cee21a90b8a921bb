// Package ghapi lists a GitHub user's repositories.
//
// One request, up to 100 repositories: accounts with more are silently
// truncated, an accepted limitation of the tool.
package ghapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub REST API for repository listing.
type Client struct {
	gh  *github.Client
	log *slog.Logger
}

// Option customizes a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different API endpoint. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		u, err := url.Parse(base + "/")
		if err != nil {
			return fmt.Errorf("parsing base URL: %w", err)
		}
		c.gh.BaseURL = u
		return nil
	}
}

// NewClient creates a GitHub client. An empty token yields unauthenticated
// access (public repositories only).
func NewClient(ctx context.Context, token string, log *slog.Logger, opts ...Option) (*Client, error) {
	var gh *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		gh = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		gh = github.NewClient(nil)
	}

	if log == nil {
		log = slog.Default()
	}
	c := &Client{gh: gh, log: log}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ListUserRepos returns clone URLs for up to 100 of the user's repositories,
// in API listing order.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]string, error) {
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	repos, _, err := c.gh.Repositories.List(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", username, err)
	}

	urls := make([]string, 0, len(repos))
	for _, r := range repos {
		if u := r.GetCloneURL(); u != "" {
			urls = append(urls, u)
		}
	}

	c.log.Info("found repositories", "user", username, "count", len(urls))
	return urls, nil
}
