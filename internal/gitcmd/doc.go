// Package gitcmd wraps the git CLI for commit listing, diff extraction, and
// shallow cloning.
//
// Every invocation receives its target directory explicitly (git -C); the
// process working directory is never mutated. Listing and diff failures are
// logged and degrade to empty results; a repository that cannot be
// inspected simply contributes zero commits.
package gitcmd
